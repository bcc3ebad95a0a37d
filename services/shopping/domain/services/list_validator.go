package services

import (
	"fmt"

	"github.com/srbhuyan/shoppingList/services/shopping/domain"
	"github.com/srbhuyan/shoppingList/services/shopping/domain/models"
)

// ListValidator checks a shopping list before it is persisted. Failures wrap
// domain.ErrListInvalid with the reason.
type ListValidator interface {
	Validate(list *models.ShoppingList) error
}

// DefaultListValidator enforces the structural rules for shopping lists.
type DefaultListValidator struct{}

// NewListValidator returns the default list validator.
func NewListValidator() *DefaultListValidator {
	return &DefaultListValidator{}
}

func (DefaultListValidator) Validate(list *models.ShoppingList) error {
	if list == nil {
		return fmt.Errorf("%w: list is nil", domain.ErrListInvalid)
	}
	if list.Name == "" {
		return fmt.Errorf("%w: list name must not be empty", domain.ErrListInvalid)
	}
	if len(list.Name) > models.MaxNameLength {
		return fmt.Errorf("%w: list name must not exceed %d characters", domain.ErrListInvalid, models.MaxNameLength)
	}
	for _, it := range list.Items {
		if it == nil || it.EntityID == "" {
			return fmt.Errorf("%w: list references an item without identity", domain.ErrListInvalid)
		}
	}
	return nil
}
