// Package services contains stateless domain services for the shopping
// bounded context: validation and the item lifecycle handler. Domain services
// operate purely on domain types plus the project logger.
package services

import (
	"fmt"

	"github.com/srbhuyan/shoppingList/services/shopping/domain"
	"github.com/srbhuyan/shoppingList/services/shopping/domain/models"
)

const maxCountLength = 255

// ItemValidator checks a candidate item against structural and business
// rules before it may exist. A nil return means the item is acceptable; any
// failure wraps domain.ErrItemInvalid with the reason.
type ItemValidator interface {
	Validate(item *models.Item) error
}

// ItemRule is an additional business rule applied after the structural
// checks. Rules return a plain reason error; the validator wraps it.
type ItemRule func(item *models.Item) error

// Validator is the default ItemValidator. Extra business rules (count
// format, owner constraints) can be attached without changing the lifecycle
// handler's contract.
type Validator struct {
	rules []ItemRule
}

// NewValidator returns a Validator with the structural checks plus any extra
// rules appended.
func NewValidator(rules ...ItemRule) *Validator {
	return &Validator{rules: rules}
}

// Validate rejects nil items, items without an article, items whose article
// is structurally invalid, and over-long counts, then runs the extra rules.
func (v *Validator) Validate(item *models.Item) error {
	if item == nil {
		return fmt.Errorf("%w: item is nil", domain.ErrItemInvalid)
	}
	if item.Article == nil {
		return fmt.Errorf("%w: item references no article", domain.ErrItemInvalid)
	}
	if err := validateArticle(item.Article); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrItemInvalid, err)
	}
	if len(item.Count) > maxCountLength {
		return fmt.Errorf("%w: count must not exceed %d characters", domain.ErrItemInvalid, maxCountLength)
	}
	for _, rule := range v.rules {
		if err := rule(item); err != nil {
			return fmt.Errorf("%w: %s", domain.ErrItemInvalid, err)
		}
	}
	return nil
}

func validateArticle(a *models.Article) error {
	if a.Name == "" {
		return fmt.Errorf("article name must not be empty")
	}
	if len(a.Name) > models.MaxNameLength {
		return fmt.Errorf("article name must not exceed %d characters", models.MaxNameLength)
	}
	return nil
}
