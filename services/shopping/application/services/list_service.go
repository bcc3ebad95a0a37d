package services

import (
	"context"

	"github.com/srbhuyan/shoppingList/services/shopping/domain/models"
	"github.com/srbhuyan/shoppingList/services/shopping/domain/repositories"
	domainsvcs "github.com/srbhuyan/shoppingList/services/shopping/domain/services"
)

// ListService is the list-membership collaborator consumed by the item
// lifecycle handler. Update re-validates the list before persisting, so a
// structurally broken list fails with domain.ErrListInvalid and the caller
// (the delete cascade) propagates that failure instead of swallowing it.
type ListService struct {
	repo      repositories.ShoppingListRepository
	validator domainsvcs.ListValidator
}

// NewListService wires a ListService.
func NewListService(repo repositories.ShoppingListRepository, validator domainsvcs.ListValidator) *ListService {
	return &ListService{repo: repo, validator: validator}
}

// FindListsContaining returns every list currently referencing the item.
func (s *ListService) FindListsContaining(ctx context.Context, item *models.Item) ([]*models.ShoppingList, error) {
	return s.repo.FindListsContainingItem(ctx, item)
}

// Update re-validates and persists a list, replacing its membership.
func (s *ListService) Update(ctx context.Context, list *models.ShoppingList) error {
	if err := s.validator.Validate(list); err != nil {
		return err
	}
	return s.repo.Update(ctx, list)
}
