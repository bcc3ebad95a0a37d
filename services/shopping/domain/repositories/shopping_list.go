package repositories

import (
	"context"

	"github.com/srbhuyan/shoppingList/services/shopping/domain/models"
)

// ShoppingListRepository is the persistence interface for shopping lists and
// the authoritative list→item membership relation.
type ShoppingListRepository interface {
	// FindListsContainingItem returns every list currently referencing the
	// item, each loaded with its full membership. Order is irrelevant.
	FindListsContainingItem(ctx context.Context, item *models.Item) ([]*models.ShoppingList, error)

	// Update persists the list row and replaces its membership with
	// list.Items.
	Update(ctx context.Context, list *models.ShoppingList) error
}
