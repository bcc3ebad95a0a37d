package repositories

import (
	"context"

	"github.com/srbhuyan/shoppingList/services/shopping/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int // Maximum number of records to return
	Offset int // Number of records to skip
}

// ItemRepository is the persistence interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// Save and Update take the OwnerDelta produced by the lifecycle hook and
// must persist the article owner change in the same transaction as the item
// mutation.
type ItemRepository interface {
	Save(ctx context.Context, item *models.Item, delta models.OwnerDelta) error
	GetByID(ctx context.Context, entityID string) (*models.Item, error)

	// FindAll retrieves a paginated slice of items plus the total count
	// (ignoring pagination).
	FindAll(ctx context.Context, opts QueryOpts) ([]*models.Item, int, error)

	Update(ctx context.Context, item *models.Item, delta models.OwnerDelta) error
	Delete(ctx context.Context, item *models.Item) error

	// Exists reports whether an item with the given identity exists. Must
	// reflect the authoritative store at call time; it backs the lifecycle
	// gates.
	Exists(ctx context.Context, entityID string) (bool, error)
}
