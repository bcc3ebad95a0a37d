package services

import (
	"github.com/srbhuyan/shoppingList/pkg/app"
	"github.com/srbhuyan/shoppingList/pkg/cache"
	domainsvcs "github.com/srbhuyan/shoppingList/services/shopping/domain/services"
	"github.com/srbhuyan/shoppingList/services/shopping/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the shopping
// bounded context. It wires the domain lifecycle handler with its
// collaborators and the infrastructure implementations.
type Services struct {
	Item *ItemService
	List *ListService
}

// New wires all shopping application services from the Application container.
func New(a *app.Application) *Services {
	itemRepo := postgres.NewItemRepository(a.Db, a.EventBus)
	listRepo := postgres.NewShoppingListRepository(a.Db)

	listSvc := NewListService(listRepo, domainsvcs.NewListValidator())
	lifecycle := domainsvcs.NewItemLifecycle(
		domainsvcs.NewValidator(),
		itemRepo, // authoritative existence lookup
		listSvc,
		a.Logger,
	)

	var itemCache *cache.ItemCache
	if a.Redis != nil {
		itemCache = cache.NewItemCache(a.Redis)
	}

	return &Services{
		Item: NewItemService(itemRepo, lifecycle, itemCache, a.Logger),
		List: listSvc,
	}
}
