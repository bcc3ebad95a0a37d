package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	pkgcache "github.com/srbhuyan/shoppingList/pkg/cache"
	"github.com/srbhuyan/shoppingList/pkg/logger"
	"github.com/srbhuyan/shoppingList/services/shopping/domain/models"
	"github.com/srbhuyan/shoppingList/services/shopping/domain/repositories"
	domainsvcs "github.com/srbhuyan/shoppingList/services/shopping/domain/services"
)

// ItemService orchestrates item mutations. Every create, update and delete
// runs through the lifecycle handler's gates before the repository is
// touched, and through its notification hooks afterwards. Reads are served
// from Redis when available; existence gates always hit the store.
type ItemService struct {
	repo      repositories.ItemRepository
	lifecycle *domainsvcs.ItemLifecycle
	cache     *pkgcache.ItemCache
	log       logger.Logger
}

// NewItemService wires an ItemService.
func NewItemService(repo repositories.ItemRepository, lifecycle *domainsvcs.ItemLifecycle, itemCache *pkgcache.ItemCache, log logger.Logger) *ItemService {
	return &ItemService{repo: repo, lifecycle: lifecycle, cache: itemCache, log: log}
}

// Create gates and persists a new item. The owner delta from the before-hook
// is persisted in the same transaction as the item; the repository publishes
// the created event transactionally.
func (s *ItemService) Create(ctx context.Context, item *models.Item) (*models.Item, error) {
	delta, err := s.lifecycle.BeforeCreate(ctx, item)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, item, delta); err != nil {
		return nil, err
	}
	s.lifecycle.AfterCreate(ctx, item)
	return item, nil
}

// Update gates and persists changes to an existing item.
func (s *ItemService) Update(ctx context.Context, item *models.Item) (*models.Item, error) {
	delta, err := s.lifecycle.BeforeUpdate(ctx, item)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, item, delta); err != nil {
		return nil, err
	}
	s.lifecycle.AfterUpdate(ctx, item)

	if s.cache != nil {
		_ = s.cache.Delete(context.WithoutCancel(ctx), item.EntityID)
	}
	return item, nil
}

// Delete gates and removes an item. The before-hook removes the item from
// every containing list first; a cascade failure aborts the delete with
// partial list progress kept (see the lifecycle handler).
func (s *ItemService) Delete(ctx context.Context, entityID string) error {
	item, err := s.repo.GetByID(ctx, entityID)
	if err != nil {
		return err
	}
	if _, err := s.lifecycle.BeforeDelete(ctx, item); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, item); err != nil {
		return err
	}
	s.lifecycle.AfterDelete(ctx, item)

	if s.cache != nil {
		_ = s.cache.Delete(context.WithoutCancel(ctx), entityID)
	}
	return nil
}

// GetByID retrieves an item using a read-through cache pattern:
//  1. Check Redis first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *ItemService) GetByID(ctx context.Context, entityID string) (*models.Item, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, entityID); err == nil {
			return cachedToItem(cached), nil
		} else if !errors.Is(err, redis.Nil) {
			s.log.DebugContext(ctx, "item cache read failed, falling back to store",
				"item_id", entityID, "error", err)
		}
	}

	item, err := s.repo.GetByID(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), itemToCached(item))
		}()
	}
	return item, nil
}

// List returns a paginated slice of items plus total count.
func (s *ItemService) List(ctx context.Context, opts repositories.QueryOpts) ([]*models.Item, int, error) {
	items, total, err := s.repo.FindAll(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	return items, total, nil
}

func itemToCached(item *models.Item) *pkgcache.CachedItem {
	cached := &pkgcache.CachedItem{
		EntityID: item.EntityID,
		Count:    item.Count,
		Done:     item.Done,
		Owners:   item.Owners.Usernames(),
	}
	if item.Article != nil {
		cached.ArticleName = item.Article.Name
	}
	return cached
}

// cachedToItem rebuilds a read-model item from the cache entry. The cache
// stores the denormalized view only; CreatedAt stays internal to the store.
func cachedToItem(cached *pkgcache.CachedItem) *models.Item {
	owners := models.NewOwnerSet()
	for _, name := range cached.Owners {
		owners.Add(models.User{Username: name})
	}
	it := &models.Item{
		EntityID: cached.EntityID,
		Count:    cached.Count,
		Done:     cached.Done,
		Owners:   owners,
	}
	if cached.ArticleName != "" {
		it.Article = &models.Article{Name: cached.ArticleName, Owners: models.NewOwnerSet()}
	}
	return it
}
