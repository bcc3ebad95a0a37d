package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/srbhuyan/shoppingList/pkg/logger"
	"github.com/srbhuyan/shoppingList/services/shopping/domain"
	"github.com/srbhuyan/shoppingList/services/shopping/domain/models"
	"github.com/srbhuyan/shoppingList/services/shopping/domain/repositories"
	domainsvcs "github.com/srbhuyan/shoppingList/services/shopping/domain/services"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...any)                          {}
func (noopLogger) Error(string, ...any)                         {}
func (noopLogger) Warn(string, ...any)                          {}
func (noopLogger) Debug(string, ...any)                         {}
func (noopLogger) InfoContext(context.Context, string, ...any)  {}
func (noopLogger) ErrorContext(context.Context, string, ...any) {}
func (noopLogger) WarnContext(context.Context, string, ...any)  {}
func (noopLogger) DebugContext(context.Context, string, ...any) {}
func (l noopLogger) With(...any) logger.Logger                  { return l }
func (noopLogger) ToSlog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeItemRepo is an in-memory ItemRepository recording mutation calls.
type fakeItemRepo struct {
	items      map[string]*models.Item
	savedDelta models.OwnerDelta
	saves      int
	updates    int
	deletes    int
}

func newFakeItemRepo(items ...*models.Item) *fakeItemRepo {
	r := &fakeItemRepo{items: map[string]*models.Item{}}
	for _, it := range items {
		r.items[it.EntityID] = it
	}
	return r
}

func (r *fakeItemRepo) Save(_ context.Context, item *models.Item, delta models.OwnerDelta) error {
	r.saves++
	r.savedDelta = delta
	r.items[item.EntityID] = item
	return nil
}

func (r *fakeItemRepo) GetByID(_ context.Context, entityID string) (*models.Item, error) {
	item, ok := r.items[entityID]
	if !ok {
		return nil, fmt.Errorf("%w: item %s", domain.ErrItemNotFound, entityID)
	}
	return item, nil
}

func (r *fakeItemRepo) FindAll(_ context.Context, opts repositories.QueryOpts) ([]*models.Item, int, error) {
	var all []*models.Item
	for _, it := range r.items {
		all = append(all, it)
	}
	return all, len(all), nil
}

func (r *fakeItemRepo) Update(_ context.Context, item *models.Item, delta models.OwnerDelta) error {
	r.updates++
	r.savedDelta = delta
	r.items[item.EntityID] = item
	return nil
}

func (r *fakeItemRepo) Delete(_ context.Context, item *models.Item) error {
	r.deletes++
	delete(r.items, item.EntityID)
	return nil
}

func (r *fakeItemRepo) Exists(_ context.Context, entityID string) (bool, error) {
	_, ok := r.items[entityID]
	return ok, nil
}

// fakeMembership implements the list-membership collaborator with a fixed
// list set and an optional forced Update failure.
type fakeMembership struct {
	lists     []*models.ShoppingList
	updateErr error
	updates   int
}

func (f *fakeMembership) FindListsContaining(_ context.Context, item *models.Item) ([]*models.ShoppingList, error) {
	var out []*models.ShoppingList
	for _, l := range f.lists {
		if l.Contains(item) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeMembership) Update(_ context.Context, _ *models.ShoppingList) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates++
	return nil
}

func newService(repo *fakeItemRepo, lists *fakeMembership) *ItemService {
	if lists == nil {
		lists = &fakeMembership{}
	}
	lifecycle := domainsvcs.NewItemLifecycle(domainsvcs.NewValidator(), repo, lists, noopLogger{})
	return NewItemService(repo, lifecycle, nil, noopLogger{})
}

func TestItemServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("persists item and owner delta", func(t *testing.T) {
		repo := newFakeItemRepo()
		svc := newService(repo, nil)

		item := models.NewItem(
			models.NewArticle("Milk", nil), "2L",
			models.NewOwnerSet(models.User{Username: "alice"}),
		)
		created, err := svc.Create(ctx, item)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.saves != 1 {
			t.Fatalf("saves = %d, want 1", repo.saves)
		}
		if len(repo.savedDelta.Added) != 1 || repo.savedDelta.Added[0].Username != "alice" {
			t.Errorf("saved delta = %+v, want alice propagated to the article", repo.savedDelta)
		}
		if _, err := repo.GetByID(ctx, created.EntityID); err != nil {
			t.Errorf("created item not stored: %v", err)
		}
	})

	t.Run("duplicate identity never reaches the store", func(t *testing.T) {
		existing := models.NewItem(models.NewArticle("Milk", nil), "1", nil)
		repo := newFakeItemRepo(existing)
		svc := newService(repo, nil)

		dup := models.NewItem(models.NewArticle("Bread", nil), "1", nil)
		dup.EntityID = existing.EntityID
		if _, err := svc.Create(ctx, dup); !errors.Is(err, domain.ErrItemAlreadyExists) {
			t.Fatalf("error = %v, want ErrItemAlreadyExists", err)
		}
		if repo.saves != 0 {
			t.Errorf("saves = %d, want the gate to block the write", repo.saves)
		}
	})

	t.Run("invalid item never reaches the store", func(t *testing.T) {
		repo := newFakeItemRepo()
		svc := newService(repo, nil)

		item := models.NewItem(models.NewArticle("", nil), "1", nil)
		if _, err := svc.Create(ctx, item); !errors.Is(err, domain.ErrItemInvalid) {
			t.Fatalf("error = %v, want ErrItemInvalid", err)
		}
		if repo.saves != 0 {
			t.Errorf("saves = %d, want 0", repo.saves)
		}
	})
}

func TestItemServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown identity is rejected before the store", func(t *testing.T) {
		repo := newFakeItemRepo()
		svc := newService(repo, nil)

		item := models.NewItem(models.NewArticle("Milk", nil), "1", nil)
		if _, err := svc.Update(ctx, item); !errors.Is(err, domain.ErrItemNotFound) {
			t.Fatalf("error = %v, want ErrItemNotFound", err)
		}
		if repo.updates != 0 {
			t.Errorf("updates = %d, want 0", repo.updates)
		}
	})

	t.Run("existing item is updated", func(t *testing.T) {
		existing := models.NewItem(models.NewArticle("Milk", nil), "1", nil)
		repo := newFakeItemRepo(existing)
		svc := newService(repo, nil)

		changed := models.NewItem(models.NewArticle("Milk", nil), "3L", nil)
		changed.EntityID = existing.EntityID
		changed.Done = true

		updated, err := svc.Update(ctx, changed)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.updates != 1 {
			t.Fatalf("updates = %d, want 1", repo.updates)
		}
		if !updated.Done || updated.Count != "3L" {
			t.Errorf("updated item = %+v, want new state persisted", updated)
		}
	})
}

func TestItemServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes list references then the item", func(t *testing.T) {
		item := models.NewItem(models.NewArticle("Milk", nil), "1", nil)
		list := models.NewShoppingList("Groceries", nil)
		list.AddItem(item)

		repo := newFakeItemRepo(item)
		lists := &fakeMembership{lists: []*models.ShoppingList{list}}
		svc := newService(repo, lists)

		if err := svc.Delete(ctx, item.EntityID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lists.updates != 1 {
			t.Errorf("list updates = %d, want 1", lists.updates)
		}
		if list.Contains(item) {
			t.Error("list still references the deleted item")
		}
		if repo.deletes != 1 {
			t.Errorf("deletes = %d, want 1", repo.deletes)
		}
	})

	t.Run("cascade failure aborts the delete", func(t *testing.T) {
		item := models.NewItem(models.NewArticle("Milk", nil), "1", nil)
		list := models.NewShoppingList("Groceries", nil)
		list.AddItem(item)

		repo := newFakeItemRepo(item)
		lists := &fakeMembership{
			lists:     []*models.ShoppingList{list},
			updateErr: fmt.Errorf("%w: list name must not be empty", domain.ErrListInvalid),
		}
		svc := newService(repo, lists)

		if err := svc.Delete(ctx, item.EntityID); !errors.Is(err, domain.ErrListInvalid) {
			t.Fatalf("error = %v, want ErrListInvalid", err)
		}
		if repo.deletes != 0 {
			t.Errorf("deletes = %d, want the item kept", repo.deletes)
		}
	})

	t.Run("unknown identity", func(t *testing.T) {
		svc := newService(newFakeItemRepo(), nil)
		if err := svc.Delete(ctx, "nope"); !errors.Is(err, domain.ErrItemNotFound) {
			t.Fatalf("error = %v, want ErrItemNotFound", err)
		}
	})
}

func TestItemServiceGetByID(t *testing.T) {
	ctx := context.Background()

	item := models.NewItem(models.NewArticle("Milk", nil), "1", nil)
	svc := newService(newFakeItemRepo(item), nil)

	got, err := svc.GetByID(ctx, item.EntityID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Is(item) {
		t.Errorf("got %s, want %s", got.EntityID, item.EntityID)
	}

	if _, err := svc.GetByID(ctx, "nope"); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("error = %v, want ErrItemNotFound", err)
	}
}
