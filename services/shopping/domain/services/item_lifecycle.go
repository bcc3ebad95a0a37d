package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/srbhuyan/shoppingList/pkg/logger"
	"github.com/srbhuyan/shoppingList/services/shopping/domain"
	"github.com/srbhuyan/shoppingList/services/shopping/domain/models"
)

// ItemLookup answers existence queries against the authoritative store.
// Implementations must reflect current state at call time; stale caches are
// not acceptable behind create/update/delete gates.
type ItemLookup interface {
	Exists(ctx context.Context, entityID string) (bool, error)
}

// ListMembership is the sole authority for the list→item relation: it finds
// the lists currently referencing an item and persists an updated list.
// Update re-validates the list and fails with domain.ErrListInvalid on
// structural violations.
type ListMembership interface {
	FindListsContaining(ctx context.Context, item *models.Item) ([]*models.ShoppingList, error)
	Update(ctx context.Context, list *models.ShoppingList) error
}

// ListRemoval records one step of the delete cascade so callers can see
// which lists were already corrected when a later step fails and retry only
// the failed subset.
type ListRemoval struct {
	ListID string
	Err    error
}

// ItemLifecycle is the single choke point for item mutations. The store and
// controller layers invoke its hooks around every create, update and delete;
// no item is persisted, updated or removed without first passing the
// corresponding gate.
//
// The handler is stateless apart from its collaborator references and is safe
// for concurrent use across distinct items. It provides no mutual exclusion
// per item identity; concurrent mutations of the same identity are expected
// to serialize or conflict at the backing store (unique keys, row locks).
type ItemLifecycle struct {
	validator ItemValidator
	lookup    ItemLookup
	lists     ListMembership
	log       logger.Logger
}

// NewItemLifecycle wires the handler with its collaborators.
func NewItemLifecycle(validator ItemValidator, lookup ItemLookup, lists ListMembership, log logger.Logger) *ItemLifecycle {
	return &ItemLifecycle{
		validator: validator,
		lookup:    lookup,
		lists:     lists,
		log:       log,
	}
}

// BeforeCreate gates item creation. In order: propagate the item's owners
// into its article (when an article is present), reject an already-taken
// identity with domain.ErrItemAlreadyExists before any validation runs, then
// run full validation.
//
// The owner propagation mutates the in-memory article and is additionally
// returned as an explicit OwnerDelta; the caller must persist the article
// change in the same transaction as the item. Nothing is persisted by the
// hook itself, so a failure leaves stored state untouched.
func (h *ItemLifecycle) BeforeCreate(ctx context.Context, item *models.Item) (models.OwnerDelta, error) {
	delta := propagateOwners(item)

	if item != nil {
		exists, err := h.lookup.Exists(ctx, item.EntityID)
		if err != nil {
			return delta, err
		}
		if exists {
			return delta, domain.ErrItemAlreadyExists
		}
	}

	if err := h.validator.Validate(item); err != nil {
		return delta, err
	}
	return delta, nil
}

// AfterCreate records that an item was created. Observability only: it runs
// after the create committed and must never fail it, so logging problems are
// swallowed.
func (h *ItemLifecycle) AfterCreate(ctx context.Context, item *models.Item) {
	h.notify(ctx, "Created", item)
}

// BeforeUpdate gates item updates: same owner propagation as BeforeCreate,
// then domain.ErrItemNotFound unless the identity currently exists, then full
// validation.
func (h *ItemLifecycle) BeforeUpdate(ctx context.Context, item *models.Item) (models.OwnerDelta, error) {
	delta := propagateOwners(item)

	if item == nil {
		return delta, domain.ErrItemNotFound
	}
	exists, err := h.lookup.Exists(ctx, item.EntityID)
	if err != nil {
		return delta, err
	}
	if !exists {
		return delta, domain.ErrItemNotFound
	}

	if err := h.validator.Validate(item); err != nil {
		return delta, err
	}
	return delta, nil
}

// AfterUpdate records that an item was updated. Same best-effort contract as
// AfterCreate.
func (h *ItemLifecycle) AfterUpdate(ctx context.Context, item *models.Item) {
	h.notify(ctx, "Updated", item)
}

// BeforeDelete gates item deletion. It fails with domain.ErrItemNotFound for
// unknown identities, then removes the item from every list referencing it,
// persisting each list through the ListMembership collaborator one at a time.
//
// The cascade is atomic per list but deliberately not across lists: a failure
// at step k leaves steps 1..k-1 applied, and the returned removals report the
// outcome of every attempted step alongside the surfaced error.
func (h *ItemLifecycle) BeforeDelete(ctx context.Context, item *models.Item) ([]ListRemoval, error) {
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	exists, err := h.lookup.Exists(ctx, item.EntityID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrItemNotFound
	}
	return h.removeFromContainingLists(ctx, item)
}

// AfterDelete records that an item was deleted. Same best-effort contract as
// AfterCreate.
func (h *ItemLifecycle) AfterDelete(ctx context.Context, item *models.Item) {
	h.notify(ctx, "Deleted", item)
}

func (h *ItemLifecycle) removeFromContainingLists(ctx context.Context, item *models.Item) ([]ListRemoval, error) {
	lists, err := h.lists.FindListsContaining(ctx, item)
	if err != nil {
		return nil, err
	}

	removals := make([]ListRemoval, 0, len(lists))
	for _, list := range lists {
		list.RemoveItem(item)
		if err := h.lists.Update(ctx, list); err != nil {
			removals = append(removals, ListRemoval{ListID: list.EntityID, Err: err})
			if errors.Is(err, domain.ErrListInvalid) {
				h.log.WarnContext(ctx, "failed to remove deleted item from a containing shopping list",
					"article", item.ArticleName(),
					"list_id", list.EntityID,
				)
				h.log.DebugContext(ctx, "list update failed during delete cascade",
					"item_id", item.EntityID,
					"list_id", list.EntityID,
					"error", err,
				)
			}
			// Earlier lists stay corrected; the failure surfaces to abort
			// the delete.
			return removals, err
		}
		removals = append(removals, ListRemoval{ListID: list.EntityID})
	}
	return removals, nil
}

// notify logs a lifecycle event in the form "Created item: <id> (<article>)".
// An absent article logs as "null". Failures in the logging sink must never
// unwind a mutation that already committed.
func (h *ItemLifecycle) notify(ctx context.Context, verb string, item *models.Item) {
	defer func() {
		_ = recover()
	}()
	if item == nil {
		return
	}
	h.log.InfoContext(ctx, fmt.Sprintf("%s item: %s (%s)", verb, item.EntityID, item.ArticleName()),
		"item_id", item.EntityID,
		"article", item.ArticleName(),
	)
}

// propagateOwners unions the item's owners into its article and reports the
// delta. Performed unconditionally whenever an article is present, including
// for items that later fail a gate; only in-memory state is touched.
func propagateOwners(item *models.Item) models.OwnerDelta {
	if item == nil || item.Article == nil {
		return models.OwnerDelta{}
	}
	added := item.Article.MergeOwners(item.Owners)
	return models.OwnerDelta{Article: item.Article, Added: added}
}
