package models

import (
	"time"

	"github.com/google/uuid"
)

// Item is the core aggregate: a single line entry in a shopping list,
// referencing exactly one shared article. Items are mutable records; identity
// is EntityID and never changes once assigned.
//
// CreatedAt and Owners are internal bookkeeping and are never exposed through
// external serialization; response DTOs omit them.
type Item struct {
	EntityID  string
	Article   *Article
	Count     string
	Done      bool
	Owners    OwnerSet
	CreatedAt time.Time
}

// NewItem constructs an Item from its fields with a generated identity,
// Done=false and CreatedAt=now. The owner set is deep-copied.
func NewItem(article *Article, count string, owners OwnerSet) *Item {
	it := &Item{
		EntityID:  uuid.NewString(),
		Article:   article,
		Count:     count,
		Owners:    NewOwnerSet(),
		CreatedAt: time.Now().UTC(),
	}
	it.SetOwners(owners)
	return it
}

// NewItemFrom copy-constructs an Item: same article reference, same count,
// and an owner set equal to src's but independently mutable. The copy gets a
// fresh identity and CreatedAt.
func NewItemFrom(src *Item) *Item {
	return NewItem(src.Article, src.Count, src.Owners)
}

// SetOwners replaces the current owner set. The set is always the one most
// recently assigned: the existing members are cleared first, then the given
// users are copied in. A nil or empty argument leaves the item with no owners.
func (it *Item) SetOwners(owners OwnerSet) {
	if it.Owners == nil {
		it.Owners = NewOwnerSet()
	}
	it.Owners.Clear()
	for _, u := range owners {
		it.Owners.Add(u)
	}
}

// SetCreatedAt assigns the creation timestamp. A zero time is substituted
// with the current time; CreatedAt is never unset.
func (it *Item) SetCreatedAt(t time.Time) {
	if t.IsZero() {
		t = time.Now().UTC()
	}
	it.CreatedAt = t
}

// Is reports identity equality: two items are the same iff their EntityIDs
// match, regardless of any other field. This supports update-in-place
// semantics without value equality.
func (it *Item) Is(other *Item) bool {
	return other != nil && it.EntityID == other.EntityID
}

// ArticleName returns the referenced article's name, or "null" when the item
// has no article. Used by lifecycle logging.
func (it *Item) ArticleName() string {
	if it.Article == nil {
		return "null"
	}
	return it.Article.Name
}

// OwnerDelta is the explicit result of owner propagation: the users a
// lifecycle hook added to an item's article. Callers persist the article
// change in the same transaction as the item mutation instead of relying on
// hidden object-graph aliasing.
type OwnerDelta struct {
	Article *Article
	Added   []User
}

// Empty reports whether the propagation touched no article owners.
func (d OwnerDelta) Empty() bool {
	return d.Article == nil || len(d.Added) == 0
}
