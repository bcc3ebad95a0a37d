package models

import "github.com/google/uuid"

// ShoppingList is a named collection of items shared among users. Many lists
// may reference the same item; the membership relation is owned by the list
// side and persisted through the list repository.
type ShoppingList struct {
	EntityID string
	Name     string
	Owners   OwnerSet
	Items    []*Item
}

// NewShoppingList constructs a list with a generated identity and a deep copy
// of the given owner set.
func NewShoppingList(name string, owners OwnerSet) *ShoppingList {
	l := &ShoppingList{
		EntityID: uuid.NewString(),
		Name:     name,
		Owners:   NewOwnerSet(),
	}
	if owners != nil {
		l.Owners = owners.Clone()
	}
	return l
}

// Contains reports whether the list references an item with the same identity.
func (l *ShoppingList) Contains(item *Item) bool {
	for _, it := range l.Items {
		if it.Is(item) {
			return true
		}
	}
	return false
}

// AddItem appends an item unless the list already references its identity.
func (l *ShoppingList) AddItem(item *Item) {
	if item == nil || l.Contains(item) {
		return
	}
	l.Items = append(l.Items, item)
}

// RemoveItem drops every reference to the item's identity and reports whether
// anything was removed.
func (l *ShoppingList) RemoveItem(item *Item) bool {
	if item == nil {
		return false
	}
	kept := l.Items[:0]
	removed := false
	for _, it := range l.Items {
		if it.Is(item) {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	l.Items = kept
	return removed
}
