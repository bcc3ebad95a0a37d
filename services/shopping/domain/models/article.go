package models

import "github.com/google/uuid"

// MaxNameLength caps article and list names; longer names are structurally invalid.
const MaxNameLength = 255

// Article is a shared catalog entry (e.g. "Milk") referenced by possibly many
// items. Its owner set accumulates the owners of every item that references
// it: lifecycle hooks only ever union owners in, never remove them, so the
// set grows monotonically through that path.
type Article struct {
	EntityID string
	Name     string
	Owners   OwnerSet
}

// NewArticle constructs an Article with a generated identity and a deep copy
// of the given owner set.
func NewArticle(name string, owners OwnerSet) *Article {
	a := &Article{
		EntityID: uuid.NewString(),
		Name:     name,
		Owners:   NewOwnerSet(),
	}
	if owners != nil {
		a.Owners = owners.Clone()
	}
	return a
}

// MergeOwners unions users into the article's owner set and returns the users
// that were actually added. Existing owners are never removed.
func (a *Article) MergeOwners(users OwnerSet) []User {
	if a.Owners == nil {
		a.Owners = NewOwnerSet()
	}
	return a.Owners.AddAll(users)
}
