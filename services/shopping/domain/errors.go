package domain

import "errors"

// Sentinel errors for the shopping domain. Use errors.Is() to check these;
// validation failures wrap ErrItemInvalid/ErrListInvalid together with a
// human-readable reason.
var (
	// ErrItemNotFound indicates an update or delete targeted an item that
	// does not currently exist. Never retried by this layer.
	ErrItemNotFound = errors.New("item not found")

	// ErrItemAlreadyExists indicates a create collided with an existing
	// item identity.
	ErrItemAlreadyExists = errors.New("item already exists")

	// ErrItemInvalid indicates the item failed structural or business
	// validation.
	ErrItemInvalid = errors.New("item invalid")

	// ErrListInvalid indicates a shopping list failed re-validation when it
	// was persisted, e.g. during the delete cascade.
	ErrListInvalid = errors.New("shopping list invalid")
)
