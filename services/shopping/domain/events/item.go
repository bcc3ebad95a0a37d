package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics for item lifecycle events. Published by the repository
// within the mutation's transaction; consumed by the worker process.
const (
	TopicItemCreated = "item.created"
	TopicItemUpdated = "item.updated"
	TopicItemDeleted = "item.deleted"
)

// ItemEvent is the payload for all three item lifecycle topics.
// Owners carries usernames only; CreatedAt stays internal to the store.
type ItemEvent struct {
	EventID     uuid.UUID `json:"event_id"` // unique publish-time identifier for deduplication
	Version     int       `json:"version"`  // schema version; increment on breaking changes
	ItemID      string    `json:"item_id"`
	ArticleName string    `json:"article_name,omitempty"`
	Count       string    `json:"count"`
	Done        bool      `json:"done"`
	Owners      []string  `json:"owners"`
	OccurredAt  time.Time `json:"occurred_at"`
}
