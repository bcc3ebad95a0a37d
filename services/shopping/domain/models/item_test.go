package models

import (
	"testing"
	"time"
)

func TestNewItem(t *testing.T) {
	owners := NewOwnerSet(User{Username: "alice"})
	article := NewArticle("Milk", nil)

	item := NewItem(article, "2L", owners)

	if item.EntityID == "" {
		t.Fatal("expected generated entity id")
	}
	if item.Done {
		t.Error("new item must not be done")
	}
	if item.CreatedAt.IsZero() {
		t.Error("new item must have a creation timestamp")
	}
	if !item.Owners.Contains("alice") {
		t.Error("owner set not copied in")
	}

	t.Run("owner set is independent of the argument", func(t *testing.T) {
		owners.Add(User{Username: "bob"})
		if item.Owners.Contains("bob") {
			t.Error("mutating the argument set leaked into the item")
		}
	})
}

func TestNewItemFrom(t *testing.T) {
	src := NewItem(NewArticle("Milk", nil), "2L", NewOwnerSet(User{Username: "alice"}))
	cpy := NewItemFrom(src)

	if cpy.EntityID == src.EntityID {
		t.Error("copy must get a fresh identity")
	}
	if cpy.Article != src.Article {
		t.Error("copy must reference the same article")
	}
	if cpy.Count != src.Count {
		t.Errorf("count = %q, want %q", cpy.Count, src.Count)
	}
	if !cpy.Owners.Equal(src.Owners) {
		t.Error("copy must start with an equal owner set")
	}

	cpy.Owners.Add(User{Username: "bob"})
	if src.Owners.Contains("bob") {
		t.Error("copy's owner set must be independently mutable")
	}
}

func TestItemSetOwners(t *testing.T) {
	item := NewItem(NewArticle("Milk", nil), "1", NewOwnerSet(User{Username: "alice"}, User{Username: "bob"}))

	item.SetOwners(NewOwnerSet(User{Username: "carol"}))

	if item.Owners.Len() != 1 || !item.Owners.Contains("carol") {
		t.Fatalf("owners = %v, want exactly {carol}", item.Owners.Usernames())
	}

	t.Run("nil argument clears the set", func(t *testing.T) {
		item.SetOwners(nil)
		if item.Owners.Len() != 0 {
			t.Errorf("owners = %v, want empty", item.Owners.Usernames())
		}
	})
}

func TestItemSetCreatedAt(t *testing.T) {
	item := NewItem(NewArticle("Milk", nil), "1", nil)

	stamp := time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC)
	item.SetCreatedAt(stamp)
	if !item.CreatedAt.Equal(stamp) {
		t.Fatalf("CreatedAt = %v, want %v", item.CreatedAt, stamp)
	}

	t.Run("zero time substitutes now", func(t *testing.T) {
		item.SetCreatedAt(time.Time{})
		if item.CreatedAt.IsZero() {
			t.Error("CreatedAt must never be unset")
		}
	})
}

func TestItemIs(t *testing.T) {
	a := NewItem(NewArticle("Milk", nil), "1", nil)
	b := NewItem(NewArticle("Bread", nil), "2", nil)

	if a.Is(b) {
		t.Error("distinct identities must not match")
	}
	if a.Is(nil) {
		t.Error("nil must not match")
	}

	b.EntityID = a.EntityID
	if !a.Is(b) {
		t.Error("same identity must match regardless of other fields")
	}
}

func TestItemArticleName(t *testing.T) {
	item := NewItem(NewArticle("Milk", nil), "1", nil)
	if got := item.ArticleName(); got != "Milk" {
		t.Errorf("ArticleName() = %q, want %q", got, "Milk")
	}

	item.Article = nil
	if got := item.ArticleName(); got != "null" {
		t.Errorf("ArticleName() = %q, want %q for absent article", got, "null")
	}
}

func TestOwnerDeltaEmpty(t *testing.T) {
	if !(OwnerDelta{}).Empty() {
		t.Error("zero delta must be empty")
	}
	article := NewArticle("Milk", nil)
	if !(OwnerDelta{Article: article}).Empty() {
		t.Error("delta without added users must be empty")
	}
	delta := OwnerDelta{Article: article, Added: []User{{Username: "alice"}}}
	if delta.Empty() {
		t.Error("delta with added users must not be empty")
	}
}
