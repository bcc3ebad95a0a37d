package models

import "testing"

func TestShoppingListAddItem(t *testing.T) {
	list := NewShoppingList("Groceries", nil)
	item := NewItem(NewArticle("Milk", nil), "1", nil)

	list.AddItem(item)
	list.AddItem(item)
	if len(list.Items) != 1 {
		t.Errorf("len(Items) = %d after duplicate add, want 1", len(list.Items))
	}

	list.AddItem(nil)
	if len(list.Items) != 1 {
		t.Error("nil items must be ignored")
	}

	t.Run("same identity different instance is a duplicate", func(t *testing.T) {
		other := NewItem(NewArticle("Milk", nil), "2", nil)
		other.EntityID = item.EntityID
		list.AddItem(other)
		if len(list.Items) != 1 {
			t.Error("membership is by identity, not instance")
		}
	})
}

func TestShoppingListRemoveItem(t *testing.T) {
	list := NewShoppingList("Groceries", nil)
	milk := NewItem(NewArticle("Milk", nil), "1", nil)
	bread := NewItem(NewArticle("Bread", nil), "1", nil)
	list.AddItem(milk)
	list.AddItem(bread)

	if !list.RemoveItem(milk) {
		t.Fatal("expected removal of a referenced item")
	}
	if list.Contains(milk) {
		t.Error("removed item still referenced")
	}
	if !list.Contains(bread) {
		t.Error("unrelated item was removed")
	}

	if list.RemoveItem(milk) {
		t.Error("removing an absent item must report false")
	}
	if list.RemoveItem(nil) {
		t.Error("removing nil must report false")
	}
}
