package models

import "testing"

func TestArticleMergeOwners(t *testing.T) {
	article := NewArticle("Milk", NewOwnerSet(User{Username: "alice"}))

	added := article.MergeOwners(NewOwnerSet(User{Username: "alice"}, User{Username: "bob"}))

	if len(added) != 1 || added[0].Username != "bob" {
		t.Fatalf("added = %v, want only bob", added)
	}
	if !article.Owners.Contains("alice") || !article.Owners.Contains("bob") {
		t.Error("merge must keep existing owners and add new ones")
	}

	t.Run("merge never removes owners", func(t *testing.T) {
		article.MergeOwners(NewOwnerSet())
		if article.Owners.Len() != 2 {
			t.Errorf("owners = %v, want unchanged", article.Owners.Usernames())
		}
	})

	t.Run("nil owner set is initialized lazily", func(t *testing.T) {
		bare := &Article{Name: "Bread"}
		added := bare.MergeOwners(NewOwnerSet(User{Username: "carol"}))
		if len(added) != 1 || !bare.Owners.Contains("carol") {
			t.Errorf("merge into nil set failed: added=%v owners=%v", added, bare.Owners.Usernames())
		}
	})
}
