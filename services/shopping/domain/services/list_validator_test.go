package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/srbhuyan/shoppingList/services/shopping/domain"
	"github.com/srbhuyan/shoppingList/services/shopping/domain/models"
)

func TestListValidatorValidate(t *testing.T) {
	valid := models.NewShoppingList("Groceries", nil)
	valid.AddItem(models.NewItem(models.NewArticle("Milk", nil), "1", nil))

	broken := models.NewShoppingList("Groceries", nil)
	broken.Items = append(broken.Items, &models.Item{})

	tests := []struct {
		name    string
		list    *models.ShoppingList
		wantErr bool
	}{
		{"valid list", valid, false},
		{"empty list is valid", models.NewShoppingList("Empty", nil), false},
		{"nil list", nil, true},
		{"empty name", models.NewShoppingList("", nil), true},
		{"overlong name", models.NewShoppingList(strings.Repeat("a", 256), nil), true},
		{"item without identity", broken, true},
	}

	v := NewListValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.list)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr = %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrListInvalid) {
				t.Errorf("error %v does not wrap ErrListInvalid", err)
			}
		})
	}
}
