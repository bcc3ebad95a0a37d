package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/srbhuyan/shoppingList/pkg/database"
	"github.com/srbhuyan/shoppingList/services/shopping/domain/models"
	"github.com/srbhuyan/shoppingList/services/shopping/domain/repositories"
)

// ShoppingListRepository persists lists and the list→item membership relation.
type ShoppingListRepository struct {
	db *database.Database
}

var _ repositories.ShoppingListRepository = (*ShoppingListRepository)(nil)

// NewShoppingListRepository wires a ShoppingListRepository against the shared pool.
func NewShoppingListRepository(db *database.Database) *ShoppingListRepository {
	return &ShoppingListRepository{db: db}
}

// FindListsContainingItem returns every list referencing the item, each loaded
// with its complete membership and owner set.
func (r *ShoppingListRepository) FindListsContainingItem(ctx context.Context, item *models.Item) ([]*models.ShoppingList, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT l.entity_id, l.name
		 FROM shopping_lists l
		 JOIN shopping_list_items li ON li.list_id = l.entity_id
		 WHERE li.item_id = $1
		 ORDER BY l.entity_id`, item.EntityID)
	if err != nil {
		return nil, fmt.Errorf("query containing lists: %w", err)
	}
	defer rows.Close()

	var lists []*models.ShoppingList
	for rows.Next() {
		list := &models.ShoppingList{Owners: models.NewOwnerSet()}
		if err := rows.Scan(&list.EntityID, &list.Name); err != nil {
			return nil, fmt.Errorf("scan list: %w", err)
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lists: %w", err)
	}

	for _, list := range lists {
		if err := r.loadList(ctx, list); err != nil {
			return nil, err
		}
	}
	return lists, nil
}

// Update persists the list row and replaces its membership rows with
// list.Items, keeping item order.
func (r *ShoppingListRepository) Update(ctx context.Context, list *models.ShoppingList) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`UPDATE shopping_lists SET name = $2 WHERE entity_id = $1`,
			list.EntityID, list.Name); err != nil {
			return fmt.Errorf("update list: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM shopping_list_items WHERE list_id = $1`, list.EntityID); err != nil {
			return fmt.Errorf("clear list items: %w", err)
		}
		for pos, it := range list.Items {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO shopping_list_items (list_id, item_id, position) VALUES ($1, $2, $3)`,
				list.EntityID, it.EntityID, pos); err != nil {
				return fmt.Errorf("insert list item: %w", err)
			}
		}
		return nil
	})
}

func (r *ShoppingListRepository) loadList(ctx context.Context, list *models.ShoppingList) error {
	if err := loadOwners(ctx, r.db.DB(), list.Owners,
		`SELECT u.username, u.email FROM shopping_list_owners o
		 JOIN users u ON u.username = o.username
		 WHERE o.list_id = $1`, list.EntityID); err != nil {
		return fmt.Errorf("load list owners: %w", err)
	}

	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT i.entity_id, i.count, i.done, i.created_at, a.entity_id, a.name
		 FROM shopping_list_items li
		 JOIN items i ON i.entity_id = li.item_id
		 LEFT JOIN articles a ON a.entity_id = i.article_id
		 WHERE li.list_id = $1
		 ORDER BY li.position`, list.EntityID)
	if err != nil {
		return fmt.Errorf("query list items: %w", err)
	}
	defer rows.Close()

	list.Items = nil
	for rows.Next() {
		item, err := scanItemRow(rows)
		if err != nil {
			return fmt.Errorf("scan list item: %w", err)
		}
		list.Items = append(list.Items, item)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate list items: %w", err)
	}

	for _, item := range list.Items {
		if err := loadItemRelations(ctx, r.db.DB(), item); err != nil {
			return err
		}
	}
	return nil
}
