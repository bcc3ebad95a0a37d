// Package postgres implements the shopping repositories on PostgreSQL via
// database/sql with the pgx driver. Mutations run in a single transaction
// together with their lifecycle event publish (Watermill SQL publisher bound
// to the same *sql.Tx).
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/srbhuyan/shoppingList/pkg/database"
	pkgevents "github.com/srbhuyan/shoppingList/pkg/events"
	"github.com/srbhuyan/shoppingList/services/shopping/domain"
	domainevents "github.com/srbhuyan/shoppingList/services/shopping/domain/events"
	"github.com/srbhuyan/shoppingList/services/shopping/domain/models"
	"github.com/srbhuyan/shoppingList/services/shopping/domain/repositories"
)

const pgUniqueViolation = "23505"

// ItemRepository persists the Item aggregate.
type ItemRepository struct {
	db  *database.Database
	bus *pkgevents.EventBus
}

var _ repositories.ItemRepository = (*ItemRepository)(nil)

// NewItemRepository wires an ItemRepository against the shared pool and bus.
func NewItemRepository(db *database.Database, bus *pkgevents.EventBus) *ItemRepository {
	return &ItemRepository{db: db, bus: bus}
}

// Save inserts the item, its owner rows and the article owner delta in one
// transaction, publishing item.created on commit.
func (r *ItemRepository) Save(ctx context.Context, item *models.Item, delta models.OwnerDelta) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if item.Article != nil {
			if err := upsertArticle(ctx, tx, item.Article); err != nil {
				return err
			}
		}
		if err := applyOwnerDelta(ctx, tx, delta); err != nil {
			return err
		}

		var articleID any
		if item.Article != nil {
			articleID = item.Article.EntityID
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO items (entity_id, article_id, count, done, created_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			item.EntityID, articleID, item.Count, item.Done, item.CreatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return fmt.Errorf("%w: item %s", domain.ErrItemAlreadyExists, item.EntityID)
			}
			return fmt.Errorf("insert item: %w", err)
		}

		if err := replaceItemOwners(ctx, tx, item); err != nil {
			return err
		}
		return r.publishTx(ctx, tx, domainevents.TopicItemCreated, item)
	})
}

// Update replaces the item row, its owner rows and the article owner delta in
// one transaction, publishing item.updated on commit.
func (r *ItemRepository) Update(ctx context.Context, item *models.Item, delta models.OwnerDelta) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if item.Article != nil {
			if err := upsertArticle(ctx, tx, item.Article); err != nil {
				return err
			}
		}
		if err := applyOwnerDelta(ctx, tx, delta); err != nil {
			return err
		}

		var articleID any
		if item.Article != nil {
			articleID = item.Article.EntityID
		}
		res, err := tx.ExecContext(ctx,
			`UPDATE items SET article_id = $2, count = $3, done = $4 WHERE entity_id = $1`,
			item.EntityID, articleID, item.Count, item.Done)
		if err != nil {
			return fmt.Errorf("update item: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return fmt.Errorf("%w: item %s", domain.ErrItemNotFound, item.EntityID)
		}

		if err := replaceItemOwners(ctx, tx, item); err != nil {
			return err
		}
		return r.publishTx(ctx, tx, domainevents.TopicItemUpdated, item)
	})
}

// Delete removes the item row, its owner rows and any remaining list
// membership rows, publishing item.deleted on commit. The article and its
// owners stay; articles are shared.
func (r *ItemRepository) Delete(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM shopping_list_items WHERE item_id = $1`, item.EntityID); err != nil {
			return fmt.Errorf("delete list memberships: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM item_owners WHERE item_id = $1`, item.EntityID); err != nil {
			return fmt.Errorf("delete item owners: %w", err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM items WHERE entity_id = $1`, item.EntityID)
		if err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return fmt.Errorf("%w: item %s", domain.ErrItemNotFound, item.EntityID)
		}
		return r.publishTx(ctx, tx, domainevents.TopicItemDeleted, item)
	})
}

// GetByID loads an item with its article and both owner sets.
func (r *ItemRepository) GetByID(ctx context.Context, entityID string) (*models.Item, error) {
	item, err := scanItemRow(r.db.DB().QueryRowContext(ctx,
		`SELECT i.entity_id, i.count, i.done, i.created_at, a.entity_id, a.name
		 FROM items i
		 LEFT JOIN articles a ON a.entity_id = i.article_id
		 WHERE i.entity_id = $1`, entityID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: item %s", domain.ErrItemNotFound, entityID)
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	if err := loadItemRelations(ctx, r.db.DB(), item); err != nil {
		return nil, err
	}
	return item, nil
}

// FindAll returns a page of items ordered by creation time plus the total count.
func (r *ItemRepository) FindAll(ctx context.Context, opts repositories.QueryOpts) ([]*models.Item, int, error) {
	var total int
	if err := r.db.DB().QueryRowContext(ctx, `SELECT count(*) FROM items`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT i.entity_id, i.count, i.done, i.created_at, a.entity_id, a.name
		 FROM items i
		 LEFT JOIN articles a ON a.entity_id = i.article_id
		 ORDER BY i.created_at, i.entity_id
		 LIMIT $1 OFFSET $2`, opts.Limit, opts.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	var items []*models.Item
	for rows.Next() {
		item, err := scanItemRow(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate items: %w", err)
	}

	for _, item := range items {
		if err := loadItemRelations(ctx, r.db.DB(), item); err != nil {
			return nil, 0, err
		}
	}
	return items, total, nil
}

// Exists reports whether the item row is present in the store.
func (r *ItemRepository) Exists(ctx context.Context, entityID string) (bool, error) {
	var exists bool
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM items WHERE entity_id = $1)`, entityID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("item exists: %w", err)
	}
	return exists, nil
}

// publishTx publishes an ItemEvent on the transaction, so the event commits
// or rolls back together with the rows. Trace context is injected the same
// way EventBus.Publish does it.
func (r *ItemRepository) publishTx(ctx context.Context, tx *sql.Tx, topic string, item *models.Item) error {
	pub, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return err
	}

	evt := domainevents.ItemEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.EntityID,
		Count:      item.Count,
		Done:       item.Done,
		Owners:     item.Owners.Usernames(),
		OccurredAt: time.Now().UTC(),
	}
	if item.Article != nil {
		evt.ArticleName = item.Article.Name
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal item event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for k, v := range carrier {
		msg.Metadata.Set(k, v)
	}
	if err := pub.Publish(topic, msg); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

// upsertArticle resolves the article by its unique name: an existing row wins
// and its entity id is written back into the model, otherwise the row is
// inserted with the model's id.
func upsertArticle(ctx context.Context, tx *sql.Tx, article *models.Article) error {
	err := tx.QueryRowContext(ctx,
		`INSERT INTO articles (entity_id, name) VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING entity_id`,
		article.EntityID, article.Name).Scan(&article.EntityID)
	if err != nil {
		return fmt.Errorf("upsert article: %w", err)
	}
	return nil
}

// applyOwnerDelta persists the users a lifecycle hook added to an article's
// owner set. Owner rows are only ever added through this path.
func applyOwnerDelta(ctx context.Context, tx *sql.Tx, delta models.OwnerDelta) error {
	if delta.Empty() {
		return nil
	}
	if err := upsertUsers(ctx, tx, delta.Added); err != nil {
		return err
	}
	for _, u := range delta.Added {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO article_owners (article_id, username) VALUES ($1, $2)
			 ON CONFLICT DO NOTHING`,
			delta.Article.EntityID, u.Username); err != nil {
			return fmt.Errorf("insert article owner: %w", err)
		}
	}
	return nil
}

func replaceItemOwners(ctx context.Context, tx *sql.Tx, item *models.Item) error {
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM item_owners WHERE item_id = $1`, item.EntityID); err != nil {
		return fmt.Errorf("clear item owners: %w", err)
	}
	members := item.Owners.Members()
	if err := upsertUsers(ctx, tx, members); err != nil {
		return err
	}
	for _, u := range members {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO item_owners (item_id, username) VALUES ($1, $2)`,
			item.EntityID, u.Username); err != nil {
			return fmt.Errorf("insert item owner: %w", err)
		}
	}
	return nil
}

func upsertUsers(ctx context.Context, tx *sql.Tx, users []models.User) error {
	for _, u := range users {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO users (username, email) VALUES ($1, $2)
			 ON CONFLICT (username) DO NOTHING`,
			u.Username, u.Email); err != nil {
			return fmt.Errorf("upsert user: %w", err)
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItemRow(row rowScanner) (*models.Item, error) {
	var (
		item      models.Item
		articleID sql.NullString
		name      sql.NullString
	)
	if err := row.Scan(&item.EntityID, &item.Count, &item.Done, &item.CreatedAt, &articleID, &name); err != nil {
		return nil, err
	}
	item.Owners = models.NewOwnerSet()
	if articleID.Valid {
		item.Article = &models.Article{
			EntityID: articleID.String,
			Name:     name.String,
			Owners:   models.NewOwnerSet(),
		}
	}
	return &item, nil
}

// loadItemRelations fills in the item's owner set and, when an article is
// attached, the article's owner set.
func loadItemRelations(ctx context.Context, db *sql.DB, item *models.Item) error {
	if err := loadOwners(ctx, db, item.Owners,
		`SELECT u.username, u.email FROM item_owners o
		 JOIN users u ON u.username = o.username
		 WHERE o.item_id = $1`, item.EntityID); err != nil {
		return fmt.Errorf("load item owners: %w", err)
	}
	if item.Article != nil {
		if err := loadOwners(ctx, db, item.Article.Owners,
			`SELECT u.username, u.email FROM article_owners o
			 JOIN users u ON u.username = o.username
			 WHERE o.article_id = $1`, item.Article.EntityID); err != nil {
			return fmt.Errorf("load article owners: %w", err)
		}
	}
	return nil
}

func loadOwners(ctx context.Context, db *sql.DB, dst models.OwnerSet, query string, id string) error {
	rows, err := db.QueryContext(ctx, query, id)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.Username, &u.Email); err != nil {
			return err
		}
		dst.Add(u)
	}
	return rows.Err()
}
