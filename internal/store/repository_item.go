package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dsemenov/go-shield/internal/logger"
	"github.com/dsemenov/go-shield/models"
)

// itemRepository is the PostgreSQL-backed implementation of [ItemRepository].
type itemRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

// CreateItem persists a new item and returns it with the server-assigned ID.
func (r *itemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createItem, item.Name, item.OwnerID, item.Description)

	var created models.Item
	if err := row.Scan(&created.ID, &created.Name, &created.OwnerID, &created.Description); err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error: creating item")
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindItemByID retrieves an item by its internal ID.
func (r *itemRepository) FindItemByID(ctx context.Context, id int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	var found models.Item
	row := r.db.QueryRowContext(ctx, findItemByID, id)

	if err := row.Scan(&found.ID, &found.Name, &found.OwnerID, &found.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}

		log.Err(err).Str("func", "*itemRepository.FindItemByID").Msg("error: finding item")
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ListItems returns a page of items matching the filter, ordered by ID.
func (r *itemRepository) ListItems(ctx context.Context, filter ItemFilter) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListItemsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error: building listing query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*itemRepository.ListItems").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: listing items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		var item models.Item
		if err = rows.Scan(&item.ID, &item.Name, &item.OwnerID, &item.Description); err != nil {
			log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error: scanning item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return items, nil
}

// UpdateItem applies a partial update and returns the updated item.
//
// Error handling:
//   - empty update → [ErrEmptyItemUpdate].
//   - no matching row → [ErrItemNotFound].
func (r *itemRepository) UpdateItem(ctx context.Context, id int64, update models.ItemUpdate) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateItemQuery(id, update)
	if err != nil {
		return models.Item{}, err
	}

	var updated models.Item
	row := r.db.QueryRowContext(ctx, query, args...)

	if err = row.Scan(&updated.ID, &updated.Name, &updated.OwnerID, &updated.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}

		log.Err(err).Str("func", "*itemRepository.UpdateItem").Msg("error: updating item")
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteItem removes an item by its internal ID.
func (r *itemRepository) DeleteItem(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteItem, id)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItem").Msg("error: deleting item")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}
