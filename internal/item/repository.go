package item

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles item data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new item repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new item into the database
func (r *Repository) Create(ctx context.Context, req *CreateItemRequest) (*Item, error) {
	query := `
		INSERT INTO items (name, unit_price, quantity)
		VALUES ($1, $2, $3)
		RETURNING id, name, unit_price, quantity, created_at
	`

	item := &Item{}
	err := r.db.QueryRowContext(ctx, query, req.Name, req.UnitPrice, req.Quantity).Scan(
		&item.ID,
		&item.Name,
		&item.UnitPrice,
		&item.Quantity,
		&item.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return item, nil
}

// GetByID retrieves an item by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Item, error) {
	query := `
		SELECT id, name, unit_price, quantity, created_at
		FROM items
		WHERE id = $1
	`

	item := &Item{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID,
		&item.Name,
		&item.UnitPrice,
		&item.Quantity,
		&item.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return item, nil
}

// List retrieves every item on the bill in ascending id order
func (r *Repository) List(ctx context.Context) ([]*Item, error) {
	query := `
		SELECT id, name, unit_price, quantity, created_at
		FROM items
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		item := &Item{}
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.UnitPrice,
			&item.Quantity,
			&item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// Update modifies an existing item
func (r *Repository) Update(ctx context.Context, id int64, req *UpdateItemRequest) (*Item, error) {
	query := `
		UPDATE items
		SET name = COALESCE($2, name),
		    unit_price = COALESCE($3, unit_price),
		    quantity = COALESCE($4, quantity)
		WHERE id = $1
		RETURNING id, name, unit_price, quantity, created_at
	`

	item := &Item{}
	err := r.db.QueryRowContext(ctx, query, id, req.Name, req.UnitPrice, req.Quantity).Scan(
		&item.ID,
		&item.Name,
		&item.UnitPrice,
		&item.Quantity,
		&item.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	return item, nil
}

// Delete removes an item; its shares go with it via ON DELETE CASCADE
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM items WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}
