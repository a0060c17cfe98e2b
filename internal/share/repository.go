package share

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// foreignKeyViolation is the postgres error code raised when a share
// references a person or item that does not exist.
const foreignKeyViolation = "23503"

// Repository handles share data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new share repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Upsert inserts or replaces the share for a (person, item) pair
func (r *Repository) Upsert(ctx context.Context, personID, itemID int64, portions float64) (*Share, error) {
	query := `
		INSERT INTO shares (person_id, item_id, portions)
		VALUES ($1, $2, $3)
		ON CONFLICT (person_id, item_id) DO UPDATE SET portions = EXCLUDED.portions
		RETURNING person_id, item_id, portions
	`

	share := &Share{}
	err := r.db.QueryRowContext(ctx, query, personID, itemID, portions).Scan(
		&share.PersonID,
		&share.ItemID,
		&share.Portions,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return nil, ErrUnknownReference
		}
		return nil, fmt.Errorf("failed to upsert share: %w", err)
	}

	return share, nil
}

// Delete removes the share for a (person, item) pair if one exists
func (r *Repository) Delete(ctx context.Context, personID, itemID int64) error {
	query := `DELETE FROM shares WHERE person_id = $1 AND item_id = $2`

	if _, err := r.db.ExecContext(ctx, query, personID, itemID); err != nil {
		return fmt.Errorf("failed to delete share: %w", err)
	}

	return nil
}

// List retrieves every share with person and item names joined in,
// ordered for stable output
func (r *Repository) List(ctx context.Context) ([]*Share, error) {
	query := `
		SELECT s.person_id, p.name, s.item_id, i.name, s.portions
		FROM shares s
		JOIN people p ON p.id = s.person_id
		JOIN items i ON i.id = s.item_id
		ORDER BY s.item_id, s.person_id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shares: %w", err)
	}
	defer rows.Close()

	var shares []*Share
	for rows.Next() {
		share := &Share{}
		if err := rows.Scan(
			&share.PersonID,
			&share.PersonName,
			&share.ItemID,
			&share.ItemName,
			&share.Portions,
		); err != nil {
			return nil, fmt.Errorf("failed to scan share: %w", err)
		}
		shares = append(shares, share)
	}

	return shares, rows.Err()
}
