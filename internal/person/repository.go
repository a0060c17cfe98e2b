package person

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles person data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new person repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new person into the database
func (r *Repository) Create(ctx context.Context, req *CreatePersonRequest) (*Person, error) {
	query := `
		INSERT INTO people (name, amount_paid)
		VALUES ($1, $2)
		RETURNING id, name, amount_paid, created_at
	`

	person := &Person{}
	err := r.db.QueryRowContext(ctx, query, req.Name, req.AmountPaid).Scan(
		&person.ID,
		&person.Name,
		&person.AmountPaid,
		&person.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}

	return person, nil
}

// GetByID retrieves a person by their ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Person, error) {
	query := `
		SELECT id, name, amount_paid, created_at
		FROM people
		WHERE id = $1
	`

	person := &Person{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&person.ID,
		&person.Name,
		&person.AmountPaid,
		&person.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	return person, nil
}

// List retrieves every person on the bill in ascending id order.
// The order matters: the allocator assigns the rounding remainder to the
// last person it sees, so listing must be stable.
func (r *Repository) List(ctx context.Context) ([]*Person, error) {
	query := `
		SELECT id, name, amount_paid, created_at
		FROM people
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	defer rows.Close()

	var people []*Person
	for rows.Next() {
		person := &Person{}
		if err := rows.Scan(
			&person.ID,
			&person.Name,
			&person.AmountPaid,
			&person.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		people = append(people, person)
	}

	return people, rows.Err()
}

// Update modifies an existing person
func (r *Repository) Update(ctx context.Context, id int64, req *UpdatePersonRequest) (*Person, error) {
	query := `
		UPDATE people
		SET name = COALESCE($2, name),
		    amount_paid = COALESCE($3, amount_paid)
		WHERE id = $1
		RETURNING id, name, amount_paid, created_at
	`

	person := &Person{}
	err := r.db.QueryRowContext(ctx, query, id, req.Name, req.AmountPaid).Scan(
		&person.ID,
		&person.Name,
		&person.AmountPaid,
		&person.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update person: %w", err)
	}

	return person, nil
}

// Delete removes a person; their shares go with them via ON DELETE CASCADE
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM people WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrPersonNotFound
	}

	return nil
}
