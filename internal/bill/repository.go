package bill

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles persistence of the bill-wide settings
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new bill repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// GetServiceChargePercent reads the single service-charge setting row
func (r *Repository) GetServiceChargePercent(ctx context.Context) (float64, error) {
	query := `SELECT service_charge_percent FROM bill_settings WHERE id = 1`

	var percent float64
	if err := r.db.QueryRowContext(ctx, query).Scan(&percent); err != nil {
		return 0, fmt.Errorf("failed to get service charge: %w", err)
	}

	return percent, nil
}

// SetServiceChargePercent replaces the service-charge setting
func (r *Repository) SetServiceChargePercent(ctx context.Context, percent float64) error {
	query := `UPDATE bill_settings SET service_charge_percent = $1 WHERE id = 1`

	if _, err := r.db.ExecContext(ctx, query, percent); err != nil {
		return fmt.Errorf("failed to set service charge: %w", err)
	}

	return nil
}
