package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"rentmarket-backend/internal/domain"
	"rentmarket-backend/internal/repository"
)

type rentalTypeRepository struct {
	db *sql.DB
}

func NewRentalTypeRepository(db *sql.DB) repository.RentalTypeRepository {
	return &rentalTypeRepository{db: db}
}

const typeColumns = `id, key, name, description, COALESCE(icon, ''), is_active, sort_order, created_at, updated_at`

func (r *rentalTypeRepository) GetByKey(ctx context.Context, key string) (*domain.RentalType, error) {
	query := `SELECT ` + typeColumns + ` FROM rental_types WHERE key = $1`
	rt, err := scanType(r.db.QueryRowContext(ctx, query, key))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return rt, err
}

func (r *rentalTypeRepository) ListActive(ctx context.Context) ([]domain.RentalType, error) {
	query := `SELECT ` + typeColumns + ` FROM rental_types WHERE is_active = TRUE ORDER BY sort_order, key`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []domain.RentalType
	for rows.Next() {
		rt, err := scanType(rows)
		if err != nil {
			return nil, err
		}
		types = append(types, *rt)
	}
	return types, rows.Err()
}

func scanType(row rowScanner) (*domain.RentalType, error) {
	rt := &domain.RentalType{}
	var name, desc []byte
	err := row.Scan(&rt.ID, &rt.Key, &name, &desc, &rt.Icon, &rt.IsActive, &rt.SortOrder, &rt.CreatedAt, &rt.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(name) > 0 {
		if err := json.Unmarshal(name, &rt.Name); err != nil {
			return nil, fmt.Errorf("decode name: %w", err)
		}
	}
	if len(desc) > 0 {
		if err := json.Unmarshal(desc, &rt.Description); err != nil {
			return nil, fmt.Errorf("decode description: %w", err)
		}
	}
	return rt, nil
}
