package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"rentmarket-backend/internal/domain"
	"rentmarket-backend/internal/repository"
)

type rentalItemRepository struct {
	db *sql.DB
}

func NewRentalItemRepository(db *sql.DB) repository.RentalItemRepository {
	return &rentalItemRepository{db: db}
}

const itemColumns = `id, user_id, title, description, rental_type, price_per_day_cents, currency, location, latitude, longitude, is_available, minimum_rental_days, maximum_rental_days, specifications, COALESCE(terms_and_conditions, ''), status, created_at, updated_at`

func (r *rentalItemRepository) Create(ctx context.Context, it *domain.RentalItem) error {
	specs, err := marshalSpecifications(it.Specifications)
	if err != nil {
		return err
	}
	now := time.Now()
	query := `INSERT INTO rental_items (user_id, title, description, rental_type, price_per_day_cents, currency, location, latitude, longitude, is_available, minimum_rental_days, maximum_rental_days, specifications, terms_and_conditions, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17) RETURNING id`
	err = r.db.QueryRowContext(ctx, query,
		it.OwnerID, it.Title, it.Description, it.RentalType, it.PricePerDayCents, it.Currency,
		it.Location, it.Latitude, it.Longitude, it.IsAvailable, it.MinimumRentalDays,
		it.MaximumRentalDays, specs, it.TermsAndConditions, it.Status, now, now,
	).Scan(&it.ID)
	if err != nil {
		return err
	}
	it.CreatedAt = now
	it.UpdatedAt = now
	return nil
}

func (r *rentalItemRepository) GetByID(ctx context.Context, id int32) (*domain.RentalItem, error) {
	query := `SELECT ` + itemColumns + ` FROM rental_items WHERE id = $1`
	it, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return it, err
}

func (r *rentalItemRepository) Update(ctx context.Context, it *domain.RentalItem) error {
	specs, err := marshalSpecifications(it.Specifications)
	if err != nil {
		return err
	}
	query := `UPDATE rental_items SET title=$1, description=$2, rental_type=$3, price_per_day_cents=$4, currency=$5, location=$6, latitude=$7, longitude=$8, is_available=$9, minimum_rental_days=$10, maximum_rental_days=$11, specifications=$12, terms_and_conditions=$13, status=$14, updated_at=$15 WHERE id=$16`
	res, err := r.db.ExecContext(ctx, query,
		it.Title, it.Description, it.RentalType, it.PricePerDayCents, it.Currency,
		it.Location, it.Latitude, it.Longitude, it.IsAvailable, it.MinimumRentalDays,
		it.MaximumRentalDays, specs, it.TermsAndConditions, it.Status, time.Now(), it.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the item and cascades its rental requests in one
// transaction, so a request never outlives its item.
func (r *rentalItemRepository) Delete(ctx context.Context, id int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM rental_requests WHERE rental_item_id = $1`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM rental_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit()
}

func (r *rentalItemRepository) ListAvailable(ctx context.Context, filter repository.ItemFilter, page, pageSize int32) ([]domain.RentalItem, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + itemColumns + ` FROM rental_items WHERE is_available = TRUE AND status = 'active'`

	args := []interface{}{}
	argIdx := 1
	if filter.RentalType != "" {
		query += fmt.Sprintf(" AND rental_type = $%d", argIdx)
		args = append(args, filter.RentalType)
		argIdx++
	}
	if filter.Search != "" {
		query += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d OR location ILIKE $%d)", argIdx, argIdx, argIdx)
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") AS sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []domain.RentalItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *it)
	}
	return items, count, rows.Err()
}

func (r *rentalItemRepository) ListByOwner(ctx context.Context, ownerID int32, page, pageSize int32) ([]domain.RentalItem, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rental_items WHERE user_id = $1`, ownerID).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + itemColumns + ` FROM rental_items WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, ownerID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []domain.RentalItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *it)
	}
	return items, count, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (*domain.RentalItem, error) {
	it := &domain.RentalItem{}
	var specs []byte
	err := row.Scan(&it.ID, &it.OwnerID, &it.Title, &it.Description, &it.RentalType,
		&it.PricePerDayCents, &it.Currency, &it.Location, &it.Latitude, &it.Longitude,
		&it.IsAvailable, &it.MinimumRentalDays, &it.MaximumRentalDays, &specs,
		&it.TermsAndConditions, &it.Status, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(specs) > 0 {
		if err := json.Unmarshal(specs, &it.Specifications); err != nil {
			return nil, fmt.Errorf("decode specifications: %w", err)
		}
	}
	return it, nil
}

func marshalSpecifications(specs map[string]string) (interface{}, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(specs)
	if err != nil {
		return nil, fmt.Errorf("encode specifications: %w", err)
	}
	return data, nil
}
