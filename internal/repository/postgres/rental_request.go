package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentmarket-backend/internal/domain"
	"rentmarket-backend/internal/repository"
)

type rentalRequestRepository struct {
	db *sql.DB
}

func NewRentalRequestRepository(db *sql.DB) repository.RentalRequestRepository {
	return &rentalRequestRepository{db: db}
}

const requestColumns = `id, rental_item_id, renter_id, lister_id, start_date, end_date, total_days, price_per_day_cents, total_amount_cents, currency, status, COALESCE(message, ''), COALESCE(response_message, ''), responded_at, created_at, updated_at`

func (r *rentalRequestRepository) Create(ctx context.Context, req *domain.RentalRequest) error {
	now := time.Now()
	query := `INSERT INTO rental_requests (rental_item_id, renter_id, lister_id, start_date, end_date, total_days, price_per_day_cents, total_amount_cents, currency, status, message, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		req.RentalItemID, req.RenterID, req.ListerID, req.StartDate, req.EndDate,
		req.TotalDays, req.PricePerDayCents, req.TotalAmountCents, req.Currency,
		req.Status, req.Message, now, now,
	).Scan(&req.ID)
	if err != nil {
		return err
	}
	req.CreatedAt = now
	req.UpdatedAt = now
	return nil
}

func (r *rentalRequestRepository) GetByID(ctx context.Context, id int32) (*domain.RentalRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM rental_requests WHERE id = $1`
	req, err := scanRequest(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return req, err
}

// RespondPending is a compare-and-set transition: the WHERE clause only
// matches while the request is still pending, so of two concurrent responders
// exactly one observes a row update.
func (r *rentalRequestRepository) RespondPending(ctx context.Context, id int32, status domain.RequestStatus, responseMessage string, respondedAt time.Time) (bool, error) {
	query := `UPDATE rental_requests SET status=$1, response_message=$2, responded_at=$3, updated_at=$4 WHERE id=$5 AND status='pending'`
	res, err := r.db.ExecContext(ctx, query, status, responseMessage, respondedAt, time.Now(), id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *rentalRequestRepository) ListByRenter(ctx context.Context, renterID int32, page, pageSize int32) ([]domain.RentalRequest, int32, error) {
	return r.list(ctx, "renter_id", renterID, page, pageSize)
}

func (r *rentalRequestRepository) ListByLister(ctx context.Context, listerID int32, page, pageSize int32) ([]domain.RentalRequest, int32, error) {
	return r.list(ctx, "lister_id", listerID, page, pageSize)
}

func (r *rentalRequestRepository) list(ctx context.Context, column string, userID int32, page, pageSize int32) ([]domain.RentalRequest, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	countQuery := `SELECT count(*) FROM rental_requests WHERE ` + column + ` = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, userID).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + requestColumns + ` FROM rental_requests WHERE ` + column + ` = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, userID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []domain.RentalRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, *req)
	}
	return requests, count, rows.Err()
}

func scanRequest(row rowScanner) (*domain.RentalRequest, error) {
	req := &domain.RentalRequest{}
	var start, end time.Time
	err := row.Scan(&req.ID, &req.RentalItemID, &req.RenterID, &req.ListerID,
		&start, &end, &req.TotalDays, &req.PricePerDayCents, &req.TotalAmountCents,
		&req.Currency, &req.Status, &req.Message, &req.ResponseMessage,
		&req.RespondedAt, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return nil, err
	}
	req.StartDate = start.Format("2006-01-02")
	req.EndDate = end.Format("2006-01-02")
	return req, nil
}
