package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentmarket-backend/internal/domain"
	"rentmarket-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	now := time.Now()
	query := `INSERT INTO users (name, email, password_hash, created_at, updated_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, u.Name, u.Email, u.PasswordHash, now, now).Scan(&u.ID)
	if err != nil {
		return err
	}
	u.CreatedAt = now
	u.UpdatedAt = now
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, name, email, password_hash, created_at, updated_at FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, name, email, password_hash, created_at, updated_at FROM users WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) CreateProfile(ctx context.Context, p *domain.UserProfile) error {
	now := time.Now()
	query := `INSERT INTO user_profiles (user_id, role, phone, bio, avatar, language, timezone, rating, total_reviews, is_verified, verified_at, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		p.UserID, p.Role, p.Phone, p.Bio, p.Avatar, p.Language, p.Timezone,
		p.Rating, p.TotalReviews, p.IsVerified, p.VerifiedAt, now, now,
	).Scan(&p.ID)
	if err != nil {
		return err
	}
	p.CreatedAt = now
	p.UpdatedAt = now
	return nil
}

func (r *userRepository) GetProfileByUserID(ctx context.Context, userID int32) (*domain.UserProfile, error) {
	p := &domain.UserProfile{}
	query := `SELECT id, user_id, role, COALESCE(phone, ''), COALESCE(bio, ''), COALESCE(avatar, ''), language, timezone, rating, total_reviews, is_verified, verified_at, created_at, updated_at
	          FROM user_profiles WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&p.ID, &p.UserID, &p.Role,
		&p.Phone, &p.Bio, &p.Avatar, &p.Language, &p.Timezone, &p.Rating,
		&p.TotalReviews, &p.IsVerified, &p.VerifiedAt, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, p *domain.UserProfile) error {
	query := `UPDATE user_profiles SET role=$1, phone=$2, bio=$3, avatar=$4, language=$5, timezone=$6, updated_at=$7 WHERE user_id=$8`
	res, err := r.db.ExecContext(ctx, query, p.Role, p.Phone, p.Bio, p.Avatar, p.Language, p.Timezone, time.Now(), p.UserID)
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
