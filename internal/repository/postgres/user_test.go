package postgres

import (
	"context"
	"testing"
	"time"

	"rentmarket-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestUserRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &domain.User{Name: "Alice", Email: "alice@test.com", PasswordHash: "hash"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(u.Name, u.Email, u.PasswordHash, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	assert.NoError(t, repo.Create(ctx, u))
	assert.Equal(t, int32(42), u.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateProfile(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewUserRepository(db)
	ctx := context.Background()

	// A fresh signup profile carries no rating yet; the unset *float64 must
	// reach the database as NULL, which the rating column accepts.
	p := &domain.UserProfile{
		UserID:   42,
		Role:     domain.ProfileRoleRenter,
		Language: "en",
		Timezone: "UTC",
	}

	mock.ExpectQuery("INSERT INTO user_profiles").
		WithArgs(int32(42), domain.ProfileRoleRenter, "", "", "", "en", "UTC",
			nil, int32(0), false, nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

	assert.NoError(t, repo.CreateProfile(ctx, p))
	assert.Equal(t, int32(9), p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetProfileByUserID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("UnratedProfile", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery("SELECT (.+) FROM user_profiles WHERE user_id").
			WithArgs(int32(42)).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "user_id", "role", "phone", "bio", "avatar", "language", "timezone",
				"rating", "total_reviews", "is_verified", "verified_at", "created_at", "updated_at",
			}).AddRow(9, 42, "renter", "", "", "", "en", "UTC", nil, 0, false, nil, now, now))

		p, err := repo.GetProfileByUserID(ctx, 42)
		assert.NoError(t, err)
		assert.Nil(t, p.Rating)
		assert.Equal(t, domain.ProfileRoleRenter, p.Role)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM user_profiles WHERE user_id").
			WithArgs(int32(404)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetProfileByUserID(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
