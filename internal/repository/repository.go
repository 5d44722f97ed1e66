package repository

import (
	"context"
	"time"

	"rentmarket-backend/internal/domain"
)

// ItemFilter narrows ListAvailable. Zero values mean "no filter".
type ItemFilter struct {
	RentalType string // exact match on the type key
	Search     string // case-insensitive substring over title, description, location
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	CreateProfile(ctx context.Context, profile *domain.UserProfile) error
	GetProfileByUserID(ctx context.Context, userID int32) (*domain.UserProfile, error)
	UpdateProfile(ctx context.Context, profile *domain.UserProfile) error
}

type RentalItemRepository interface {
	Create(ctx context.Context, item *domain.RentalItem) error
	GetByID(ctx context.Context, id int32) (*domain.RentalItem, error)
	Update(ctx context.Context, item *domain.RentalItem) error
	// Delete removes the item and all rental requests referencing it within
	// a single transaction.
	Delete(ctx context.Context, id int32) error
	ListAvailable(ctx context.Context, filter ItemFilter, page, pageSize int32) ([]domain.RentalItem, int32, error)
	ListByOwner(ctx context.Context, ownerID int32, page, pageSize int32) ([]domain.RentalItem, int32, error)
}

type RentalRequestRepository interface {
	Create(ctx context.Context, req *domain.RentalRequest) error
	GetByID(ctx context.Context, id int32) (*domain.RentalRequest, error)
	// RespondPending transitions the request out of pending with a
	// compare-and-set update. It reports false when the request was not in
	// pending, so concurrent responders serialize on the store and only the
	// first transition wins.
	RespondPending(ctx context.Context, id int32, status domain.RequestStatus, responseMessage string, respondedAt time.Time) (bool, error)
	ListByRenter(ctx context.Context, renterID int32, page, pageSize int32) ([]domain.RentalRequest, int32, error)
	ListByLister(ctx context.Context, listerID int32, page, pageSize int32) ([]domain.RentalRequest, int32, error)
}

type RentalTypeRepository interface {
	GetByKey(ctx context.Context, key string) (*domain.RentalType, error)
	ListActive(ctx context.Context) ([]domain.RentalType, error)
}
