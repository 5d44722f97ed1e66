package service

import (
	"context"
	"time"

	"rentmarket-backend/internal/domain"
	"rentmarket-backend/internal/repository"
	"rentmarket-backend/internal/security"

	"github.com/stretchr/testify/mock"
)

type MockItemRepo struct {
	mock.Mock
}

func (m *MockItemRepo) Create(ctx context.Context, it *domain.RentalItem) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}

func (m *MockItemRepo) GetByID(ctx context.Context, id int32) (*domain.RentalItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalItem), args.Error(1)
}

func (m *MockItemRepo) Update(ctx context.Context, it *domain.RentalItem) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}

func (m *MockItemRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockItemRepo) ListAvailable(ctx context.Context, filter repository.ItemFilter, page, pageSize int32) ([]domain.RentalItem, int32, error) {
	args := m.Called(ctx, filter, page, pageSize)
	var items []domain.RentalItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.RentalItem)
	}
	return items, args.Get(1).(int32), args.Error(2)
}

func (m *MockItemRepo) ListByOwner(ctx context.Context, ownerID int32, page, pageSize int32) ([]domain.RentalItem, int32, error) {
	args := m.Called(ctx, ownerID, page, pageSize)
	var items []domain.RentalItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.RentalItem)
	}
	return items, args.Get(1).(int32), args.Error(2)
}

type MockRequestRepo struct {
	mock.Mock
}

func (m *MockRequestRepo) Create(ctx context.Context, req *domain.RentalRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockRequestRepo) GetByID(ctx context.Context, id int32) (*domain.RentalRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRequest), args.Error(1)
}

func (m *MockRequestRepo) RespondPending(ctx context.Context, id int32, status domain.RequestStatus, responseMessage string, respondedAt time.Time) (bool, error) {
	args := m.Called(ctx, id, status, responseMessage, respondedAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockRequestRepo) ListByRenter(ctx context.Context, renterID int32, page, pageSize int32) ([]domain.RentalRequest, int32, error) {
	args := m.Called(ctx, renterID, page, pageSize)
	var reqs []domain.RentalRequest
	if args.Get(0) != nil {
		reqs = args.Get(0).([]domain.RentalRequest)
	}
	return reqs, args.Get(1).(int32), args.Error(2)
}

func (m *MockRequestRepo) ListByLister(ctx context.Context, listerID int32, page, pageSize int32) ([]domain.RentalRequest, int32, error) {
	args := m.Called(ctx, listerID, page, pageSize)
	var reqs []domain.RentalRequest
	if args.Get(0) != nil {
		reqs = args.Get(0).([]domain.RentalRequest)
	}
	return reqs, args.Get(1).(int32), args.Error(2)
}

type MockTypeRepo struct {
	mock.Mock
}

func (m *MockTypeRepo) GetByKey(ctx context.Context, key string) (*domain.RentalType, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalType), args.Error(1)
}

func (m *MockTypeRepo) ListActive(ctx context.Context) ([]domain.RentalType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalType), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) CreateProfile(ctx context.Context, p *domain.UserProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockUserRepo) GetProfileByUserID(ctx context.Context, userID int32) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockUserRepo) UpdateProfile(ctx context.Context, p *domain.UserProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockTokenManager struct {
	mock.Mock
}

var _ security.TokenManager = (*MockTokenManager)(nil)

func (m *MockTokenManager) GenerateAccessToken(userID int32, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}

func (m *MockTokenManager) GenerateRefreshToken(userID int32, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}

func (m *MockTokenManager) ValidateToken(tokenString string) (*security.UserClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}
