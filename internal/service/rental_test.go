package service

import (
	"context"
	"testing"

	"rentmarket-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func requestableItem() *domain.RentalItem {
	return &domain.RentalItem{
		ID:                3,
		OwnerID:           7,
		PricePerDayCents:  4500,
		Currency:          "USD",
		IsAvailable:       true,
		MinimumRentalDays: 1,
		Status:            domain.ItemStatusActive,
	}
}

func TestRentalRequestService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("SnapshotsPriceAndComputesTotal", func(t *testing.T) {
		requestRepo := new(MockRequestRepo)
		itemRepo := new(MockItemRepo)
		svc := NewRentalRequestService(requestRepo, itemRepo)

		itemRepo.On("GetByID", ctx, int32(3)).Return(requestableItem(), nil).Once()
		requestRepo.On("Create", ctx, mock.MatchedBy(func(req *domain.RentalRequest) bool {
			return req.RenterID == 20 &&
				req.ListerID == 7 &&
				req.TotalDays == 4 &&
				req.PricePerDayCents == 4500 &&
				req.TotalAmountCents == 18000 &&
				req.Currency == "USD" &&
				req.Status == domain.RequestStatusPending
		})).Return(nil).Once()

		req, err := svc.Submit(ctx, 20, 3, "2100-01-01", "2100-01-04", "hello")
		assert.NoError(t, err)
		assert.Equal(t, int32(4), req.TotalDays)
		assert.Equal(t, int64(18000), req.TotalAmountCents)
		requestRepo.AssertExpectations(t)
	})

	t.Run("ItemNotFound", func(t *testing.T) {
		requestRepo := new(MockRequestRepo)
		itemRepo := new(MockItemRepo)
		svc := NewRentalRequestService(requestRepo, itemRepo)

		itemRepo.On("GetByID", ctx, int32(404)).Return(nil, domain.ErrNotFound).Once()

		_, err := svc.Submit(ctx, 20, 404, "2100-01-01", "2100-01-04", "")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("MalformedDates", func(t *testing.T) {
		requestRepo := new(MockRequestRepo)
		itemRepo := new(MockItemRepo)
		svc := NewRentalRequestService(requestRepo, itemRepo)

		itemRepo.On("GetByID", ctx, int32(3)).Return(requestableItem(), nil).Once()

		_, err := svc.Submit(ctx, 20, 3, "01/01/2100", "2100-02-30", "")
		ve, ok := domain.AsValidationError(err)
		assert.True(t, ok)
		assert.Contains(t, ve.Fields, "start_date")
		assert.Contains(t, ve.Fields, "end_date")
		requestRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("EndNotAfterStart", func(t *testing.T) {
		requestRepo := new(MockRequestRepo)
		itemRepo := new(MockItemRepo)
		svc := NewRentalRequestService(requestRepo, itemRepo)

		itemRepo.On("GetByID", ctx, int32(3)).Return(requestableItem(), nil).Once()

		_, err := svc.Submit(ctx, 20, 3, "2100-01-04", "2100-01-04", "")
		ve, ok := domain.AsValidationError(err)
		assert.True(t, ok)
		assert.Contains(t, ve.Fields, "end_date")
	})

	t.Run("StartInPast", func(t *testing.T) {
		requestRepo := new(MockRequestRepo)
		itemRepo := new(MockItemRepo)
		svc := NewRentalRequestService(requestRepo, itemRepo)

		itemRepo.On("GetByID", ctx, int32(3)).Return(requestableItem(), nil).Once()

		_, err := svc.Submit(ctx, 20, 3, "2020-01-01", "2020-01-04", "")
		ve, ok := domain.AsValidationError(err)
		assert.True(t, ok)
		assert.Contains(t, ve.Fields, "start_date")
	})

	t.Run("BelowMinimumDays", func(t *testing.T) {
		requestRepo := new(MockRequestRepo)
		itemRepo := new(MockItemRepo)
		svc := NewRentalRequestService(requestRepo, itemRepo)

		item := requestableItem()
		item.MinimumRentalDays = 7
		itemRepo.On("GetByID", ctx, int32(3)).Return(item, nil).Once()

		_, err := svc.Submit(ctx, 20, 3, "2100-01-01", "2100-01-03", "")
		ve, ok := domain.AsValidationError(err)
		assert.True(t, ok)
		assert.Contains(t, ve.Fields, "end_date")
	})

	t.Run("AboveMaximumDays", func(t *testing.T) {
		requestRepo := new(MockRequestRepo)
		itemRepo := new(MockItemRepo)
		svc := NewRentalRequestService(requestRepo, itemRepo)

		item := requestableItem()
		max := int32(2)
		item.MaximumRentalDays = &max
		itemRepo.On("GetByID", ctx, int32(3)).Return(item, nil).Once()

		_, err := svc.Submit(ctx, 20, 3, "2100-01-01", "2100-01-05", "")
		ve, ok := domain.AsValidationError(err)
		assert.True(t, ok)
		assert.Contains(t, ve.Fields, "end_date")
	})
}

func TestRentalRequestService_Respond(t *testing.T) {
	ctx := context.Background()

	pendingRequest := func() *domain.RentalRequest {
		return &domain.RentalRequest{
			ID:       5,
			RenterID: 20,
			ListerID: 7,
			Status:   domain.RequestStatusPending,
		}
	}

	t.Run("Approve", func(t *testing.T) {
		requestRepo := new(MockRequestRepo)
		itemRepo := new(MockItemRepo)
		svc := NewRentalRequestService(requestRepo, itemRepo)

		requestRepo.On("GetByID", ctx, int32(5)).Return(pendingRequest(), nil).Once()
		requestRepo.On("RespondPending", ctx, int32(5), domain.RequestStatusApproved, "pick up anytime", mock.Anything).
			Return(true, nil).Once()

		req, err := svc.Respond(ctx, 7, 5, domain.RequestStatusApproved, "pick up anytime")
		assert.NoError(t, err)
		assert.Equal(t, domain.RequestStatusApproved, req.Status)
		assert.Equal(t, "pick up anytime", req.ResponseMessage)
		assert.NotNil(t, req.RespondedAt)
		requestRepo.AssertExpectations(t)
	})

	t.Run("RenterMayNotRespond", func(t *testing.T) {
		requestRepo := new(MockRequestRepo)
		itemRepo := new(MockItemRepo)
		svc := NewRentalRequestService(requestRepo, itemRepo)

		requestRepo.On("GetByID", ctx, int32(5)).Return(pendingRequest(), nil).Once()

		_, err := svc.Respond(ctx, 20, 5, domain.RequestStatusApproved, "")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("StrangerMayNotRespond", func(t *testing.T) {
		requestRepo := new(MockRequestRepo)
		itemRepo := new(MockItemRepo)
		svc := NewRentalRequestService(requestRepo, itemRepo)

		requestRepo.On("GetByID", ctx, int32(5)).Return(pendingRequest(), nil).Once()

		_, err := svc.Respond(ctx, 99, 5, domain.RequestStatusRejected, "")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("InvalidDecision", func(t *testing.T) {
		requestRepo := new(MockRequestRepo)
		itemRepo := new(MockItemRepo)
		svc := NewRentalRequestService(requestRepo, itemRepo)

		requestRepo.On("GetByID", ctx, int32(5)).Return(pendingRequest(), nil).Once()

		_, err := svc.Respond(ctx, 7, 5, domain.RequestStatusCancelled, "")
		ve, ok := domain.AsValidationError(err)
		assert.True(t, ok)
		assert.Contains(t, ve.Fields, "status")
	})

	t.Run("AlreadyAnswered", func(t *testing.T) {
		requestRepo := new(MockRequestRepo)
		itemRepo := new(MockItemRepo)
		svc := NewRentalRequestService(requestRepo, itemRepo)

		answered := pendingRequest()
		answered.Status = domain.RequestStatusApproved
		requestRepo.On("GetByID", ctx, int32(5)).Return(answered, nil).Once()

		_, err := svc.Respond(ctx, 7, 5, domain.RequestStatusRejected, "")
		assert.ErrorIs(t, err, domain.ErrInvalidState)
		requestRepo.AssertNotCalled(t, "RespondPending", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("LostRace", func(t *testing.T) {
		requestRepo := new(MockRequestRepo)
		itemRepo := new(MockItemRepo)
		svc := NewRentalRequestService(requestRepo, itemRepo)

		requestRepo.On("GetByID", ctx, int32(5)).Return(pendingRequest(), nil).Once()
		requestRepo.On("RespondPending", ctx, int32(5), domain.RequestStatusApproved, "", mock.Anything).
			Return(false, nil).Once()

		_, err := svc.Respond(ctx, 7, 5, domain.RequestStatusApproved, "")
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})
}

func TestRentalRequestService_View(t *testing.T) {
	ctx := context.Background()
	requestRepo := new(MockRequestRepo)
	itemRepo := new(MockItemRepo)
	svc := NewRentalRequestService(requestRepo, itemRepo)

	req := &domain.RentalRequest{ID: 5, RenterID: 20, ListerID: 7, Status: domain.RequestStatusPending}
	requestRepo.On("GetByID", ctx, int32(5)).Return(req, nil)

	t.Run("Renter", func(t *testing.T) {
		detail, err := svc.View(ctx, 20, 5)
		assert.NoError(t, err)
		assert.True(t, detail.IsRenter)
		assert.False(t, detail.IsLister)
	})

	t.Run("Lister", func(t *testing.T) {
		detail, err := svc.View(ctx, 7, 5)
		assert.NoError(t, err)
		assert.False(t, detail.IsRenter)
		assert.True(t, detail.IsLister)
	})

	t.Run("Stranger", func(t *testing.T) {
		_, err := svc.View(ctx, 99, 5)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestRentalRequestService_ListForUser(t *testing.T) {
	ctx := context.Background()
	requestRepo := new(MockRequestRepo)
	itemRepo := new(MockItemRepo)
	svc := NewRentalRequestService(requestRepo, itemRepo)

	mine := []domain.RentalRequest{{ID: 1, RenterID: 20}}
	received := []domain.RentalRequest{{ID: 2, ListerID: 20}, {ID: 3, ListerID: 20}}
	requestRepo.On("ListByRenter", ctx, int32(20), int32(2), int32(10)).Return(mine, int32(11), nil).Once()
	requestRepo.On("ListByLister", ctx, int32(20), int32(1), int32(10)).Return(received, int32(2), nil).Once()

	inbox, err := svc.ListForUser(ctx, 20, 2, 1)
	assert.NoError(t, err)
	assert.Len(t, inbox.MyRequests, 1)
	assert.Equal(t, int32(11), inbox.MyRequestsTotal)
	assert.Len(t, inbox.ReceivedRequests, 2)
	assert.Equal(t, int32(2), inbox.ReceivedTotal)
	requestRepo.AssertExpectations(t)
}
