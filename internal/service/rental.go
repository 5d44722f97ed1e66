package service

import (
	"context"
	"fmt"
	"time"

	"rentmarket-backend/internal/domain"
	"rentmarket-backend/internal/repository"
	"rentmarket-backend/internal/utils"
)

type rentalRequestService struct {
	requestRepo repository.RentalRequestRepository
	itemRepo    repository.RentalItemRepository
}

func NewRentalRequestService(requestRepo repository.RentalRequestRepository, itemRepo repository.RentalItemRepository) RentalRequestService {
	return &rentalRequestService{
		requestRepo: requestRepo,
		itemRepo:    itemRepo,
	}
}

func (s *rentalRequestService) Submit(ctx context.Context, renterID, itemID int32, startDateStr, endDateStr, message string) (*domain.RentalRequest, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	ve := domain.NewValidationError()

	start, startErr := utils.ParseDate(startDateStr)
	if startErr != nil {
		ve.Add("start_date", "Please select a valid start date.")
	}
	end, endErr := utils.ParseDate(endDateStr)
	if endErr != nil {
		ve.Add("end_date", "Please select a valid end date.")
	}
	if len(message) > 1000 {
		ve.Add("message", "Your message cannot exceed 1000 characters.")
	}
	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	if start.Before(utils.Today()) {
		ve.Add("start_date", "Start date must be today or later.")
	}
	if !start.Before(end) {
		ve.Add("end_date", "End date must be after the start date.")
	}
	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	totalDays, err := utils.RentalDays(start, end)
	if err != nil {
		return nil, err
	}
	if totalDays < item.MinimumRentalDays {
		ve.Add("end_date", fmt.Sprintf("Minimum rental period is %d days.", item.MinimumRentalDays))
	}
	if item.MaximumRentalDays != nil && totalDays > *item.MaximumRentalDays {
		ve.Add("end_date", fmt.Sprintf("Maximum rental period is %d days.", *item.MaximumRentalDays))
	}
	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	// Price and currency are snapshotted from the item at this instant;
	// later item edits never alter this request. No availability lock is
	// placed on the item, so overlapping pending requests can coexist until
	// the lister responds.
	req := &domain.RentalRequest{
		RentalItemID:     item.ID,
		RenterID:         renterID,
		ListerID:         item.OwnerID,
		StartDate:        start.String(),
		EndDate:          end.String(),
		TotalDays:        totalDays,
		PricePerDayCents: item.PricePerDayCents,
		TotalAmountCents: utils.ComputeTotalCents(item.PricePerDayCents, totalDays),
		Currency:         item.Currency,
		Status:           domain.RequestStatusPending,
		Message:          message,
	}

	if err := s.requestRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *rentalRequestService) Respond(ctx context.Context, actorID, requestID int32, decision domain.RequestStatus, responseMessage string) (*domain.RentalRequest, error) {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !domain.CanRespondToRequest(actorID, req) {
		return nil, domain.ErrForbidden
	}

	ve := domain.NewValidationError()
	if decision != domain.RequestStatusApproved && decision != domain.RequestStatusRejected {
		ve.Add("status", "Invalid response status.")
	}
	if len(responseMessage) > 1000 {
		ve.Add("response_message", "Your response message cannot exceed 1000 characters.")
	}
	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	if req.Status != domain.RequestStatusPending {
		return nil, fmt.Errorf("request already %s: %w", req.Status, domain.ErrInvalidState)
	}

	respondedAt := time.Now()
	ok, err := s.requestRepo.RespondPending(ctx, requestID, decision, responseMessage, respondedAt)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Lost the race: another responder transitioned the request first.
		return nil, fmt.Errorf("request is no longer pending: %w", domain.ErrInvalidState)
	}

	req.Status = decision
	req.ResponseMessage = responseMessage
	req.RespondedAt = &respondedAt
	return req, nil
}

func (s *rentalRequestService) View(ctx context.Context, actorID, requestID int32) (*RequestDetail, error) {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !domain.CanViewRequest(actorID, req) {
		return nil, domain.ErrForbidden
	}
	return &RequestDetail{
		Request:  req,
		IsRenter: actorID == req.RenterID,
		IsLister: actorID == req.ListerID,
	}, nil
}

func (s *rentalRequestService) ListForUser(ctx context.Context, userID, myPage, receivedPage int32) (*RequestInbox, error) {
	if myPage < 1 {
		myPage = 1
	}
	if receivedPage < 1 {
		receivedPage = 1
	}

	mine, mineTotal, err := s.requestRepo.ListByRenter(ctx, userID, myPage, requestPageSize)
	if err != nil {
		return nil, err
	}
	received, receivedTotal, err := s.requestRepo.ListByLister(ctx, userID, receivedPage, requestPageSize)
	if err != nil {
		return nil, err
	}

	return &RequestInbox{
		MyRequests:       mine,
		MyRequestsTotal:  mineTotal,
		ReceivedRequests: received,
		ReceivedTotal:    receivedTotal,
	}, nil
}
