package service

import (
	"context"
	"errors"
	"fmt"

	"rentmarket-backend/internal/domain"
	"rentmarket-backend/internal/repository"
)

const (
	maxPricePerDayCents = 99999999 // 999999.99 in minor units
	maxRentalDayBound   = 365
)

type rentalItemService struct {
	itemRepo repository.RentalItemRepository
	typeRepo repository.RentalTypeRepository
	userRepo repository.UserRepository
}

func NewRentalItemService(itemRepo repository.RentalItemRepository, typeRepo repository.RentalTypeRepository, userRepo repository.UserRepository) RentalItemService {
	return &rentalItemService{
		itemRepo: itemRepo,
		typeRepo: typeRepo,
		userRepo: userRepo,
	}
}

func (s *rentalItemService) Create(ctx context.Context, ownerID int32, in RentalItemInput) (*domain.RentalItem, error) {
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}

	item := &domain.RentalItem{
		OwnerID:            ownerID,
		Title:              in.Title,
		Description:        in.Description,
		RentalType:         in.RentalType,
		PricePerDayCents:   in.PricePerDayCents,
		Currency:           in.Currency,
		Location:           in.Location,
		Latitude:           in.Latitude,
		Longitude:          in.Longitude,
		IsAvailable:        true,
		MinimumRentalDays:  in.MinimumRentalDays,
		MaximumRentalDays:  in.MaximumRentalDays,
		Specifications:     in.Specifications,
		TermsAndConditions: in.TermsAndConditions,
		Status:             domain.ItemStatusActive,
	}
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}
	if in.Status != "" {
		item.Status = domain.ItemStatus(in.Status)
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *rentalItemService) Update(ctx context.Context, actorID, itemID int32, in RentalItemInput) (*domain.RentalItem, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !domain.CanMutateItem(actorID, item) {
		return nil, domain.ErrForbidden
	}
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}

	item.Title = in.Title
	item.Description = in.Description
	item.RentalType = in.RentalType
	item.PricePerDayCents = in.PricePerDayCents
	item.Currency = in.Currency
	item.Location = in.Location
	item.Latitude = in.Latitude
	item.Longitude = in.Longitude
	item.MinimumRentalDays = in.MinimumRentalDays
	item.MaximumRentalDays = in.MaximumRentalDays
	item.Specifications = in.Specifications
	item.TermsAndConditions = in.TermsAndConditions
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}
	if in.Status != "" {
		item.Status = domain.ItemStatus(in.Status)
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *rentalItemService) Delete(ctx context.Context, actorID, itemID int32) error {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if !domain.CanMutateItem(actorID, item) {
		return domain.ErrForbidden
	}
	return s.itemRepo.Delete(ctx, itemID)
}

func (s *rentalItemService) Get(ctx context.Context, viewerID, itemID int32) (*ItemDetail, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	// The show page renders the lister alongside the item.
	owner, err := s.userRepo.GetByID(ctx, item.OwnerID)
	if err != nil {
		return nil, err
	}
	item.Owner = owner
	return &ItemDetail{
		Item:       item,
		CanRequest: domain.CanRequestItem(viewerID, item),
	}, nil
}

func (s *rentalItemService) ListAvailable(ctx context.Context, filter repository.ItemFilter, page int32) ([]domain.RentalItem, int32, error) {
	if page < 1 {
		page = 1
	}
	return s.itemRepo.ListAvailable(ctx, filter, page, itemPageSize)
}

func (s *rentalItemService) ListMine(ctx context.Context, ownerID int32, page int32) ([]domain.RentalItem, int32, error) {
	if page < 1 {
		page = 1
	}
	return s.itemRepo.ListByOwner(ctx, ownerID, page, itemPageSize)
}

// validate checks every attribute constraint and reports all violations at
// once, so the form can highlight each offending field.
func (s *rentalItemService) validate(ctx context.Context, in RentalItemInput) error {
	ve := domain.NewValidationError()

	if in.Title == "" {
		ve.Add("title", "Please provide a title for your rental item.")
	} else if len(in.Title) > 255 {
		ve.Add("title", "The title cannot exceed 255 characters.")
	}

	if in.Description == "" {
		ve.Add("description", "Please provide a description of your rental item.")
	} else if len(in.Description) > 5000 {
		ve.Add("description", "The description cannot exceed 5000 characters.")
	}

	if in.RentalType == "" {
		ve.Add("rental_type", "Please select a rental type.")
	} else if len(in.RentalType) > 50 {
		ve.Add("rental_type", "The rental type cannot exceed 50 characters.")
	} else if err := s.checkRentalType(ctx, in.RentalType, ve); err != nil {
		return err
	}

	if in.PricePerDayCents <= 0 {
		ve.Add("price_per_day", "The daily price must be at least $0.01.")
	} else if in.PricePerDayCents > maxPricePerDayCents {
		ve.Add("price_per_day", "The daily price cannot exceed $999,999.99.")
	}

	if len(in.Currency) != 3 {
		ve.Add("currency", "The currency must be a 3-letter code.")
	}

	if in.Location == "" {
		ve.Add("location", "Please specify the location of your rental item.")
	} else if len(in.Location) > 255 {
		ve.Add("location", "The location cannot exceed 255 characters.")
	}

	if in.Latitude != nil && (*in.Latitude < -90 || *in.Latitude > 90) {
		ve.Add("latitude", "The latitude must be between -90 and 90.")
	}
	if in.Longitude != nil && (*in.Longitude < -180 || *in.Longitude > 180) {
		ve.Add("longitude", "The longitude must be between -180 and 180.")
	}

	if in.MinimumRentalDays < 1 || in.MinimumRentalDays > maxRentalDayBound {
		ve.Add("minimum_rental_days", "Please set a minimum rental period between 1 and 365 days.")
	}
	if in.MaximumRentalDays != nil {
		if *in.MaximumRentalDays < 1 || *in.MaximumRentalDays > maxRentalDayBound {
			ve.Add("maximum_rental_days", "The maximum rental period must be between 1 and 365 days.")
		} else if *in.MaximumRentalDays < in.MinimumRentalDays {
			ve.Add("maximum_rental_days", "Maximum rental days must be greater than or equal to minimum rental days.")
		}
	}

	if len(in.TermsAndConditions) > 5000 {
		ve.Add("terms_and_conditions", "The terms and conditions cannot exceed 5000 characters.")
	}

	if in.Status != "" && in.Status != string(domain.ItemStatusActive) && in.Status != string(domain.ItemStatusInactive) {
		ve.Add("status", "The status must be active or inactive.")
	}

	return ve.ErrOrNil()
}

// checkRentalType validates the type key against the managed lookup table
// rather than a code-level enum.
func (s *rentalItemService) checkRentalType(ctx context.Context, key string, ve *domain.ValidationError) error {
	rt, err := s.typeRepo.GetByKey(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		ve.Add("rental_type", fmt.Sprintf("The rental type %q is not recognized.", key))
		return nil
	}
	if err != nil {
		return err
	}
	if !rt.IsActive {
		ve.Add("rental_type", fmt.Sprintf("The rental type %q is not currently offered.", key))
	}
	return nil
}
