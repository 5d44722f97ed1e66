package service

import (
	"context"

	"rentmarket-backend/internal/domain"
	"rentmarket-backend/internal/repository"
)

// Page sizes mirror the listing pages the web layer renders.
const (
	itemPageSize    int32 = 12
	requestPageSize int32 = 10
)

// RentalItemInput carries the caller-supplied attributes for creating or
// updating a listing. Money is in minor units (cents).
type RentalItemInput struct {
	Title              string            `json:"title"`
	Description        string            `json:"description"`
	RentalType         string            `json:"rental_type"`
	PricePerDayCents   int64             `json:"price_per_day_cents"`
	Currency           string            `json:"currency"`
	Location           string            `json:"location"`
	Latitude           *float64          `json:"latitude,omitempty"`
	Longitude          *float64          `json:"longitude,omitempty"`
	IsAvailable        *bool             `json:"is_available,omitempty"`
	MinimumRentalDays  int32             `json:"minimum_rental_days"`
	MaximumRentalDays  *int32            `json:"maximum_rental_days,omitempty"`
	Specifications     map[string]string `json:"specifications,omitempty"`
	TermsAndConditions string            `json:"terms_and_conditions,omitempty"`
	Status             string            `json:"status,omitempty"`
}

// ItemDetail is what the show-item page renders: the listing plus whether the
// viewer may request it.
type ItemDetail struct {
	Item       *domain.RentalItem `json:"item"`
	CanRequest bool               `json:"can_request"`
}

// RequestDetail is a request plus the viewer's role flags.
type RequestDetail struct {
	Request  *domain.RentalRequest `json:"request"`
	IsRenter bool                  `json:"is_renter"`
	IsLister bool                  `json:"is_lister"`
}

// RequestInbox holds both sides of a user's requests, each independently
// paginated.
type RequestInbox struct {
	MyRequests       []domain.RentalRequest `json:"my_requests"`
	MyRequestsTotal  int32                  `json:"my_requests_total"`
	ReceivedRequests []domain.RentalRequest `json:"received_requests"`
	ReceivedTotal    int32                  `json:"received_requests_total"`
}

type ProfileInput struct {
	Role     string `json:"role"`
	Phone    string `json:"phone"`
	Bio      string `json:"bio"`
	Avatar   string `json:"avatar"`
	Language string `json:"language"`
	Timezone string `json:"timezone"`
}

type RentalItemService interface {
	Create(ctx context.Context, ownerID int32, input RentalItemInput) (*domain.RentalItem, error)
	Update(ctx context.Context, actorID, itemID int32, input RentalItemInput) (*domain.RentalItem, error)
	Delete(ctx context.Context, actorID, itemID int32) error
	Get(ctx context.Context, viewerID, itemID int32) (*ItemDetail, error)
	ListAvailable(ctx context.Context, filter repository.ItemFilter, page int32) ([]domain.RentalItem, int32, error)
	ListMine(ctx context.Context, ownerID int32, page int32) ([]domain.RentalItem, int32, error)
}

type RentalRequestService interface {
	Submit(ctx context.Context, renterID, itemID int32, startDate, endDate, message string) (*domain.RentalRequest, error)
	Respond(ctx context.Context, actorID, requestID int32, decision domain.RequestStatus, responseMessage string) (*domain.RentalRequest, error)
	View(ctx context.Context, actorID, requestID int32) (*RequestDetail, error)
	ListForUser(ctx context.Context, userID, myPage, receivedPage int32) (*RequestInbox, error)
}

type RentalTypeService interface {
	ListActive(ctx context.Context) ([]domain.RentalType, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID int32) (*domain.User, *domain.UserProfile, error)
	UpdateProfile(ctx context.Context, userID int32, input ProfileInput) (*domain.UserProfile, error)
}

type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*domain.User, string, string, error) // user, access, refresh
	Login(ctx context.Context, email, password string) (string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}
