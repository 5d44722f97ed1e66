package domain

import "time"

type ItemStatus string

const (
	ItemStatusActive   ItemStatus = "active"
	ItemStatusInactive ItemStatus = "inactive"
)

type RentalItem struct {
	ID          int32  `json:"id"`
	OwnerID     int32  `json:"owner_id"`
	Owner       *User  `json:"owner,omitempty"` // Populated when fetching item details
	Title       string `json:"title"`
	Description string `json:"description"`
	// RentalType is a key into the rental_types lookup table, not a closed
	// enum. New categories are added by data alone.
	RentalType         string            `json:"rental_type"`
	PricePerDayCents   int64             `json:"price_per_day_cents"`
	Currency           string            `json:"currency"`
	Location           string            `json:"location"`
	Latitude           *float64          `json:"latitude,omitempty"`
	Longitude          *float64          `json:"longitude,omitempty"`
	IsAvailable        bool              `json:"is_available"`
	MinimumRentalDays  int32             `json:"minimum_rental_days"`
	MaximumRentalDays  *int32            `json:"maximum_rental_days,omitempty"`
	Specifications     map[string]string `json:"specifications,omitempty"`
	TermsAndConditions string            `json:"terms_and_conditions,omitempty"`
	Status             ItemStatus        `json:"status"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}
