package domain

import "time"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
	// Cancelled is a valid persisted status, but no exposed operation
	// transitions into it.
	RequestStatusCancelled RequestStatus = "cancelled"
)

// Terminal reports whether no further lifecycle transition is permitted.
func (s RequestStatus) Terminal() bool {
	return s != RequestStatusPending
}

type RentalRequest struct {
	ID           int32 `json:"id"`
	RentalItemID int32 `json:"rental_item_id"`
	RenterID     int32 `json:"renter_id"`
	// ListerID is the item's owner at request creation time, denormalized so
	// the request stays addressable even as the item changes.
	ListerID  int32  `json:"lister_id"`
	StartDate string `json:"start_date"` // yyyy-mm-dd, inclusive
	EndDate   string `json:"end_date"`   // yyyy-mm-dd, inclusive
	TotalDays int32  `json:"total_days"`
	// Price snapshot fields — captured from the item at request creation time.
	// Later item price edits never retroactively alter an existing request.
	PricePerDayCents int64         `json:"price_per_day_cents"`
	TotalAmountCents int64         `json:"total_amount_cents"`
	Currency         string        `json:"currency"`
	Status           RequestStatus `json:"status"`
	Message          string        `json:"message,omitempty"`
	ResponseMessage  string        `json:"response_message,omitempty"`
	RespondedAt      *time.Time    `json:"responded_at,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
