package domain

import "time"

type ProfileRole string

const (
	ProfileRoleLister ProfileRole = "lister"
	ProfileRoleRenter ProfileRole = "renter"
)

type User struct {
	ID           int32     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UserProfile struct {
	ID           int32       `json:"id"`
	UserID       int32       `json:"user_id"`
	Role         ProfileRole `json:"role"`
	Phone        string      `json:"phone,omitempty"`
	Bio          string      `json:"bio,omitempty"`
	Avatar       string      `json:"avatar,omitempty"`
	Language     string      `json:"language"`
	Timezone     string      `json:"timezone"`
	Rating       *float64    `json:"rating,omitempty"`
	TotalReviews int32       `json:"total_reviews"`
	IsVerified   bool        `json:"is_verified"`
	VerifiedAt   *time.Time  `json:"verified_at,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
