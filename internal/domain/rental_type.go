package domain

import "time"

// RentalType is a reference/lookup entity. Read-mostly; seeded and
// administered out of band.
type RentalType struct {
	ID          int32             `json:"id"`
	Key         string            `json:"key"`
	Name        map[string]string `json:"name"`
	Description map[string]string `json:"description,omitempty"`
	Icon        string            `json:"icon,omitempty"`
	IsActive    bool              `json:"is_active"`
	SortOrder   int32             `json:"sort_order"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// LocalizedName returns the display name for the given locale, falling back
// to "en", then to the raw key.
func (t *RentalType) LocalizedName(locale string) string {
	if name, ok := t.Name[locale]; ok {
		return name
	}
	if name, ok := t.Name["en"]; ok {
		return name
	}
	return t.Key
}

// LocalizedDescription returns the description for the given locale with the
// same "en" fallback, or "" when none exists.
func (t *RentalType) LocalizedDescription(locale string) string {
	if desc, ok := t.Description[locale]; ok {
		return desc
	}
	return t.Description["en"]
}
