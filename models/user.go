package models

import "time"

// User is a registered subscriber of a tariff.
//
// PhoneNumber is always stored in canonical form (no spaces) and is unique
// across the users table.
type User struct {
	// ID is the surrogate key assigned by the database.
	ID int64 `json:"id"`

	// FullName is the trimmed display name of the subscriber.
	FullName string `json:"fullName"`

	// PhoneNumber is the canonical phone number, e.g. "+998901234567".
	PhoneNumber string `json:"phoneNumber"`

	// Tariff is the name of the subscription plan. Treated as opaque text.
	Tariff string `json:"tariff"`

	// CreatedAt is the UTC moment the user was registered.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is reserved for future profile updates and is never set
	// by the current API.
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserResponse is the public shape of a user returned by the API.
type UserResponse struct {
	ID          int64     `json:"id"`
	FullName    string    `json:"fullName"`
	PhoneNumber string    `json:"phoneNumber"`
	Tariff      string    `json:"tariff"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToResponse maps the stored user onto its API representation.
func (u User) ToResponse() UserResponse {
	return UserResponse{
		ID:          u.ID,
		FullName:    u.FullName,
		PhoneNumber: u.PhoneNumber,
		Tariff:      u.Tariff,
		CreatedAt:   u.CreatedAt,
	}
}
