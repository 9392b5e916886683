// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// AdditionalData is the opaque structured payload attached to a profile.
// It is serialized as JSON text at the storage boundary.
type AdditionalData struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// UserProfile represents one registered user of the system.
type UserProfile struct {
	ID             int64           `json:"id,omitempty"`   // Assigned by the store; zero until persisted.
	Username       string          `json:"username"`       // Unique, non-empty, stored trimmed.
	Email          string          `json:"email"`          // Unique, non-empty, stored trimmed.
	Password       string          `json:"-"`              // Transient plaintext, never serialized outward or persisted raw.
	AdditionalData *AdditionalData `json:"additionalData"` // Optional opaque payload, e.g. first/last name.
	CreatedAt      time.Time       `json:"-"`
	UpdatedAt      time.Time       `json:"-"`
}
