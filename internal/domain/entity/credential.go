package entity

import "time"

// Credential represents the persisted password material for one profile.
// It is created exactly once at registration and never updated in place;
// the schema cascades its deletion when the owning profile is deleted.
type Credential struct {
	ID           int64     // The unique ID for this credential record itself.
	UserID       int64     // Links the credential to the UserProfile it belongs to.
	PasswordSalt string    // Base64 of the raw salt. Redundant with the envelope copy, kept for compatibility.
	PasswordHash string    // Base64 of the self-describing envelope (marker + header + salt + subkey).
	CreatedAt    time.Time // Timestamp of when the credential was created (i.e., registration time).
}
