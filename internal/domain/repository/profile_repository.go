// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"profilehub/internal/domain/entity"
)

// ErrProfileNotFound is a domain-specific error returned when a profile is not found.
var ErrProfileNotFound = errors.New("user profile not found")

// ConflictKind identifies which unique constraint a failed insert collided with.
// The classification is decided once, here at the storage boundary, so the
// application layer never inspects driver error text.
type ConflictKind int

const (
	// ConflictUnknown marks a unique-constraint violation on a column the
	// storage layer does not recognize.
	ConflictUnknown ConflictKind = iota
	// ConflictEmail marks a violation of the unique email constraint.
	ConflictEmail
	// ConflictUsername marks a violation of the unique username constraint.
	ConflictUsername
)

// ConflictError is returned when an insert or update violates a unique
// constraint. Kind tells the caller which column collided; Constraint carries
// the raw constraint name for logging.
type ConflictError struct {
	Kind       ConflictKind
	Constraint string
}

func (e *ConflictError) Error() string {
	switch e.Kind {
	case ConflictEmail:
		return "duplicate email"
	case ConflictUsername:
		return "duplicate username"
	default:
		return fmt.Sprintf("duplicate key on unrecognized constraint %q", e.Constraint)
	}
}

// PatchOperation is a single RFC 6902 JSON Patch operation against a profile.
type PatchOperation struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	From  string          `json:"from,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
}

// ProfileRepository defines the standard operations for user-profile persistence.
// The application layer depends on this interface, not the concrete implementation.
type ProfileRepository interface {
	// List retrieves every stored profile.
	List(ctx context.Context) ([]*entity.UserProfile, error)

	// FindByID retrieves a single profile by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.UserProfile, error)

	// FindByUsername retrieves a single profile by its unique username.
	FindByUsername(ctx context.Context, username string) (*entity.UserProfile, error)

	// Create persists a new profile together with its credential as one atomic write.
	// A unique-constraint collision is reported as *ConflictError.
	Create(ctx context.Context, profile *entity.UserProfile, credential *entity.Credential) error

	// Update persists the mutable fields of an existing profile.
	Update(ctx context.Context, profile *entity.UserProfile) error

	// ApplyPatch applies a JSON Patch document to the stored profile.
	ApplyPatch(ctx context.Context, id int64, ops []PatchOperation) error

	// DeleteByID removes a profile; the schema cascades the credential row.
	DeleteByID(ctx context.Context, id int64) error
}
