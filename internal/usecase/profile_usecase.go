// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"profilehub/internal/domain/entity"
	"profilehub/internal/domain/repository"
)

// --- Input DTOs ---

// ProfileInput defines the data required to register a new profile.
type ProfileInput struct {
	Username       string                 `json:"username"`
	Email          string                 `json:"email"`
	Password       string                 `json:"password"`
	AdditionalData *entity.AdditionalData `json:"additionalData,omitempty"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateProfileInput defines the data for the whole-object update flow, which
// addresses the stored profile by username and merges the mutable fields.
type UpdateProfileInput struct {
	Username       string                 `json:"username"`
	Email          string                 `json:"email,omitempty"`
	AdditionalData *entity.AdditionalData `json:"additionalData,omitempty"`
}

// ProfileUsecase defines the interface for profile-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
//
// Every operation classifies its outcome as a typed domain error carrying the
// HTTP-shaped status the API publishes; the delivery layer renders them without
// further interpretation.
type ProfileUsecase interface {
	// List returns every stored profile, possibly empty.
	List(ctx context.Context) ([]*entity.UserProfile, error)

	// GetByID returns a single profile. Non-positive ids are rejected before
	// the store is touched.
	GetByID(ctx context.Context, id int64) (*entity.UserProfile, error)

	// Add registers a new profile, deriving and persisting its credential.
	Add(ctx context.Context, input *ProfileInput) (*entity.UserProfile, error)

	// Patch applies a JSON Patch document to a stored profile and returns the
	// freshly re-read state.
	Patch(ctx context.Context, id int64, ops []repository.PatchOperation) (*entity.UserProfile, error)

	// UpdateByUsername merges the recognized mutable fields onto the profile
	// stored under input.Username and returns the merged profile.
	UpdateByUsername(ctx context.Context, input *UpdateProfileInput) (*entity.UserProfile, error)

	// DeleteByID removes a profile and, through the schema, its credential.
	DeleteByID(ctx context.Context, id int64) error

	// Login verifies the supplied credentials and returns the stored profile.
	Login(ctx context.Context, input *LoginInput) (*entity.UserProfile, error)
}
