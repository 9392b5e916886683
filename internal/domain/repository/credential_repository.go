package repository

import (
	"context"
	"errors"

	"profilehub/internal/domain/entity"
)

// ErrCredentialNotFound is returned when no credential row exists for a profile.
// During login this indicates a data-integrity fault, since every registration
// writes the credential in the same transaction as the profile.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository defines the operations for credential persistence.
type CredentialRepository interface {
	// FindByUserID retrieves the credential owned by the given profile.
	FindByUserID(ctx context.Context, userID int64) (*entity.Credential, error)
}
