package postgres

import (
	"context"

	"profilehub/internal/domain/entity"
	"profilehub/internal/domain/repository"
	"profilehub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// credentialRepository implements the domain.CredentialRepository interface using GORM.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

// FindByUserID retrieves the credential owned by the given profile.
func (repo *credentialRepository) FindByUserID(ctx context.Context, userID int64) (*entity.Credential, error) {
	var m model.CredentialModel
	if err := repo.db.WithContext(ctx).First(&m, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by user id")
	}

	return &entity.Credential{
		ID:           m.ID,
		UserID:       m.UserID,
		PasswordSalt: m.PasswordSalt,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}, nil
}
