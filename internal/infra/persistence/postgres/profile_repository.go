// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"profilehub/internal/domain/entity"
	domainerrors "profilehub/internal/domain/errors"
	"profilehub/internal/domain/repository"
	"profilehub/internal/infra/persistence/model"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// profileRepository implements the domain.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// List retrieves every stored profile ordered by id.
func (repo *profileRepository) List(ctx context.Context) ([]*entity.UserProfile, error) {
	var models []*model.UserProfileModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list user profiles")
	}

	profiles := make([]*entity.UserProfile, 0, len(models))
	for _, m := range models {
		profile, err := toProfileDomain(m)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

// FindByID retrieves a single profile by its unique ID.
func (repo *profileRepository) FindByID(ctx context.Context, id int64) (*entity.UserProfile, error) {
	var m model.UserProfileModel
	if err := repo.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find user profile by id")
	}

	return toProfileDomain(&m)
}

// FindByUsername retrieves a single profile by its unique username.
func (repo *profileRepository) FindByUsername(ctx context.Context, username string) (*entity.UserProfile, error) {
	var m model.UserProfileModel
	if err := repo.db.WithContext(ctx).First(&m, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find user profile by username")
	}

	return toProfileDomain(&m)
}

// Create persists a new profile together with its credential as one atomic
// write. Duplicate-key failures are classified by constraint name and
// surfaced as *repository.ConflictError.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.UserProfile, credential *entity.Credential) error {
	m, err := fromProfileDomain(profile)
	if err != nil {
		return err
	}
	m.Credential = &model.CredentialModel{
		PasswordSalt: credential.PasswordSalt,
		PasswordHash: credential.PasswordHash,
	}

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if conflict := classifyConflict(err); conflict != nil {
			return conflict
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user profile")
	}

	// Propagate the store-assigned identity and timestamps back onto the entities.
	profile.ID = m.ID
	profile.CreatedAt = m.CreatedAt
	profile.UpdatedAt = m.UpdatedAt
	credential.ID = m.Credential.ID
	credential.UserID = m.Credential.UserID
	credential.CreatedAt = m.Credential.CreatedAt

	return nil
}

// Update persists the mutable fields of an existing profile.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.UserProfile) error {
	additionalData, err := marshalAdditionalData(profile.AdditionalData)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserProfileModel{}).
		Where("id = ?", profile.ID).
		Updates(map[string]any{
			"username":        profile.Username,
			"email":           profile.Email,
			"additional_data": additionalData,
		})
	if result.Error != nil {
		if conflict := classifyConflict(result.Error); conflict != nil {
			return conflict
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// ApplyPatch applies an RFC 6902 JSON Patch document to the stored profile.
// The document operates on the profile's outward JSON projection, so paths
// like /username, /email and /additionalData/firstName address the same
// fields clients see when they read the profile back.
func (repo *profileRepository) ApplyPatch(ctx context.Context, id int64, ops []repository.PatchOperation) error {
	var m model.UserProfileModel
	if err := repo.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrProfileNotFound
		}

		return errors.Wrap(err, "failed to load user profile for patch")
	}

	doc, err := patchDocument(&m)
	if err != nil {
		return err
	}

	rawPatch, err := json.Marshal(ops)
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("malformed patch document")
	}
	patch, err := jsonpatch.DecodePatch(rawPatch)
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("malformed patch document")
	}

	patched, err := patch.Apply(doc)
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("patch could not be applied")
	}

	var next profilePatchDoc
	if err := json.Unmarshal(patched, &next); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("patch produced an invalid profile")
	}
	if next.Username == "" || next.Email == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("patch removed a required field")
	}

	additionalData, err := marshalAdditionalData(next.AdditionalData)
	if err != nil {
		return err
	}

	err = repo.db.WithContext(ctx).
		Model(&m).
		Updates(map[string]any{
			"username":        next.Username,
			"email":           next.Email,
			"additional_data": additionalData,
		}).Error
	if err != nil {
		if conflict := classifyConflict(err); conflict != nil {
			return conflict
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to store patched user profile")
	}

	return nil
}

// DeleteByID removes a profile; the credential row goes with it via the
// ON DELETE CASCADE constraint.
func (repo *profileRepository) DeleteByID(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.UserProfileModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// profilePatchDoc is the JSON projection of a profile that patch documents
// operate on. It deliberately excludes the id and the credential material.
type profilePatchDoc struct {
	Username       string                 `json:"username"`
	Email          string                 `json:"email"`
	AdditionalData *entity.AdditionalData `json:"additionalData,omitempty"`
}

func patchDocument(m *model.UserProfileModel) ([]byte, error) {
	additionalData, err := unmarshalAdditionalData(m.AdditionalData)
	if err != nil {
		return nil, err
	}

	doc, err := json.Marshal(profilePatchDoc{
		Username:       m.Username,
		Email:          m.Email,
		AdditionalData: additionalData,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to project user profile for patch")
	}

	return doc, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toProfileDomain(data *model.UserProfileModel) (*entity.UserProfile, error) {
	if data == nil {
		return nil, nil
	}

	additionalData, err := unmarshalAdditionalData(data.AdditionalData)
	if err != nil {
		return nil, err
	}

	return &entity.UserProfile{
		ID:             data.ID,
		Username:       data.Username,
		Email:          data.Email,
		AdditionalData: additionalData,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}, nil
}

func fromProfileDomain(data *entity.UserProfile) (*model.UserProfileModel, error) {
	if data == nil {
		return nil, nil
	}

	additionalData, err := marshalAdditionalData(data.AdditionalData)
	if err != nil {
		return nil, err
	}

	return &model.UserProfileModel{
		ID:             data.ID,
		Username:       data.Username,
		Email:          data.Email,
		AdditionalData: additionalData,
	}, nil
}

func marshalAdditionalData(data *entity.AdditionalData) (datatypes.JSON, error) {
	if data == nil {
		return nil, nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize additional data")
	}

	return datatypes.JSON(raw), nil
}

func unmarshalAdditionalData(raw datatypes.JSON) (*entity.AdditionalData, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var data entity.AdditionalData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errors.Wrap(err, "failed to deserialize additional data")
	}

	return &data, nil
}
