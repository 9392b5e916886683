// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "profilehub/internal/delivery/context"
	"profilehub/internal/domain/entity"
	domainerrors "profilehub/internal/domain/errors"
	"profilehub/internal/domain/repository"
	"profilehub/internal/domain/service"
	"profilehub/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager      repository.TransactionManager
	profileRepo    repository.ProfileRepository
	credentialRepo repository.CredentialRepository
	codec          service.PasswordCodec
	validate       *validator.Validate
	logger         *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	ProfileRepo    repository.ProfileRepository
	CredentialRepo repository.CredentialRepository
	Codec          service.PasswordCodec
	Logger         *slog.Logger
}

// NewProfileService is the constructor for profileService. It receives all dependencies as interfaces.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:      params.TxManager,
		profileRepo:    params.ProfileRepo,
		credentialRepo: params.CredentialRepo,
		codec:          params.Codec,
		validate:       validator.New(),
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns every stored profile.
func (srv *profileService) List(ctx context.Context) ([]*entity.UserProfile, error) {
	profiles, err := srv.profileRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list profiles", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to list profiles")
	}

	return profiles, nil
}

// GetByID returns a single profile by id.
func (srv *profileService) GetByID(ctx context.Context, id int64) (*entity.UserProfile, error) {
	if id <= 0 {
		srv.log(ctx).Warn("Rejecting non-positive profile id", slog.Int64("id", id))

		return nil, domainerrors.ErrValidationFailed.WrapMessage("profile id must be positive")
	}

	profile, err := srv.profileRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			srv.log(ctx).Warn("Profile not found", slog.Int64("id", id))

			return nil, domainerrors.ErrProfileNotFound.WrapMessage("profile not found by id")
		}
		srv.log(ctx).Error("Failed to get profile", slog.Int64("id", id), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to get profile by id")
	}

	return profile, nil
}

// DeleteByID removes a profile by id.
func (srv *profileService) DeleteByID(ctx context.Context, id int64) error {
	if id <= 0 {
		srv.log(ctx).Warn("Rejecting non-positive profile id", slog.Int64("id", id))

		return domainerrors.ErrValidationFailed.WrapMessage("profile id must be positive")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ProfileRepo().DeleteByID(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			srv.log(ctx).Warn("Profile not found for delete", slog.Int64("id", id))

			return domainerrors.ErrProfileNotFound.WrapMessage("profile not found for delete")
		}
		srv.log(ctx).Error("Failed to delete profile", slog.Int64("id", id), slog.Any("error", err))

		return domainerrors.ErrInternalError.WrapMessage("failed to delete profile")
	}

	return nil
}

// Add registers a new profile and its derived credential in one transaction.
func (srv *profileService) Add(ctx context.Context, input *usecase.ProfileInput) (*entity.UserProfile, error) {
	if input == nil {
		srv.log(ctx).Warn("Rejecting nil profile input")

		return nil, domainerrors.ErrValidationFailed.WrapMessage("profile input must not be nil")
	}

	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)

	if input.Password == "" {
		srv.log(ctx).Warn("Rejecting blank password", slog.String("username", username))

		return nil, domainerrors.ErrValidationFailed.WrapMessage("password must not be blank")
	}
	if username == "" {
		srv.log(ctx).Warn("Rejecting blank username")

		return nil, domainerrors.ErrValidationFailed.WrapMessage("username must not be blank")
	}
	if err := srv.validate.Var(email, "required,email"); err != nil {
		srv.log(ctx).Warn("Rejecting invalid email", slog.String("username", username))

		return nil, domainerrors.ErrInvalidEmail.WrapMessage("email format is invalid")
	}

	credential, err := srv.codec.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to derive credential", slog.String("username", username), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to derive credential")
	}

	profile := &entity.UserProfile{
		Username:       username,
		Email:          email,
		AdditionalData: input.AdditionalData,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ProfileRepo().Create(ctx, profile, credential)
	})
	if err != nil {
		return nil, srv.classifyAddFailure(ctx, err, username)
	}

	srv.log(ctx).Debug("Profile registered", slog.Int64("id", profile.ID), slog.String("username", username))

	return profile, nil
}

// classifyAddFailure turns a storage failure during registration into the
// outcome the API publishes. A unique-constraint collision on a column the
// storage layer does not recognize is re-raised untyped: the transport's
// default handler answers it, not this service.
func (srv *profileService) classifyAddFailure(ctx context.Context, err error, username string) error {
	var conflict *repository.ConflictError
	if errors.As(err, &conflict) {
		switch conflict.Kind {
		case repository.ConflictEmail:
			srv.log(ctx).Debug("Duplicate email on registration", slog.String("username", username))

			return domainerrors.ErrDuplicateEmail.WrapMessage("email already registered")
		case repository.ConflictUsername:
			srv.log(ctx).Debug("Duplicate username on registration", slog.String("username", username))

			return domainerrors.ErrDuplicateUsername.WrapMessage("username already registered")
		default:
			srv.log(ctx).Error("Duplicate key on unrecognized constraint",
				slog.String("username", username), slog.String("constraint", conflict.Constraint))

			return errors.Wrap(err, "unrecognized unique constraint violated during registration")
		}
	}

	srv.log(ctx).Error("Failed to register profile", slog.String("username", username), slog.Any("error", err))

	return domainerrors.ErrInternalError.WrapMessage("failed to register profile")
}

// Patch applies a JSON Patch document and re-reads the profile in a fresh
// transaction. A concurrent writer may interleave between the two steps; the
// re-read state is returned as-is.
func (srv *profileService) Patch(ctx context.Context, id int64, ops []repository.PatchOperation) (*entity.UserProfile, error) {
	if id <= 0 {
		srv.log(ctx).Warn("Rejecting non-positive profile id", slog.Int64("id", id))

		return nil, domainerrors.ErrValidationFailed.WrapMessage("profile id must be positive")
	}
	if len(ops) == 0 {
		srv.log(ctx).Warn("Rejecting empty patch document", slog.Int64("id", id))

		return nil, domainerrors.ErrValidationFailed.WrapMessage("patch document must not be empty")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ProfileRepo().ApplyPatch(ctx, id, ops)
	})
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			srv.log(ctx).Warn("Profile not found for patch", slog.Int64("id", id))

			return nil, domainerrors.ErrProfileNotFound.WrapMessage("profile not found for patch")
		}
		srv.log(ctx).Error("Failed to patch profile", slog.Int64("id", id), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to patch profile")
	}

	// Round-trip read in its own transaction to return committed state.
	fresh, err := srv.profileRepo.FindByID(ctx, id)
	if err != nil {
		srv.log(ctx).Error("Failed to re-read profile after patch", slog.Int64("id", id), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to re-read profile after patch")
	}

	return fresh, nil
}

// UpdateByUsername merges recognized mutable fields onto the stored profile.
func (srv *profileService) UpdateByUsername(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.UserProfile, error) {
	if input == nil {
		srv.log(ctx).Warn("Rejecting nil update input")

		return nil, domainerrors.ErrValidationFailed.WrapMessage("update input must not be nil")
	}

	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)

	if username == "" {
		srv.log(ctx).Warn("Rejecting blank username on update")

		return nil, domainerrors.ErrValidationFailed.WrapMessage("username must not be blank")
	}
	// An absent email is a no-op, not an error; only a supplied one is checked.
	if email != "" {
		if err := srv.validate.Var(email, "email"); err != nil {
			srv.log(ctx).Warn("Rejecting invalid email on update", slog.String("username", username))

			return nil, domainerrors.ErrInvalidEmail.WrapMessage("email format is invalid")
		}
	}

	var merged *entity.UserProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		stored, findErr := profileRepo.FindByUsername(ctx, username)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to find profile by username")
		}

		if email != "" {
			stored.Email = email
		}
		if input.AdditionalData != nil {
			stored.AdditionalData = input.AdditionalData
		}

		if updateErr := profileRepo.Update(ctx, stored); updateErr != nil {
			return errors.Wrap(updateErr, "failed to persist merged profile")
		}
		merged = stored

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			// Historical contract: an unknown username on this path answers
			// unauthorized, not not-found.
			srv.log(ctx).Warn("Unknown username on update", slog.String("username", username))

			return nil, domainerrors.ErrLoginFailed.WrapMessage("unknown username on update")
		}
		srv.log(ctx).Error("Failed to update profile", slog.String("username", username), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to update profile")
	}

	return merged, nil
}

// Login verifies the supplied credentials and returns the stored profile.
func (srv *profileService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.UserProfile, error) {
	if input == nil {
		srv.log(ctx).Warn("Rejecting nil login input")

		return nil, domainerrors.ErrValidationFailed.WrapMessage("login input must not be nil")
	}

	username := strings.TrimSpace(input.Username)
	if input.Password == "" || username == "" {
		srv.log(ctx).Warn("Rejecting blank login fields", slog.String("username", username))

		return nil, domainerrors.ErrValidationFailed.WrapMessage("username and password are required")
	}

	stored, err := srv.profileRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			// Same generic answer as a wrong password so usernames cannot be
			// enumerated.
			srv.log(ctx).Debug("Login failed, unknown username", slog.String("username", username))

			return nil, domainerrors.ErrLoginFailed.WrapMessage("unknown username")
		}
		srv.log(ctx).Error("Failed to look up profile for login", slog.String("username", username), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to look up profile for login")
	}

	credential, err := srv.credentialRepo.FindByUserID(ctx, stored.ID)
	if err != nil {
		// A profile without a credential row is a data-integrity fault, not a
		// client mistake.
		srv.log(ctx).Error("Credential missing for existing profile",
			slog.Int64("userID", stored.ID), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("credential missing for profile")
	}

	if !srv.codec.Verify(credential.PasswordHash, input.Password) {
		srv.log(ctx).Debug("Login failed, password mismatch", slog.String("username", username))

		return nil, domainerrors.ErrLoginFailed.WrapMessage("password mismatch")
	}

	return stored, nil
}
