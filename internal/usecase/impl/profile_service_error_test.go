package impl

import (
	"context"
	"net/http"
	"testing"

	"profilehub/internal/domain/entity"
	domainerrors "profilehub/internal/domain/errors"
	"profilehub/internal/domain/repository"
	mockRepo "profilehub/internal/mocks/repository"
	"profilehub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func assertAppError(t *testing.T, err error, wantStatus int, wantMessage string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, wantStatus, appErr.HTTPCode())
	assert.Equal(t, wantMessage, appErr.Message())
}

func TestProfileService_GetByID_NonPositiveID(t *testing.T) {
	fx := createTestProfileService(t)

	for _, id := range []int64{0, -1} {
		profile, err := fx.service.GetByID(context.Background(), id)

		assert.Nil(t, profile)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		assertAppError(t, err, http.StatusBadRequest, domainerrors.MsgBadRequest)
	}
}

func TestProfileService_GetByID_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	fx.profileRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrProfileNotFound)

	profile, err := fx.service.GetByID(ctx, 99)

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	assertAppError(t, err, http.StatusBadRequest, domainerrors.MsgBadRequest)
}

func TestProfileService_GetByID_StoreFailure(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	fx.profileRepo.EXPECT().FindByID(ctx, int64(7)).Return(nil, errors.New("connection reset"))

	profile, err := fx.service.GetByID(ctx, 7)

	assert.Nil(t, profile)
	assertAppError(t, err, http.StatusInternalServerError, domainerrors.MsgInternalError)
}

func TestProfileService_List_StoreFailure(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	fx.profileRepo.EXPECT().List(ctx).Return(nil, errors.New("connection reset"))

	profiles, err := fx.service.List(ctx)

	assert.Nil(t, profiles)
	assertAppError(t, err, http.StatusInternalServerError, domainerrors.MsgInternalError)
}

func TestProfileService_Add_InvalidInput(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	tests := []struct {
		name  string
		input *usecase.ProfileInput
		want  error
	}{
		{name: "nil input", input: nil, want: domainerrors.ErrValidationFailed},
		{
			name:  "blank password",
			input: &usecase.ProfileInput{Username: "alice", Email: "alice@example.com"},
			want:  domainerrors.ErrValidationFailed,
		},
		{
			name:  "blank username",
			input: &usecase.ProfileInput{Username: "   ", Email: "alice@example.com", Password: "s3cret"},
			want:  domainerrors.ErrValidationFailed,
		},
		{
			name:  "missing email",
			input: &usecase.ProfileInput{Username: "alice", Password: "s3cret"},
			want:  domainerrors.ErrInvalidEmail,
		},
		{
			name:  "malformed email",
			input: &usecase.ProfileInput{Username: "alice", Email: "not-an-email", Password: "s3cret"},
			want:  domainerrors.ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, err := fx.service.Add(ctx, tt.input)

			assert.Nil(t, profile)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func (fx profileServiceFixtures) onCreateFailure(t *testing.T, ctx context.Context, createErr error) {
	credential := &entity.Credential{PasswordSalt: "c2FsdA==", PasswordHash: "aGFzaA=="}
	fx.codec.EXPECT().Hash("s3cret").Return(credential, nil)
	fx.onExecute(t, ctx, createErr, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.UserProfile"), credential).
			Return(createErr)
	})
}

func TestProfileService_Add_DuplicateEmail(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	conflict := &repository.ConflictError{Kind: repository.ConflictEmail, Constraint: "uq_user_profiles_email"}
	fx.onCreateFailure(t, ctx, conflict)

	profile, err := fx.service.Add(ctx, &usecase.ProfileInput{
		Username: "alice", Email: "alice@example.com", Password: "s3cret",
	})

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)
	assertAppError(t, err, http.StatusBadRequest, domainerrors.MsgDuplicateEmail)
}

func TestProfileService_Add_DuplicateUsername(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	conflict := &repository.ConflictError{Kind: repository.ConflictUsername, Constraint: "uq_user_profiles_username"}
	fx.onCreateFailure(t, ctx, conflict)

	profile, err := fx.service.Add(ctx, &usecase.ProfileInput{
		Username: "alice", Email: "alice@example.com", Password: "s3cret",
	})

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateUsername)
	assertAppError(t, err, http.StatusBadRequest, domainerrors.MsgDuplicateUsername)
}

func TestProfileService_Add_UnrecognizedConstraintIsReRaised(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	conflict := &repository.ConflictError{Kind: repository.ConflictUnknown, Constraint: "uq_unexpected"}
	fx.onCreateFailure(t, ctx, conflict)

	profile, err := fx.service.Add(ctx, &usecase.ProfileInput{
		Username: "alice", Email: "alice@example.com", Password: "s3cret",
	})

	assert.Nil(t, profile)

	// The unrecognized collision stays untyped so the transport's default
	// handler answers it instead of a curated duplicate message.
	var appErr domainerrors.AppError
	assert.False(t, errors.As(err, &appErr))

	var conflictErr *repository.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "uq_unexpected", conflictErr.Constraint)
}

func TestProfileService_Add_StoreFailure(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	fx.onCreateFailure(t, ctx, errors.New("connection reset"))

	profile, err := fx.service.Add(ctx, &usecase.ProfileInput{
		Username: "alice", Email: "alice@example.com", Password: "s3cret",
	})

	assert.Nil(t, profile)
	assertAppError(t, err, http.StatusInternalServerError, domainerrors.MsgInternalError)
}

func TestProfileService_Add_HashFailure(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	fx.codec.EXPECT().Hash("s3cret").Return(nil, errors.New("entropy source unavailable"))

	profile, err := fx.service.Add(ctx, &usecase.ProfileInput{
		Username: "alice", Email: "alice@example.com", Password: "s3cret",
	})

	assert.Nil(t, profile)
	assertAppError(t, err, http.StatusInternalServerError, domainerrors.MsgInternalError)
}

func TestProfileService_Patch_InvalidInput(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	ops := []repository.PatchOperation{{Op: "replace", Path: "/email", Value: []byte(`"x@example.com"`)}}

	_, err := fx.service.Patch(ctx, 0, ops)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.Patch(ctx, 7, nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProfileService_Patch_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	ops := []repository.PatchOperation{{Op: "replace", Path: "/email", Value: []byte(`"x@example.com"`)}}

	fx.onExecute(t, ctx, repository.ErrProfileNotFound, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().ApplyPatch(ctx, int64(99), ops).Return(repository.ErrProfileNotFound)
	})

	profile, err := fx.service.Patch(ctx, 99, ops)

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	assertAppError(t, err, http.StatusBadRequest, domainerrors.MsgBadRequest)
}

func TestProfileService_Patch_ReReadFailure(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	ops := []repository.PatchOperation{{Op: "replace", Path: "/email", Value: []byte(`"x@example.com"`)}}

	fx.onExecute(t, ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().ApplyPatch(ctx, int64(7), ops).Return(nil)
	})
	fx.profileRepo.EXPECT().FindByID(ctx, int64(7)).Return(nil, errors.New("connection reset"))

	profile, err := fx.service.Patch(ctx, 7, ops)

	assert.Nil(t, profile)
	assertAppError(t, err, http.StatusInternalServerError, domainerrors.MsgInternalError)
}

func TestProfileService_UpdateByUsername_InvalidInput(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	_, err := fx.service.UpdateByUsername(ctx, nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.UpdateByUsername(ctx, &usecase.UpdateProfileInput{Username: "  "})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.UpdateByUsername(ctx, &usecase.UpdateProfileInput{Username: "alice", Email: "not-an-email"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidEmail)
}

func TestProfileService_UpdateByUsername_UnknownUsername(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := &usecase.UpdateProfileInput{Username: "ghost", Email: "ghost@example.com"}

	fx.onExecute(t, ctx, repository.ErrProfileNotFound, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrProfileNotFound)
	})

	profile, err := fx.service.UpdateByUsername(ctx, input)

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrLoginFailed)
	assertAppError(t, err, http.StatusUnauthorized, domainerrors.MsgLoginFailed)
}

func TestProfileService_UpdateByUsername_StoreFailure(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := &usecase.UpdateProfileInput{Username: "alice", Email: "alice@example.com"}
	stored := &entity.UserProfile{ID: 7, Username: "alice", Email: "old@example.com"}

	fx.onExecute(t, ctx, errors.New("connection reset"), func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByUsername(ctx, "alice").Return(stored, nil)
		profileRepo.EXPECT().Update(ctx, stored).Return(errors.New("connection reset"))
	})

	profile, err := fx.service.UpdateByUsername(ctx, input)

	assert.Nil(t, profile)
	assertAppError(t, err, http.StatusInternalServerError, domainerrors.MsgInternalError)
}

func TestProfileService_DeleteByID_NonPositiveID(t *testing.T) {
	fx := createTestProfileService(t)

	err := fx.service.DeleteByID(context.Background(), 0)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProfileService_DeleteByID_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	fx.onExecute(t, ctx, repository.ErrProfileNotFound, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().DeleteByID(ctx, int64(99)).Return(repository.ErrProfileNotFound)
	})

	err := fx.service.DeleteByID(ctx, 99)

	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	assertAppError(t, err, http.StatusBadRequest, domainerrors.MsgBadRequest)
}

func TestProfileService_Login_InvalidInput(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	_, err := fx.service.Login(ctx, nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.Login(ctx, &usecase.LoginInput{Username: "alice"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.Login(ctx, &usecase.LoginInput{Password: "s3cret"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProfileService_Login_UnknownUsername(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	fx.profileRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrProfileNotFound)

	profile, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "s3cret"})

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrLoginFailed)
	assertAppError(t, err, http.StatusUnauthorized, domainerrors.MsgLoginFailed)
}

func TestProfileService_Login_WrongPassword(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	stored := &entity.UserProfile{ID: 7, Username: "alice"}
	credential := &entity.Credential{UserID: 7, PasswordHash: "aGFzaA=="}

	fx.profileRepo.EXPECT().FindByUsername(ctx, "alice").Return(stored, nil)
	fx.credentialRepo.EXPECT().FindByUserID(ctx, int64(7)).Return(credential, nil)
	fx.codec.EXPECT().Verify("aGFzaA==", "wrong").Return(false)

	profile, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "wrong"})

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrLoginFailed)
	assertAppError(t, err, http.StatusUnauthorized, domainerrors.MsgLoginFailed)
}

func TestProfileService_Login_MissingCredentialIsIntegrityFault(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	stored := &entity.UserProfile{ID: 7, Username: "alice"}

	fx.profileRepo.EXPECT().FindByUsername(ctx, "alice").Return(stored, nil)
	fx.credentialRepo.EXPECT().FindByUserID(ctx, int64(7)).Return(nil, repository.ErrCredentialNotFound)

	profile, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "s3cret"})

	assert.Nil(t, profile)
	assertAppError(t, err, http.StatusInternalServerError, domainerrors.MsgInternalError)
}
