package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"profilehub/internal/domain/entity"
	"profilehub/internal/domain/repository"
	mockRepo "profilehub/internal/mocks/repository"
	mockService "profilehub/internal/mocks/service"
	"profilehub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service        usecase.ProfileUsecase
	txManager      *mockRepo.MockTransactionManager
	profileRepo    *mockRepo.MockProfileRepository
	credentialRepo *mockRepo.MockCredentialRepository
	codec          *mockService.MockPasswordCodec
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	credentialRepo := mockRepo.NewMockCredentialRepository(t)
	codec := mockService.NewMockPasswordCodec(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewProfileService(ProfileServiceParams{
		TxManager:      txManager,
		ProfileRepo:    profileRepo,
		CredentialRepo: credentialRepo,
		Codec:          codec,
		Logger:         logger,
	})

	return profileServiceFixtures{
		service:        service,
		txManager:      txManager,
		profileRepo:    profileRepo,
		credentialRepo: credentialRepo,
		codec:          codec,
	}
}

// onExecute arranges the transaction manager to run the callback against a
// factory prepared by setup, then report result as the transaction outcome.
func (fx profileServiceFixtures) onExecute(t *testing.T, ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(result)
}

func TestProfileService_List_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	stored := []*entity.UserProfile{
		{ID: 1, Username: "alice", Email: "alice@example.com"},
		{ID: 2, Username: "bob", Email: "bob@example.com"},
	}

	fx.profileRepo.EXPECT().List(ctx).Return(stored, nil)

	profiles, err := fx.service.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, stored, profiles)
}

func TestProfileService_GetByID_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	expected := &entity.UserProfile{ID: 7, Username: "alice", Email: "alice@example.com"}

	fx.profileRepo.EXPECT().FindByID(ctx, int64(7)).Return(expected, nil)

	profile, err := fx.service.GetByID(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, expected, profile)
}

func TestProfileService_Add_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := &usecase.ProfileInput{
		Username: "  alice  ",
		Email:    " alice@example.com ",
		Password: "s3cret",
		AdditionalData: &entity.AdditionalData{
			FirstName: "Alice",
		},
	}
	credential := &entity.Credential{PasswordSalt: "c2FsdA==", PasswordHash: "aGFzaA=="}

	fx.codec.EXPECT().Hash("s3cret").Return(credential, nil)
	fx.onExecute(t, ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.UserProfile"), credential).
			RunAndReturn(func(_ context.Context, profile *entity.UserProfile, _ *entity.Credential) error {
				profile.ID = 42

				return nil
			})
	})

	profile, err := fx.service.Add(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(42), profile.ID)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "alice@example.com", profile.Email)
	assert.Equal(t, "Alice", profile.AdditionalData.FirstName)
}

func TestProfileService_Patch_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	ops := []repository.PatchOperation{
		{Op: "replace", Path: "/email", Value: []byte(`"new@example.com"`)},
	}
	fresh := &entity.UserProfile{ID: 7, Username: "alice", Email: "new@example.com"}

	fx.onExecute(t, ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().ApplyPatch(ctx, int64(7), ops).Return(nil)
	})
	fx.profileRepo.EXPECT().FindByID(ctx, int64(7)).Return(fresh, nil)

	profile, err := fx.service.Patch(ctx, 7, ops)

	require.NoError(t, err)
	assert.Equal(t, fresh, profile)
}

func TestProfileService_UpdateByUsername_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := &usecase.UpdateProfileInput{
		Username: "alice",
		Email:    "new@example.com",
		AdditionalData: &entity.AdditionalData{
			LastName: "Doe",
		},
	}
	stored := &entity.UserProfile{ID: 7, Username: "alice", Email: "old@example.com"}

	fx.onExecute(t, ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByUsername(ctx, "alice").Return(stored, nil)
		profileRepo.EXPECT().Update(ctx, stored).Return(nil)
	})

	profile, err := fx.service.UpdateByUsername(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", profile.Email)
	assert.Equal(t, "Doe", profile.AdditionalData.LastName)
	assert.Equal(t, int64(7), profile.ID)
}

func TestProfileService_UpdateByUsername_OmittedFieldsKeepStoredValues(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := &usecase.UpdateProfileInput{Username: "alice"}
	stored := &entity.UserProfile{
		ID:       7,
		Username: "alice",
		Email:    "old@example.com",
		AdditionalData: &entity.AdditionalData{
			FirstName: "Alice",
		},
	}

	fx.onExecute(t, ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByUsername(ctx, "alice").Return(stored, nil)
		profileRepo.EXPECT().Update(ctx, stored).Return(nil)
	})

	profile, err := fx.service.UpdateByUsername(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "old@example.com", profile.Email)
	assert.Equal(t, "Alice", profile.AdditionalData.FirstName)
}

func TestProfileService_DeleteByID_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	fx.onExecute(t, ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().DeleteByID(ctx, int64(7)).Return(nil)
	})

	err := fx.service.DeleteByID(ctx, 7)

	require.NoError(t, err)
}

func TestProfileService_Login_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	stored := &entity.UserProfile{ID: 7, Username: "alice", Email: "alice@example.com"}
	credential := &entity.Credential{UserID: 7, PasswordHash: "aGFzaA=="}

	fx.profileRepo.EXPECT().FindByUsername(ctx, "alice").Return(stored, nil)
	fx.credentialRepo.EXPECT().FindByUserID(ctx, int64(7)).Return(credential, nil)
	fx.codec.EXPECT().Verify("aGFzaA==", "s3cret").Return(true)

	profile, err := fx.service.Login(ctx, &usecase.LoginInput{Username: " alice ", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, stored, profile)
}
