package postgres

import (
	"testing"

	"profilehub/internal/domain/entity"
	"profilehub/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestProfileMappersRoundTrip(t *testing.T) {
	profile := &entity.UserProfile{
		ID:       7,
		Username: "alice",
		Email:    "alice@example.com",
		AdditionalData: &entity.AdditionalData{
			FirstName: "Alice",
			LastName:  "Doe",
		},
	}

	m, err := fromProfileDomain(profile)
	require.NoError(t, err)
	assert.Equal(t, "alice", m.Username)
	assert.JSONEq(t, `{"firstName":"Alice","lastName":"Doe"}`, string(m.AdditionalData))

	back, err := toProfileDomain(m)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, back.ID)
	assert.Equal(t, profile.Username, back.Username)
	assert.Equal(t, profile.Email, back.Email)
	assert.Equal(t, profile.AdditionalData, back.AdditionalData)
}

func TestProfileMappers_NilAdditionalData(t *testing.T) {
	m, err := fromProfileDomain(&entity.UserProfile{Username: "alice", Email: "a@example.com"})
	require.NoError(t, err)
	assert.Nil(t, m.AdditionalData)

	back, err := toProfileDomain(m)
	require.NoError(t, err)
	assert.Nil(t, back.AdditionalData)
}

func TestToProfileDomain_RejectsCorruptAdditionalData(t *testing.T) {
	m := &model.UserProfileModel{
		ID:             7,
		Username:       "alice",
		Email:          "a@example.com",
		AdditionalData: datatypes.JSON(`{not json`),
	}

	profile, err := toProfileDomain(m)

	assert.Nil(t, profile)
	assert.Error(t, err)
}

func TestPatchDocument_ProjectsOutwardFieldsOnly(t *testing.T) {
	m := &model.UserProfileModel{
		ID:             7,
		Username:       "alice",
		Email:          "alice@example.com",
		AdditionalData: datatypes.JSON(`{"firstName":"Alice"}`),
	}

	doc, err := patchDocument(m)

	require.NoError(t, err)
	assert.JSONEq(t,
		`{"username":"alice","email":"alice@example.com","additionalData":{"firstName":"Alice"}}`,
		string(doc))
}
