package services

import (
	"testing"

	"backend/models"
	"backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	require.NoError(t, RegisterUser("a@b.c", "hunter22", "Alex", 80, 180))

	var user models.User
	require.NoError(t, db.Where("email = ?", "a@b.c").First(&user).Error)
	assert.NotEqual(t, "hunter22", user.Password)
	assert.True(t, utils.CheckPasswordHash("hunter22", user.Password))

	token, err := AuthenticateUser("a@b.c", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = AuthenticateUser("a@b.c", "wrong")
	assert.Error(t, err)

	_, err = AuthenticateUser("nobody@b.c", "hunter22")
	assert.Error(t, err)
}

func TestAuthenticateDisabledUser(t *testing.T) {
	db := setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	require.NoError(t, RegisterUser("a@b.c", "hunter22", "Alex", 0, 0))
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "a@b.c").Update("disabled", true).Error)

	_, err := AuthenticateUser("a@b.c", "hunter22")
	assert.Error(t, err)
}

func TestUserProfileRoundTrip(t *testing.T) {
	setupTestDB(t)
	require.NoError(t, RegisterUser("a@b.c", "hunter22", "Alex", 80, 180))

	profile, err := GetUserProfile(1)
	require.NoError(t, err)
	assert.Equal(t, "Alex", profile["full_name"])
	assert.Equal(t, 80.0, profile["body_weight_kg"])

	require.NoError(t, UpdateUserProfile(1, ProfileInput{BodyWeightKg: 82.5}))
	profile, err = GetUserProfile(1)
	require.NoError(t, err)
	assert.Equal(t, 82.5, profile["body_weight_kg"])
	assert.Equal(t, "Alex", profile["full_name"]) // untouched fields keep values
}
