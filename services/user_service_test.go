package services

import (
	"testing"

	"github.com/adityapawar327/Kick-It-Up/apperrors"
	"github.com/adityapawar327/Kick-It-Up/models"
	"github.com/adityapawar327/Kick-It-Up/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_UpdateProfile(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(db)

	user := createTestUser(t, db, "someone")

	updated, err := service.UpdateProfile(user.Username, ProfileInput{
		FullName: "Someone Else",
		Phone:    "555-0101",
		Address:  "2 Side St",
		ImageURL: "/uploads/sneakers/avatar.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "Someone Else", updated.FullName)
	assert.Equal(t, "555-0101", updated.Phone)

	var got models.User
	require.NoError(t, db.First(&got, user.ID).Error)
	assert.Equal(t, "2 Side St", got.Address)

	_, err = service.UpdateProfile("ghost", ProfileInput{})
	require.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserService_ChangePassword(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(db)

	user := createTestUser(t, db, "someone")

	err := service.ChangePassword(user.Username, "wrong-password", "new-password")
	require.ErrorIs(t, err, apperrors.ErrWrongPassword)

	require.NoError(t, service.ChangePassword(user.Username, "password123", "new-password"))

	var got models.User
	require.NoError(t, db.First(&got, user.ID).Error)
	assert.True(t, utils.CheckPasswordHash("new-password", got.Password))
	assert.False(t, utils.CheckPasswordHash("password123", got.Password))
}

func TestUserService_GetUserByID(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(db)

	user := createTestUser(t, db, "someone")

	got, err := service.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "someone", got.Username)

	_, err = service.GetUserByID(9999)
	require.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserService_SearchUsers(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(db)

	createTestUser(t, db, "sneakerfan")
	createTestUser(t, db, "sneakerhead")
	createTestUser(t, db, "collector")

	// The searcher is excluded from their own results
	users, err := service.SearchUsers("sneakerfan", "sneaker")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "sneakerhead", users[0].Username)
}
