package usecase

import (
	"context"
	"testing"

	"venue-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUpdateProfilePartial(t *testing.T) {
	repo, _, _ := newTestRepository()
	auth := NewAuthService(repo, testConfig(), zap.NewNop())
	service := NewUserService(repo, zap.NewNop())

	registered, err := auth.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	location := "Nairobi"
	updated, err := service.UpdateProfile(context.Background(), registered.UserID, &request.UpdateProfileRequest{
		Location: &location,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Location)
	assert.Equal(t, "Nairobi", *updated.Location)
	assert.Equal(t, "wanjiku", updated.Username) // untouched

	profile, err := service.GetProfile(context.Background(), registered.UserID)
	require.NoError(t, err)
	require.NotNil(t, profile.Location)
	assert.Equal(t, "Nairobi", *profile.Location)
}

func TestUpdateProfileUsernameTaken(t *testing.T) {
	repo, _, _ := newTestRepository()
	auth := NewAuthService(repo, testConfig(), zap.NewNop())
	service := NewUserService(repo, zap.NewNop())

	_, err := auth.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	second := registerRequest()
	second.Username = "otieno"
	second.Email = "otieno@example.com"
	registered, err := auth.Register(context.Background(), second)
	require.NoError(t, err)

	taken := "wanjiku"
	_, err = service.UpdateProfile(context.Background(), registered.UserID, &request.UpdateProfileRequest{
		Username: &taken,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already taken")
}

func TestGetProfileNotFound(t *testing.T) {
	repo, _, _ := newTestRepository()
	service := NewUserService(repo, zap.NewNop())

	_, err := service.GetProfile(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	repo, _, _ := newTestRepository()
	auth := NewAuthService(repo, testConfig(), zap.NewNop())
	service := NewUserService(repo, zap.NewNop())

	registered, err := auth.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	require.NoError(t, service.DeleteUser(context.Background(), registered.UserID))

	_, err = service.GetProfile(context.Background(), registered.UserID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	// The registration session died with the account
	session, err := repo.Session.FindValidSession(context.Background(), registered.Token)
	require.NoError(t, err)
	assert.Nil(t, session)
}
