package usecase

import (
	"context"
	"testing"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func registerRequest() *request.RegisterRequest {
	return &request.RegisterRequest{
		Username: "wanjiku",
		Email:    "wanjiku@example.com",
		Password: "secret123",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	repo, _, _ := newTestRepository()
	service := NewAuthService(repo, testConfig(), zap.NewNop())

	resp, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	assert.Equal(t, "wanjiku", resp.Username)
	assert.Equal(t, entity.RoleClient, resp.Role)
	assert.NotEmpty(t, resp.Token)

	// Login by username
	login, err := service.Login(context.Background(), &request.LoginRequest{
		Username: "wanjiku",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, resp.UserID, login.UserID)
	assert.NotEmpty(t, login.Token)

	// Login by email works through the same field
	login, err = service.Login(context.Background(), &request.LoginRequest{
		Username: "wanjiku@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, resp.UserID, login.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo, _, _ := newTestRepository()
	service := NewAuthService(repo, testConfig(), zap.NewNop())

	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	dup := registerRequest()
	dup.Username = "otieno"
	_, err = service.Register(context.Background(), dup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestLoginWrongPassword(t *testing.T) {
	repo, _, _ := newTestRepository()
	service := NewAuthService(repo, testConfig(), zap.NewNop())

	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = service.Login(context.Background(), &request.LoginRequest{
		Username: "wanjiku",
		Password: "wrongpass",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")

	// Unknown user gets the same message, no account probing
	_, err = service.Login(context.Background(), &request.LoginRequest{
		Username: "nobody",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLogoutRevokesSession(t *testing.T) {
	repo, _, _ := newTestRepository()
	service := NewAuthService(repo, testConfig(), zap.NewNop())

	resp, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	session, err := repo.Session.FindValidSession(context.Background(), resp.Token)
	require.NoError(t, err)
	require.NotNil(t, session)

	require.NoError(t, service.Logout(context.Background(), resp.Token))

	session, err = repo.Session.FindValidSession(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestLogoutRejectsMalformedToken(t *testing.T) {
	repo, _, _ := newTestRepository()
	service := NewAuthService(repo, testConfig(), zap.NewNop())

	err := service.Logout(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")
}
