package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelftrack/shelftrack-server/internal/config"
	"github.com/shelftrack/shelftrack-server/internal/dto"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 24 * time.Hour,
	}
	return NewAuthService(newTestDB(t), cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	resp, err := svc.Register(&dto.RegisterRequest{Email: "a@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "a@example.com", resp.User.Email)

	login, err := svc.Login(&dto.LoginRequest{Email: "a@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestRegisterValidation(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(&dto.RegisterRequest{Email: "", Password: "password123"})
	assert.Error(t, err)

	_, err = svc.Register(&dto.RegisterRequest{Email: "a@example.com", Password: "short"})
	assert.Error(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(&dto.RegisterRequest{Email: "a@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Register(&dto.RegisterRequest{Email: "a@example.com", Password: "different-pw"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(&dto.RegisterRequest{Email: "a@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Login(&dto.LoginRequest{Email: "a@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	svc := newAuthService(t)

	registered, err := svc.Register(&dto.RegisterRequest{Email: "a@example.com", Password: "password123"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: registered.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, registered.RefreshToken, refreshed.RefreshToken)

	// The old token is revoked by rotation.
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: registered.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	svc := newAuthService(t)

	registered, err := svc.Register(&dto.RegisterRequest{Email: "a@example.com", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(&dto.LogoutRequest{RefreshToken: registered.RefreshToken}))

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: registered.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}
