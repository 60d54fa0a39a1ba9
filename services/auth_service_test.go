package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niksankarkee/restosaas-sub000/repository"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register("Taro@Example.com", "secret123", "Taro", "Tanaka", "090-1111-2222")
	require.NoError(t, err)
	assert.Equal(t, "taro@example.com", user.Email)
	assert.Equal(t, "customer", user.Role)
	assert.NotEqual(t, "secret123", user.Password)

	token, got, err := svc.Login("taro@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, got.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register("taro@example.com", "secret123", "Taro", "", "")
	require.NoError(t, err)

	_, err = svc.Register("TARO@example.com", "other456", "Jiro", "", "")
	assert.Error(t, err)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register("taro@example.com", "secret123", "Taro", "", "")
	require.NoError(t, err)

	_, _, err = svc.Login("taro@example.com", "wrong")
	assert.Error(t, err)

	_, _, err = svc.Login("nobody@example.com", "secret123")
	assert.Error(t, err)
}

func TestUpdateProfileFiltersFields(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register("taro@example.com", "secret123", "Taro", "", "")
	require.NoError(t, err)

	got, err := svc.UpdateProfile(user.ID, map[string]any{
		"first_name": "Ichiro",
		"role":       "admin", // must be ignored
	})
	require.NoError(t, err)
	assert.Equal(t, "Ichiro", got.FirstName)
	assert.Equal(t, "customer", got.Role)
}
