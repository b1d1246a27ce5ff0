package admin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtsvc "kikabraids/internal/pkg/jwt"
)

func TestService_Login(t *testing.T) {
	j := jwtsvc.New("test_secret_key_32_characters_min", time.Hour)
	svc, err := NewService("kikabraids2026", j)
	require.NoError(t, err)

	token, err := svc.Login("kikabraids2026")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := j.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, jwtsvc.RoleAdmin, claims.Role)
}

func TestService_Login_WrongPassword(t *testing.T) {
	j := jwtsvc.New("test_secret_key_32_characters_min", time.Hour)
	svc, err := NewService("kikabraids2026", j)
	require.NoError(t, err)

	token, err := svc.Login("guess")
	assert.ErrorIs(t, err, ErrBadCredentials)
	assert.Empty(t, token)
}
