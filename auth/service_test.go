package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/bloglist-go/apperror"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLoginSuccess(t *testing.T) {
	store := newFakeUserStore(&User{
		ID:           1,
		Username:     "root",
		Avatar:       "https://example.com/a.png",
		PasswordHash: hashPassword(t, "password"),
	})
	tokens := newTestTokenService("sekret", time.Hour)
	svc := NewService(store, tokens)

	resp, err := svc.Login(context.Background(), LoginRequest{Username: "root", Password: "password"})
	require.NoError(t, err)

	assert.Equal(t, "root", resp.Username)
	assert.Equal(t, 1, resp.ID)
	assert.Equal(t, "https://example.com/a.png", resp.Avatar)

	claims, err := tokens.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "root", claims.Username)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	store := newFakeUserStore(&User{
		ID:           1,
		Username:     "root",
		PasswordHash: hashPassword(t, "password"),
	})
	svc := NewService(store, newTestTokenService("sekret", time.Hour))

	_, errUnknown := svc.Login(context.Background(), LoginRequest{Username: "nobody", Password: "password"})
	_, errWrongPw := svc.Login(context.Background(), LoginRequest{Username: "root", Password: "wrong"})

	require.Error(t, errUnknown)
	require.Error(t, errWrongPw)

	// An unknown username and a wrong password must not be
	// distinguishable from the outside.
	unknownErr, ok := apperror.FromError(errUnknown)
	require.True(t, ok)
	wrongPwErr, ok := apperror.FromError(errWrongPw)
	require.True(t, ok)

	assert.Equal(t, unknownErr.Type, wrongPwErr.Type)
	assert.Equal(t, unknownErr.Message, wrongPwErr.Message)
	assert.Equal(t, unknownErr.StatusCode(), wrongPwErr.StatusCode())
	assert.True(t, apperror.IsAuthError(errUnknown))
}
