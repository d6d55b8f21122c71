package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserStore is an in-memory UserStore for middleware tests.
type fakeUserStore struct {
	byID        map[int]*User
	findByIDCnt int
}

func newFakeUserStore(users ...*User) *fakeUserStore {
	s := &fakeUserStore{byID: make(map[int]*User)}
	for _, u := range users {
		s.byID[u.ID] = u
	}
	return s
}

func (s *fakeUserStore) FindByID(_ context.Context, id int) (*User, error) {
	s.findByIDCnt++
	return s.byID[id], nil
}

func (s *fakeUserStore) FindByUsername(_ context.Context, username string) (*User, error) {
	for _, u := range s.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) Create(_ context.Context, user *User) (*User, error) {
	user.ID = len(s.byID) + 1
	s.byID[user.ID] = user
	return user, nil
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func runMiddleware(t *testing.T, store *fakeUserStore, tokens *TokenService, authHeader string) (*httptest.ResponseRecorder, *User) {
	t.Helper()

	var seen *User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		require.True(t, ok)
		seen = user
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	NewMiddleware(tokens, store).RequireUser(next).ServeHTTP(rec, req)
	return rec, seen
}

func TestRequireUserMissingHeader(t *testing.T) {
	store := newFakeUserStore(&User{ID: 1, Username: "root"})
	tokens := newTestTokenService("sekret", time.Hour)

	rec, seen := runMiddleware(t, store, tokens, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid token", errorBody(t, rec))
	assert.Nil(t, seen)
	// Without a token no principal resolution may happen.
	assert.Zero(t, store.findByIDCnt)
}

func TestRequireUserMalformedToken(t *testing.T) {
	store := newFakeUserStore(&User{ID: 1, Username: "root"})
	tokens := newTestTokenService("sekret", time.Hour)

	rec, seen := runMiddleware(t, store, tokens, "Bearer garbage")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid token", errorBody(t, rec))
	assert.Nil(t, seen)
	assert.Zero(t, store.findByIDCnt)
}

func TestRequireUserExpiredToken(t *testing.T) {
	user := &User{ID: 1, Username: "root"}
	store := newFakeUserStore(user)

	expired := newTestTokenService("sekret", -time.Second)
	token, err := expired.Generate(user)
	require.NoError(t, err)

	rec, seen := runMiddleware(t, store, newTestTokenService("sekret", time.Hour), "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "token expired, please login again", errorBody(t, rec))
	assert.Nil(t, seen)
}

func TestRequireUserValidToken(t *testing.T) {
	user := &User{ID: 7, Username: "root"}
	store := newFakeUserStore(user)
	tokens := newTestTokenService("sekret", time.Hour)

	token, err := tokens.Generate(user)
	require.NoError(t, err)

	rec, seen := runMiddleware(t, store, tokens, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, 7, seen.ID)
	assert.Equal(t, "root", seen.Username)
}

func TestRequireUserLowercaseScheme(t *testing.T) {
	user := &User{ID: 7, Username: "root"}
	store := newFakeUserStore(user)
	tokens := newTestTokenService("sekret", time.Hour)

	token, err := tokens.Generate(user)
	require.NoError(t, err)

	rec, seen := runMiddleware(t, store, tokens, "bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
}

func TestRequireUserDeletedPrincipal(t *testing.T) {
	// A valid token for a user that no longer exists must not
	// authenticate.
	ghost := &User{ID: 99, Username: "ghost"}
	store := newFakeUserStore() // empty store
	tokens := newTestTokenService("sekret", time.Hour)

	token, err := tokens.Generate(ghost)
	require.NoError(t, err)

	rec, seen := runMiddleware(t, store, tokens, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid token", errorBody(t, rec))
	assert.Nil(t, seen)
	assert.Equal(t, 1, store.findByIDCnt)
}
