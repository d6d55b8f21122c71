package users

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/bloglist-go/apperror"
	"github.com/user/bloglist-go/auth"
	"github.com/user/bloglist-go/config"
)

// fakeStore is an in-memory Store. Create mirrors the schema's
// constraints: unique usernames and a minimum username length.
type fakeStore struct {
	byID    map[int]*auth.User
	blogIDs map[int][]int
	nextID  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		byID:    make(map[int]*auth.User),
		blogIDs: make(map[int][]int),
		nextID:  1,
	}
}

func (s *fakeStore) FindByID(_ context.Context, id int) (*auth.User, error) {
	return s.byID[id], nil
}

func (s *fakeStore) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	for _, u := range s.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) Create(_ context.Context, user *auth.User) (*auth.User, error) {
	if len(user.Username) < 3 {
		return nil, apperror.NewValidationError("username must be at least 3 characters long", nil)
	}
	for _, u := range s.byID {
		if u.Username == user.Username {
			return nil, apperror.NewConflictError("username must be unique", nil)
		}
	}
	user.ID = s.nextID
	s.nextID++
	user.Blogs = []int{}
	s.byID[user.ID] = user
	return user, nil
}

func (s *fakeStore) ListWithBlogs(_ context.Context) ([]UserWithBlogs, error) {
	result := []UserWithBlogs{}
	for id := 1; id < s.nextID; id++ {
		u, ok := s.byID[id]
		if !ok {
			continue
		}
		result = append(result, UserWithBlogs{
			ID:       u.ID,
			Username: u.Username,
			Avatar:   u.Avatar,
			Blogs:    []BlogSummary{},
		})
	}
	return result, nil
}

func (s *fakeStore) BlogIDs(_ context.Context, userID int) ([]int, error) {
	ids, ok := s.blogIDs[userID]
	if !ok {
		return []int{}, nil
	}
	return ids, nil
}

func newTestHandlers(store Store) *Handlers {
	tokens := auth.NewTokenService(&config.AuthConfig{
		JWTSecret:     "sekret",
		TokenDuration: time.Hour,
	})
	return NewHandlers(NewService(store, tokens))
}

func postUser(t *testing.T, h *Handlers, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleCreate()(rec, req)
	return rec
}

func TestRegisterSuccess(t *testing.T) {
	h := newTestHandlers(newFakeStore())

	rec := postUser(t, h, `{"username":"fakeuser","password":"password"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "fakeuser", body["username"])
	assert.NotEmpty(t, body["token"])
	assert.NotZero(t, body["id"])
	assert.NotContains(t, body, "passwordHash")
	assert.NotContains(t, body, "password_hash")
	assert.NotContains(t, body, "ip")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	h := newTestHandlers(newFakeStore())

	first := postUser(t, h, `{"username":"root","password":"password"}`)
	require.Equal(t, http.StatusCreated, first.Code)

	second := postUser(t, h, `{"username":"root","password":"password"}`)
	assert.Equal(t, http.StatusBadRequest, second.Code)
	assert.JSONEq(t, `{"error":"username must be unique"}`, second.Body.String())
}

func TestRegisterShortPassword(t *testing.T) {
	h := newTestHandlers(newFakeStore())

	rec := postUser(t, h, `{"username":"robot","password":"pw"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"password must be longer than 3 characters"}`, rec.Body.String())
}

func TestRegisterShortUsername(t *testing.T) {
	// The minimum username length comes from the store's schema, not
	// the handler; the store's failure maps to a 400.
	h := newTestHandlers(newFakeStore())

	rec := postUser(t, h, `{"username":"op","password":"swordfish"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "username")
}

func TestRegisterMissingFields(t *testing.T) {
	h := newTestHandlers(newFakeStore())

	rec := postUser(t, h, `{"username":"root"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterTokenIsValidSession(t *testing.T) {
	store := newFakeStore()
	tokens := auth.NewTokenService(&config.AuthConfig{
		JWTSecret:     "sekret",
		TokenDuration: time.Hour,
	})
	h := NewHandlers(NewService(store, tokens))

	rec := postUser(t, h, `{"username":"fresh","password":"password"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp auth.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	claims, err := tokens.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, claims.UserID)
	assert.Equal(t, "fresh", claims.Username)
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	store := newFakeStore()
	h := newTestHandlers(store)

	rec := postUser(t, h, `{"username":"hashed","password":"password"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	user, err := store.FindByUsername(context.Background(), "hashed")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEqual(t, "password", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password")))
}

func TestListUsers(t *testing.T) {
	store := newFakeStore()
	h := newTestHandlers(store)

	require.Equal(t, http.StatusCreated, postUser(t, h, `{"username":"alice","password":"password"}`).Code)
	require.Equal(t, http.StatusCreated, postUser(t, h, `{"username":"bob","password":"password"}`).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	h.HandleList()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var list []UserWithBlogs
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "alice", list[0].Username)
	assert.Equal(t, "bob", list[1].Username)
}

func TestInfoReturnsOwnedBlogIDs(t *testing.T) {
	store := newFakeStore()
	user, err := store.Create(context.Background(), &auth.User{Username: "owner", PasswordHash: "x"})
	require.NoError(t, err)
	store.blogIDs[user.ID] = []int{3, 5}

	h := newTestHandlers(store)

	req := httptest.NewRequest(http.MethodGet, "/api/users/info", nil)
	req = req.WithContext(auth.NewContextWithUser(req.Context(), user))
	rec := httptest.NewRecorder()
	h.HandleInfo()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got auth.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "owner", got.Username)
	assert.Equal(t, []int{3, 5}, got.Blogs)
}

func TestInfoWithoutPrincipal(t *testing.T) {
	h := newTestHandlers(newFakeStore())

	req := httptest.NewRequest(http.MethodGet, "/api/users/info", nil)
	rec := httptest.NewRecorder()
	h.HandleInfo()(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
