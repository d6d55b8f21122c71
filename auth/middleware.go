package auth

import (
	"net/http"

	"github.com/user/bloglist-go/apperror"
)

// Middleware authenticates requests: it extracts the bearer token,
// verifies it, resolves the user it names, and attaches that user to
// the request context for downstream handlers.
type Middleware struct {
	tokens *TokenService
	store  UserStore
}

// NewMiddleware creates the authentication middleware.
func NewMiddleware(tokens *TokenService, store UserStore) *Middleware {
	return &Middleware{tokens: tokens, store: store}
}

// RequireUser rejects requests without a valid session token. A token
// whose user no longer exists is treated the same as an invalid token:
// the session died with the account.
func (m *Middleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := TokenFromHeader(r.Header.Get("Authorization"))
		if !ok {
			WriteError(w, r, apperror.NewAuthError("invalid token", nil))
			return
		}

		claims, err := m.tokens.Parse(token)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		user, err := m.store.FindByID(r.Context(), claims.UserID)
		if err != nil {
			WriteError(w, r, err)
			return
		}
		if user == nil {
			WriteError(w, r, apperror.NewAuthError("invalid token", nil))
			return
		}

		ctx := NewContextWithUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
