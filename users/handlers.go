package users

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/user/bloglist-go/apperror"
	"github.com/user/bloglist-go/auth"
)

// Handlers exposes the user endpoints over HTTP.
type Handlers struct {
	service *Service
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// HandleCreate godoc
// @Summary Register a new user
// @Description Creates an account and returns a session token with the public account view.
// @Tags users
// @Accept json
// @Produce json
// @Param registerBody body users.RegisterRequest true "Registration details"
// @Success 201 {object} auth.SessionResponse "User created"
// @Failure 400 {object} apperror.ErrorResponse "Validation failure or duplicate username"
// @Router /api/users [post]
func (h *Handlers) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if req.Username == "" || req.Password == "" {
			auth.WriteError(w, r, apperror.NewBadRequestError("username and password are required", nil))
			return
		}

		resp, err := h.service.Register(r.Context(), req, clientIP(r))
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusCreated, resp)
	}
}

// HandleList godoc
// @Summary List users
// @Description Returns all users with their blogs populated.
// @Tags users
// @Produce json
// @Success 200 {array} users.UserWithBlogs
// @Router /api/users [get]
func (h *Handlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := h.service.List(r.Context())
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		if list == nil {
			list = []UserWithBlogs{}
		}
		auth.WriteJSON(w, http.StatusOK, list)
	}
}

// HandleInfo godoc
// @Summary Current user
// @Description Returns the authenticated user's public view with owned blog ids.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} auth.User
// @Failure 401 {object} apperror.ErrorResponse "Invalid or missing token"
// @Router /api/users/info [get]
func (h *Handlers) HandleInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("invalid token", nil))
			return
		}

		info, err := h.service.Info(r.Context(), user)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, info)
	}
}

// clientIP returns the caller's address. The RealIP middleware has
// already folded X-Forwarded-For into RemoteAddr when present.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
