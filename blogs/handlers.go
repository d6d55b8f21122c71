package blogs

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/user/bloglist-go/apperror"
	"github.com/user/bloglist-go/auth"
)

// Handlers exposes the blog endpoints over HTTP.
type Handlers struct {
	service *Service
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes mounts the blog routes. Creation and deletion require
// an authenticated user; reads, likes updates and comment appends do
// not.
func (h *Handlers) RegisterRoutes(r chi.Router, requireUser func(http.Handler) http.Handler) {
	r.Get("/", h.HandleList())
	r.Get("/{id}", h.HandleGet())
	r.Put("/{id}", h.HandleUpdateLikes())
	r.Post("/{id}/comments", h.HandleAddComment())

	r.Group(func(r chi.Router) {
		r.Use(requireUser)
		r.Post("/", h.HandleCreate())
		r.Delete("/{id}", h.HandleDelete())
	})
}

func blogID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, apperror.NewBadRequestError("invalid blog id", err)
	}
	return id, nil
}

// HandleList godoc
// @Summary List blogs
// @Description Returns all blogs with their owners populated.
// @Tags blogs
// @Produce json
// @Success 200 {array} blogs.Blog
// @Router /api/blogs [get]
func (h *Handlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := h.service.List(r.Context())
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, list)
	}
}

// HandleGet godoc
// @Summary Get a blog
// @Tags blogs
// @Produce json
// @Param id path int true "Blog ID"
// @Success 200 {object} blogs.Blog
// @Failure 404 {object} apperror.ErrorResponse "Blog not found"
// @Router /api/blogs/{id} [get]
func (h *Handlers) HandleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := blogID(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		blog, err := h.service.Get(r.Context(), id)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, blog)
	}
}

// HandleCreate godoc
// @Summary Create a blog
// @Description Creates a blog owned by the authenticated user. Likes defaults to zero.
// @Tags blogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param blogBody body blogs.CreateRequest true "Blog to create"
// @Success 200 {object} blogs.Blog
// @Failure 400 {object} apperror.ErrorResponse "Missing title or url"
// @Failure 401 {object} apperror.ErrorResponse "Invalid or missing token"
// @Router /api/blogs [post]
func (h *Handlers) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("invalid token", nil))
			return
		}

		var req CreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		blog, err := h.service.Create(r.Context(), user, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, blog)
	}
}

// HandleUpdateLikes godoc
// @Summary Update blog likes
// @Description Replaces the like counter of a blog.
// @Tags blogs
// @Accept json
// @Produce json
// @Param id path int true "Blog ID"
// @Param likesBody body blogs.UpdateLikesRequest true "New like count"
// @Success 200 {object} blogs.Blog
// @Failure 404 {object} apperror.ErrorResponse "Blog not found"
// @Router /api/blogs/{id} [put]
func (h *Handlers) HandleUpdateLikes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := blogID(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		var req UpdateLikesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		blog, err := h.service.UpdateLikes(r.Context(), id, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, blog)
	}
}

// HandleAddComment godoc
// @Summary Comment on a blog
// @Description Appends a comment to a blog's comment list.
// @Tags blogs
// @Accept json
// @Produce json
// @Param id path int true "Blog ID"
// @Param commentBody body blogs.CommentRequest true "Comment to append"
// @Success 200 {object} blogs.Blog
// @Failure 400 {object} apperror.ErrorResponse "Empty comment"
// @Failure 404 {object} apperror.ErrorResponse "Blog not found"
// @Router /api/blogs/{id}/comments [post]
func (h *Handlers) HandleAddComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := blogID(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		var req CommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		blog, err := h.service.AddComment(r.Context(), id, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, blog)
	}
}

// HandleDelete godoc
// @Summary Delete a blog
// @Description Deletes a blog owned by the authenticated user.
// @Tags blogs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Blog ID"
// @Success 204 "Blog deleted"
// @Failure 401 {object} apperror.ErrorResponse "Invalid token or not the owner"
// @Failure 404 {object} apperror.ErrorResponse "Blog not found"
// @Router /api/blogs/{id} [delete]
func (h *Handlers) HandleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("invalid token", nil))
			return
		}

		id, err := blogID(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		if err := h.service.Delete(r.Context(), user, id); err != nil {
			auth.WriteError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
