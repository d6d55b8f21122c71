package blogs

import (
	"context"

	"github.com/user/bloglist-go/apperror"
	"github.com/user/bloglist-go/auth"
)

// Service implements the blog operations, including the ownership
// check guarding deletion.
type Service struct {
	store Store
}

// NewService creates a new blog Service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// List returns all blogs.
func (s *Service) List(ctx context.Context) ([]Blog, error) {
	return s.store.List(ctx)
}

// Get returns a single blog or a not-found failure.
func (s *Service) Get(ctx context.Context, id int) (*Blog, error) {
	blog, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, apperror.NewNotFoundError("blog not found", nil)
	}
	return blog, nil
}

// Create validates and persists a new blog owned by the given user.
// An omitted like counter defaults to zero; comments start empty.
func (s *Service) Create(ctx context.Context, user *auth.User, req CreateRequest) (*Blog, error) {
	if req.Title == "" || req.URL == "" {
		return nil, apperror.NewValidationError("title and url are required", nil)
	}

	likes := 0
	if req.Likes != nil {
		likes = *req.Likes
	}

	blog := &Blog{
		Title:    req.Title,
		Author:   req.Author,
		URL:      req.URL,
		Content:  req.Content,
		Likes:    likes,
		Comments: []string{},
		UserID:   user.ID,
	}
	created, err := s.store.Create(ctx, blog)
	if err != nil {
		return nil, err
	}
	created.User = &Owner{ID: user.ID, Username: user.Username}
	return created, nil
}

// UpdateLikes replaces a blog's like counter.
func (s *Service) UpdateLikes(ctx context.Context, id int, req UpdateLikesRequest) (*Blog, error) {
	if req.Likes == nil {
		return nil, apperror.NewValidationError("likes is required", nil)
	}
	blog, err := s.store.UpdateLikes(ctx, id, *req.Likes)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, apperror.NewNotFoundError("blog not found", nil)
	}
	return blog, nil
}

// AddComment appends a comment to a blog.
func (s *Service) AddComment(ctx context.Context, id int, req CommentRequest) (*Blog, error) {
	if req.Comment == "" {
		return nil, apperror.NewValidationError("comment must not be empty", nil)
	}
	blog, err := s.store.AppendComment(ctx, id, req.Comment)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, apperror.NewNotFoundError("blog not found", nil)
	}
	return blog, nil
}

// Delete removes a blog iff the acting user owns it. On an ownership
// mismatch nothing is mutated and the caller sees the authorization
// failure.
func (s *Service) Delete(ctx context.Context, user *auth.User, id int) error {
	blog, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if blog == nil {
		return apperror.NewNotFoundError("blog not found", nil)
	}
	if blog.UserID != user.ID {
		return apperror.NewForbiddenError("not authorized to delete this blog", nil)
	}
	return s.store.Delete(ctx, id)
}
