package users

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/user/bloglist-go/apperror"
	"github.com/user/bloglist-go/auth"
)

const minPasswordLength = 3

// Service implements registration and the user queries.
type Service struct {
	store  Store
	tokens *auth.TokenService
}

// NewService creates a new user Service.
func NewService(store Store, tokens *auth.TokenService) *Service {
	return &Service{store: store, tokens: tokens}
}

// Register creates a new user and mints a session token for it.
//
// The uniqueness check is a read before the insert and is not atomic
// against a concurrent registration of the same username; the schema's
// unique constraint is the backstop, and the store maps its violation
// to the same conflict.
func (s *Service) Register(ctx context.Context, req RegisterRequest, ip string) (*auth.SessionResponse, error) {
	existing, err := s.store.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("username must be unique", nil)
	}

	if len(req.Password) < minPasswordLength {
		return nil, apperror.NewValidationError("password must be longer than 3 characters", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.NewInternalError("failed to hash password", err)
	}

	user, err := s.store.Create(ctx, &auth.User{
		Username:     req.Username,
		Avatar:       req.Avatar,
		PasswordHash: string(hash),
		IP:           ip,
	})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, apperror.NewInternalError("failed to create session", err)
	}

	return &auth.SessionResponse{
		Token:    token,
		Username: user.Username,
		ID:       user.ID,
		Avatar:   user.Avatar,
	}, nil
}

// List returns all users with their blogs populated.
func (s *Service) List(ctx context.Context) ([]UserWithBlogs, error) {
	return s.store.ListWithBlogs(ctx)
}

// Info returns the current principal with its owned blog ids filled
// in.
func (s *Service) Info(ctx context.Context, user *auth.User) (*auth.User, error) {
	ids, err := s.store.BlogIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.Blogs = ids
	return user, nil
}
