package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/user/bloglist-go/apperror"
)

// Service implements the session operations: credential verification
// and token minting.
type Service struct {
	store  UserStore
	tokens *TokenService
}

// NewService creates a new auth Service.
func NewService(store UserStore, tokens *TokenService) *Service {
	return &Service{store: store, tokens: tokens}
}

// Login verifies a username/password pair and mints a session token.
// An unknown username and a wrong password produce the identical
// failure so the response does not reveal which check failed.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*SessionResponse, error) {
	user, err := s.store.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewAuthError("invalid username or password", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.NewAuthError("invalid username or password", nil)
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, apperror.NewInternalError("failed to create session", err)
	}

	return &SessionResponse{
		Token:    token,
		Username: user.Username,
		ID:       user.ID,
		Avatar:   user.Avatar,
	}, nil
}
