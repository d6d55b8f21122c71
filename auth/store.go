package auth

import "context"

// UserStore is the credential store surface the auth pipeline
// consumes. Lookups return (nil, nil) when no record matches, so
// callers can distinguish absence from a store failure.
type UserStore interface {
	FindByID(ctx context.Context, id int) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	Create(ctx context.Context, user *User) (*User, error)
}
