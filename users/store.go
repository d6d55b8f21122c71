package users

import (
	"context"

	"github.com/user/bloglist-go/auth"
)

// Store extends the credential store surface with the listing queries
// only this package needs.
type Store interface {
	auth.UserStore
	ListWithBlogs(ctx context.Context) ([]UserWithBlogs, error)
	BlogIDs(ctx context.Context, userID int) ([]int, error)
}
