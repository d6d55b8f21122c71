package blogs

import "context"

// Store is the content store surface the blog endpoints consume.
// Get returns (nil, nil) when no blog matches.
type Store interface {
	List(ctx context.Context) ([]Blog, error)
	Get(ctx context.Context, id int) (*Blog, error)
	Create(ctx context.Context, blog *Blog) (*Blog, error)
	UpdateLikes(ctx context.Context, id, likes int) (*Blog, error)
	AppendComment(ctx context.Context, id int, comment string) (*Blog, error)
	Delete(ctx context.Context, id int) error
}
