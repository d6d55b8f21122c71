// Package users implements user registration and the user listing
// endpoints, and provides the PostgreSQL credential store consumed by
// the auth pipeline.
package users

// RegisterRequest is the registration request payload.
type RegisterRequest struct {
	Username string `json:"username" example:"fakeuser"`
	Password string `json:"password" example:"password"`
	Avatar   string `json:"avatar,omitempty" example:"https://example.com/a.png"`
}

// BlogSummary is the reduced blog view embedded in user listings.
type BlogSummary struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content,omitempty"`
}

// UserWithBlogs is the public view of a user with their blogs
// populated.
type UserWithBlogs struct {
	ID       int           `json:"id"`
	Username string        `json:"username"`
	Avatar   string        `json:"avatar,omitempty"`
	Blogs    []BlogSummary `json:"blogs"`
}
