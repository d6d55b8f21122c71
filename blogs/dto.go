package blogs

// CreateRequest is the blog creation payload. Likes is a pointer so an
// omitted counter can default to zero.
type CreateRequest struct {
	Title   string `json:"title" example:"new blog"`
	Author  string `json:"author,omitempty" example:"cody"`
	URL     string `json:"url" example:"https://example.com"`
	Content string `json:"content,omitempty" example:"blog body"`
	Likes   *int   `json:"likes,omitempty" example:"0"`
}

// UpdateLikesRequest is the likes replacement payload.
type UpdateLikesRequest struct {
	Likes *int `json:"likes" example:"200"`
}

// CommentRequest is the comment append payload.
type CommentRequest struct {
	Comment string `json:"comment" example:"great post"`
}
