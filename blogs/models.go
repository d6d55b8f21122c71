// Package blogs implements the blog endpoints: listing, creation,
// likes updates, comment appends, and owner-guarded deletion.
package blogs

// Owner is the reduced user view embedded in blog responses.
type Owner struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// Blog is a blog post. Comments are an ordered, append-only list; the
// like counter is replaced wholesale on update. UserID is the owning
// user's identifier and only the populated Owner view is serialized.
type Blog struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Author   string   `json:"author,omitempty"`
	URL      string   `json:"url"`
	Content  string   `json:"content,omitempty"`
	Likes    int      `json:"likes"`
	Comments []string `json:"comments"`
	UserID   int      `json:"-"`
	User     *Owner   `json:"user,omitempty"`
}
