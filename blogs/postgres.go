package blogs

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/bloglist-go/apperror"
)

// PostgresStore is the PostgreSQL content store. Comments live in a
// jsonb column so appends keep their order without a join table.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a PostgresStore on the given pool.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

const blogColumns = `b.id, b.title, COALESCE(b.author, ''), b.url, COALESCE(b.content, ''),
	b.likes, b.comments, b.user_id, COALESCE(u.username, '')`

func scanBlog(row pgx.Row) (*Blog, error) {
	var b Blog
	var ownerName string
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Author,
		&b.URL,
		&b.Content,
		&b.Likes,
		&b.Comments,
		&b.UserID,
		&ownerName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewDatabaseError("failed to get blog", err)
	}
	if ownerName != "" {
		b.User = &Owner{ID: b.UserID, Username: ownerName}
	}
	if b.Comments == nil {
		b.Comments = []string{}
	}
	return &b, nil
}

// List returns all blogs with their owners populated.
func (s *PostgresStore) List(ctx context.Context) ([]Blog, error) {
	query := `SELECT ` + blogColumns + `
	          FROM blogs b LEFT JOIN users u ON u.id = b.user_id
	          ORDER BY b.id`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list blogs", err)
	}
	defer rows.Close()

	result := []Blog{}
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *blog)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to list blogs", err)
	}
	return result, nil
}

// Get looks up a single blog by identifier.
func (s *PostgresStore) Get(ctx context.Context, id int) (*Blog, error) {
	query := `SELECT ` + blogColumns + `
	          FROM blogs b LEFT JOIN users u ON u.id = b.user_id
	          WHERE b.id = $1`
	return scanBlog(s.db.QueryRow(ctx, query, id))
}

// Create persists a new blog.
func (s *PostgresStore) Create(ctx context.Context, blog *Blog) (*Blog, error) {
	query := `INSERT INTO blogs (title, author, url, content, likes, comments, user_id)
	          VALUES ($1, NULLIF($2, ''), $3, NULLIF($4, ''), $5, $6, $7)
	          RETURNING id`
	err := s.db.QueryRow(ctx, query,
		blog.Title, blog.Author, blog.URL, blog.Content, blog.Likes, blog.Comments, blog.UserID,
	).Scan(&blog.ID)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to create blog", err)
	}
	return blog, nil
}

// UpdateLikes replaces the like counter of a blog.
func (s *PostgresStore) UpdateLikes(ctx context.Context, id, likes int) (*Blog, error) {
	tag, err := s.db.Exec(ctx, `UPDATE blogs SET likes = $2 WHERE id = $1`, id, likes)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to update likes", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}
	return s.Get(ctx, id)
}

// AppendComment appends a comment to a blog's comment list.
func (s *PostgresStore) AppendComment(ctx context.Context, id int, comment string) (*Blog, error) {
	query := `UPDATE blogs SET comments = comments || to_jsonb($2::text) WHERE id = $1`
	tag, err := s.db.Exec(ctx, query, id, comment)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to add comment", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}
	return s.Get(ctx, id)
}

// Delete removes a blog.
func (s *PostgresStore) Delete(ctx context.Context, id int) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id); err != nil {
		return apperror.NewDatabaseError("failed to delete blog", err)
	}
	return nil
}
