package users

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/bloglist-go/apperror"
	"github.com/user/bloglist-go/auth"
)

const (
	pgUniqueViolation = "23505" // unique constraint violation
	pgCheckViolation  = "23514" // check constraint violation
)

// PostgresStore is the PostgreSQL credential store.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a PostgresStore on the given pool.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) scanUser(row pgx.Row) (*auth.User, error) {
	var user auth.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Avatar,
		&user.PasswordHash,
		&user.IP,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}
	return &user, nil
}

// FindByID looks up a user by identifier. The owned blog ids are
// populated on the returned user.
func (s *PostgresStore) FindByID(ctx context.Context, id int) (*auth.User, error) {
	query := `SELECT id, username, COALESCE(avatar, ''), password_hash, COALESCE(ip, ''), created_at
	          FROM users WHERE id = $1`
	user, err := s.scanUser(s.db.QueryRow(ctx, query, id))
	if err != nil || user == nil {
		return user, err
	}
	user.Blogs, err = s.BlogIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// FindByUsername looks up a user by username.
func (s *PostgresStore) FindByUsername(ctx context.Context, username string) (*auth.User, error) {
	query := `SELECT id, username, COALESCE(avatar, ''), password_hash, COALESCE(ip, ''), created_at
	          FROM users WHERE username = $1`
	return s.scanUser(s.db.QueryRow(ctx, query, username))
}

// Create persists a new user record. Uniqueness and the minimum
// username length are enforced by the schema; their violations map to
// the same client-visible failures the handler-level checks produce,
// which covers the race between the pre-insert read and the insert.
func (s *PostgresStore) Create(ctx context.Context, user *auth.User) (*auth.User, error) {
	query := `INSERT INTO users (username, avatar, password_hash, ip)
	          VALUES ($1, NULLIF($2, ''), $3, NULLIF($4, ''))
	          RETURNING id, created_at`
	err := s.db.QueryRow(ctx, query, user.Username, user.Avatar, user.PasswordHash, user.IP).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return nil, apperror.NewConflictError("username must be unique", nil)
			case pgCheckViolation:
				return nil, apperror.NewValidationError("username must be at least 3 characters long", nil)
			}
		}
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}
	user.Blogs = []int{}
	return user, nil
}

// ListWithBlogs returns all users with their blogs populated.
func (s *PostgresStore) ListWithBlogs(ctx context.Context) ([]UserWithBlogs, error) {
	query := `SELECT id, username, COALESCE(avatar, '') FROM users ORDER BY id`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list users", err)
	}
	defer rows.Close()

	var result []UserWithBlogs
	index := make(map[int]int)
	for rows.Next() {
		var u UserWithBlogs
		if err := rows.Scan(&u.ID, &u.Username, &u.Avatar); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan user", err)
		}
		u.Blogs = []BlogSummary{}
		index[u.ID] = len(result)
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to list users", err)
	}

	blogQuery := `SELECT id, title, COALESCE(content, ''), user_id FROM blogs ORDER BY id`
	blogRows, err := s.db.Query(ctx, blogQuery)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list blogs for users", err)
	}
	defer blogRows.Close()

	for blogRows.Next() {
		var b BlogSummary
		var ownerID int
		if err := blogRows.Scan(&b.ID, &b.Title, &b.Content, &ownerID); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan blog", err)
		}
		if i, ok := index[ownerID]; ok {
			result[i].Blogs = append(result[i].Blogs, b)
		}
	}
	if err := blogRows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to list blogs for users", err)
	}

	return result, nil
}

// BlogIDs returns the identifiers of the blogs owned by a user.
func (s *PostgresStore) BlogIDs(ctx context.Context, userID int) ([]int, error) {
	rows, err := s.db.Query(ctx, `SELECT id FROM blogs WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list blog ids", err)
	}
	defer rows.Close()

	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan blog id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to list blog ids", err)
	}
	return ids, nil
}
