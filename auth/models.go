// Package auth implements the authentication and authorization
// pipeline: bearer token extraction, session token signing and
// verification, principal resolution, and the login endpoint.
package auth

import "time"

// User is the resolved identity behind an authenticated request. The
// password hash and the registration origin address are never
// serialized.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Avatar       string    `json:"avatar,omitempty"`
	PasswordHash string    `json:"-"`
	IP           string    `json:"-"`
	Blogs        []int     `json:"blogs"`
	CreatedAt    time.Time `json:"-"`
}
