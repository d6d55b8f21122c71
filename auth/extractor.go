package auth

import "strings"

const bearerPrefix = "bearer "

// TokenFromHeader extracts the bearer token from an Authorization
// header value. The scheme prefix is matched case-insensitively once
// here; downstream code only ever sees the bare token. A missing or
// malformed header is not an error at this stage: it reports absence,
// and handlers that require authentication reject it there.
func TokenFromHeader(header string) (string, bool) {
	if len(header) < len(bearerPrefix) {
		return "", false
	}
	if !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := header[len(bearerPrefix):]
	if token == "" {
		return "", false
	}
	return token, true
}
