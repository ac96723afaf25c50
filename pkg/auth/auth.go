// Package auth issues the demo bearer tokens and guards the API routes.
// Tokens are opaque mock credentials: the middleware checks presence and
// shape, not validity — server-side authorization enforcement is a
// non-goal of this system.
package auth

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"smartgrocery/pkg/utils"
)

const tokenPrefix = "mock-token-"

// Token mints a session token for the given user id.
func Token(userID int) string {
	return fmt.Sprintf("%s%d-%d", tokenPrefix, userID, time.Now().UnixNano())
}

// UserID extracts the user id from a token minted by Token. Returns 0
// when the token has a different shape.
func UserID(token string) int {
	rest, ok := strings.CutPrefix(token, tokenPrefix)
	if !ok {
		return 0
	}
	idStr, _, ok := strings.Cut(rest, "-")
	if !ok {
		return 0
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0
	}
	return id
}

// Middleware rejects requests without a bearer Authorization header.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := r.Header.Get("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// BearerToken returns the token from the Authorization header, or "".
func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	tok, ok := strings.CutPrefix(h, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(tok)
}
