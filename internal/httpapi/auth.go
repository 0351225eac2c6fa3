package httpapi

import (
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// RequireToken rejects requests whose bearer token does not match hash.
// Browsers cannot set headers on websocket upgrades, so the token may also
// come as the access_token query parameter. A nil hash lets everything
// through.
func RequireToken(hash []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if len(hash) == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok {
				token = r.URL.Query().Get("access_token")
				ok = token != ""
			}
			if !ok || bcrypt.CompareHashAndPassword(hash, []byte(token)) != nil {
				w.Header().Set("WWW-Authenticate", `Bearer realm="draft"`)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
