package httpapi

import (
	"net/http"

	"github.com/google/uuid"
)

const sessionCookie = "cart_session"

// sessionKey returns the opaque key tying this client to its server-side
// cart, issuing a new one on first touch.
func sessionKey(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}

	key := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    key,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return key
}
