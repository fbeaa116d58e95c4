package handler

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	stateCookieName = "__oauth_state"
	stateTTL        = 5 * time.Minute

	// The nonce binds a login attempt to its callback token; 16 bytes
	// is the floor of required entropy.
	nonceBytes = 16
	stateBytes = 32
)

func randomToken(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// setStateCookie round-trips the OAuth state through a short-lived
// cookie, separate from the session.
func setStateCookie(c *gin.Context, state string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(stateTTL.Seconds()),
	})
}

func validState(c *gin.Context) bool {
	state := c.Query("state")
	if state == "" {
		return false
	}

	cookie, err := c.Request.Cookie(stateCookieName)
	if err != nil {
		return false
	}
	return cookie.Value == state
}
