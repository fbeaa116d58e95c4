package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fahmidl/app-sso/internal/session"
)

// currentSession loads the session referenced by the request cookie.
// Returns nil when there is none or it has expired.
func (h *Handler) currentSession(c *gin.Context) *session.Session {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	sess, err := h.sessions.Get(c.Request.Context(), cookie.Value)
	if err != nil {
		h.log.Error().Err(err).Msg("session load failed")
		return nil
	}
	if sess == nil {
		return nil
	}
	if time.Now().After(sess.ExpiresAt) {
		_ = h.sessions.Delete(c.Request.Context(), sess.SessionID)
		return nil
	}
	return sess
}

// ensureSession returns the current session or starts a fresh anonymous
// one, issuing its cookie. The caller persists it.
func (h *Handler) ensureSession(c *gin.Context) (*session.Session, error) {
	if sess := h.currentSession(c); sess != nil {
		return sess, nil
	}

	id, err := session.GenerateID()
	if err != nil {
		return nil, err
	}

	sess := &session.Session{
		SessionID: id,
		ExpiresAt: time.Now().Add(h.sessionTTL),
	}
	session.SetCookie(c.Writer, id, sess.ExpiresAt)
	return sess, nil
}
