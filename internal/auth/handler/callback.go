package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fahmidl/app-sso/internal/auth"
	"github.com/fahmidl/app-sso/internal/auth/provider"
)

// callback completes the flow: code exchange, token verification
// against the pending nonce, identity reconciliation, then session
// binding. Every failure redirects to the anonymous view without
// mutating the session's user reference; tokens and claims never reach
// the client.
func (h *Handler) callback(c *gin.Context) {
	kind, ok := provider.ParseKind(c.Param("provider"))
	if !ok {
		c.String(http.StatusNotFound, "unknown provider")
		return
	}
	flow := h.flows.ForKind(kind)
	ctx := c.Request.Context()

	sess := h.currentSession(c)
	if sess == nil || sess.Nonce == "" {
		h.log.Warn().Str("provider", string(kind)).Err(auth.ErrNoPendingLogin).Msg("callback rejected")
		c.Redirect(http.StatusFound, "/")
		return
	}

	if !validState(c) {
		h.log.Warn().Str("provider", string(kind)).Msg("callback: state mismatch")
		c.Redirect(http.StatusFound, "/")
		return
	}

	if errParam := c.Query("error"); errParam != "" {
		h.log.Warn().
			Str("provider", string(kind)).
			Str("error", errParam).
			Str("desc", c.Query("error_description")).
			Msg("provider returned error")
		c.Redirect(http.StatusFound, "/")
		return
	}

	code := c.Query("code")
	if code == "" {
		h.log.Warn().Str("provider", string(kind)).Msg("callback missing code")
		c.Redirect(http.StatusFound, "/")
		return
	}

	// The nonce is single use: consume it before the exchange so a
	// replayed callback fails even when this one does too.
	nonce := sess.Nonce
	sess.Nonce = ""
	if err := h.sessions.Save(ctx, *sess); err != nil {
		h.log.Error().Err(err).Msg("callback: nonce consume failed")
		c.Redirect(http.StatusFound, "/")
		return
	}

	identity, err := flow.Exchange(ctx, code, nonce)
	if err != nil {
		evt := h.log.Warn().Str("provider", string(kind))
		switch {
		case errors.Is(err, auth.ErrProviderUnavailable):
			evt.Err(err).Msg("provider unavailable")
		case errors.Is(err, auth.ErrTokenValidation):
			evt.Err(err).Msg("token validation failed")
		default:
			evt.Err(err).Msg("code exchange failed")
		}
		c.Redirect(http.StatusFound, "/")
		return
	}

	userID, err := h.resolver.Resolve(ctx, identity)
	if err != nil {
		h.log.Error().Str("provider", string(kind)).Err(err).Msg("identity resolution failed")
		c.Redirect(http.StatusFound, "/")
		return
	}

	sess.UserID = userID
	if err := h.sessions.Save(ctx, *sess); err != nil {
		h.log.Error().Err(err).Msg("callback: session save failed")
		c.Redirect(http.StatusFound, "/")
		return
	}

	h.log.Info().
		Str("provider", string(kind)).
		Int64("user_id", userID).
		Msg("login succeeded")
	c.Redirect(http.StatusFound, "/")
}
