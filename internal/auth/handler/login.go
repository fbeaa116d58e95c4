package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fahmidl/app-sso/internal/auth/provider"
)

// login begins the authorization-code flow: it stores a fresh nonce in
// the session, issues the state cookie and redirects to the provider.
func (h *Handler) login(c *gin.Context) {
	kind, ok := provider.ParseKind(c.Param("provider"))
	if !ok {
		c.String(http.StatusNotFound, "unknown provider")
		return
	}
	flow := h.flows.ForKind(kind)

	sess, err := h.ensureSession(c)
	if err != nil {
		h.log.Error().Err(err).Msg("login: session create failed")
		c.Redirect(http.StatusFound, "/")
		return
	}

	nonce, err := randomToken(nonceBytes)
	if err != nil {
		h.log.Error().Err(err).Msg("login: nonce generation failed")
		c.Redirect(http.StatusFound, "/")
		return
	}
	state, err := randomToken(stateBytes)
	if err != nil {
		h.log.Error().Err(err).Msg("login: state generation failed")
		c.Redirect(http.StatusFound, "/")
		return
	}

	// A new attempt replaces any previous pending nonce.
	sess.Nonce = nonce
	if err := h.sessions.Save(c.Request.Context(), *sess); err != nil {
		h.log.Error().Err(err).Msg("login: session save failed")
		c.Redirect(http.StatusFound, "/")
		return
	}

	setStateCookie(c, state)
	c.Redirect(http.StatusFound, flow.AuthCodeURL(state, nonce))
}
