package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/fahmidl/app-sso/internal/auth/provider"
	"github.com/fahmidl/app-sso/internal/auth/resolver"
	"github.com/fahmidl/app-sso/internal/session"
	"github.com/fahmidl/app-sso/internal/user"
)

// Handler drives the login gateway: the provider flows, the session
// store, the identity resolver and the views. All dependencies are
// injected; there is no package-level state.
type Handler struct {
	flows      provider.Set
	sessions   session.Store
	resolver   resolver.Resolver
	users      user.Store
	sessionTTL time.Duration
	log        zerolog.Logger
}

func New(
	flows provider.Set,
	sessions session.Store,
	res resolver.Resolver,
	users user.Store,
	sessionTTL time.Duration,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		flows:      flows,
		sessions:   sessions,
		resolver:   res,
		users:      users,
		sessionTTL: sessionTTL,
		log:        log,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.index)
	r.GET("/login/:provider", h.login)
	r.GET("/authorize/:provider", h.callback)
	r.GET("/logout", h.logout)
}

// index renders the profile when the session resolves to a user and the
// login view otherwise.
func (h *Handler) index(c *gin.Context) {
	sess := h.currentSession(c)
	if sess.Authenticated() {
		u, err := h.users.FindByID(c.Request.Context(), sess.UserID)
		if err == nil {
			c.HTML(http.StatusOK, "profile.html", gin.H{"User": u})
			return
		}
		// A stale user reference renders as anonymous.
		h.log.Warn().Int64("user_id", sess.UserID).Err(err).Msg("session references unknown user")
	}

	c.HTML(http.StatusOK, "login.html", gin.H{"Providers": provider.Kinds()})
}

// logout clears the user reference but keeps the session alive.
func (h *Handler) logout(c *gin.Context) {
	if sess := h.currentSession(c); sess.Authenticated() {
		sess.UserID = 0
		if err := h.sessions.Save(c.Request.Context(), *sess); err != nil {
			h.log.Error().Err(err).Msg("logout: session save failed")
		}
	}
	c.Redirect(http.StatusFound, "/")
}
