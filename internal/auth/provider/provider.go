package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"github.com/fahmidl/app-sso/internal/auth"
)

// Flow is the per-provider surface the login handlers consume.
// Implementations return identity facts only and must not touch users
// or sessions.
type Flow interface {
	// AuthCodeURL returns the provider's authorization URL embedding
	// state and nonce. No provider contact happens at this step.
	AuthCodeURL(state, nonce string) string

	// Exchange trades the authorization code for tokens, verifies the
	// ID token against the stored nonce and returns the normalized
	// identity.
	Exchange(ctx context.Context, code, nonce string) (*auth.Identity, error)
}

// Set carries one configured flow per supported provider.
type Set struct {
	Microsoft Flow
	Google    Flow
}

// ForKind selects the flow for k. Exhaustive over Kind.
func (s Set) ForKind(k Kind) Flow {
	switch k {
	case Microsoft:
		return s.Microsoft
	case Google:
		return s.Google
	}
	panic("provider: unknown kind " + string(k))
}

// Client executes the OIDC authorization-code flow against one
// provider. Endpoints are static data; the JWKS is fetched lazily and
// cached by go-oidc's remote key set.
type Client struct {
	kind     Kind
	oauth    *oauth2.Config
	verifier *oidc.IDTokenVerifier
	timeout  time.Duration
}

// New configures the flow client for k. ctx outlives the call: the
// remote key set uses it for later JWKS refreshes.
func New(ctx context.Context, k Kind, clientID, clientSecret, redirectURL string, timeout time.Duration) *Client {
	ep := endpointsFor(k)

	keySet := oidc.NewRemoteKeySet(ctx, ep.jwksURL)
	verifier := oidc.NewVerifier(ep.issuer, keySet, &oidc.Config{
		ClientID:        clientID,
		SkipIssuerCheck: ep.skipIssuerCheck,
	})

	return &Client{
		kind: k,
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:  ep.authURL,
				TokenURL: ep.tokenURL,
			},
			Scopes: []string{oidc.ScopeOpenID, "email", "profile"},
		},
		verifier: verifier,
		timeout:  timeout,
	}
}

func (c *Client) AuthCodeURL(state, nonce string) string {
	return c.oauth.AuthCodeURL(state, oidc.Nonce(nonce))
}

func (c *Client) Exchange(ctx context.Context, code, nonce string) (*auth.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			// The provider answered and rejected the grant.
			return nil, fmt.Errorf("%s rejected code exchange: %w", c.kind, auth.ErrTokenValidation)
		}
		return nil, fmt.Errorf("%s token endpoint: %v: %w", c.kind, err, auth.ErrProviderUnavailable)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, fmt.Errorf("%s returned no id_token: %w", c.kind, auth.ErrTokenValidation)
	}

	idToken, err := c.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			// Timed out fetching the signing keys, not a bad token.
			return nil, fmt.Errorf("%s key set: %v: %w", c.kind, err, auth.ErrProviderUnavailable)
		}
		return nil, fmt.Errorf("%s id_token verification: %v: %w", c.kind, err, auth.ErrTokenValidation)
	}

	// go-oidc checks signature, expiry and audience; the nonce binding
	// is ours to enforce.
	if nonce == "" || idToken.Nonce != nonce {
		return nil, fmt.Errorf("%s nonce mismatch: %w", c.kind, auth.ErrTokenValidation)
	}

	var claims struct {
		Subject string `json:"sub"`
		Name    string `json:"name"`
		Email   string `json:"email"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("%s id_token claims parse: %v: %w", c.kind, err, auth.ErrTokenValidation)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%s id_token missing sub: %w", c.kind, auth.ErrTokenValidation)
	}

	name := claims.Name
	if name == "" {
		name = "N/A"
	}

	return &auth.Identity{
		Subject: claims.Subject,
		Name:    name,
		Email:   claims.Email,
	}, nil
}
