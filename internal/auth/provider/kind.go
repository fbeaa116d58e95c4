package provider

// Kind enumerates the supported identity providers. The set is closed:
// every dispatch on Kind is an exhaustive switch, not a registry lookup.
type Kind string

const (
	Microsoft Kind = "microsoft"
	Google    Kind = "google"
)

// Kinds lists every supported provider, in display order.
func Kinds() []Kind {
	return []Kind{Microsoft, Google}
}

// ParseKind maps a URL path segment to a Kind. Unknown names are
// rejected before any flow starts.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case Microsoft:
		return Microsoft, true
	case Google:
		return Google, true
	}
	return "", false
}

// endpoints describes one provider's OIDC surface as plain data.
type endpoints struct {
	authURL     string
	tokenURL    string
	userinfoURL string
	jwksURL     string
	issuer      string

	// skipIssuerCheck disables issuer validation for this provider.
	// Microsoft's "common" endpoint issues per-tenant iss values, so the
	// original deployment accepted any issuer. Known weakness, preserved
	// deliberately; flipping this would break multi-tenant accounts.
	skipIssuerCheck bool
}

func endpointsFor(k Kind) endpoints {
	switch k {
	case Microsoft:
		return endpoints{
			authURL:         "https://login.microsoftonline.com/common/oauth2/v2.0/authorize",
			tokenURL:        "https://login.microsoftonline.com/common/oauth2/v2.0/token",
			userinfoURL:     "https://graph.microsoft.com/oidc/userinfo",
			jwksURL:         "https://login.microsoftonline.com/common/discovery/v2.0/keys",
			issuer:          "https://login.microsoftonline.com/common/v2.0",
			skipIssuerCheck: true,
		}
	case Google:
		return endpoints{
			authURL:     "https://accounts.google.com/o/oauth2/v2/auth",
			tokenURL:    "https://oauth2.googleapis.com/token",
			userinfoURL: "https://openidconnect.googleapis.com/v1/userinfo",
			jwksURL:     "https://www.googleapis.com/oauth2/v3/certs",
			issuer:      "https://accounts.google.com",
		}
	}
	panic("provider: unknown kind " + string(k))
}

// CallbackURL builds the redirect target this service registers with
// the provider for k.
func CallbackURL(baseURL string, k Kind) string {
	return baseURL + "/authorize/" + string(k)
}
