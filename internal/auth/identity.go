package auth

// Identity is the set of verified claims extracted from a provider's
// ID token. It contains facts only, no decisions.
type Identity struct {
	Subject string // provider-scoped stable user identifier (sub claim)
	Name    string // display name, "N/A" when the provider omits it
	Email   string // empty when the provider supplied none
}
