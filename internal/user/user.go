package user

// User is the local identity record created on first login. Rows are
// written once and never updated: later logins reuse them verbatim even
// when the provider reports new claims.
type User struct {
	ID              int64
	ProviderSubject string
	DisplayName     string
	Email           string // empty when the provider supplied none
}
