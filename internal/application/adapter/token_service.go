// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// TokenService verifies bearer tokens at the HTTP boundary. Token issuance
// and account management live outside this service.
type TokenService interface {
	// VerifyToken validates a bearer token and returns its subject.
	VerifyToken(token string) (subject string, err error)
}
