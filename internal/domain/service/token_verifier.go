package service

import "context"

// TokenVerifier resolves a bearer credential to a stable user id.
// The identity provider itself is a black box behind this interface.
type TokenVerifier interface {
	// Verify validates the bearer token and returns the provider's stable
	// user id, or an error for a missing/expired/forged credential.
	Verify(ctx context.Context, idToken string) (string, error)
}
