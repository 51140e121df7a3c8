// Package auth resolves bearer credentials through Firebase Auth.
package auth

import (
	"context"

	"forno/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

type firebaseVerifier struct {
	client *firebaseauth.Client
}

// NewTokenVerifier creates a TokenVerifier backed by Firebase Auth.
func NewTokenVerifier(ctx context.Context, app *firebase.App) (service.TokenVerifier, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return &firebaseVerifier{client: client}, nil
}

// Verify validates the ID token and returns the authenticated user's UID.
func (v *firebaseVerifier) Verify(ctx context.Context, idToken string) (string, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", errors.Wrap(err, "failed to verify ID token")
	}

	return token.UID, nil
}
