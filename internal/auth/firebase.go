package auth

import (
	"context"
	"encoding/base64"
	"errors"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var ErrInvalidToken = errors.New("invalid token")

// Verifier decodes a bearer token and yields the authenticated email.
type Verifier interface {
	Verify(ctx context.Context, idToken string) (email string, err error)
}

// FirebaseVerifier verifies Firebase ID tokens via the Admin SDK.
type FirebaseVerifier struct {
	client *fbauth.Client
}

// NewFirebaseVerifier builds a verifier from a base64-encoded service-account
// JSON blob (the form the credential is shipped in via env).
func NewFirebaseVerifier(ctx context.Context, serviceAccountB64 string) (*FirebaseVerifier, error) {
	if serviceAccountB64 == "" {
		return nil, errors.New("firebase service account not configured")
	}
	raw, err := base64.StdEncoding.DecodeString(serviceAccountB64)
	if err != nil {
		return nil, err
	}
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsJSON(raw))
	if err != nil {
		return nil, err
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}
	return &FirebaseVerifier{client: client}, nil
}

func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (string, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", ErrInvalidToken
	}
	email, _ := token.Claims["email"].(string)
	if email == "" {
		return "", ErrInvalidToken
	}
	return email, nil
}
