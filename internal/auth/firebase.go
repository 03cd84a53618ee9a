package auth

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// ErrNoEmail is returned when a verified Google token carries no email.
var ErrNoEmail = errors.New("google token has no email")

// GoogleProfile is what a verified Google ID token tells us about the user.
type GoogleProfile struct {
	UID   string
	Email string
	Name  string
}

// GoogleVerifier verifies Google ID tokens.
type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (GoogleProfile, error)
}

type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// FirebaseVerifier verifies ID tokens with the Firebase Admin SDK.
type FirebaseVerifier struct {
	client idTokenVerifier
}

// NewFirebaseVerifier initializes a Firebase app from a service-account JSON
// document.
func NewFirebaseVerifier(ctx context.Context, credJSON string) (*FirebaseVerifier, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsJSON([]byte(credJSON)))
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firebase Auth client: %w", err)
	}
	return &FirebaseVerifier{client: client}, nil
}

// Verify checks idToken and extracts the profile claims.
func (f *FirebaseVerifier) Verify(ctx context.Context, idToken string) (GoogleProfile, error) {
	token, err := f.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return GoogleProfile{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	p := GoogleProfile{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		p.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		p.Name = name
	}
	if p.Email == "" {
		return GoogleProfile{}, ErrNoEmail
	}
	return p, nil
}
