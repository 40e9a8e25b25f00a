package auth

import (
	"context"
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	// ErrPasswordSignIn is returned by providers whose password exchange
	// happens in the mobile client SDK rather than on this server.
	ErrPasswordSignIn = errors.New("password sign-in is handled by the identity provider client")
)

// Identity is the stable identity the provider resolves for a caller.
type Identity struct {
	UID      string
	Email    string
	PhotoURL string
}

// Provider abstracts the external identity service. The Firebase
// implementation verifies client-issued ID tokens; the local
// implementation owns the full credential exchange for self-hosted
// deployments.
type Provider interface {
	// Verify resolves the identity behind a bearer token.
	Verify(ctx context.Context, token string) (*Identity, error)
	// SignUp registers a credential pair and returns the new identity.
	SignUp(ctx context.Context, email, password string) (*Identity, error)
	// SignIn exchanges credentials for an access token.
	SignIn(ctx context.Context, email, password string) (*Identity, string, error)
	// SignOut invalidates the user's outstanding sessions.
	SignOut(ctx context.Context, uid string) error
}
