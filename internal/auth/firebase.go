package auth

import (
	"context"
	"fmt"

	fbauth "firebase.google.com/go/v4/auth"
)

// FirebaseProvider resolves identities with the Firebase Admin SDK. The
// mobile client performs the password exchange itself and sends the
// resulting ID token as a bearer credential.
type FirebaseProvider struct {
	client *fbauth.Client
}

func NewFirebaseProvider(client *fbauth.Client) *FirebaseProvider {
	return &FirebaseProvider{client: client}
}

func (p *FirebaseProvider) Verify(ctx context.Context, token string) (*Identity, error) {
	decoded, err := p.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	identity := &Identity{UID: decoded.UID}
	if email, ok := decoded.Claims["email"].(string); ok {
		identity.Email = email
	}
	if picture, ok := decoded.Claims["picture"].(string); ok {
		identity.PhotoURL = picture
	}
	return identity, nil
}

func (p *FirebaseProvider) SignUp(ctx context.Context, email, password string) (*Identity, error) {
	params := (&fbauth.UserToCreate{}).Email(email).Password(password)
	record, err := p.client.CreateUser(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("create identity: %w", err)
	}
	return &Identity{
		UID:      record.UID,
		Email:    record.Email,
		PhotoURL: record.PhotoURL,
	}, nil
}

func (p *FirebaseProvider) SignIn(ctx context.Context, email, password string) (*Identity, string, error) {
	return nil, "", ErrPasswordSignIn
}

func (p *FirebaseProvider) SignOut(ctx context.Context, uid string) error {
	if err := p.client.RevokeRefreshTokens(ctx, uid); err != nil {
		return fmt.Errorf("revoke sessions for %s: %w", uid, err)
	}
	return nil
}
