package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"renthub-backend/internal/security"
)

// LocalProvider stores bcrypt credential hashes in Postgres and issues
// HS256 access tokens. It backs self-hosted deployments where the hosted
// identity provider is not available. SignOut bumps a per-user cutoff so
// previously issued tokens stop verifying, mirroring the hosted
// provider's session revocation.
type LocalProvider struct {
	db     *sql.DB
	tokens security.TokenManager
}

func NewLocalProvider(db *sql.DB, tokens security.TokenManager) *LocalProvider {
	return &LocalProvider{db: db, tokens: tokens}
}

func (p *LocalProvider) Verify(ctx context.Context, token string) (*Identity, error) {
	claims, err := p.tokens.ValidateToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	var email string
	var validAfter sql.NullTime
	query := `SELECT email, tokens_valid_after FROM auth_credentials WHERE uid = $1`
	err = p.db.QueryRowContext(ctx, query, claims.UID).Scan(&email, &validAfter)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, fmt.Errorf("look up credential %s: %w", claims.UID, err)
	}
	if validAfter.Valid && claims.IssuedAt != nil && claims.IssuedAt.Time.Before(validAfter.Time) {
		return nil, ErrInvalidToken
	}

	return &Identity{UID: claims.UID, Email: email}, nil
}

func (p *LocalProvider) SignUp(ctx context.Context, email, password string) (*Identity, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	uid := uuid.NewString()
	query := `INSERT INTO auth_credentials (uid, email, password_hash, created_on) VALUES ($1, $2, $3, $4)`
	if _, err := p.db.ExecContext(ctx, query, uid, email, string(hash), time.Now()); err != nil {
		return nil, fmt.Errorf("store credential: %w", err)
	}

	return &Identity{UID: uid, Email: email}, nil
}

func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (*Identity, string, error) {
	var uid, hash string
	query := `SELECT uid, password_hash FROM auth_credentials WHERE email = $1`
	err := p.db.QueryRowContext(ctx, query, email).Scan(&uid, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("look up credential by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := p.tokens.GenerateAccessToken(uid, email)
	if err != nil {
		return nil, "", fmt.Errorf("issue access token: %w", err)
	}
	return &Identity{UID: uid, Email: email}, token, nil
}

func (p *LocalProvider) SignOut(ctx context.Context, uid string) error {
	query := `UPDATE auth_credentials SET tokens_valid_after = $1 WHERE uid = $2`
	if _, err := p.db.ExecContext(ctx, query, time.Now(), uid); err != nil {
		return fmt.Errorf("revoke sessions for %s: %w", uid, err)
	}
	return nil
}
