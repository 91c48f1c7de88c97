package ports

import (
	"context"
	"time"

	"github.com/devsolutions/intake-api/internal/core/domain"
)

// Session is an issued admin session: the signed JWT plus the claims the
// transport layer needs to revoke it later.
type Session struct {
	Token     string
	TokenID   string
	ExpiresAt time.Time
}

// SessionStore tracks revoked tokens so a forced sign-out is effective
// before the JWT itself expires.
type SessionStore interface {
	// Revoke denylists a token ID until its natural expiry.
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthService implements the auth gate: password login, admin
// authorization, and session termination.
type AuthService interface {
	// Login authenticates by email and password. A session is issued only
	// when the account also has an admin profile; a valid password without
	// one fails with domain.ErrNotAdmin.
	Login(ctx context.Context, email, password string) (*Session, *domain.AdminProfile, error)

	// Logout revokes the given token. Idempotent.
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error

	// Authorize returns the admin profile for userID, or domain.ErrNotAdmin.
	Authorize(ctx context.Context, userID string) (*domain.AdminProfile, error)

	// EnsureAdmin creates or refreshes the bootstrap admin account and its
	// profile. Called once at startup from configuration.
	EnsureAdmin(ctx context.Context, email, password, fullName string) error
}
