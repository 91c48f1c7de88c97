package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/devsolutions/intake-api/internal/core/domain"
	"github.com/devsolutions/intake-api/internal/core/ports"
)

// AuthService implements the auth gate: password login, the admin-profile
// authorization check, and session revocation.
type AuthService struct {
	users     ports.AuthRepository
	profiles  ports.AdminProfileRepository
	sessions  ports.SessionStore
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(
	users ports.AuthRepository,
	profiles ports.AdminProfileRepository,
	sessions ports.SessionStore,
	jwtSecret string,
	tokenTTL time.Duration,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		profiles:  profiles,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// Login authenticates by email and password. A session is only issued when
// the account also has an admin profile: a correct password on a non-admin
// account fails with ErrNotAdmin and no token exists to revoke afterwards.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.Session, *domain.AdminProfile, error) {
	if email == "" || password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	profile, err := s.profiles.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	session, err := s.generateSession(user)
	if err != nil {
		return nil, nil, err
	}

	return session, profile, nil
}

// Logout revokes the given token until its natural expiry. Idempotent.
func (s *AuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return nil
	}
	return s.sessions.Revoke(ctx, tokenID, expiresAt)
}

// Authorize returns the admin profile for userID, or ErrNotAdmin.
func (s *AuthService) Authorize(ctx context.Context, userID string) (*domain.AdminProfile, error) {
	return s.profiles.FindByUserID(ctx, userID)
}

// EnsureAdmin creates or refreshes the bootstrap admin account and its
// profile. Safe to call on every startup.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password, fullName string) error {
	if email == "" || password == "" {
		return domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if hashErr != nil {
			return hashErr
		}
		now := time.Now().UTC()
		user, err = s.users.Create(ctx, &domain.User{
			Email:        email,
			PasswordHash: string(hash),
			FullName:     fullName,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}
	if err != nil {
		return err
	}

	return s.profiles.Upsert(ctx, &domain.AdminProfile{
		ID:       user.ID,
		Email:    user.Email,
		FullName: fullName,
		Role:     "admin",
	})
}

func (s *AuthService) generateSession(user *domain.User) (*ports.Session, error) {
	tokenID, err := newTokenID()
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"jti":   tokenID,
		"exp":   expiresAt.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &ports.Session{Token: signed, TokenID: tokenID, ExpiresAt: expiresAt}, nil
}

// newTokenID returns a random 128-bit identifier used as the JWT ID claim,
// the unit of revocation in the session store.
func newTokenID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
