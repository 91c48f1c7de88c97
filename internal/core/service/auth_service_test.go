package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/devsolutions/intake-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubAuthRepo struct {
	byEmail map[string]*domain.User
	nextID  int
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{byEmail: make(map[string]*domain.User)}
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.byEmail[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	clone := *user
	clone.ID = string(rune('a' + r.nextID - 1))
	r.byEmail[clone.Email] = &clone
	out := clone
	return &out, nil
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

type stubProfileRepo struct {
	byUserID map[string]*domain.AdminProfile
	upserts  int
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{byUserID: make(map[string]*domain.AdminProfile)}
}

func (r *stubProfileRepo) FindByUserID(_ context.Context, userID string) (*domain.AdminProfile, error) {
	p, ok := r.byUserID[userID]
	if !ok {
		return nil, domain.ErrNotAdmin
	}
	clone := *p
	return &clone, nil
}

func (r *stubProfileRepo) Upsert(_ context.Context, profile *domain.AdminProfile) error {
	r.upserts++
	clone := *profile
	r.byUserID[profile.ID] = &clone
	return nil
}

type stubSessionStore struct {
	revoked map[string]time.Time
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{revoked: make(map[string]time.Time)}
}

func (s *stubSessionStore) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	s.revoked[tokenID] = expiresAt
	return nil
}

func (s *stubSessionStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := s.revoked[tokenID]
	return ok, nil
}

func seedUser(t *testing.T, users *stubAuthRepo, email, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user, err := users.Create(context.Background(), &domain.User{
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestAuthService_Login_Success(t *testing.T) {
	users := newStubAuthRepo()
	profiles := newStubProfileRepo()
	sessions := newStubSessionStore()
	svc := NewAuthService(users, profiles, sessions, "secret", time.Hour)

	user := seedUser(t, users, "carol@example.com", "s3cret")
	_ = profiles.Upsert(context.Background(), &domain.AdminProfile{ID: user.ID, Email: user.Email, Role: "admin"})

	session, profile, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if session.Token == "" || session.TokenID == "" {
		t.Fatalf("incomplete session: %+v", session)
	}
	if profile == nil || profile.ID != user.ID {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(session.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !tkn.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims["sub"] != user.ID {
		t.Fatalf("sub claim %v, want %s", claims["sub"], user.ID)
	}
	if claims["jti"] != session.TokenID {
		t.Fatalf("jti claim %v, want %s", claims["jti"], session.TokenID)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	users := newStubAuthRepo()
	profiles := newStubProfileRepo()
	svc := NewAuthService(users, profiles, newStubSessionStore(), "secret", time.Hour)

	user := seedUser(t, users, "carol@example.com", "s3cret")
	_ = profiles.Upsert(context.Background(), &domain.AdminProfile{ID: user.ID, Email: user.Email, Role: "admin"})

	if _, _, err := svc.Login(context.Background(), "carol@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmailDoesNotLeakExistence(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), newStubProfileRepo(), newStubSessionStore(), "secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_NonAdminGetsNoToken(t *testing.T) {
	users := newStubAuthRepo()
	svc := NewAuthService(users, newStubProfileRepo(), newStubSessionStore(), "secret", time.Hour)

	seedUser(t, users, "dave@example.com", "s3cret")

	session, _, err := svc.Login(context.Background(), "dave@example.com", "s3cret")
	if !errors.Is(err, domain.ErrNotAdmin) {
		t.Fatalf("expected ErrNotAdmin, got %v", err)
	}
	if session != nil {
		t.Fatalf("session issued to non-admin account")
	}
}

// ---------------------------------------------------------------------------
// Logout / Authorize
// ---------------------------------------------------------------------------

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	sessions := newStubSessionStore()
	svc := NewAuthService(newStubAuthRepo(), newStubProfileRepo(), sessions, "secret", time.Hour)

	expiry := time.Now().Add(time.Hour)
	if err := svc.Logout(context.Background(), "tok-1", expiry); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	revoked, err := sessions.IsRevoked(context.Background(), "tok-1")
	if err != nil || !revoked {
		t.Fatalf("token not revoked (revoked=%v err=%v)", revoked, err)
	}
}

func TestAuthService_Authorize_MissingProfile(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), newStubProfileRepo(), newStubSessionStore(), "secret", time.Hour)

	if _, err := svc.Authorize(context.Background(), "nobody"); !errors.Is(err, domain.ErrNotAdmin) {
		t.Fatalf("expected ErrNotAdmin, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// EnsureAdmin
// ---------------------------------------------------------------------------

func TestAuthService_EnsureAdmin_CreatesAccountAndProfile(t *testing.T) {
	users := newStubAuthRepo()
	profiles := newStubProfileRepo()
	svc := NewAuthService(users, profiles, newStubSessionStore(), "secret", time.Hour)

	if err := svc.EnsureAdmin(context.Background(), "root@example.com", "hunter2", "Root"); err != nil {
		t.Fatalf("EnsureAdmin: %v", err)
	}

	user, err := users.FindByEmail(context.Background(), "root@example.com")
	if err != nil {
		t.Fatalf("account not created: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2")) != nil {
		t.Fatalf("stored hash does not match password")
	}

	profile, err := profiles.FindByUserID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("profile not created: %v", err)
	}
	if profile.Role != "admin" {
		t.Fatalf("profile role %q, want admin", profile.Role)
	}
}

func TestAuthService_EnsureAdmin_IdempotentAcrossRestarts(t *testing.T) {
	users := newStubAuthRepo()
	profiles := newStubProfileRepo()
	svc := NewAuthService(users, profiles, newStubSessionStore(), "secret", time.Hour)

	for i := 0; i < 2; i++ {
		if err := svc.EnsureAdmin(context.Background(), "root@example.com", "hunter2", "Root"); err != nil {
			t.Fatalf("EnsureAdmin run %d: %v", i, err)
		}
	}

	if len(users.byEmail) != 1 {
		t.Fatalf("expected one account, got %d", len(users.byEmail))
	}
	if len(profiles.byUserID) != 1 {
		t.Fatalf("expected one profile, got %d", len(profiles.byUserID))
	}
}
