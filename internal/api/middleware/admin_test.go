package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/devsolutions/intake-api/internal/core/domain"
	"github.com/devsolutions/intake-api/internal/core/ports"
)

type stubAuthService struct {
	profiles map[string]*domain.AdminProfile
	revoked  []string
}

func newStubAuthService() *stubAuthService {
	return &stubAuthService{profiles: make(map[string]*domain.AdminProfile)}
}

func (s *stubAuthService) Login(context.Context, string, string) (*ports.Session, *domain.AdminProfile, error) {
	return nil, nil, domain.ErrInvalidCredentials
}

func (s *stubAuthService) Logout(_ context.Context, tokenID string, _ time.Time) error {
	s.revoked = append(s.revoked, tokenID)
	return nil
}

func (s *stubAuthService) Authorize(_ context.Context, userID string) (*domain.AdminProfile, error) {
	p, ok := s.profiles[userID]
	if !ok {
		return nil, domain.ErrNotAdmin
	}
	return p, nil
}

func (s *stubAuthService) EnsureAdmin(context.Context, string, string, string) error {
	return nil
}

func adminGateContext(e *echo.Echo) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/submissions", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAdminGate_AdminPassesThrough(t *testing.T) {
	e := echo.New()
	auth := newStubAuthService()
	auth.profiles["user_1"] = &domain.AdminProfile{ID: "user_1", Email: "admin@example.com", Role: "admin"}

	c, rec := adminGateContext(e)
	c.Set(CtxUserID, "user_1")
	c.Set(CtxTokenID, "tok-1")
	c.Set(CtxTokenExp, time.Now().Add(time.Hour))

	called := false
	handler := AdminGate(auth, zerolog.Nop())(func(c echo.Context) error {
		called = true
		profile, ok := c.Get(CtxAdminProfile).(*domain.AdminProfile)
		if !ok || profile.ID != "user_1" {
			t.Fatalf("admin profile not set on context")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(auth.revoked) != 0 {
		t.Fatalf("admin session was revoked: %v", auth.revoked)
	}
}

func TestAdminGate_NonAdminIsDeniedAndSignedOut(t *testing.T) {
	e := echo.New()
	auth := newStubAuthService()

	c, rec := adminGateContext(e)
	c.Set(CtxUserID, "user_2")
	c.Set(CtxTokenID, "tok-2")
	c.Set(CtxTokenExp, time.Now().Add(time.Hour))

	handler := AdminGate(auth, zerolog.Nop())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if len(auth.revoked) != 1 || auth.revoked[0] != "tok-2" {
		t.Fatalf("token not revoked, got %v", auth.revoked)
	}
}

func TestAdminGate_MissingClaims(t *testing.T) {
	e := echo.New()
	auth := newStubAuthService()

	c, rec := adminGateContext(e)

	handler := AdminGate(auth, zerolog.Nop())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if len(auth.revoked) != 0 {
		t.Fatalf("nothing to revoke, got %v", auth.revoked)
	}
}
