package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mediquix/mediquix-server/internal/core/domain"
)

type stubAccess struct {
	admins map[string]bool
	err    error
	calls  int
}

func (s *stubAccess) IsAdmin(_ context.Context, email string) (bool, error) {
	s.calls++
	if s.err != nil {
		return false, s.err
	}
	return s.admins[email], nil
}

func newRBACContext(claims domain.Claims) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/camps", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claims != nil {
		c.Set(claimsKey, claims)
	}
	return c, rec
}

func TestRequireAdmin_Allows(t *testing.T) {
	access := &stubAccess{admins: map[string]bool{"admin@x.io": true}}
	c, rec := newRBACContext(domain.Claims{"email": "admin@x.io"})

	called := false
	handler := RequireAdmin(access)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if access.calls != 1 {
		t.Fatalf("expected exactly one lookup, got %d", access.calls)
	}
}

func TestRequireAdmin_Forbids(t *testing.T) {
	access := &stubAccess{admins: map[string]bool{}}
	c, _ := newRBACContext(domain.Claims{"email": "p@x.io"})

	handler := RequireAdmin(access)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
	if he.Message != ForbiddenMessage {
		t.Fatalf("unexpected message %v", he.Message)
	}
}

func TestRequireAdmin_StoreErrorIsNotADecision(t *testing.T) {
	storeErr := errors.New("connection reset")
	access := &stubAccess{err: storeErr}
	c, _ := newRBACContext(domain.Claims{"email": "admin@x.io"})

	handler := RequireAdmin(access)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	var opErr *domain.OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected operation error, got %v", err)
	}
	if !errors.Is(err, storeErr) {
		t.Fatalf("store error should be wrapped")
	}
}

func TestRequireAdmin_WithoutClaims(t *testing.T) {
	access := &stubAccess{}
	c, _ := newRBACContext(nil)

	handler := RequireAdmin(access)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if access.calls != 0 {
		t.Fatalf("store must not be read without an identity")
	}
}
