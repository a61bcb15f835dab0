package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/mediquix/mediquix-server/internal/core/domain"
	"github.com/mediquix/mediquix-server/internal/core/service"
)

const testSecret = "secret"

func signed(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

// runAuth executes Auth with the given header and returns the recorder and
// whether next was reached.
func runAuth(t *testing.T, header string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(service.NewTokenService(testSecret, time.Hour))
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	token := signed(t, jwt.MapClaims{
		"email": "alice@x.io",
		"name":  "Alice",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(service.NewTokenService(testSecret, time.Hour))
	handler := mw(func(c echo.Context) error {
		called = true
		claims, ok := ClaimsFrom(c)
		if !ok {
			t.Fatalf("claims not set")
		}
		if claims.Email() != "alice@x.io" {
			t.Fatalf("email not set")
		}
		if claims["name"] != "Alice" {
			t.Fatalf("payload not preserved")
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
}

func TestAuthMiddleware_SchemeIsNotInspected(t *testing.T) {
	token := signed(t, jwt.MapClaims{"email": "a@x.io"}, testSecret)

	rec, called := runAuth(t, "Token "+token)
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected any scheme word to be accepted, got %d", rec.Code)
	}
}

func TestAuthMiddleware_IgnoresTrailingSegments(t *testing.T) {
	token := signed(t, jwt.MapClaims{"email": "a@x.io"}, testSecret)

	rec, called := runAuth(t, "Bearer "+token+" extra")
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected the second segment to be verified alone, got %d", rec.Code)
	}
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	valid := signed(t, jwt.MapClaims{"email": "a@x.io"}, testSecret)
	expired := signed(t, jwt.MapClaims{"email": "a@x.io", "exp": time.Now().Add(-time.Minute).Unix()}, testSecret)
	foreign := signed(t, jwt.MapClaims{"email": "a@x.io"}, "other-secret")

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"no second segment", "Bearer"},
		{"bare token", valid},
		{"empty second segment", "Bearer "},
		{"double space", "Bearer  " + valid},
		{"malformed token", "Bearer not-a-token"},
		{"expired token", "Bearer " + expired},
		{"wrong secret", "Bearer " + foreign},
	}

	var bodies []string
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, called := runAuth(t, tc.header)
			if called {
				t.Fatalf("should not reach next")
			}
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
			var body map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body["message"] != UnauthorizedMessage {
				t.Fatalf("unexpected body %s", rec.Body.String())
			}
			bodies = append(bodies, rec.Body.String())
		})
	}

	for _, b := range bodies[1:] {
		if b != bodies[0] {
			t.Fatalf("rejections must be indistinguishable: %q vs %q", b, bodies[0])
		}
	}
}

func TestClaimsFrom_Missing(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if _, ok := ClaimsFrom(c); ok {
		t.Fatal("expected no claims")
	}
	c.Set(claimsKey, domain.Claims{"email": "x"})
	if claims, ok := ClaimsFrom(c); !ok || claims.Email() != "x" {
		t.Fatal("expected stored claims")
	}
}
