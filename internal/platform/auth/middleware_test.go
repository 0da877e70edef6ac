package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func protectedEcho(ti *TokenIssuer) *echo.Echo {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"id":   UserIDFromContext(c.Request().Context()),
			"role": RoleFromContext(c.Request().Context()),
		})
	}, Protect(ti))
	return e
}

func TestProtect_NoToken(t *testing.T) {
	e := protectedEcho(NewTokenIssuer("test-secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestProtect_MalformedHeader(t *testing.T) {
	e := protectedEcho(NewTokenIssuer("test-secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestProtect_ValidToken(t *testing.T) {
	ti := NewTokenIssuer("test-secret", time.Hour)
	e := protectedEcho(ti)

	token, err := ti.Issue(7, "nurse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestProtect_ExpiredToken(t *testing.T) {
	expired := NewTokenIssuer("test-secret", -time.Minute)
	token, err := expired.Issue(7, "nurse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e := protectedEcho(NewTokenIssuer("test-secret", time.Hour))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	ti := NewTokenIssuer("test-secret", time.Hour)

	e := echo.New()
	e.GET("/admin-only", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, Protect(ti), RequireRole("admin"))

	adminToken, _ := ti.Issue(1, "admin")
	nurseToken, _ := ti.Issue(2, "nurse")

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for admin, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+nurseToken)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 for nurse, got %d", rec.Code)
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !VerifyPassword(hash, "s3cret") {
		t.Error("expected password to verify")
	}
	if VerifyPassword(hash, "wrong") {
		t.Error("expected wrong password to fail")
	}
}
