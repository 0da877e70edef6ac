package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hospitalportal/hospitalportal/internal/platform/auth"
)

func newTestHandler() (*Handler, *mockRepo) {
	svc, repo := newTestService()
	return NewHandler(svc), repo
}

func jsonRequest(method, target, body string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req, httptest.NewRecorder()
}

func TestRegisterHandler(t *testing.T) {
	e := echo.New()
	h, _ := newTestHandler()

	req, rec := jsonRequest(http.MethodPost, "/api/auth/register",
		`{"email":"asha@clinic.example","password":"s3cret","role":"nurse"}`)
	if err := h.Register(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp struct {
		Message string `json:"message"`
		Token   string `json:"token"`
		User    struct {
			Email    string `json:"email"`
			FullName string `json:"fullName"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "Registration successful. User created." {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if resp.Token == "" {
		t.Error("expected a token in the response")
	}
	if resp.User.FullName != DefaultFullName {
		t.Errorf("expected default full name, got %q", resp.User.FullName)
	}
}

func TestRegisterHandler_DuplicateEmail(t *testing.T) {
	e := echo.New()
	h, _ := newTestHandler()

	body := `{"email":"asha@clinic.example","password":"s3cret","role":"nurse"}`
	req, rec := jsonRequest(http.MethodPost, "/api/auth/register", body)
	if err := h.Register(e.NewContext(req, rec)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	req, rec = jsonRequest(http.MethodPost, "/api/auth/register", body)
	err := h.Register(e.NewContext(req, rec))
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %v", err)
	}
	if he.Message != ErrEmailTaken.Error() {
		t.Errorf("unexpected message %v", he.Message)
	}
}

func TestRegisterHandler_BadRole(t *testing.T) {
	e := echo.New()
	h, _ := newTestHandler()

	req, rec := jsonRequest(http.MethodPost, "/api/auth/register",
		`{"email":"asha@clinic.example","password":"s3cret","role":"janitor"}`)
	err := h.Register(e.NewContext(req, rec))
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if he.Message != "Please provide valid email, password, and a staff role." {
		t.Errorf("unexpected message %v", he.Message)
	}
}

func TestLoginHandler(t *testing.T) {
	e := echo.New()
	h, _ := newTestHandler()

	req, rec := jsonRequest(http.MethodPost, "/api/auth/register",
		`{"email":"asha@clinic.example","password":"s3cret","role":"nurse"}`)
	if err := h.Register(e.NewContext(req, rec)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	req, rec = jsonRequest(http.MethodPost, "/api/auth/login",
		`{"email":"asha@clinic.example","password":"s3cret"}`)
	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, ok := resp["token"]; !ok {
		t.Error("expected token in response")
	}
	if _, ok := resp["user"]; !ok {
		t.Error("expected user in response")
	}
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	e := echo.New()
	h, _ := newTestHandler()

	req, rec := jsonRequest(http.MethodPost, "/api/auth/register",
		`{"email":"asha@clinic.example","password":"s3cret","role":"nurse"}`)
	if err := h.Register(e.NewContext(req, rec)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	req, rec = jsonRequest(http.MethodPost, "/api/auth/login",
		`{"email":"asha@clinic.example","password":"wrong"}`)
	err := h.Login(e.NewContext(req, rec))
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if he.Message != ErrInvalidCredentials.Error() {
		t.Errorf("unexpected message %v", he.Message)
	}
}

func TestCurrentUserHandler(t *testing.T) {
	e := echo.New()
	h, repo := newTestHandler()

	req, rec := jsonRequest(http.MethodPost, "/api/auth/register",
		`{"email":"asha@clinic.example","password":"s3cret","role":"nurse"}`)
	if err := h.Register(e.NewContext(req, rec)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	seeded := repo.users["asha@clinic.example"]

	req = httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, seeded.ID))
	rec = httptest.NewRecorder()
	if err := h.CurrentUser(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		User userResponse `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User.Email != "asha@clinic.example" {
		t.Errorf("unexpected user %+v", resp.User)
	}
}

func TestCurrentUserHandler_NoIdentity(t *testing.T) {
	e := echo.New()
	h, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	rec := httptest.NewRecorder()
	err := h.CurrentUser(e.NewContext(req, rec))
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestCurrentUserHandler_UserGone(t *testing.T) {
	e := echo.New()
	h, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, int64(99)))
	rec := httptest.NewRecorder()
	err := h.CurrentUser(e.NewContext(req, rec))
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
	if he.Message != "User not found." {
		t.Errorf("unexpected message %v", he.Message)
	}
}
