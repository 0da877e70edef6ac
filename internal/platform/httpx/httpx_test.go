package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestFail_ValidationErrorKeepsMessage(t *testing.T) {
	err := Fail(BadRequestf("name is required"))
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if he.Message != "name is required" {
		t.Errorf("unexpected message: %v", he.Message)
	}
}

func TestFail_WrappedValidationErrorStillMapsTo400(t *testing.T) {
	cause := BadRequestf("invalid date: tomorrow")
	err := Fail(fmt.Errorf("assign shift: %w", cause))
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if he.Message != "invalid date: tomorrow" {
		t.Errorf("unexpected message: %v", he.Message)
	}
}

func TestFail_StoreErrorBecomesGeneric500(t *testing.T) {
	cause := errors.New(`dial tcp 10.2.3.4:5432: connect: connection refused`)
	err := Fail(cause)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %v", err)
	}
	if he.Message != "Server error" {
		t.Errorf("internal detail must not reach the client, got %v", he.Message)
	}
	if !errors.Is(he.Internal, cause) {
		t.Errorf("expected cause retained for logging, got %v", he.Internal)
	}
}
