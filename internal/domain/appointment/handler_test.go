package appointment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	svc, _ := newTestService()
	return NewHandler(svc), echo.New()
}

func TestHandler_Create(t *testing.T) {
	h, e := newTestHandler()
	body := `{"patientId":1,"doctorId":2,"date":"2025-01-20","time":"14:30","reason":"Fever"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Create(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var a Appointment
	if err := json.Unmarshal(rec.Body.Bytes(), &a); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if a.Type != DefaultType || a.Status != StatusScheduled {
		t.Errorf("defaults not applied: %+v", a)
	}
	if a.PatientName == "" || a.DoctorName == "" {
		t.Errorf("expected resolved names, got %+v", a)
	}
}

func TestHandler_Create_MissingFields(t *testing.T) {
	h, e := newTestHandler()
	body := `{"patientId":1,"date":"2025-01-20"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Create(e.NewContext(req, rec))
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if he.Message != "Missing required fields" {
		t.Errorf("unexpected message %v", he.Message)
	}
}

func TestHandler_Today(t *testing.T) {
	h, e := newTestHandler()
	svc := h.svc
	if _, err := svc.Create(context.Background(), Input{PatientID: 1, DoctorID: 2, Date: "2025-01-15", Time: "09:30"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := svc.Create(context.Background(), Input{PatientID: 1, DoctorID: 2, Date: "2025-01-20", Time: "10:00"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	if err := h.Today(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var items []*Appointment
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != 1 || items[0].Date.String() != "2025-01-15" {
		t.Errorf("expected only the pinned day's appointment, got %+v", items)
	}
}

func TestHandler_ListByPatient_BadID(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.ListByPatient(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
