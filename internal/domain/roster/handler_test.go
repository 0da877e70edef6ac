package roster

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
	h := NewHandler(svc)
	e := echo.New()
	return h, e
}

func TestHandler_Upsert_Creates(t *testing.T) {
	h, e := newTestHandler()
	body := `{"staffId":5,"weekStart":"2025-01-06","shifts":{"2025-01-06":["DAY (9A-5P)"]}}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Upsert(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201 on create, got %d", rec.Code)
	}

	var entry Entry
	if err := json.Unmarshal(rec.Body.Bytes(), &entry); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if entry.StaffID != 5 || entry.WeekStart.String() != "2025-01-06" {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

func TestHandler_Upsert_SecondSaveReturns200(t *testing.T) {
	h, e := newTestHandler()
	body := `{"staffId":5,"weekStart":"2025-01-06","shifts":{}}`
	for i, want := range []int{http.StatusCreated, http.StatusOK} {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		if err := h.Upsert(e.NewContext(req, rec)); err != nil {
			t.Fatalf("save %d: unexpected error: %v", i, err)
		}
		if rec.Code != want {
			t.Errorf("save %d: expected %d, got %d", i, want, rec.Code)
		}
	}
}

func TestHandler_Upsert_MissingFields(t *testing.T) {
	h, e := newTestHandler()
	body := `{"weekStart":"2025-01-06"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Upsert(e.NewContext(req, rec))
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if he.Message != "staffId, weekStart, and shifts are required" {
		t.Errorf("unexpected message: %v", he.Message)
	}
}

func TestHandler_Upsert_StoreFailureHiddenFromClient(t *testing.T) {
	repo := newMockRepo()
	repo.failWith = errors.New(`dial tcp 10.2.3.4:5432: connect: connection refused`)
	h := NewHandler(NewService(repo, passthroughTx))
	e := echo.New()

	body := `{"staffId":5,"weekStart":"2025-01-06","shifts":{}}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Upsert(e.NewContext(req, rec))
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %v", err)
	}
	if he.Message != "Server error" {
		t.Errorf("store detail must not reach the client, got %v", he.Message)
	}
	if !errors.Is(he.Internal, repo.failWith) {
		t.Errorf("expected cause kept for logging, got %v", he.Internal)
	}
}

func TestHandler_UpdateShift_AssignAndRemove(t *testing.T) {
	h, e := newTestHandler()

	assign := `{"staffId":5,"date":"2025-01-08","shift":"On-Call"}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(assign))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h.UpdateShift(e.NewContext(req, rec)); err != nil {
		t.Fatalf("assign: unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("assign: expected 200, got %d", rec.Code)
	}

	remove := `{"staffId":5,"date":"2025-01-08","shift":"On-Call","remove":true}`
	req = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(remove))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	if err := h.UpdateShift(e.NewContext(req, rec)); err != nil {
		t.Fatalf("remove: unexpected error: %v", err)
	}

	var entry Entry
	if err := json.Unmarshal(rec.Body.Bytes(), &entry); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got := entry.Shifts.Labels("2025-01-08"); len(got) != 0 {
		t.Errorf("expected empty day after remove, got %v", got)
	}
}

func TestHandler_UpdateShift_RemoveFromMissingWeek(t *testing.T) {
	h, e := newTestHandler()
	body := `{"staffId":5,"date":"2025-01-08","shift":"On-Call","remove":true}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.UpdateShift(e.NewContext(req, rec))
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestHandler_GetByStaff(t *testing.T) {
	h, e := newTestHandler()
	if _, _, err := h.svc.Upsert(context.Background(), 5, "2025-01-06", ShiftMap{}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("staffId")
	c.SetParamValues("5")

	if err := h.GetByStaff(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestHandler_GetByStaff_NotFound(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("staffId")
	c.SetParamValues("99")

	err := h.GetByStaff(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestHandler_Delete(t *testing.T) {
	h, e := newTestHandler()
	entry, _, err := h.svc.Upsert(context.Background(), 5, "2025-01-06", ShiftMap{})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp struct {
		Message       string `json:"message"`
		DeletedRoster *Entry `json:"deletedRoster"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "Roster deleted" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
	if resp.DeletedRoster == nil || resp.DeletedRoster.ID != entry.ID {
		t.Errorf("expected deleted row in response, got %+v", resp.DeletedRoster)
	}
}

func TestHandler_Delete_NotFound(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	err := h.Delete(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}
