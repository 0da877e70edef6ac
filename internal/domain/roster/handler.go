package roster

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hospitalportal/hospitalportal/internal/platform/httpx"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(admin *echo.Group) {
	admin.GET("/roster", h.List)
	admin.POST("/roster", h.Upsert)
	admin.PUT("/roster/shifts", h.UpdateShift)
	admin.GET("/roster/today", h.Today)
	admin.GET("/roster/staff/:staffId", h.GetByStaff)
	admin.DELETE("/roster/:id", h.Delete)
}

type upsertRequest struct {
	StaffID   int64    `json:"staffId"`
	WeekStart string   `json:"weekStart"`
	Shifts    ShiftMap `json:"shifts"`
}

type shiftRequest struct {
	StaffID int64  `json:"staffId"`
	Date    string `json:"date"`
	Shift   string `json:"shift"`
	Remove  bool   `json:"remove"`
}

func (h *Handler) Upsert(c echo.Context) error {
	var req upsertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	entry, created, err := h.svc.Upsert(c.Request().Context(), req.StaffID, req.WeekStart, req.Shifts)
	if err != nil {
		return httpx.Fail(err)
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, entry)
}

func (h *Handler) UpdateShift(c echo.Context) error {
	var req shiftRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var (
		entry *Entry
		err   error
	)
	if req.Remove {
		entry, err = h.svc.RemoveShift(c.Request().Context(), req.StaffID, req.Date, req.Shift)
	} else {
		entry, err = h.svc.AssignShift(c.Request().Context(), req.StaffID, req.Date, req.Shift)
	}
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Roster not found")
	}
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *Handler) List(c echo.Context) error {
	entries, err := h.svc.List(c.Request().Context())
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *Handler) Today(c echo.Context) error {
	entries, err := h.svc.Today(c.Request().Context())
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *Handler) GetByStaff(c echo.Context) error {
	staffID, err := strconv.ParseInt(c.Param("staffId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid staffId")
	}
	entry, err := h.svc.GetByStaff(c.Request().Context(), staffID, c.QueryParam("weekStart"))
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Roster not found")
	}
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	entry, err := h.svc.Delete(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Roster not found")
	}
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Roster deleted", "deletedRoster": entry})
}
