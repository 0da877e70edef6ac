package appointment

import (
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

func (h *Handler) RegisterRoutes(clinic *echo.Group) {
	clinic.GET("/appointments", h.List)
	clinic.POST("/appointments", h.Create)
	clinic.GET("/appointments/today", h.Today)
	clinic.GET("/patients/:id/appointments", h.ListByPatient)
}

func (h *Handler) Create(c echo.Context) error {
	var in Input
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Today(c echo.Context) error {
	items, err := h.svc.Today(c.Request().Context())
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListByPatient(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	items, err := h.svc.ListByPatient(c.Request().Context(), id)
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, items)
}
