package lab

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

// RegisterRoutes mounts lab orders under the clinic group and the test
// catalog under admin settings.
func (h *Handler) RegisterRoutes(admin, clinic *echo.Group) {
	clinic.GET("/lab-orders", h.Orders)
	clinic.POST("/lab-orders", h.CreateOrder)
	clinic.PUT("/lab-orders/:id/report", h.FileReport)
	clinic.GET("/patients/:id/lab-orders", h.OrdersByPatient)

	admin.GET("/labs", h.Tests)
	admin.POST("/labs", h.SaveTest)
}

func (h *Handler) CreateOrder(c echo.Context) error {
	var in OrderInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	o, err := h.svc.CreateOrder(c.Request().Context(), in)
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *Handler) Orders(c echo.Context) error {
	items, err := h.svc.Orders(c.Request().Context())
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) OrdersByPatient(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	items, err := h.svc.OrdersByPatient(c.Request().Context(), id)
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) FileReport(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req struct {
		Report string `json:"report"`
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	o, err := h.svc.FileReport(c.Request().Context(), id, req.Report, req.Status)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Lab order not found.")
	}
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *Handler) Tests(c echo.Context) error {
	items, err := h.svc.Tests(c.Request().Context())
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) SaveTest(c echo.Context) error {
	var t Test
	if err := c.Bind(&t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.SaveTest(c.Request().Context(), &t)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Lab test not found")
	}
	if err != nil {
		return httpx.Fail(err)
	}
	msg := "Lab test updated"
	if created {
		msg = "Lab test added"
	}
	return c.JSON(http.StatusOK, echo.Map{"message": msg, "labTest": t})
}
