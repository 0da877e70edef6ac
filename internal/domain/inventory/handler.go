package inventory

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hospitalportal/hospitalportal/internal/platform/httpx"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts stock management under the clinic group and the
// low-stock report under admin.
func (h *Handler) RegisterRoutes(admin, clinic *echo.Group) {
	clinic.GET("/vaccines", h.Vaccines)
	clinic.GET("/inventory", h.Items)
	clinic.POST("/inventory", h.AddItem)

	admin.GET("/inventory/low-stock", h.LowStock)
}

func (h *Handler) Vaccines(c echo.Context) error {
	items, err := h.svc.Vaccines(c.Request().Context())
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Items(c echo.Context) error {
	items, err := h.svc.Items(c.Request().Context())
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) AddItem(c echo.Context) error {
	var in Input
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	item, err := h.svc.AddItem(c.Request().Context(), in)
	if errors.Is(err, ErrVaccineNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Vaccine not found.")
	}
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *Handler) LowStock(c echo.Context) error {
	items, err := h.svc.LowStock(c.Request().Context())
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, items)
}
