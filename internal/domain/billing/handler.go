package billing

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

// RegisterRoutes mounts invoices under the clinic group and the billing
// code catalog under admin settings.
func (h *Handler) RegisterRoutes(admin, clinic *echo.Group) {
	clinic.GET("/invoices", h.ListInvoices)
	clinic.POST("/invoices", h.CreateInvoice)
	clinic.GET("/invoices/:id/items", h.InvoiceItems)
	clinic.GET("/patients/:id/invoices", h.InvoicesByPatient)

	admin.GET("/billing", h.Codes)
	admin.POST("/billing", h.SaveCode)
}

func (h *Handler) CreateInvoice(c echo.Context) error {
	var in InvoiceInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	inv, err := h.svc.CreateInvoice(c.Request().Context(), in)
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Invoice created successfully", "invoiceId": inv.ID})
}

func (h *Handler) ListInvoices(c echo.Context) error {
	items, err := h.svc.ListInvoices(c.Request().Context())
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) InvoicesByPatient(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	items, err := h.svc.InvoicesByPatient(c.Request().Context(), id)
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) InvoiceItems(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	items, err := h.svc.InvoiceItems(c.Request().Context(), id)
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Codes(c echo.Context) error {
	items, err := h.svc.Codes(c.Request().Context())
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) SaveCode(c echo.Context) error {
	var in CodeInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	code, created, err := h.svc.SaveCode(c.Request().Context(), in)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Billing code not found")
	}
	if err != nil {
		return httpx.Fail(err)
	}
	msg := "Billing code updated"
	if created {
		msg = "Billing code added"
	}
	return c.JSON(http.StatusOK, echo.Map{"message": msg, "billingCode": code})
}
