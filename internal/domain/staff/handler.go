package staff

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

// RegisterRoutes mounts the admin staff routes and the clinic-facing
// doctors listing.
func (h *Handler) RegisterRoutes(admin, clinic *echo.Group) {
	admin.GET("/staff", h.List)
	admin.POST("/staff", h.Create)
	admin.GET("/staff/:id", h.Get)
	admin.PUT("/staff/:id", h.Update)
	admin.DELETE("/staff/:id", h.Delete)
	admin.GET("/staff/:id/notes", h.ListNotes)
	admin.POST("/staff/:id/notes", h.AddNote)

	clinic.GET("/doctors", h.Doctors)
}

func param(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

func (h *Handler) Create(c echo.Context) error {
	var in Input
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	m, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := param(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	m, err := h.svc.Get(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Staff not found")
	}
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := param(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var in Input
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	m, err := h.svc.Update(c.Request().Context(), id, in)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Staff not found")
	}
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := param(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	m, err := h.svc.Deactivate(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Staff not found")
	}
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Staff deactivated", "staff": m})
}

func (h *Handler) Doctors(c echo.Context) error {
	items, err := h.svc.Doctors(c.Request().Context())
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListNotes(c echo.Context) error {
	id, err := param(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	items, err := h.svc.Notes(c.Request().Context(), id)
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) AddNote(c echo.Context) error {
	id, err := param(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req struct {
		Note string `json:"note"`
		Date string `json:"date"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	n, err := h.svc.AddNote(c.Request().Context(), id, req.Note, req.Date)
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusCreated, n)
}
