package patient

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

func (h *Handler) RegisterRoutes(clinic *echo.Group) {
	clinic.GET("/patients", h.List)
	clinic.POST("/patients", h.Create)
	clinic.GET("/patients/:id", h.Get)

	clinic.GET("/patients/:id/growth", h.Growth)
	clinic.POST("/patients/:id/growth", h.AddGrowth)
	clinic.PUT("/growth/:id/status", h.SetGrowthStatus)

	clinic.GET("/patients/:id/consultations", h.Consultations)
	clinic.POST("/consultations", h.AddConsultation)

	clinic.GET("/patients/:id/vaccinations", h.Vaccinations)
	clinic.POST("/patients/:id/vaccinations", h.AddVaccination)
	clinic.PUT("/vaccinations/:id/status", h.SetVaccinationStatus)

	clinic.GET("/patients/:id/milestones", h.Milestones)
	clinic.PUT("/patients/:id/milestones", h.SetMilestoneStatus)
	clinic.POST("/patients/:id/addMilestone", h.AddMilestone)
}

func param(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

func (h *Handler) Create(c echo.Context) error {
	var in Input
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := param(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	p, err := h.svc.Get(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Patient not found")
	}
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, items)
}

// -- Growth --

func (h *Handler) Growth(c echo.Context) error {
	id, err := param(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	items, err := h.svc.Growth(c.Request().Context(), id)
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) AddGrowth(c echo.Context) error {
	id, err := param(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var in GrowthInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	g, err := h.svc.AddGrowth(c.Request().Context(), id, in)
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusCreated, g)
}

func (h *Handler) SetGrowthStatus(c echo.Context) error {
	id, err := param(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	g, err := h.svc.SetGrowthStatus(c.Request().Context(), id, req.Status)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Growth record not found")
	}
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, g)
}

// -- Consultations --

func (h *Handler) Consultations(c echo.Context) error {
	id, err := param(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	items, err := h.svc.Consultations(c.Request().Context(), id)
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) AddConsultation(c echo.Context) error {
	var in ConsultationInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	consult, err := h.svc.AddConsultation(c.Request().Context(), in)
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusCreated, consult)
}

// -- Vaccinations --

func (h *Handler) Vaccinations(c echo.Context) error {
	id, err := param(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	items, err := h.svc.Vaccinations(c.Request().Context(), id)
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) AddVaccination(c echo.Context) error {
	id, err := param(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var in VaccinationInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	v, err := h.svc.AddVaccination(c.Request().Context(), id, in)
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusCreated, v)
}

func (h *Handler) SetVaccinationStatus(c echo.Context) error {
	id, err := param(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	v, err := h.svc.SetVaccinationStatus(c.Request().Context(), id, req.Status)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Vaccination record not found")
	}
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, v)
}

// -- Milestones --

func (h *Handler) Milestones(c echo.Context) error {
	id, err := param(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	items, err := h.svc.Milestones(c.Request().Context(), id)
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) AddMilestone(c echo.Context) error {
	id, err := param(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var in MilestoneInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	m, err := h.svc.AddMilestone(c.Request().Context(), id, in)
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *Handler) SetMilestoneStatus(c echo.Context) error {
	var req struct {
		MilestoneID int64  `json:"milestoneId"`
		Status      string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.MilestoneID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "milestoneId is required")
	}
	m, err := h.svc.SetMilestoneStatus(c.Request().Context(), req.MilestoneID, req.Status)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Milestone not found")
	}
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, m)
}
