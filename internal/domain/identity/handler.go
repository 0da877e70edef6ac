package identity

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hospitalportal/hospitalportal/internal/platform/auth"
	"github.com/hospitalportal/hospitalportal/internal/platform/httpx"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts register/login on the open group and the current-
// user lookup on the bearer-protected one.
func (h *Handler) RegisterRoutes(open, protected *echo.Group) {
	open.POST("/register", h.Register)
	open.POST("/login", h.Login)
	protected.GET("/user", h.CurrentUser)
}

type userResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	FullName string `json:"fullName"`
}

func toUserResponse(u *User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, Role: u.Role, FullName: u.FullName}
}

func (h *Handler) Register(c echo.Context) error {
	var in RegisterInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	token, u, err := h.svc.Register(c.Request().Context(), in)
	if errors.Is(err, ErrEmailTaken) {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Registration successful. User created.",
		"token":   token,
		"user":    toUserResponse(u),
	})
}

func (h *Handler) Login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	token, u, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user":  toUserResponse(u),
	})
}

func (h *Handler) CurrentUser(c echo.Context) error {
	id := auth.UserIDFromContext(c.Request().Context())
	if id == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authorized, token missing or invalid.")
	}
	u, err := h.svc.CurrentUser(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "User not found.")
	}
	if err != nil {
		return httpx.Fail(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"user": toUserResponse(u)})
}
