package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bit-milind42/Blog-Editor/internal/api/middleware"
	"github.com/bit-milind42/Blog-Editor/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	revoker     ports.TokenRevoker
}

func NewAuthHandler(authService ports.AuthService, revoker ports.TokenRevoker) *AuthHandler {
	return &AuthHandler{authService: authService, revoker: revoker}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	UserID  string `json:"userId"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Username and password"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Username and password are required")
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, registerResponse{
		Message: "User registered successfully",
		UserID:  user.ID,
	})
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Username and password are required")
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Message: "Login successful",
		Token:   token,
		UserID:  user.ID,
	})
}

// Logout invalidates the presented token until its natural expiry. Requires
// the mandatory auth middleware, which stashes the raw token and its expiry
// in the context.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if h.revoker != nil {
		raw, _ := c.Get(middleware.CtxToken).(string)
		expiresAt, _ := c.Get(middleware.CtxTokenExpires).(time.Time)
		if raw != "" {
			if err := h.revoker.Revoke(c.Request().Context(), raw, expiresAt); err != nil {
				return err
			}
		}
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Logged out"})
}
