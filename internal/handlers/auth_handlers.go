package handlers

import (
	"errors"
	"net/http"
	"strings"

	"rentdesk/internal/common"
	"rentdesk/internal/services"

	"github.com/labstack/echo/v4"
)

type AuthHandlers struct {
	authService services.AuthService
}

func NewAuthHandlers(authService services.AuthService) *AuthHandlers {
	return &AuthHandlers{authService: authService}
}

// RegisterLandlord handles POST /register
func (h *AuthHandlers) RegisterLandlord(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := validateCredentials(req.Username, req.Email, req.Password); err != nil {
		return common.SendValidationError(c, "credentials", err.Error())
	}

	tokens, err := h.authService.RegisterLandlord(c.Request().Context(), strings.TrimSpace(req.Username), normalizeEmail(req.Email), req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, tokens)
}

// AddTenant handles POST /tenants
func (h *AuthHandlers) AddTenant(c echo.Context) error {
	ctx := c.Request().Context()
	landlordID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := validateCredentials(req.Username, req.Email, req.Password); err != nil {
		return common.SendValidationError(c, "credentials", err.Error())
	}

	tenant, err := h.authService.AddTenant(ctx, landlordID, strings.TrimSpace(req.Username), normalizeEmail(req.Email), req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, tenant)
}

// Login handles POST /login
func (h *AuthHandlers) Login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if req.Email == "" || req.Password == "" {
		return common.SendValidationError(c, "credentials", "email and password are required")
	}

	tokens, err := h.authService.Login(c.Request().Context(), normalizeEmail(req.Email), req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, tokens)
}

// Refresh handles POST /refresh
func (h *AuthHandlers) Refresh(c echo.Context) error {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if req.RefreshToken == "" {
		return common.SendValidationError(c, "refresh_token", "refresh_token is required")
	}

	tokens, err := h.authService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, tokens)
}

func validateCredentials(username, email, password string) error {
	if err := common.ValidateRequiredString(username, "username"); err != nil {
		return err
	}
	if err := common.ValidateRequiredString(email, "email"); err != nil {
		return err
	}
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
