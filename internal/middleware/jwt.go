package middleware

import (
	"net/http"

	"rentdesk/internal/common"
	"rentdesk/internal/services"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// JWTMiddleware validates the bearer token and copies the caller's identity
// into the request context for handlers and services downstream.
func JWTMiddleware(jwtSecret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(jwtSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return &services.TokenClaims{}
		},
		SuccessHandler: func(c echo.Context) {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return
			}
			claims, ok := token.Claims.(*services.TokenClaims)
			if !ok {
				return
			}
			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				return
			}
			ctx := common.WithIdentity(c.Request().Context(), userID, claims.Role)
			c.SetRequest(c.Request().WithContext(ctx))
		},
	})
}

// RequireRole rejects callers whose role is not in the allow list. It runs
// after JWTMiddleware has populated the request context.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := common.GetRoleFromContext(c.Request().Context())
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
			}
			for _, allowed := range roles {
				if role == allowed {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
		}
	}
}
