package middleware

import (
	"net/http"
	"strings"

	"virtual-tutor/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// extractClaims is the one token verifier every protected route goes
// through. Missing header, bad scheme, bad signature and expiry are the only
// distinctions surfaced: absent credential vs. invalid credential.
func extractClaims(c echo.Context) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	claims, err := service.VerifyAccessToken(parts[1])
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return claims, nil
}

func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := extractClaims(c)
		if err != nil {
			return err
		}
		c.Set(ContextUserKey, claims)
		return next(c)
	}
}

func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return RequireAuth(func(c echo.Context) error {
		claims := c.Get(ContextUserKey).(*service.CustomClaims)
		if !claims.IsAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "admin privileges required")
		}
		return next(c)
	})
}

// Claims returns the verified claim set RequireAuth stored on the context.
func Claims(c echo.Context) *service.CustomClaims {
	return c.Get(ContextUserKey).(*service.CustomClaims)
}
