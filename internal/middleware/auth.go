package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"shopapi/internal/authz"
	"shopapi/internal/tokens"
)

const principalKey = "principal"

// Auth resolves the request principal from a bearer access token. Everything
// downstream trusts the resulting Principal.
type Auth struct {
	JWTSecret []byte
}

func (m *Auth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
		}

		claims, err := tokens.AccessClaimsFromToken(token, m.JWTSecret)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}
		id, err := uuid.Parse(claims.Subject)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid subject")
		}

		c.Set(principalKey, authz.Principal{
			ID:          id,
			IsSuperuser: claims.Superuser,
			IsActive:    claims.Active,
		})
		return next(c)
	}
}

func (m *Auth) RequireSuperuser(next echo.HandlerFunc) echo.HandlerFunc {
	return m.RequireAuth(func(c echo.Context) error {
		p, err := PrincipalFrom(c)
		if err != nil {
			return err
		}
		if !p.IsSuperuser {
			return echo.NewHTTPError(http.StatusForbidden, "superuser required")
		}
		return next(c)
	})
}

func PrincipalFrom(c echo.Context) (authz.Principal, error) {
	p, ok := c.Get(principalKey).(authz.Principal)
	if !ok {
		return authz.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "no principal")
	}
	return p, nil
}
