package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/microservices/internal/api/messages"
)

// RequireAdmin rejects callers whose verified claims lack the admin flag.
// Must run after an authentication gate.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			isAdmin, _ := c.Get("is_admin").(bool)
			if !isAdmin {
				return echo.NewHTTPError(http.StatusForbidden, messages.ForbiddenUser)
			}
			return next(c)
		}
	}
}
