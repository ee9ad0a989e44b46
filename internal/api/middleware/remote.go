package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/microservices/internal/api/messages"
	"github.com/bloghub/microservices/internal/core/ports"
)

// RemoteAuth is the authentication gate for the post service: every
// protected route redeems the bearer token against the user service's
// validation endpoint through the injected validator. All upstream failure
// modes resolve to 401 — the gate does not distinguish infrastructure
// failure from authentication failure to its caller.
func RemoteAuth(validator ports.TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, messages.TokenRequired)
			}

			principal, err := validator.Validate(c.Request().Context(), header)
			if err != nil {
				msg := messages.InvalidToken
				var rejected *ports.RejectedError
				if errors.As(err, &rejected) && rejected.Message != "" {
					msg = rejected.Message
				}
				return echo.NewHTTPError(http.StatusUnauthorized, msg)
			}

			c.Set("user_id", principal.ID)
			c.Set("username", principal.Username)
			c.Set("email", principal.Email)
			c.Set("is_admin", principal.IsAdmin)

			return next(c)
		}
	}
}
