package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/microservices/internal/api/messages"
	"github.com/bloghub/microservices/internal/auth"
)

// Auth is the local authentication gate used by the user service's own
// protected routes: it verifies the bearer token in-process and injects the
// claims into the request context. It runs before any business handler.
func Auth(verifier *auth.Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c)
			if err != nil {
				return err
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, messages.InvalidToken)
			}

			c.Set("user_id", claims.ID)
			c.Set("username", claims.Username)
			c.Set("email", claims.Email)
			c.Set("is_admin", claims.IsAdmin)
			c.Set("token", token)

			return next(c)
		}
	}
}

// bearerToken extracts the token from the Authorization header. The header
// must be present; the Bearer prefix is accepted case-insensitively and a
// bare token without a prefix is tolerated.
func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, messages.TokenRequired)
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1], nil
	}
	return header, nil
}
