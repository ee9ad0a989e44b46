package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/microservices/internal/api/messages"
	"github.com/bloghub/microservices/internal/core/domain"
)

// principalFromContext rebuilds the authenticated principal injected by the
// authentication gate. A missing id proves the gate did not run; fail closed
// with 401 rather than letting an unauthenticated request through.
func principalFromContext(c echo.Context) (domain.Principal, error) {
	id, ok := c.Get("user_id").(int64)
	if !ok || id == 0 {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, messages.Unauthorized)
	}

	username, _ := c.Get("username").(string)
	email, _ := c.Get("email").(string)
	isAdmin, _ := c.Get("is_admin").(bool)

	return domain.Principal{ID: id, Username: username, Email: email, IsAdmin: isAdmin}, nil
}
