package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bloghub/microservices/internal/api/handler"
	"github.com/bloghub/microservices/internal/api/messages"
	"github.com/bloghub/microservices/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the uniform envelope: {"resp_code": ..., "message": ..., "data": null}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, handler.BaseResponse{RespCode: code, Message: msg, Data: nil})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, gate rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors that escaped a handler's own mapping.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, messages.InvalidCredentials
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, messages.ForbiddenUser
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, messages.UserNotFound
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, messages.UserExists
	case errors.Is(err, domain.ErrPostNotFound):
		return http.StatusNotFound, messages.PostNotFound
	case errors.Is(err, domain.ErrPostExists):
		return http.StatusConflict, messages.PostExists
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, messages.InternalError
}
