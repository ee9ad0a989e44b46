package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/microservices/internal/api/messages"
	"github.com/bloghub/microservices/internal/core/domain"
	"github.com/bloghub/microservices/internal/core/ports"
)

// UserHandler serves the protected user read endpoints.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// userData is a credential record sanitized for responses: no password hash.
type userData struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

type userDetailData struct {
	userData
	Posts []ports.RemotePost `json:"posts"`
}

// List returns all active users. Admin only; the RequireAdmin middleware
// guards the route.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  BaseResponse
// @Failure      403  {object}  BaseResponse
// @Router       /users/ [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return respond(c, http.StatusInternalServerError, messages.InternalError, nil)
	}
	if len(users) == 0 {
		return respond(c, http.StatusNotFound, messages.UserListEmpty, nil)
	}

	sanitized := make([]userData, 0, len(users))
	for _, u := range users {
		sanitized = append(sanitized, sanitizeUser(u))
	}
	return respond(c, http.StatusOK, messages.UserList, sanitized)
}

// Detail returns a single user by id or email, plus the posts they authored
// (fetched from the post service with the caller's token). The authorization
// policy restricts non-admins to their own record.
//
// @Summary      Get user details by id or email
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  query  int     false  "ID of user"
// @Param        email    query  string  false  "User email"
// @Success      200  {object}  BaseResponse
// @Failure      400  {object}  BaseResponse
// @Failure      403  {object}  BaseResponse
// @Failure      404  {object}  BaseResponse
// @Router       /users/detail [get]
func (h *UserHandler) Detail(c echo.Context) error {
	caller, err := principalFromContext(c)
	if err != nil {
		return err
	}

	var userID *int64
	if raw := c.QueryParam("user_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return respond(c, http.StatusBadRequest, messages.UserIDOrEmail, nil)
		}
		userID = &id
	}
	var email *string
	if raw := c.QueryParam("email"); raw != "" {
		email = &raw
	}
	if userID == nil && email == nil {
		return respond(c, http.StatusBadRequest, messages.UserIDOrEmail, nil)
	}

	detail, err := h.service.Detail(c.Request().Context(), ports.DetailInput{
		Caller: caller,
		UserID: userID,
		Email:  email,
		Token:  c.Request().Header.Get("Authorization"),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return respond(c, http.StatusForbidden, messages.ForbiddenUser, nil)
		case errors.Is(err, domain.ErrUserNotFound):
			return respond(c, http.StatusNotFound, messages.UserNotFound, nil)
		case errors.Is(err, domain.ErrTargetRequired):
			return respond(c, http.StatusBadRequest, messages.UserIDOrEmail, nil)
		}
		return respond(c, http.StatusInternalServerError, messages.InternalError, nil)
	}

	return respond(c, http.StatusOK, messages.UserDetails, userDetailData{
		userData: sanitizeUser(detail.User),
		Posts:    detail.Posts,
	})
}

func sanitizeUser(u *domain.User) userData {
	return userData{ID: u.ID, Username: u.Username, Email: u.Email, IsAdmin: u.IsAdmin}
}
