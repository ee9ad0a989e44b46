package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/microservices/internal/api/messages"
	"github.com/bloghub/microservices/internal/core/domain"
	"github.com/bloghub/microservices/internal/core/ports"
)

// AuthHandler serves registration, login and the cross-service
// token-validation endpoint of the user service.
type AuthHandler struct {
	service ports.AuthService
	audit   ports.AuthEventRecorder
}

func NewAuthHandler(service ports.AuthService, audit ports.AuthEventRecorder) *AuthHandler {
	return &AuthHandler{service: service, audit: audit}
}

type signUpRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

type signInRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// signInData is the login payload: the sanitized user plus the issued token.
// The password never appears here.
type signInData struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
	Token    string `json:"token"`
}

// SignUp registers a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "User registration details"
// @Success      201   {object}  BaseResponse
// @Failure      400   {object}  BaseResponse
// @Router       /auth/sign-up [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return respond(c, http.StatusBadRequest, "invalid payload", nil)
	}
	if err := c.Validate(&req); err != nil {
		return respond(c, http.StatusBadRequest, err.Error(), nil)
	}

	_, err := h.service.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			h.record(c, req.Email, domain.AuthEventSignUp, "duplicate")
			return respond(c, http.StatusBadRequest, messages.UserExists, nil)
		}
		return respond(c, http.StatusInternalServerError, messages.InternalError, nil)
	}

	h.record(c, req.Email, domain.AuthEventSignUp, "created")
	return respond(c, http.StatusCreated, messages.UserCreated, nil)
}

// SignIn authenticates a user and returns the sanitized account with a JWT.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Login credentials"
// @Success      200   {object}  BaseResponse
// @Failure      401   {object}  BaseResponse
// @Router       /auth/sign-in [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return respond(c, http.StatusBadRequest, "invalid payload", nil)
	}
	if err := c.Validate(&req); err != nil {
		return respond(c, http.StatusBadRequest, err.Error(), nil)
	}

	token, user, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.record(c, req.Email, domain.AuthEventSignIn, "invalid_credentials")
			return respond(c, http.StatusUnauthorized, messages.InvalidCredentials, nil)
		}
		return respond(c, http.StatusInternalServerError, messages.InternalError, nil)
	}

	h.record(c, user.Email, domain.AuthEventSignIn, "success")
	return respond(c, http.StatusOK, messages.SignInSuccess, signInData{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		IsAdmin:  user.IsAdmin,
		Token:    token,
	})
}

// ValidateToken is the cross-service validation endpoint: the post service
// redeems a bearer token here for verified claims. Verification failure and
// a vanished credential record both yield 401; success returns the decoded
// claims. No side effects; safe to call repeatedly and concurrently.
//
// @Summary      Validate a bearer token for service-to-service calls
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  BaseResponse
// @Failure      401  {object}  BaseResponse
// @Router       /auth/validate-token [get]
func (h *AuthHandler) ValidateToken(c echo.Context) error {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return respond(c, http.StatusUnauthorized, messages.TokenRequired, nil)
	}
	token := strings.TrimPrefix(header, "Bearer ")

	claims, err := h.service.ValidateToken(c.Request().Context(), token)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			h.record(c, "", domain.AuthEventValidateToken, "unknown_user")
			return respond(c, http.StatusUnauthorized, messages.Unauthorized, nil)
		}
		h.record(c, "", domain.AuthEventValidateToken, "rejected")
		return respond(c, http.StatusUnauthorized, err.Error(), nil)
	}

	h.record(c, claims.Email, domain.AuthEventValidateToken, "valid")
	return respond(c, http.StatusOK, "", claims)
}

// record enqueues an audit event; a nil recorder disables auditing.
func (h *AuthHandler) record(c echo.Context, email string, kind domain.AuthEventKind, outcome string) {
	if h.audit == nil {
		return
	}
	h.audit.Enqueue(ports.AuthEventInput{
		Email:     email,
		Kind:      kind,
		Outcome:   outcome,
		RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
		Timestamp: time.Now().UTC(),
	})
}
