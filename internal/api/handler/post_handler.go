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

// PostHandler serves the post CRUD endpoints. Every route sits behind the
// remote authentication gate, so a verified principal is always in context.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

type createPostRequest struct {
	Title       string `json:"title"       validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"required,min=3,max=1000"`
	ImageURL    string `json:"image_url"`
}

type updatePostRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=3,max=100"`
	Description *string `json:"description" validate:"omitempty,min=3,max=1000"`
}

// List returns all active posts.
//
// @Summary      List all active posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  BaseResponse
// @Router       /posts/ [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.ListActive(c.Request().Context())
	if err != nil {
		return respond(c, http.StatusInternalServerError, messages.InternalError, nil)
	}
	if len(posts) == 0 {
		return respond(c, http.StatusOK, messages.NoRecords, []*domain.Post{})
	}
	return respond(c, http.StatusOK, messages.PostList, posts)
}

// Create stores a new post owned by the caller. Ownership comes from the
// verified claims, never from the payload.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post content"
// @Success      201   {object}  BaseResponse
// @Failure      400   {object}  BaseResponse
// @Failure      409   {object}  BaseResponse
// @Router       /posts/create [post]
func (h *PostHandler) Create(c echo.Context) error {
	caller, err := principalFromContext(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return respond(c, http.StatusBadRequest, "invalid payload", nil)
	}
	if err := c.Validate(&req); err != nil {
		return respond(c, http.StatusBadRequest, err.Error(), nil)
	}

	post, err := h.service.Create(c.Request().Context(), ports.CreatePostInput{
		Title:           req.Title,
		Description:     req.Description,
		ImageURL:        req.ImageURL,
		CreatedByUserID: caller.ID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrPostExists) {
			return respond(c, http.StatusConflict, messages.PostExists, nil)
		}
		return respond(c, http.StatusInternalServerError, messages.InternalError, nil)
	}

	return respond(c, http.StatusCreated, messages.PostCreated, post)
}

// Details returns a single post by id.
//
// @Summary      Get post details
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        post_id  query  int  true  "ID of post"
// @Success      200  {object}  BaseResponse
// @Failure      400  {object}  BaseResponse
// @Failure      404  {object}  BaseResponse
// @Router       /posts/details [get]
func (h *PostHandler) Details(c echo.Context) error {
	postID, err := queryID(c, "post_id")
	if err != nil {
		return err
	}

	post, err := h.service.GetByID(c.Request().Context(), postID)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return respond(c, http.StatusNotFound, messages.PostNotFound, nil)
		}
		return respond(c, http.StatusInternalServerError, messages.InternalError, nil)
	}

	return respond(c, http.StatusOK, messages.PostDetails, post)
}

// Edit applies a partial update to a post. Only the owner or an admin may
// edit; absent fields keep their stored values.
//
// @Summary      Edit a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        post_id  query  int                true  "ID of post"
// @Param        body     body   updatePostRequest  true  "Fields to change"
// @Success      200  {object}  BaseResponse
// @Failure      400  {object}  BaseResponse
// @Failure      403  {object}  BaseResponse
// @Failure      404  {object}  BaseResponse
// @Router       /posts/edit [patch]
func (h *PostHandler) Edit(c echo.Context) error {
	caller, err := principalFromContext(c)
	if err != nil {
		return err
	}
	postID, err := queryID(c, "post_id")
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return respond(c, http.StatusBadRequest, "invalid payload", nil)
	}
	if err := c.Validate(&req); err != nil {
		return respond(c, http.StatusBadRequest, err.Error(), nil)
	}

	post, err := h.service.Update(c.Request().Context(), postID, caller, ports.UpdatePostInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return respond(c, http.StatusForbidden, messages.ForbiddenPost, nil)
		case errors.Is(err, domain.ErrPostNotFound):
			return respond(c, http.StatusNotFound, messages.PostNotFound, nil)
		case errors.Is(err, domain.ErrPostExists):
			return respond(c, http.StatusConflict, messages.PostExists, nil)
		}
		return respond(c, http.StatusInternalServerError, messages.InternalError, nil)
	}

	return respond(c, http.StatusOK, messages.PostUpdated, post)
}

// Delete marks a post deleted. The record is retained; listings and lookups
// stop returning it.
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        post_id  query  int  true  "ID of post"
// @Success      200  {object}  BaseResponse
// @Failure      400  {object}  BaseResponse
// @Failure      403  {object}  BaseResponse
// @Failure      404  {object}  BaseResponse
// @Router       /posts/ [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	caller, err := principalFromContext(c)
	if err != nil {
		return err
	}
	postID, err := queryID(c, "post_id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), postID, caller); err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return respond(c, http.StatusForbidden, messages.ForbiddenPost, nil)
		case errors.Is(err, domain.ErrPostNotFound):
			return respond(c, http.StatusNotFound, messages.PostNotFound, nil)
		}
		return respond(c, http.StatusInternalServerError, messages.InternalError, nil)
	}

	return respond(c, http.StatusOK, messages.PostDeleted, nil)
}

// UserPosts returns the active posts authored by one user. The user service
// calls this when assembling user details.
//
// @Summary      List active posts of one user
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  query  int  true  "ID of author"
// @Success      200  {object}  BaseResponse
// @Failure      400  {object}  BaseResponse
// @Router       /posts/user-posts [get]
func (h *PostHandler) UserPosts(c echo.Context) error {
	userID, err := queryID(c, "user_id")
	if err != nil {
		return err
	}

	posts, err := h.service.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return respond(c, http.StatusInternalServerError, messages.InternalError, nil)
	}
	if len(posts) == 0 {
		return respond(c, http.StatusOK, messages.NoRecords, []*domain.Post{})
	}
	return respond(c, http.StatusOK, messages.PostList, posts)
}

// queryID parses a required positive integer query parameter. The returned
// error is an *echo.HTTPError rendered by the central error handler.
func queryID(c echo.Context, name string) (int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a positive integer")
	}
	return id, nil
}
