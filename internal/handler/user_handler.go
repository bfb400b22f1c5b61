package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dovietdong/WebApiBase/internal/auth"
	apierrors "github.com/dovietdong/WebApiBase/internal/errors"
	"github.com/dovietdong/WebApiBase/internal/response"
	"github.com/dovietdong/WebApiBase/internal/service"
)

// UserHandler handles user endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers godoc
// @Summary List all users (admin only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response.OK("users retrieved", users))
}

// GetUser godoc
// @Summary Get a user by id (self or admin)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("invalid user id"))
	}

	if err := auth.RequireSelfOrAdmin(currentClaims(c), id); err != nil {
		return c.JSON(http.StatusForbidden, response.Fail(err.Error()))
	}

	user, err := h.userService.GetUser(c.Request().Context(), id)
	if err != nil {
		if err == apierrors.ErrUserNotFound {
			return c.JSON(http.StatusNotFound, response.Fail(err.Error()))
		}
		return err
	}

	return c.JSON(http.StatusOK, response.OK("user retrieved", user))
}
