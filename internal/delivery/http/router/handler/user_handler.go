// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"usersvc/internal/delivery/http/response"
	"usersvc/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers. It performs no
// business logic beyond input extraction; status codes and error bodies are
// decided by the response package and the error handler.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles GET /v1/users.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.uc.FindAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, users)
}

// Create handles POST /v1/users.
func (h *UserHandler) Create(c echo.Context) error {
	var input usecase.CreateUserInput
	if err := c.Bind(&input); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body", nil)
	}

	user, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusCreated, user)
}

// GetByID handles GET /v1/users/:id. An absent record is a successful
// response with a null payload.
func (h *UserHandler) GetByID(c echo.Context) error {
	user, err := h.uc.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	if user == nil {
		return response.Data(c, http.StatusOK, nil)
	}

	return response.Data(c, http.StatusOK, user)
}

// UpdateByID handles PUT /v1/users. The target id travels in the body.
func (h *UserHandler) UpdateByID(c echo.Context) error {
	var input usecase.UpdateUserInput
	if err := c.Bind(&input); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body", nil)
	}

	outcome, err := h.uc.UpdateByID(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, outcome)
}

// DeleteByID handles DELETE /v1/users. The target id travels in the body.
func (h *UserHandler) DeleteByID(c echo.Context) error {
	var input usecase.DeleteUserInput
	if err := c.Bind(&input); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body", nil)
	}

	outcome, err := h.uc.DeleteByID(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, outcome)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Data(c, http.StatusOK, map[string]string{"status": "ok"})
}
