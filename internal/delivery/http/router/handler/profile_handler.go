// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"

	"profilehub/internal/delivery/http/response"
	domainerrors "profilehub/internal/domain/errors"
	"profilehub/internal/domain/repository"
	"profilehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// List handles GET /profiles.
func (h *ProfileHandler) List(c echo.Context) error {
	profiles, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profiles, "Profiles retrieved successfully")
}

// GetByID handles GET /profiles/:id.
func (h *ProfileHandler) GetByID(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", domainerrors.MsgBadRequest)
	}

	profile, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile retrieved successfully")
}

// Add handles POST /profiles, the registration flow.
func (h *ProfileHandler) Add(c echo.Context) error {
	var input *usecase.ProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", domainerrors.MsgBadRequest)
	}

	profile, err := h.uc.Add(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	// Registration answers 200, not 201; the status is part of the published
	// contract.
	return response.Success(c, http.StatusOK, profile, "Profile registered successfully")
}

// Patch handles PATCH /profiles/:id with an RFC 6902 document body.
func (h *ProfileHandler) Patch(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", domainerrors.MsgBadRequest)
	}

	var ops []repository.PatchOperation
	if err := c.Bind(&ops); err != nil {
		return response.BindingError(c, "INVALID_INPUT", domainerrors.MsgBadRequest)
	}

	profile, err := h.uc.Patch(c.Request().Context(), id, ops)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile updated successfully")
}

// Update handles PUT /profiles, the whole-object merge addressed by username.
func (h *ProfileHandler) Update(c echo.Context) error {
	var input *usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", domainerrors.MsgBadRequest)
	}

	profile, err := h.uc.UpdateByUsername(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile updated successfully")
}

// DeleteByID handles DELETE /profiles/:id.
func (h *ProfileHandler) DeleteByID(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", domainerrors.MsgBadRequest)
	}

	if err := h.uc.DeleteByID(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Profile deleted"}, "Profile deleted successfully")
}

// Login handles POST /login.
func (h *ProfileHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", domainerrors.MsgBadRequest)
	}

	profile, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Login successful")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// parseID converts the path segment to an id. A non-numeric segment is
// rejected here; range checks belong to the use case.
func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
