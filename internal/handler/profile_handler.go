package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cityeyes/internal/errors"
	"cityeyes/internal/service"
)

// ProfileHandler handles the caller's own profile endpoints.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// UpdatePreferencesRequest carries the free-form preference blob.
type UpdatePreferencesRequest struct {
	Preferences string `json:"preferences" validate:"required"`
}

// Me godoc
// @Summary Get the caller's profile with trust score and credits
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Profile
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profiles/me [get]
func (h *ProfileHandler) Me(c echo.Context) error {
	identity := identityFrom(c)
	if identity == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "unauthenticated",
			Code:  "UNAUTHENTICATED",
		})
	}

	profile, err := h.profileService.Get(c.Request().Context(), identity.ProfileID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdatePreferences godoc
// @Summary Replace the caller's preference blob
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdatePreferencesRequest true "Preferences"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /profiles/me/preferences [put]
func (h *ProfileHandler) UpdatePreferences(c echo.Context) error {
	var req UpdatePreferencesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	if err := h.profileService.UpdatePreferences(c.Request().Context(), identityFrom(c), req.Preferences); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "preferences updated",
	})
}

// RewardHistory godoc
// @Summary List the caller's reward history
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.RewardEvent
// @Failure 401 {object} errors.ErrorResponse
// @Router /profiles/me/rewards [get]
func (h *ProfileHandler) RewardHistory(c echo.Context) error {
	events, err := h.profileService.RewardHistory(c.Request().Context(), identityFrom(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, events)
}
