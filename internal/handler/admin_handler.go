package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"cityeyes/internal/errors"
	"cityeyes/internal/service"
)

// AdminHandler handles the privileged moderation endpoints. Every operation
// here re-checks the caller's role in the service layer; the handlers only
// shape requests and responses.
type AdminHandler struct {
	landmarkService service.LandmarkService
	incidentService service.IncidentService
	profileService  service.ProfileService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(
	landmarkService service.LandmarkService,
	incidentService service.IncidentService,
	profileService service.ProfileService,
) *AdminHandler {
	return &AdminHandler{
		landmarkService: landmarkService,
		incidentService: incidentService,
		profileService:  profileService,
	}
}

// ListPendingLandmarks godoc
// @Summary List landmarks awaiting verification
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Landmark
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/landmarks/pending [get]
func (h *AdminHandler) ListPendingLandmarks(c echo.Context) error {
	landmarks, err := h.landmarkService.ListPending(c.Request().Context(), identityFrom(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, landmarks)
}

// VerifyLandmark godoc
// @Summary Verify a landmark and reward its submitter
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Landmark ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/landmarks/{id}/verify [post]
func (h *AdminHandler) VerifyLandmark(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid landmark id",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.landmarkService.Verify(c.Request().Context(), identityFrom(c), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "landmark verified",
	})
}

// DeleteLandmark godoc
// @Summary Delete a landmark
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Landmark ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/landmarks/{id} [delete]
func (h *AdminHandler) DeleteLandmark(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid landmark id",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.landmarkService.Delete(c.Request().Context(), identityFrom(c), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "landmark deleted",
	})
}

// DeleteIncident godoc
// @Summary Delete an incident
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/incidents/{id} [delete]
func (h *AdminHandler) DeleteIncident(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid incident id",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.incidentService.Delete(c.Request().Context(), identityFrom(c), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "incident deleted",
	})
}

// SearchProfiles godoc
// @Summary Search profiles by display name
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param q query string true "Name substring"
// @Success 200 {array} model.Profile
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/profiles [get]
func (h *AdminHandler) SearchProfiles(c echo.Context) error {
	profiles, err := h.profileService.Search(c.Request().Context(), identityFrom(c), c.QueryParam("q"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, profiles)
}

// AuthorizeAdmin godoc
// @Summary Promote a profile to verified admin (super admin only)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/profiles/{id}/authorize [post]
func (h *AdminHandler) AuthorizeAdmin(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid profile id",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.profileService.AuthorizeAdmin(c.Request().Context(), identityFrom(c), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "admin authorized",
	})
}
