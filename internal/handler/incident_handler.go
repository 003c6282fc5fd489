package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"cityeyes/internal/errors"
	"cityeyes/internal/service"
)

// IncidentHandler handles incident reporting and feed endpoints.
type IncidentHandler struct {
	incidentService service.IncidentService
}

// NewIncidentHandler creates a new incident handler.
func NewIncidentHandler(incidentService service.IncidentService) *IncidentHandler {
	return &IncidentHandler{incidentService: incidentService}
}

// ReportIncidentRequest represents an incident report. Coordinates stay
// strings here; the submission validator owns their parsing.
type ReportIncidentRequest struct {
	Type        string `json:"type" form:"type" validate:"required"`
	Description string `json:"description" form:"description"`
	Severity    string `json:"severity" form:"severity" validate:"required"`
	Latitude    string `json:"latitude" form:"latitude" validate:"required"`
	Longitude   string `json:"longitude" form:"longitude" validate:"required"`
}

// Report godoc
// @Summary Report a new incident
// @Tags incidents
// @Accept json
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param request body ReportIncidentRequest true "Incident data"
// @Success 201 {object} model.Incident
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /incidents [post]
func (h *IncidentHandler) Report(c echo.Context) error {
	var req ReportIncidentRequest
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

	photo, _ := c.FormFile("photo")

	incident, err := h.incidentService.Report(c.Request().Context(), identityFrom(c), service.IncidentInput{
		Type:        req.Type,
		Description: req.Description,
		Severity:    req.Severity,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}, photo)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, incident)
}

// Resolve godoc
// @Summary Resolve a live incident
// @Tags incidents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /incidents/{id}/resolve [post]
func (h *IncidentHandler) Resolve(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid incident id",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.incidentService.Resolve(c.Request().Context(), identityFrom(c), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "incident resolved",
	})
}

// ListLive godoc
// @Summary List live incidents for the map
// @Tags incidents
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Incident
// @Failure 500 {object} errors.ErrorResponse
// @Router /incidents [get]
func (h *IncidentHandler) ListLive(c echo.Context) error {
	incidents, err := h.incidentService.ListLive(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, incidents)
}

// ListMine godoc
// @Summary List the caller's own incident reports
// @Tags incidents
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Incident
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /incidents/mine [get]
func (h *IncidentHandler) ListMine(c echo.Context) error {
	incidents, err := h.incidentService.ListMine(c.Request().Context(), identityFrom(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, incidents)
}
