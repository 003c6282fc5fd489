package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cityeyes/internal/errors"
	"cityeyes/internal/service"
)

// LandmarkHandler handles landmark submission and feed endpoints.
type LandmarkHandler struct {
	landmarkService service.LandmarkService
}

// NewLandmarkHandler creates a new landmark handler.
func NewLandmarkHandler(landmarkService service.LandmarkService) *LandmarkHandler {
	return &LandmarkHandler{landmarkService: landmarkService}
}

// SubmitLandmarkRequest represents a landmark submission. Coordinates stay
// strings here; the submission validator owns their parsing. An optional
// "photo" multipart file may accompany the form.
type SubmitLandmarkRequest struct {
	Name        string `json:"name" form:"name" validate:"required"`
	Category    string `json:"category" form:"category" validate:"required"`
	Description string `json:"description" form:"description"`
	Latitude    string `json:"latitude" form:"latitude" validate:"required"`
	Longitude   string `json:"longitude" form:"longitude" validate:"required"`
}

// Submit godoc
// @Summary Submit a landmark for admin review
// @Tags landmarks
// @Accept json
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param request body SubmitLandmarkRequest true "Landmark data"
// @Success 201 {object} model.Landmark
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /landmarks [post]
func (h *LandmarkHandler) Submit(c echo.Context) error {
	var req SubmitLandmarkRequest
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

	// Optional photo; absent on JSON submissions.
	photo, _ := c.FormFile("photo")

	landmark, err := h.landmarkService.Submit(c.Request().Context(), identityFrom(c), service.LandmarkInput{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}, photo)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, landmark)
}

// ListLive godoc
// @Summary List verified landmarks for the map
// @Tags landmarks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Landmark
// @Failure 500 {object} errors.ErrorResponse
// @Router /landmarks [get]
func (h *LandmarkHandler) ListLive(c echo.Context) error {
	landmarks, err := h.landmarkService.ListLive(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, landmarks)
}

// ListMine godoc
// @Summary List the caller's own submissions, including unverified ones
// @Tags landmarks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Landmark
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /landmarks/mine [get]
func (h *LandmarkHandler) ListMine(c echo.Context) error {
	landmarks, err := h.landmarkService.ListMine(c.Request().Context(), identityFrom(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, landmarks)
}
