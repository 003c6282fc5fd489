package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"cityeyes/internal/auth"
	"cityeyes/internal/config"
	"cityeyes/internal/handler"
	"cityeyes/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
	identityService service.IdentityService,
	authHandler *handler.AuthHandler,
	landmarkHandler *handler.LandmarkHandler,
	incidentHandler *handler.IncidentHandler,
	profileHandler *handler.ProfileHandler,
	adminHandler *handler.AdminHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Uploaded submission photos resolve publicly under /media.
	e.Static("/media", cfg.MediaDir)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes: JWT validation first, then one identity resolution
	// per request. Role checks happen again inside the services.
	secured := api.Group("",
		echojwt.WithConfig(echojwt.Config{
			TokenLookup: "header:" + echo.HeaderAuthorization,
			ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
				return jwtService.ValidateToken(token)
			},
		}),
		handler.IdentityMiddleware(identityService, tokenStore),
	)

	// Map feeds and submissions
	secured.GET("/landmarks", landmarkHandler.ListLive)
	secured.POST("/landmarks", landmarkHandler.Submit)
	secured.GET("/landmarks/mine", landmarkHandler.ListMine)
	secured.GET("/incidents", incidentHandler.ListLive)
	secured.POST("/incidents", incidentHandler.Report)
	secured.GET("/incidents/mine", incidentHandler.ListMine)
	secured.POST("/incidents/:id/resolve", incidentHandler.Resolve)

	// Own profile
	secured.GET("/profiles/me", profileHandler.Me)
	secured.PUT("/profiles/me/preferences", profileHandler.UpdatePreferences)
	secured.GET("/profiles/me/rewards", profileHandler.RewardHistory)

	// Moderation. Role enforcement lives in the services so the guard also
	// covers any future callers that bypass HTTP.
	admin := secured.Group("/admin")
	admin.GET("/landmarks/pending", adminHandler.ListPendingLandmarks)
	admin.POST("/landmarks/:id/verify", adminHandler.VerifyLandmark)
	admin.DELETE("/landmarks/:id", adminHandler.DeleteLandmark)
	admin.DELETE("/incidents/:id", adminHandler.DeleteIncident)
	admin.GET("/profiles", adminHandler.SearchProfiles)
	admin.POST("/profiles/:id/authorize", adminHandler.AuthorizeAdmin)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
