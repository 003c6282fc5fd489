package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cityeyes/internal/auth"
	"cityeyes/internal/errors"
	"cityeyes/internal/service"
)

const identityContextKey = "identity"

// IdentityMiddleware resolves the JWT claims placed in the context by the
// JWT middleware into a role-classified identity, once per request. Tokens
// blacklisted at logout are rejected here even though their signature is
// still valid. Every privileged handler runs behind it.
func IdentityMiddleware(identities service.IdentityService, tokens auth.TokenStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*auth.Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "invalid token",
					Code:  "UNAUTHENTICATED",
				})
			}

			if claims.ID != "" {
				if blacklisted, _ := tokens.IsAccessTokenBlacklisted(c.Request().Context(), claims.ID); blacklisted {
					return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
						Error: "token revoked",
						Code:  "UNAUTHENTICATED",
					})
				}
			}

			identity, err := identities.Resolve(c.Request().Context(), claims.ProfileID, claims.Email)
			if err != nil {
				httpErr := errors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}

			c.Set(identityContextKey, identity)
			return next(c)
		}
	}
}

// identityFrom returns the resolved caller identity, or nil when the route
// runs outside the secured group.
func identityFrom(c echo.Context) *service.Identity {
	identity, _ := c.Get(identityContextKey).(*service.Identity)
	return identity
}
