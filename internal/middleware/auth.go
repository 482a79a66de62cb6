package middleware

import (
	"net/http"
	"strings"

	"github.com/godownhub/marketplace/internal/models"
	"github.com/godownhub/marketplace/internal/repository"
	"github.com/godownhub/marketplace/internal/token"
	"github.com/labstack/echo/v4"
)

const userContextKey = "current_user"

// Authenticator verifies the bearer credential and loads the caller. Roles
// are read from the database row, not from token claims, so revocations take
// effect immediately.
type Authenticator struct {
	issuer   *token.Issuer
	userRepo repository.UserRepository
}

func NewAuthenticator(issuer *token.Issuer, userRepo repository.UserRepository) *Authenticator {
	return &Authenticator{issuer: issuer, userRepo: userRepo}
}

func (a *Authenticator) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}

		claims, err := a.issuer.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}

		user, err := a.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil || !user.IsActive {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}

		c.Set(userContextKey, user)
		return next(c)
	}
}

// RequireRoles gates a route on role-set intersection: any one of the listed
// roles grants access. Ownership checks stay in the services.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			if !user.HasAnyRole(roles...) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated caller, or nil outside the
// Authenticate middleware.
func CurrentUser(c echo.Context) *models.User {
	user, _ := c.Get(userContextKey).(*models.User)
	return user
}
