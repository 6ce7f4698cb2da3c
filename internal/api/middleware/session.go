package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/briefpanel/brief-service/internal/core/domain"
	"github.com/briefpanel/brief-service/internal/core/ports"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "access_token"

const userContextKey = "user"

// Session resolves the session cookie into a user and stores it in the echo
// context. It never fails the request: an absent, expired or forged token
// simply leaves no user set, and protected routes redirect via RequireUser.
func Session(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cookie, err := c.Cookie(CookieName); err == nil {
				if user := auth.ResolveToken(cookie.Value); user != nil {
					c.Set(userContextKey, user)
				}
			}
			return next(c)
		}
	}
}

// RequireUser gates protected routes: without a resolved session the client
// is redirected to the login page rather than shown an error.
func RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentUser(c) == nil {
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		return next(c)
	}
}

// CurrentUser returns the user resolved by Session, or nil.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(userContextKey).(*domain.User)
	return user
}
