package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/briefpanel/brief-service/internal/api/metrics"
	appmiddleware "github.com/briefpanel/brief-service/internal/api/middleware"
	"github.com/briefpanel/brief-service/internal/core/ports"
)

const loginErrorMessage = "Invalid username or password"

// AuthHandler serves the login/logout flow backed by cookie sessions.
type AuthHandler struct {
	authService ports.AuthService
	tokenTTL    time.Duration
}

func NewAuthHandler(authService ports.AuthService, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, tokenTTL: tokenTTL}
}

type loginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type loginView struct {
	Error string
}

// LoginPage renders the login form.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", loginView{})
}

// Login authenticates the submitted credentials. Success sets the session
// cookie and redirects to the panel; failure re-renders the form with a
// message that never says whether the username or the password was wrong.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.Render(http.StatusOK, "login.html", loginView{Error: loginErrorMessage})
	}
	if err := c.Validate(&req); err != nil {
		return c.Render(http.StatusOK, "login.html", loginView{Error: loginErrorMessage})
	}

	user, err := h.authService.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return c.Render(http.StatusOK, "login.html", loginView{Error: loginErrorMessage})
	}

	token, err := h.authService.IssueToken(user.Username, h.tokenTTL)
	if err != nil {
		return err
	}
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

	// Cookie lifetime matches the token TTL so both expire together.
	c.SetCookie(&http.Cookie{
		Name:     appmiddleware.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(h.tokenTTL.Seconds()),
	})

	return c.Redirect(http.StatusSeeOther, "/panel")
}

// Logout clears the session cookie. The token itself stays valid until its
// expiry; logging out only removes it from the browser.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     appmiddleware.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	return c.Redirect(http.StatusSeeOther, "/")
}
