package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	appmiddleware "github.com/briefpanel/brief-service/internal/api/middleware"
	"github.com/briefpanel/brief-service/internal/core/domain"
)

type stubAuthService struct {
	authenticateFn func(ctx context.Context, username, password string) (*domain.User, error)
	issueFn        func(username string, ttl time.Duration) (string, error)
}

func (s *stubAuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	return s.authenticateFn(ctx, username, password)
}

func (s *stubAuthService) IssueToken(username string, ttl time.Duration) (string, error) {
	if s.issueFn != nil {
		return s.issueFn(username, ttl)
	}
	return "token123", nil
}

func (s *stubAuthService) ResolveToken(string) *domain.User {
	return nil
}

func newFormContext(t *testing.T, target string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Renderer = newTestRenderer(t)
	e.Validator = NewValidator()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		authenticateFn: func(_ context.Context, username, password string) (*domain.User, error) {
			if username != "admin" || password != "password" {
				t.Fatalf("unexpected args: %q %q", username, password)
			}
			return &domain.User{Username: "admin"}, nil
		},
	}
	h := NewAuthHandler(stub, 30*time.Minute)

	c, rec := newFormContext(t, "/login", url.Values{"username": {"admin"}, "password": {"password"}})
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/panel" {
		t.Fatalf("expected redirect to /panel, got %q", loc)
	}

	cookies := rec.Result().Cookies()
	var session *http.Cookie
	for _, ck := range cookies {
		if ck.Name == appmiddleware.CookieName {
			session = ck
		}
	}
	if session == nil {
		t.Fatalf("expected session cookie, got %+v", cookies)
	}
	if session.Value != "token123" {
		t.Fatalf("unexpected cookie value: %q", session.Value)
	}
	if !session.HttpOnly {
		t.Fatalf("session cookie must be HttpOnly")
	}
	if session.MaxAge != int((30 * time.Minute).Seconds()) {
		t.Fatalf("cookie max-age should match token TTL, got %d", session.MaxAge)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	stub := &stubAuthService{
		authenticateFn: func(context.Context, string, string) (*domain.User, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, 30*time.Minute)

	c, rec := newFormContext(t, "/login", url.Values{"username": {"admin"}, "password": {"wrong"}})
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 re-render, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), loginErrorMessage) {
		t.Fatalf("expected error indicator in body, got:\n%s", rec.Body.String())
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("no cookie should be set on failure")
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	stub := &stubAuthService{
		authenticateFn: func(context.Context, string, string) (*domain.User, error) {
			t.Fatalf("authenticate must not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, 30*time.Minute)

	c, rec := newFormContext(t, "/login", url.Values{"username": {"admin"}})
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 re-render, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), loginErrorMessage) {
		t.Fatalf("expected error indicator in body")
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, 30*time.Minute)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != appmiddleware.CookieName || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected expired session cookie, got %+v", cookies)
	}
}
