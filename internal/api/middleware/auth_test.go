package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/genconfi/groomify-api/internal/core/domain"
)

type stubAuthService struct {
	user *domain.User
	err  error
}

func (s *stubAuthService) Signup(context.Context, string, string, string, string) (string, *domain.User, error) {
	panic("not used")
}

func (s *stubAuthService) Login(context.Context, string, string) (string, *domain.User, error) {
	panic("not used")
}

func (s *stubAuthService) CurrentUser(_ context.Context, _ string) (*domain.User, error) {
	return s.user, s.err
}

func (s *stubAuthService) ForgotPassword(context.Context, string) error {
	panic("not used")
}

func (s *stubAuthService) ResetPassword(context.Context, string, string) error {
	panic("not used")
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	alice := &domain.User{ID: "user-1", Name: "Alice", Role: domain.RoleClient}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer some-valid-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(&stubAuthService{user: alice})
	handler := mw(func(c echo.Context) error {
		called = true
		user, ok := CurrentUser(c)
		if !ok || user.ID != "user-1" {
			t.Fatalf("user not injected: %+v", user)
		}
		if role, _ := c.Get(ContextKeyRole).(domain.Role); role != domain.RoleClient {
			t.Fatalf("role not injected")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(&stubAuthService{user: &domain.User{}})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthMiddleware_BadHeaderFormats(t *testing.T) {
	e := echo.New()
	mw := Auth(&stubAuthService{user: &domain.User{}})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	for _, header := range []string{"Token abc", "Bearer", "Bearer ", "bearer-token"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", header)
		c := e.NewContext(req, httptest.NewRecorder())

		err := handler(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %v", header, err)
		}
	}
}

func TestAuthMiddleware_ResolutionFailures(t *testing.T) {
	e := echo.New()

	// expired, tampered, and user-gone all bubble the domain error up; the
	// central error handler maps each of them to 401.
	for _, resolveErr := range []error{
		domain.ErrTokenExpired,
		domain.ErrTokenInvalid,
		domain.ErrUnauthorized,
	} {
		mw := Auth(&stubAuthService{err: resolveErr})
		handler := mw(func(c echo.Context) error {
			t.Fatalf("should not reach next")
			return nil
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer whatever")
		c := e.NewContext(req, httptest.NewRecorder())

		if err := handler(c); !errors.Is(err, resolveErr) {
			t.Fatalf("expected %v, got %v", resolveErr, err)
		}
	}
}
