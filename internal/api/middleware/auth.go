package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/genconfi/groomify-api/internal/api/metrics"
	"github.com/genconfi/groomify-api/internal/core/domain"
	"github.com/genconfi/groomify-api/internal/core/ports"
)

// Context keys set by Auth for downstream handlers.
const (
	ContextKeyUser = "user"
	ContextKeyRole = "role"
)

// Auth resolves the bearer token to an authenticated identity and injects it
// into the request context. Any failure — missing header, tampered or expired
// token, or a subject that no longer exists — is a 401; causes are not
// distinguished to the client.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get("Authorization"))
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid authorization header")
			}

			user, err := auth.CurrentUser(c.Request().Context(), token)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues(verifyOutcome(err)).Inc()
				return err
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(ContextKeyUser, user)
			c.Set(ContextKeyRole, user.Role)
			return next(c)
		}
	}
}

// CurrentUser extracts the identity injected by Auth. The second return is
// false when the middleware did not run on this route.
func CurrentUser(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(ContextKeyUser).(*domain.User)
	return user, ok
}

func verifyOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrUnauthorized):
		return "user_gone"
	default:
		return "invalid"
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
