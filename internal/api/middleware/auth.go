package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mediquix/mediquix-server/internal/api/metrics"
	"github.com/mediquix/mediquix-server/internal/core/domain"
	"github.com/mediquix/mediquix-server/internal/core/ports"
)

const claimsKey = "claims"

// UnauthorizedMessage is returned for every token failure, so a missing
// header cannot be told apart from a bad token.
const UnauthorizedMessage = "Unauthorized Access"

// Auth verifies the access token carried in the second space-separated
// segment of the Authorization header and stores its payload in the
// context. The scheme word and any later segments are not inspected.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return unauthorized()
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) < 2 || parts[1] == "" {
				return unauthorized()
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return unauthorized()
			}

			metrics.GateDecisionsTotal.WithLabelValues("token", metrics.OutcomeAllow).Inc()
			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom returns the payload stored by Auth.
func ClaimsFrom(c echo.Context) (domain.Claims, bool) {
	claims, ok := c.Get(claimsKey).(domain.Claims)
	return claims, ok
}

func unauthorized() error {
	metrics.GateDecisionsTotal.WithLabelValues("token", metrics.OutcomeDeny).Inc()
	return echo.NewHTTPError(http.StatusUnauthorized, UnauthorizedMessage)
}
