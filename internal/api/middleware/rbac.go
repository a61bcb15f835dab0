package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mediquix/mediquix-server/internal/api/metrics"
	"github.com/mediquix/mediquix-server/internal/core/domain"
	"github.com/mediquix/mediquix-server/internal/core/ports"
)

// ForbiddenMessage is returned when a verified identity is not an admin.
const ForbiddenMessage = "Forbidden Access"

// RequireAdmin admits only identities whose account has the admin role. It
// must run after Auth. A failed role lookup is a server error, never a
// decision.
func RequireAdmin(access ports.AccessService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				metrics.GateDecisionsTotal.WithLabelValues("role", metrics.OutcomeDeny).Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, UnauthorizedMessage)
			}

			admin, err := access.IsAdmin(c.Request().Context(), claims.Email())
			if err != nil {
				metrics.GateDecisionsTotal.WithLabelValues("role", metrics.OutcomeError).Inc()
				return &domain.OperationError{Message: "Failed to verify role", Err: err}
			}
			if !admin {
				metrics.GateDecisionsTotal.WithLabelValues("role", metrics.OutcomeDeny).Inc()
				return echo.NewHTTPError(http.StatusForbidden, ForbiddenMessage)
			}

			metrics.GateDecisionsTotal.WithLabelValues("role", metrics.OutcomeAllow).Inc()
			return next(c)
		}
	}
}
