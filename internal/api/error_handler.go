package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mediquix/mediquix-server/internal/api/middleware"
	"github.com/mediquix/mediquix-server/internal/core/domain"
)

// errorResponse is the error envelope. Error carries the raw cause of a
// failed data operation and is omitted otherwise.
type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain sentinels to their status codes.
//   - Renders operation failures as 500 with the message and raw error.
//   - Logs anything unexpected and answers with a generic 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (gates, bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Message: fmt.Sprintf("%v", he.Message)}
	}

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, errorResponse{Message: middleware.UnauthorizedMessage}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorResponse{Message: middleware.ForbiddenMessage}
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest, errorResponse{Message: "Invalid id"}
	case errors.Is(err, domain.ErrInvalidClaims):
		return http.StatusBadRequest, errorResponse{Message: err.Error()}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorResponse{Message: "User not found"}
	}

	event := log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID))

	var opErr *domain.OperationError
	if errors.As(err, &opErr) {
		event.Msg(opErr.Message)
		return http.StatusInternalServerError, errorResponse{Message: opErr.Message, Error: opErr.Err.Error()}
	}

	event.Msg("unhandled error")
	return http.StatusInternalServerError, errorResponse{Message: "Internal Server Error"}
}
