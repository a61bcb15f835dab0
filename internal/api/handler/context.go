package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mediquix/mediquix-server/internal/api/middleware"
	"github.com/mediquix/mediquix-server/internal/core/domain"
)

// bindDocument decodes the request body into a free-form document. Only the
// body is read, so path and query parameters never leak into stored data.
// An empty body, or one sent with a content type other than JSON, yields an
// empty document.
func bindDocument(c echo.Context) (domain.Document, error) {
	var doc domain.Document
	if err := new(echo.DefaultBinder).BindBody(c, &doc); err != nil {
		if errors.Is(err, echo.ErrUnsupportedMediaType) {
			return domain.Document{}, nil
		}
		return nil, err
	}
	if doc == nil {
		doc = domain.Document{}
	}
	return doc, nil
}

// ctxEmail returns the email of the identity verified by the Auth middleware.
func ctxEmail(c echo.Context) (string, error) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return "", echo.NewHTTPError(http.StatusUnauthorized, middleware.UnauthorizedMessage)
	}
	return claims.Email(), nil
}

// sendDocument writes doc, or a JSON null when the lookup found nothing.
func sendDocument(c echo.Context, doc domain.Document) error {
	if doc == nil {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, doc)
}
