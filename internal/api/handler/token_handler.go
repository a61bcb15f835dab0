package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mediquix/mediquix-server/internal/core/domain"
	"github.com/mediquix/mediquix-server/internal/core/ports"
)

type TokenHandler struct {
	tokens ports.TokenService
}

func NewTokenHandler(tokens ports.TokenService) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Issue signs the request body and returns it as an access token valid for
// one hour.
//
// @Summary      Issue an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      map[string]interface{}  true  "Claims to sign, usually {email}"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  map[string]string
// @Router       /jwt [post]
func (h *TokenHandler) Issue(c echo.Context) error {
	doc, err := bindDocument(c)
	if err != nil {
		return err
	}

	token, err := h.tokens.Issue(domain.Claims(doc))
	if err != nil {
		return domain.Fail("Failed to issue token", err)
	}
	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}
