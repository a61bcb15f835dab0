package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mediquix/mediquix-server/internal/core/ports"
)

type FeedbackHandler struct {
	service ports.FeedbackService
}

func NewFeedbackHandler(service ports.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

// Create stores the body as a feedback document.
//
// @Summary      Add feedback
// @Tags         feedbacks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      map[string]interface{}  true  "Feedback document"
// @Success      200   {object}  domain.InsertResult
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /feedbacks [post]
func (h *FeedbackHandler) Create(c echo.Context) error {
	doc, err := bindDocument(c)
	if err != nil {
		return err
	}
	res, err := h.service.Create(c.Request().Context(), doc)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// @Summary      List feedback
// @Tags         feedbacks
// @Produce      json
// @Success      200  {array}  map[string]interface{}
// @Router       /feedbacks [get]
func (h *FeedbackHandler) List(c echo.Context) error {
	docs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}
