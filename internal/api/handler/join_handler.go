package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mediquix/mediquix-server/internal/api/metrics"
	"github.com/mediquix/mediquix-server/internal/core/ports"
)

// JoinHandler handles HTTP requests for camp-join records.
type JoinHandler struct {
	service ports.JoinService
}

func NewJoinHandler(service ports.JoinService) *JoinHandler {
	return &JoinHandler{service: service}
}

type paymentStatusRequest struct {
	PaymentStatus any `json:"paymentStatus"`
}

type feedbackStatusRequest struct {
	FeedbackStatus any `json:"feedbackStatus"`
}

// Join stores a join record and bumps the participant count of the camp it
// names. A failed bump is reported as an error but the record stays.
//
// @Summary      Join a camp
// @Tags         joins
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      map[string]interface{}  true  "Join record"
// @Success      200   {object}  domain.InsertResult
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /joinCamps [post]
func (h *JoinHandler) Join(c echo.Context) error {
	doc, err := bindDocument(c)
	if err != nil {
		return err
	}
	res, err := h.service.Join(c.Request().Context(), doc)
	if err != nil {
		return err
	}
	metrics.CampJoinsTotal.Inc()
	return c.JSON(http.StatusOK, res)
}

// @Summary      List join records
// @Tags         joins
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  map[string]interface{}
// @Router       /joinCamps [get]
func (h *JoinHandler) List(c echo.Context) error {
	docs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}

// @Summary      Get a join record
// @Tags         joins
// @Produce      json
// @Param        id   path      string  true  "Join record id"
// @Success      200  {object}  map[string]interface{}
// @Router       /joinCamps/{id} [get]
func (h *JoinHandler) Get(c echo.Context) error {
	doc, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return sendDocument(c, doc)
}

// ListByEmail returns the records of one participant, or every record when
// no email is given.
//
// @Summary      List joined camps
// @Tags         joins
// @Produce      json
// @Param        email  query     string  false  "Participant email"
// @Success      200    {array}   map[string]interface{}
// @Router       /joinedCamps [get]
func (h *JoinHandler) ListByEmail(c echo.Context) error {
	docs, err := h.service.ListByEmail(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}

// @Summary      Delete a join record
// @Tags         joins
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Join record id"
// @Success      200  {object}  domain.DeleteResult
// @Router       /joinedCamps/{id} [delete]
func (h *JoinHandler) Delete(c echo.Context) error {
	res, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// @Summary      Set payment status
// @Tags         joins
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Join record id"
// @Param        body  body      paymentStatusRequest  true  "New status"
// @Success      200   {object}  domain.UpdateResult
// @Router       /joinedCamps/payment/{id} [patch]
func (h *JoinHandler) SetPaymentStatus(c echo.Context) error {
	var req paymentStatusRequest
	if err := new(echo.DefaultBinder).BindBody(c, &req); err != nil {
		return err
	}
	res, err := h.service.SetPaymentStatus(c.Request().Context(), c.Param("id"), req.PaymentStatus)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// @Summary      Set feedback status
// @Tags         joins
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Join record id"
// @Param        body  body      feedbackStatusRequest  true  "New status"
// @Success      200   {object}  domain.UpdateResult
// @Router       /joinedCamps/feedback/{id} [patch]
func (h *JoinHandler) SetFeedbackStatus(c echo.Context) error {
	var req feedbackStatusRequest
	if err := new(echo.DefaultBinder).BindBody(c, &req); err != nil {
		return err
	}
	res, err := h.service.SetFeedbackStatus(c.Request().Context(), c.Param("id"), req.FeedbackStatus)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// Patch sets whichever of paymentStatus, confirmationStatus, transactionId,
// campName and campFees are truthy in the body. Falsy values such as 0 or
// "" are dropped, not written.
//
// @Summary      Patch a join record
// @Tags         joins
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Join record id"
// @Param        body  body      map[string]interface{}  true  "Fields to set"
// @Success      200   {object}  domain.UpdateResult
// @Router       /joinCamps/{id} [patch]
func (h *JoinHandler) Patch(c echo.Context) error {
	body, err := bindDocument(c)
	if err != nil {
		return err
	}
	res, err := h.service.Patch(c.Request().Context(), c.Param("id"), body)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
