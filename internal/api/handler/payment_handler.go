package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mediquix/mediquix-server/internal/api/metrics"
	"github.com/mediquix/mediquix-server/internal/core/ports"
)

// HeaderIdempotencyKey is forwarded to the payment provider when present.
const HeaderIdempotencyKey = "Idempotency-Key"

type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// Price is capped at the largest amount the provider accepts in one charge.
type paymentIntentRequest struct {
	Price *float64 `json:"price" validate:"required,gte=0,lte=999999.99"`
}

type paymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreateIntent creates a USD card payment intent for price dollars.
//
// @Summary      Create a payment intent
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                false  "Provider idempotency key"
// @Param        body             body      paymentIntentRequest  true   "Price in dollars"
// @Success      200              {object}  paymentIntentResponse
// @Failure      400              {object}  map[string]string
// @Failure      500              {object}  map[string]string
// @Router       /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req paymentIntentRequest
	if err := new(echo.DefaultBinder).BindBody(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	secret, err := h.service.CreateIntent(c.Request().Context(), *req.Price, c.Request().Header.Get(HeaderIdempotencyKey))
	if err != nil {
		metrics.PaymentIntentsTotal.WithLabelValues("failed").Inc()
		return err
	}
	metrics.PaymentIntentsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusOK, paymentIntentResponse{ClientSecret: secret})
}
