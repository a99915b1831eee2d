package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	response "horecamart/internal/adapter/http/dto/response"
	"horecamart/internal/usecase"
	"horecamart/pkg"

	"github.com/gin-gonic/gin"
)

// OrderPaymentHandler handles HTTP requests for order payments.

type OrderPaymentHandler struct {
	usecase usecase.IOrderPaymentUseCase
}

func NewOrderPaymentHandler(uc usecase.IOrderPaymentUseCase) *OrderPaymentHandler {
	return &OrderPaymentHandler{usecase: uc}
}

// CreatePaymentByOrderID creates and processes a payment for the order in the
// path, forwarding the (optional) provider payload from the request body.
func (h *OrderPaymentHandler) CreatePaymentByOrderID(c *gin.Context) {
	orderID := c.Param("order_id")
	log.Printf("[payment][handler] create start order_id=%s", orderID)
	mockMode := isPaymentGatewayMockEnabled()
	providerPayload, err := readProviderPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload order_id=%s err=%v", orderID, err)
			providerPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload order_id=%s err=%v", orderID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), orderID, providerPayload)
	if err != nil {
		log.Printf("[payment][handler] create failed order_id=%s err=%v", orderID, err)
		appErr := mapOrderPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success order_id=%s payment_id=%s status=%s", orderID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromOrderPayment(created))
}

// GetPaymentByOrderID returns the latest payment for an order.
func (h *OrderPaymentHandler) GetPaymentByOrderID(c *gin.Context) {
	orderID := c.Param("order_id")

	latest, err := h.usecase.LatestByOrderID(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[payment][handler] get-by-order failed order_id=%s err=%v", orderID, err)
		appErr := mapOrderPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderPayment(latest))
}

// readProviderPayload accepts either a raw provider payload or an envelope
// with a provider_payload field. An empty body means "let the gateway decide"
// and maps to an empty JSON object.
func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapOrderPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidPaymentPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
