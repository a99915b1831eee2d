package handlers

import (
	"errors"
	"log"
	"net/http"

	request "horecamart/internal/adapter/http/dto/request"
	response "horecamart/internal/adapter/http/dto/response"
	"horecamart/internal/usecase"
	"horecamart/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)

// OrderHandler handles HTTP requests for orders: listing, detail, the status
// tracker, and the quotation-to-order conversion that creates them.

type OrderHandler struct {
	status     usecase.IOrderStatusUseCase
	conversion usecase.IOrderConversionUseCase
}

func NewOrderHandler(status usecase.IOrderStatusUseCase, conversion usecase.IOrderConversionUseCase) *OrderHandler {
	return &OrderHandler{status: status, conversion: conversion}
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.status.List(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID := c.Param("order_id")

	order, items, err := h.status.GetWithItems(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderWithItems(order, items))
}

func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("order_id")

	var payload request.OrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.status.UpdateStatus(c.Request.Context(), orderID, payload.ToPatch())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ConvertQuotation turns an accepted quotation into an order. The conversion
// is committed atomically, so a repeated call on the same quotation gets a
// conflict instead of a second order.
func (h *OrderHandler) ConvertQuotation(c *gin.Context) {
	quotationID := c.Param("quotation_id")
	log.Printf("[order][handler] convert start quotation_id=%s", quotationID)

	order, err := h.conversion.Convert(c.Request.Context(), quotationID)
	if err != nil {
		log.Printf("[order][handler] convert failed quotation_id=%s err=%v", quotationID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] convert success quotation_id=%s order_id=%s order_number=%s", quotationID, order.ID, order.OrderNumber)

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidQuotationID),
		errors.Is(err, usecase.ErrInvalidStatusValue), errors.Is(err, usecase.ErrEmptyStatusPatch):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationAlreadyConverted):
		return pkg.NewDomainErrorSimple("QUOTATION_ALREADY_CONVERTED", "Quotation already converted to an order", http.StatusConflict)
	case errors.Is(err, usecase.ErrTransitionNotAllowed):
		return pkg.NewDomainErrorSimple("TRANSITION_NOT_ALLOWED", "Order status transition not allowed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
