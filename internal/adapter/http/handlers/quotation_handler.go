package handlers

import (
	"errors"
	"net/http"

	request "horecamart/internal/adapter/http/dto/request"
	response "horecamart/internal/adapter/http/dto/response"
	"horecamart/internal/usecase"
	"horecamart/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)

// QuotationHandler handles HTTP requests for the quotation builder and
// lifecycle.

type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	var payload request.CreateQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	quotation, items, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuotationWithItems(quotation, items))
}

func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	quotationID := c.Param("quotation_id")

	quotation, items, err := h.usecase.GetWithItems(c.Request.Context(), quotationID)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotationWithItems(quotation, items))
}

func (h *QuotationHandler) UpdateQuotationStatus(c *gin.Context) {
	quotationID := c.Param("quotation_id")

	var payload request.QuotationStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	quotation, err := h.usecase.UpdateStatus(c.Request.Context(), quotationID, payload.ResolveStatus())
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(quotation))
}

func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID), errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrNoQuotationItems), errors.Is(err, usecase.ErrInvalidQuotationItem),
		errors.Is(err, usecase.ErrInvalidQuotationStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationStatusReserved):
		return pkg.NewDomainErrorSimple("QUOTATION_STATUS_RESERVED", "converted_to_order is set by conversion only", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationAlreadyConverted):
		return pkg.NewDomainErrorSimple("QUOTATION_ALREADY_CONVERTED", "Quotation already converted to an order", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
