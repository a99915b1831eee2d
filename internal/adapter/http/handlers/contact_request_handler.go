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

var errInvalidContactPayload = pkg.NewDomainErrorSimple("INVALID_CONTACT_REQUEST", "Invalid contact request payload", http.StatusBadRequest)

// ContactRequestHandler handles the public inquiry form and the admin list.

type ContactRequestHandler struct {
	usecase usecase.IContactRequestUseCase
}

func NewContactRequestHandler(uc usecase.IContactRequestUseCase) *ContactRequestHandler {
	return &ContactRequestHandler{usecase: uc}
}

func (h *ContactRequestHandler) SubmitContactRequest(c *gin.Context) {
	var payload request.ContactRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContactPayload.HTTPStatus, errInvalidContactPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapContactRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromContactRequest(created))
}

func (h *ContactRequestHandler) ListContactRequests(c *gin.Context) {
	requests, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapContactRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContactRequests(requests))
}

func mapContactRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContactRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
