package handlers

import (
	"errors"
	"net/http"

	response "horecamart/internal/adapter/http/dto/response"
	"horecamart/internal/usecase"
	"horecamart/pkg"

	"github.com/gin-gonic/gin"
)

// ClientHandler handles the admin client directory.

type ClientHandler struct {
	usecase usecase.IClientDirectoryUseCase
}

func NewClientHandler(uc usecase.IClientDirectoryUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClients(clients))
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	clientID := c.Param("client_id")

	client, err := h.usecase.GetByID(c.Request.Context(), clientID)
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClient(client))
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
