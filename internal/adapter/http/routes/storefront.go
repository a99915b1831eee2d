package routes

import (
	"horecamart/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathContactRequests = "/contact-requests"

// addStorefrontRoutes registers the endpoints the public storefront calls
// without authentication.
func addStorefrontRoutes(rg *gin.RouterGroup, contactRequestHandler *handlers.ContactRequestHandler) {
	rg.POST(PathContactRequests, contactRequestHandler.SubmitContactRequest)
}
