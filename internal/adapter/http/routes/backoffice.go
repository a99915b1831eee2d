package routes

import (
	"horecamart/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotations = "/quotations"
	PathOrders     = "/orders"
	PathClients    = "/clients"
	PathReports    = "/reports"
)

func addBackofficeRoutes(
	rg *gin.RouterGroup,
	quotationHandler *handlers.QuotationHandler,
	orderHandler *handlers.OrderHandler,
	paymentHandler *handlers.OrderPaymentHandler,
	clientHandler *handlers.ClientHandler,
	contactRequestHandler *handlers.ContactRequestHandler,
	reportHandler *handlers.ReportHandler,
) {
	quotations := rg.Group(PathQuotations)
	{
		quotations.POST("", quotationHandler.CreateQuotation)
		quotations.GET("/:quotation_id", quotationHandler.GetQuotation)
		quotations.PATCH("/:quotation_id/status", quotationHandler.UpdateQuotationStatus)
		quotations.POST("/:quotation_id/convert", orderHandler.ConvertQuotation)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:order_id", orderHandler.GetOrder)
		orders.PATCH("/:order_id/status", orderHandler.UpdateOrderStatus)
		orders.POST("/:order_id/payments", paymentHandler.CreatePaymentByOrderID)
		orders.GET("/:order_id/payments", paymentHandler.GetPaymentByOrderID)
	}

	clients := rg.Group(PathClients)
	{
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:client_id", clientHandler.GetClient)
	}

	// Admin view of the storefront inquiries.
	rg.GET(PathContactRequests, contactRequestHandler.ListContactRequests)

	reports := rg.Group(PathReports)
	{
		reports.GET("/client-activity", reportHandler.ClientActivity)
		reports.GET("/top-products", reportHandler.TopProducts)
		reports.GET("/client-summaries", reportHandler.ClientSummaries)
		reports.GET("/order-stats", reportHandler.OrderStats)
	}
}
