package routes

import (
	"log"
	"os"
	"strconv"

	_ "horecamart/docs" // This will be auto-generated
	"horecamart/internal/adapter/http/handlers"
	repository2 "horecamart/internal/adapter/persistence/repository"
	"horecamart/internal/infrastructure/database"
	"horecamart/internal/infrastructure/payments"
	"horecamart/internal/usecase"
	"horecamart/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	quotationRepo := repository2.NewQuotationDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	sequenceRepo := repository2.NewSequenceDynamoRepository(ddb)
	conversionRepo := repository2.NewConversionDynamoRepository(ddb)
	clientRepo := repository2.NewClientDynamoRepository(ddb)
	contactRequestRepo := repository2.NewContactRequestDynamoRepository(ddb)
	paymentRepo := repository2.NewOrderPaymentDynamoRepository(ddb)

	quotationUseCase := usecase.NewQuotationUseCase(quotationRepo)
	conversionUseCase := usecase.NewOrderConversionUseCase(quotationRepo, sequenceRepo, conversionRepo)
	orderStatusUseCase := usecase.NewOrderStatusUseCase(orderRepo, orderStatusOptionsFromEnv()...)
	clientUseCase := usecase.NewClientDirectoryUseCase(clientRepo)
	contactRequestUseCase := usecase.NewContactRequestUseCase(contactRequestRepo)
	activityUseCase := usecase.NewClientActivityUseCase(clientRepo, quotationRepo, contactRequestRepo, orderRepo)
	reportUseCase := usecase.NewBusinessReportUseCase(clientRepo, quotationRepo, orderRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}
	paymentUseCase := usecase.NewOrderPaymentUseCase(paymentRepo, orderRepo, paymentGateway)

	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)
	orderHandler := handlers.NewOrderHandler(orderStatusUseCase, conversionUseCase)
	paymentHandler := handlers.NewOrderPaymentHandler(paymentUseCase)
	clientHandler := handlers.NewClientHandler(clientUseCase)
	contactRequestHandler := handlers.NewContactRequestHandler(contactRequestUseCase)
	reportHandler := handlers.NewReportHandler(activityUseCase, reportUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStorefrontRoutes(v1, contactRequestHandler)
	addBackofficeRoutes(v1, quotationHandler, orderHandler, paymentHandler, clientHandler, contactRequestHandler, reportHandler)
}

// orderStatusOptionsFromEnv enables strict order_status pipeline validation
// when STRICT_ORDER_TRANSITIONS is set. Permissive by default.
func orderStatusOptionsFromEnv() []usecase.OrderStatusOption {
	switch os.Getenv("STRICT_ORDER_TRANSITIONS") {
	case "1", "true", "yes", "on":
		return []usecase.OrderStatusOption{usecase.WithStrictTransitions()}
	}
	return nil
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
