package routes

import (
	_ "linguaquote/docs" // This will be auto-generated
	"linguaquote/internal/adapter/http/handlers"
	repository2 "linguaquote/internal/adapter/persistence/repository"
	"linguaquote/internal/infrastructure/database"
	"linguaquote/internal/infrastructure/payments"
	"linguaquote/internal/usecase"
	"linguaquote/internal/usecase/interfaces"
	"log"
	"os"
	"strconv"

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

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	lineRepo := repository2.NewDocumentLineDynamoRepository(ddb)
	reviewRepo := repository2.NewReviewDynamoRepository(ddb)
	correctionRepo := repository2.NewCorrectionDynamoRepository(ddb)
	rateConfigRepo := repository2.NewRateConfigDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, lineRepo, reviewRepo, rateConfigRepo, paymentRepo, paymentGateway)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, quoteRepo, lineRepo, correctionRepo, rateConfigRepo)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	reviewHandler := handlers.NewReviewHandler(reviewUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotingRoutes(v1, quoteHandler, reviewHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
