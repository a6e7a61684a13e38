package routes

import (
	"context"
	"log"
	"os"
	"time"

	_ "github.com/JOJOMDS11/jojovendas/docs" // swagger spec registration
	"github.com/JOJOMDS11/jojovendas/internal/adapter/http/handlers"
	"github.com/JOJOMDS11/jojovendas/internal/adapter/persistence/repository"
	"github.com/JOJOMDS11/jojovendas/internal/infrastructure/database"
	"github.com/JOJOMDS11/jojovendas/internal/infrastructure/payments"
	"github.com/JOJOMDS11/jojovendas/internal/infrastructure/sweeper"
	"github.com/JOJOMDS11/jojovendas/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const defaultPort = "8080"

// Run wires the whole service and starts the HTTP server. Every shared
// resource (DynamoDB client, gateway) is built exactly once here and
// injected downward.
func Run() {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	ctx := context.Background()
	registerRoutes(ctx, router)

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	log.Printf("[routes] listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func registerRoutes(ctx context.Context, router *gin.Engine) {
	ddb, err := database.NewDynamoDBClient(ctx)
	if err != nil {
		log.Fatalf("failed to create dynamodb client: %v", err)
	}

	orderRepo := repository.NewOrderDynamoRepository(ddb)
	codeRepo := repository.NewCodeDynamoRepository(ddb)

	gateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Fatalf("Mercado Pago gateway not configured: %v", err)
	}

	orderUseCase := usecase.NewOrderUseCase(orderRepo, gateway)
	fulfillmentUseCase := usecase.NewFulfillmentUseCase(orderRepo, codeRepo, gateway)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	paymentHandler := handlers.NewPaymentHandler(orderUseCase, fulfillmentUseCase)
	adminHandler := handlers.NewAdminHandler(orderUseCase, os.Getenv("ADMIN_PASSWORD"))
	systemHandler := handlers.NewSystemHandler()

	v1 := router.Group("/v1")
	addStorefrontRoutes(v1, orderHandler, paymentHandler)
	addAdminRoutes(v1, adminHandler)
	addSystemRoutes(v1, systemHandler)

	startSweeper(ctx, fulfillmentUseCase)
}

// startSweeper launches the background expiry loop when SWEEP_INTERVAL is a
// positive duration. Deployments swept by an external cron leave it unset
// and call POST /v1/orders/sweep instead.
func startSweeper(ctx context.Context, fulfillment usecase.IFulfillmentUseCase) {
	raw := os.Getenv("SWEEP_INTERVAL")
	if raw == "" {
		return
	}
	interval, err := time.ParseDuration(raw)
	if err != nil || interval <= 0 {
		log.Printf("[routes] ignoring invalid SWEEP_INTERVAL=%q", raw)
		return
	}
	go sweeper.New(fulfillment, interval).Run(ctx)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
