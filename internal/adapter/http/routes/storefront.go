package routes

import (
	"github.com/JOJOMDS11/jojovendas/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders   = "/orders"
	PathPayments = "/payments"
	PathAdmin    = "/admin"
)

func addStorefrontRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, paymentHandler *handlers.PaymentHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.POST("/sweep", paymentHandler.SweepExpiredOrders)
	}

	payments := rg.Group(PathPayments)
	{
		payments.GET("/:payment_id", paymentHandler.CheckPayment)
		payments.POST("/webhook", paymentHandler.Webhook)
		// Test-only: approves a payment without touching the processor.
		payments.POST("/simulate", paymentHandler.SimulatePayment)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, adminHandler *handlers.AdminHandler) {
	admin := rg.Group(PathAdmin, adminHandler.RequireAdmin)
	{
		admin.GET("/stats", adminHandler.Stats)
	}
}

func addSystemRoutes(rg *gin.RouterGroup, systemHandler *handlers.SystemHandler) {
	rg.GET("/health", systemHandler.Health)
	rg.GET("/system/info", systemHandler.SystemInfo)
}
