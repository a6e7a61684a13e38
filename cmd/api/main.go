package main

import (
	_ "github.com/JOJOMDS11/jojovendas/docs"
	"github.com/JOJOMDS11/jojovendas/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           JojoVendas Purple Coins API
// @version         1.0
// @description     Purple Coins storefront (PIX orders + redemption codes) backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin password.

func main() {
	routes.Run()
}
