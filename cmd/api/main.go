package main

import (
	_ "dossier_service/docs"
	"dossier_service/internal/adapter/http/routes"
	"dossier_service/internal/infrastructure/config"
	"log"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Dossier Service API
// @version         1.0
// @description     Company-formation dossiers: phone tracking, requests and Mercado Pago payments backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	routes.Run(cfg)
}
