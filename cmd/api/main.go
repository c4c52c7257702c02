package main

import (
	"log"

	_ "clearview_estimator/docs"
	"clearview_estimator/internal/adapter/http/routes"
	"clearview_estimator/internal/config"
	"clearview_estimator/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Estimator Service API
// @version         1.0
// @description     Home-services estimator: price calculation, quote assembly, estimate emails and booking links.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if err := routes.Run(cfg, zl); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
