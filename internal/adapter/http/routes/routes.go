package routes

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"clearview_estimator/internal/adapter/http/handlers"
	"clearview_estimator/internal/adapter/persistence/repository"
	"clearview_estimator/internal/adapter/persistence/session"
	"clearview_estimator/internal/config"
	"clearview_estimator/internal/domain/booking"
	"clearview_estimator/internal/infrastructure/cache"
	"clearview_estimator/internal/infrastructure/database"
	"clearview_estimator/internal/infrastructure/notification"
	"clearview_estimator/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const startupTimeout = 2 * time.Minute

// Run wires the dependencies and starts the server.
func Run(cfg *config.Config, logger *zap.Logger) error {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	quoteHandler, err := getHandlers(cfg, logger)
	if err != nil {
		return err
	}

	router := NewRouter(cfg, logger, quoteHandler)
	logger.Info("Starting HTTP server", zap.Int("port", cfg.HTTPPort))
	if err := router.Run(":" + strconv.Itoa(cfg.HTTPPort)); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

// NewRouter builds the gin engine with middlewares, swagger and the /v1 API.
func NewRouter(cfg *config.Config, logger *zap.Logger, quoteHandler *handlers.QuoteHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler)
	return router
}

func getHandlers(cfg *config.Config, logger *zap.Logger) (*handlers.QuoteHandler, error) {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB, logger)
	if err != nil {
		return nil, err
	}
	redisClient, err := cache.ConnectRedis(ctx, cfg.Redis, logger)
	if err != nil {
		return nil, err
	}
	notifier, err := notification.NewSMTPNotifier(cfg.SMTP, logger)
	if err != nil {
		return nil, err
	}
	if cfg.SMTP.Mock {
		logger.Warn("Notifier running in mock mode, estimate emails are only logged")
	}

	quoteRepo := repository.NewQuoteDynamoRepository(ddb, cfg.DynamoDB.QuotesTable)
	sessionStore := session.NewRedisSessionStore(redisClient, cfg.Redis.SessionTTL)

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, notifier, booking.NewDirectory(cfg.BookingBaseURL), logger)
	estimatorUseCase := usecase.NewEstimatorUseCase(sessionStore, quoteRepo, quoteUseCase, logger)

	return handlers.NewQuoteHandler(quoteUseCase, estimatorUseCase, logger), nil
}

func setMiddlewares(router *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	router.Use(requestLogger(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("Recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(corsConfig(cfg.CORSOrigins)))
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	c.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	return c
}
