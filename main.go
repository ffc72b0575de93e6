package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"templeseva/config"
	"templeseva/cron"
	"templeseva/database"
	allocationLogRepo "templeseva/database/repository/allocationlog"
	bookingRepo "templeseva/database/repository/booking"
	catalogRepo "templeseva/database/repository/catalog"
	mappingRepo "templeseva/database/repository/mapping"
	providerRepo "templeseva/database/repository/provider"
	"templeseva/handlers"
	"templeseva/middleware"
	"templeseva/monitoring"
	"templeseva/routes"
	"templeseva/services/allocation"
	"templeseva/services/tasks"
	"templeseva/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.AppConfig.JWTSecret == "" {
		logger.Warn("JWT_SECRET is empty; every allocation request will be rejected")
	}

	database.InitDB()
	utils.InitCache()
	db := database.DB()

	// repositories.
	mongoProviders := providerRepo.NewMongoProviderRepo(db)
	bookings := bookingRepo.NewMongoBookingRepo(db)
	mappings := mappingRepo.NewMongoMappingRepo(db)
	catalog := catalogRepo.NewMongoCatalogRepo(db)
	allocationLogs := allocationLogRepo.NewMongoAllocationLogRepo(db)

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 15*time.Second)
	for name, ensure := range map[string]func(context.Context) error{
		"providers": mongoProviders.EnsureIndexes,
		"bookings":  bookings.EnsureIndexes,
		"mappings":  mappings.EnsureIndexes,
	} {
		if err := ensure(indexCtx); err != nil {
			logger.Warn("failed to ensure indexes", zap.String("collection", name), zap.Error(err))
		}
	}
	cancelIndexes()

	providers := providerRepo.NewCachedProviderRepo(
		mongoProviders,
		providerRepo.NewRedisRosterCache(utils.GetCacheClient()),
		config.AppConfig.ProviderCacheTTL,
		logger,
	)

	// background audit trail.
	queueClient := asynq.NewClient(cron.RedisOpt())
	defer queueClient.Close()
	worker := cron.InitAuditWorker(allocationLogs, logger)

	healthCtx, stopHealth := context.WithCancel(context.Background())
	defer stopHealth()
	health := utils.NewHealthMonitor(
		func(ctx context.Context) error { return database.MongoClient.Ping(ctx, nil) },
		func(ctx context.Context) error { return utils.GetCacheClient().Ping(ctx).Err() },
		30*time.Second,
	)
	health.Start(healthCtx)

	// services.
	metrics := monitoring.NewMetricsCollector("templeseva")
	allocationService := allocation.NewDefaultAllocationService(
		providers,
		bookings,
		mappings,
		catalog,
		allocation.NewWeightedScorer(allocation.WeightedConfigFrom(config.AppConfig), allocation.Haversine),
		allocation.NewPriorityScorer(allocation.PriorityConfigFrom(config.AppConfig)),
		config.AppConfig.ScoringScheme,
		tasks.NewAsynqRecorder(queueClient),
		metrics,
		logger,
	)
	allocationHandler := handlers.NewAllocationHandler(allocationService)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(metrics.GinMiddleware())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	handlerBundle := &handlers.HandlerBundle{
		TokenIssuer:             utils.NewTokenIssuer(config.AppConfig.JWTSecret),
		Health:                  health,
		MetricsHandler:          metrics.Handler(),
		AllocateHandler:         allocationHandler.AllocateHandler,
		AllocatePriorityHandler: allocationHandler.AllocatePriorityHandler,
		ValidateHandler:         allocationHandler.ValidateHandler,
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	worker.Shutdown()
	if err := database.Close(ctx); err != nil {
		logger.Warn("main: failed to disconnect from MongoDB", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
