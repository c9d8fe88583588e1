package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ortoform-service/internal/app/config"
	"ortoform-service/internal/app/delivery/http/middlewares"
	"ortoform-service/internal/app/delivery/http/routers"
	"ortoform-service/internal/app/drivers/database"
	"ortoform-service/internal/app/drivers/logger"
	"ortoform-service/internal/app/services/core/catalog"
	"ortoform-service/internal/app/services/core/responses"
	"ortoform-service/internal/app/services/core/sessions"
	"ortoform-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoClient := database.NewMongoDB(driverConfig, log)
	redisClient := database.NewRedisClient(driverConfig, log)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if err := bootstrapingTheApp(bootstrap); err != nil {
		log.Fatalf("Failed to bootstrap the application: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Failed to release resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) error {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Catalog
	questionnaireCatalog, err := catalog.NewQuestionnaireCatalog(bootstrap.Logger)
	if err != nil {
		return err
	}
	catalogUsecase := catalog.NewCatalogUsecase(questionnaireCatalog)
	catalogController := catalog.NewCatalogController(bootstrap.Logger, catalogUsecase)

	// Sessions
	sessionMongoRepository := sessions.NewSessionMongoRepository(
		bootstrap.MongoClient,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	pendingTTL := time.Duration(bootstrap.InternalConfig.App.SessionPendingTTLInHours) * time.Hour
	if err := sessionMongoRepository.EnsureIndexes(indexCtx, pendingTTL); err != nil {
		return err
	}
	sessionNotifier := sessions.NewSessionRedisNotifier(bootstrap.Redis, bootstrap.Logger)
	sessionUsecase := sessions.NewSessionUsecase(
		bootstrap.Logger,
		questionnaireCatalog,
		sessionMongoRepository,
		sessionNotifier,
		bootstrap.InternalConfig,
	)
	sessionController := sessions.NewSessionController(bootstrap.Logger, sessionUsecase)
	fillController := sessions.NewFillController(bootstrap.Logger, sessionUsecase)

	// Responses
	responseRepository := responses.NewResponseRedisRepository(redisRepository)
	responseUsecase := responses.NewResponseUsecase(
		bootstrap.Logger,
		questionnaireCatalog,
		responseRepository,
		sessionMongoRepository,
	)
	responseController := responses.NewResponseController(bootstrap.Logger, responseUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		catalogController,
		responseController,
		sessionController,
		fillController,
	)
	return nil
}
