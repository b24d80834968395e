package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"tenbank-api/config"
	"tenbank-api/db"
	"tenbank-api/handler"
	"tenbank-api/logger"
	"tenbank-api/repository"
	"tenbank-api/router"
	"tenbank-api/service"
	"time"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations("file://db/migrations"); err != nil {
		logger.Log.Fatalf("Error running migrations: %v", err)
	}

	redisClient, err := db.ConnectRedis()
	if err != nil {
		logger.Log.Fatalf("Error connecting to redis: %v", err)
	}
	defer redisClient.Close()

	// --- Wiring All Layers Together ---
	userRepo := repository.NewUserRepository(database)
	accountRepo := repository.NewAccountRepository(database)
	historyRepo := repository.NewHistoryRepository(database)

	userService := service.NewUserService(userRepo)
	accountService := service.NewAccountService(accountRepo, redisClient)
	ledgerService := service.NewLedgerService(database, accountRepo, historyRepo, redisClient)
	historyService := service.NewHistoryService(accountRepo, historyRepo)

	userHandler := handler.NewUserHandler(userService)
	accountHandler := handler.NewAccountHandler(accountService)
	ledgerHandler := handler.NewLedgerHandler(ledgerService)
	historyHandler := handler.NewHistoryHandler(historyService)

	r := router.NewRouter(userHandler, accountHandler, ledgerHandler, historyHandler)

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
