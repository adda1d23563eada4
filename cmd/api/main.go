// Package main is the entry point for the cycling API.
package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/EliandyDumortier/Cycling-App/internal/config"
	"github.com/EliandyDumortier/Cycling-App/internal/database"
	"github.com/EliandyDumortier/Cycling-App/internal/handlers"
	"github.com/EliandyDumortier/Cycling-App/internal/logger"
	"github.com/EliandyDumortier/Cycling-App/internal/repository"
	"github.com/EliandyDumortier/Cycling-App/internal/routes"
	"github.com/EliandyDumortier/Cycling-App/internal/service"
	"github.com/EliandyDumortier/Cycling-App/pkg/redis"
)

// @title Cycling Management API
// @version 1.0
// @description API for managing cyclists, their physiological attributes and performance tests
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	logger.Init(logger.LevelFromEnvironment(cfg.Environment))

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatal("Failed to connect to Redis: ", err)
	}

	userRepo := repository.NewUserRepository(db)
	athleteRepo := repository.NewAthleteRepository(db)
	performanceRepo := repository.NewPerformanceRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	actionLogRepo := repository.NewActionLogRepository(db)

	jwtService, err := service.NewJWTService(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.JWTAccessExpiry)
	if err != nil {
		log.Fatal("Failed to configure JWT service: ", err)
	}
	authService := service.NewAuthService(userRepo, jwtService)
	accountService := service.NewAccountService(userRepo)
	athleteService := service.NewAthleteService(athleteRepo, userRepo)
	performanceService := service.NewPerformanceService(performanceRepo, athleteRepo)
	statsService := service.NewStatsService(statsRepo, redisClient, cfg.StatsCacheTTL)

	router := gin.Default()
	routes.Setup(router, cfg, authService, routes.Handlers{
		Auth:        handlers.NewAuthHandler(authService, actionLogRepo),
		User:        handlers.NewUserHandler(accountService, actionLogRepo),
		Athlete:     handlers.NewAthleteHandler(athleteService),
		Performance: handlers.NewPerformanceHandler(performanceService),
		Stats:       handlers.NewStatsHandler(statsService),
		Health:      handlers.NewHealthHandler(db),
	})

	logger.Infof("Starting cycling API on port %s", cfg.Port)
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
