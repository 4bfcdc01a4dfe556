package main

import (
	"context"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mentorhub/config"
	"mentorhub/routes"
	"mentorhub/services"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to build logger: " + err.Error())
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig("./config/config.yml")
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	advisor := services.New(context.Background(), cfg, logger)

	router := setupRouter(advisor)
	port := strconv.Itoa(cfg.Server.Port)
	logger.Info("server starting", zap.String("port", port))

	if err := router.Run(":" + port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

func setupRouter(advisor routes.AdvisorService) *gin.Engine {
	router := gin.Default()

	// Wide-open CORS, prototype surface. Scope this down before exposing the
	// service beyond a trusted frontend.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"*"},
	}))

	routes.SetupAdvisorRoutes(router, advisor)

	return router
}
