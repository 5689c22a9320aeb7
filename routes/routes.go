package routes

import (
	"Heartbait/controllers"
	game_service "Heartbait/services/game"
	"Heartbait/utils"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, gameService *game_service.Game) {
	// utils global
	router.Use(utils.Logger())
	router.Use(utils.ErrorHandler())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes group
	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	api.GET("/status", controllers.GameStatus(gameService))
}
