package main

import (
	"Heartbait/config"
	_ "Heartbait/config/swagger"
	"Heartbait/middleware"
	"Heartbait/routes"
	game_service "Heartbait/services/game"
	"Heartbait/services/images"
	"Heartbait/services/socket_io"
	socketio_types "Heartbait/services/socket_io/types"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title Heartbait API
// @version 1.0
// @description Gin-Gonic server for the "Heartbait" game API
// @BasePath /
func main() {
	godotenv.Load()

	log.Println("Setting up server...")

	if os.Getenv("PROD") == "true" {
		gin.SetMode(gin.ReleaseMode)
	}

	if config.PexelsAPIKey() == "" {
		log.Println("Pexels API key not set, image search will return empty results")
	}
	imageClient := images.NewClient(config.PexelsAPIKey())

	r := gin.Default()

	middleware.SetUpMiddleware(r)

	// One socket server, one authoritative game: the server owns the
	// connection map and doubles as the game's event emitter.
	sio := socketio_types.NewSocketServer()
	gameService := game_service.New(sio)

	routes.SetupRoutes(r, gameService)

	(*socket_io.MySocketServer)(sio).Start(r, gameService, imageClient)

	port := config.Port()
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
	log.Printf("Server started on port %s", port)
}
