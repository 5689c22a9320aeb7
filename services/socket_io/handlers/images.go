package handlers

import (
	game_service "Heartbait/services/game"
	"Heartbait/services/images"
	socketio_utils "Heartbait/services/socket_io/utils"
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// HandleSearchImages proxies a photo search to the external provider. The
// lookup runs in its own goroutine so it never blocks game state or the
// clock; the result goes only to the requesting connection.
func HandleSearchImages(imageClient *images.Client, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		playerID := string(client.Id())

		term, ok := socketio_utils.ParseString(args)
		if !ok || term == "" {
			log.Printf("[IMAGES-ERROR] Missing search term from %s", playerID)
			client.Emit(game_service.EventImageResults, gin.H{"results": []images.Result{}})
			return
		}

		go func() {
			results := imageClient.Search(context.Background(), term)
			client.Emit(game_service.EventImageResults, gin.H{"results": results})
		}()
	}
}
