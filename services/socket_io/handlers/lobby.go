package handlers

import (
	game_service "Heartbait/services/game"
	socketio_utils "Heartbait/services/socket_io/utils"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// HandleJoin registers the player in the lobby under their connection id
// and rebroadcasts the full roster. Joining twice is harmless.
func HandleJoin(gameService *game_service.Game, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		playerID := string(client.Id())

		name, ok := socketio_utils.ParseString(args)
		if !ok || name == "" {
			log.Printf("[JOIN-ERROR] Missing player name from %s", playerID)
			client.Emit("error", gin.H{"error": "Missing player name"})
			return
		}

		gameService.Join(playerID, name)
	}
}
