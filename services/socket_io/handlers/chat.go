package handlers

import (
	game_service "Heartbait/services/game"
	socketio_utils "Heartbait/services/socket_io/utils"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// HandleSendMessage appends a chat message to the round transcript and
// delivers it only to the named recipient.
func HandleSendMessage(gameService *game_service.Game, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		playerID := string(client.Id())

		obj, ok := socketio_utils.ParseObject(args)
		if !ok {
			log.Printf("[CHAT-ERROR] Malformed send_message payload from %s", playerID)
			client.Emit("error", gin.H{"error": "Malformed message payload"})
			return
		}

		recipientID := socketio_utils.GetString(obj, "recipient_id")
		text := socketio_utils.GetString(obj, "text")
		if recipientID == "" || text == "" {
			log.Printf("[CHAT-ERROR] Empty recipient or text from %s", playerID)
			return
		}

		gameService.SendMessage(playerID, recipientID, text)
	}
}
