package handlers

import (
	game_service "Heartbait/services/game"
	socketio_utils "Heartbait/services/socket_io/utils"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// HandleSubmitDecision records the target's agree/reject verdict on the
// match built for them. First write wins.
func HandleSubmitDecision(gameService *game_service.Game, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		playerID := string(client.Id())

		obj, ok := socketio_utils.ParseObject(args)
		if !ok {
			log.Printf("[DECISION-ERROR] Malformed submit_decision payload from %s", playerID)
			client.Emit("error", gin.H{"error": "Malformed decision payload"})
			return
		}

		gameService.SubmitDecision(playerID, socketio_utils.GetString(obj, "decision"))
	}
}

// HandleSubmitVote records a "best catfish" vote during the reveal. Vote
// completion across all connected players routes the game onwards.
func HandleSubmitVote(gameService *game_service.Game, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		playerID := string(client.Id())

		obj, ok := socketio_utils.ParseObject(args)
		if !ok {
			log.Printf("[VOTING-ERROR] Malformed submit_vote payload from %s", playerID)
			client.Emit("error", gin.H{"error": "Malformed vote payload"})
			return
		}

		votedForID := socketio_utils.GetString(obj, "voted_for_id")
		if votedForID == "" {
			log.Printf("[VOTING-ERROR] Empty voted_for_id from %s", playerID)
			return
		}

		gameService.SubmitVote(playerID, votedForID)
	}
}
