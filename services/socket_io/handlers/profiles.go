package handlers

import (
	game_models "Heartbait/models/game"
	game_service "Heartbait/services/game"
	socketio_utils "Heartbait/services/socket_io/utils"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// HandleSubmitProfile stores the player's fake profile for their assigned
// target. First write wins; duplicates are discarded by the coordinator.
func HandleSubmitProfile(gameService *game_service.Game, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		playerID := string(client.Id())

		obj, ok := socketio_utils.ParseObject(args)
		if !ok {
			log.Printf("[PROFILE-ERROR] Malformed submit_profile payload from %s", playerID)
			client.Emit("error", gin.H{"error": "Malformed profile payload"})
			return
		}

		profile := game_models.CatfishProfile{
			FakeName: socketio_utils.GetString(obj, "fake_name"),
			Bio:      socketio_utils.GetString(obj, "bio"),
			Likes:    socketio_utils.GetStringSlice(obj, "likes"),
			Dislikes: socketio_utils.GetStringSlice(obj, "dislikes"),
			ImageURL: socketio_utils.GetString(obj, "image_url"),
		}

		gameService.SubmitProfile(playerID, profile)
	}
}

// HandleSabotageAction applies one edit to another creator's profile.
// Quota overruns and unknown profiles are no-ops, not errors.
func HandleSabotageAction(gameService *game_service.Game, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		playerID := string(client.Id())

		obj, ok := socketio_utils.ParseObject(args)
		if !ok {
			log.Printf("[SABOTAGE-ERROR] Malformed sabotage_action payload from %s", playerID)
			client.Emit("error", gin.H{"error": "Malformed sabotage payload"})
			return
		}

		var index *int
		if i, ok := socketio_utils.GetInt(obj, "index"); ok {
			index = &i
		}

		gameService.SabotageAction(playerID,
			socketio_utils.GetString(obj, "target_creator_id"),
			socketio_utils.GetString(obj, "field"),
			index,
			socketio_utils.GetString(obj, "old_value"),
			socketio_utils.GetString(obj, "new_value"))
	}
}
