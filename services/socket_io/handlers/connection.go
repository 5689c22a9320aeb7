package handlers

import (
	game_service "Heartbait/services/game"
	socketio_types "Heartbait/services/socket_io/types"
	"log"

	"github.com/zishang520/socket.io/v2/socket"
)

// HandleDisconnecting removes the connection from the socket map and the
// game roster. If the departure drops the game below two players the
// coordinator tears the round down and notifies everyone.
func HandleDisconnecting(gameService *game_service.Game, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		playerID := string(client.Id())
		log.Printf("[DISCONNECT] Connection %s disconnecting", playerID)

		sio.RemoveConnection(playerID)
		gameService.Disconnect(playerID)
	}
}
