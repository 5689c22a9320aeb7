package handlers

import (
	game_service "Heartbait/services/game"
	"log"

	"github.com/zishang520/socket.io/v2/socket"
)

// HandleStartGame begins a fresh game. Accepted only while no round is
// active; the coordinator resets all scores and starts round 1.
func HandleStartGame(gameService *game_service.Game, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		gameService.StartGame(string(client.Id()))
	}
}

// HandleRequestNextRound starts the next round after an intermission.
// Only honored for the designated host; anyone else is silently ignored.
func HandleRequestNextRound(gameService *game_service.Game, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		playerID := string(client.Id())
		log.Printf("[NEXT-ROUND] request_next_round from %s", playerID)
		gameService.RequestNextRound(playerID)
	}
}
