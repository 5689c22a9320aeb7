package socket_io

import (
	game_service "Heartbait/services/game"
	"Heartbait/services/images"
	"Heartbait/services/socket_io/handlers"
	socketio_types "Heartbait/services/socket_io/types"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type MySocketServer socketio_types.SocketServer

// Start mounts the socket.io endpoint on the gin router and registers the
// per-connection event handlers. The socket id assigned on connect is the
// player's identity for the lifetime of that connection.
func (sio *MySocketServer) Start(router *gin.Engine, gameService *game_service.Game, imageClient *images.Client) {
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load and 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	// KEY: initialize the map, otherwise it panics
	sio.Connections = make(map[string]*socket.Socket)

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)
		playerID := string(client.Id())

		(*socketio_types.SocketServer)(sio).AddConnection(playerID, client)
		log.Printf("[CONNECTION] New connection: %s", playerID)

		// Join the lobby with a display name
		client.On("join", handlers.HandleJoin(gameService, client))

		// Host starts a fresh game (scores reset, round 1)
		client.On("start_game", handlers.HandleStartGame(gameService, client))

		// Creator submits the fake profile for their target
		client.On("submit_profile", handlers.HandleSubmitProfile(gameService, client))

		// Rival edits someone else's profile (3 per round)
		client.On("sabotage_action", handlers.HandleSabotageAction(gameService, client))

		// Private chat between a catfish and their target
		client.On("send_message", handlers.HandleSendMessage(gameService, client))

		// Target accepts or rejects the match
		client.On("submit_decision", handlers.HandleSubmitDecision(gameService, client))

		// Best-catfish vote during the reveal
		client.On("submit_vote", handlers.HandleSubmitVote(gameService, client))

		// Host advances from intermission to the next round
		client.On("request_next_round", handlers.HandleRequestNextRound(gameService, client))

		// Photo search for profile pictures
		client.On("search_images", handlers.HandleSearchImages(imageClient, client))

		// NOTE: will remove sio connection from map
		client.On("disconnecting", handlers.HandleDisconnecting(gameService, client, (*socketio_types.SocketServer)(sio)))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	SignalC := make(chan os.Signal, 1)

	signal.Notify(SignalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		for s := range SignalC {
			switch s {
			case syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT:
				sio.Sio_server.Close(nil)
				os.Exit(0)
			}
		}
	}()

	log.Println("Socket server started")
}
