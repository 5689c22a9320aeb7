package socketio_types

import (
	"sync"

	"github.com/zishang520/socket.io/v2/socket"
)

// SocketServer contains the socket.io server and a map of live
// connections keyed by connection id (which doubles as the player id).
type SocketServer struct {
	Sio_server *socket.Server
	// Map to track player id -> socket connections
	Connections map[string]*socket.Socket
	mutex       sync.RWMutex
}

func NewSocketServer() *SocketServer {
	return &SocketServer{
		Connections: make(map[string]*socket.Socket),
	}
}

// Add methods to manage connections
func (s *SocketServer) AddConnection(playerID string, client *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.Connections[playerID] = client
}

func (s *SocketServer) RemoveConnection(playerID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.Connections, playerID)
}

func (s *SocketServer) GetConnection(playerID string) (*socket.Socket, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	client, exists := s.Connections[playerID]
	return client, exists
}

// Broadcast emits an event to every connected client. Implements the game
// coordinator's Emitter interface.
func (s *SocketServer) Broadcast(event string, payload interface{}) {
	s.Sio_server.Emit(event, payload)
}

// EmitTo emits an event to a single player's connection. Unknown player
// ids are dropped silently (the player may have just disconnected).
func (s *SocketServer) EmitTo(playerID string, event string, payload interface{}) {
	client, exists := s.GetConnection(playerID)
	if !exists {
		return
	}
	client.Emit(event, payload)
}
