package game

// Player represents a connected player. ID is the socket.io connection id,
// stable for the lifetime of the connection.
type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}
