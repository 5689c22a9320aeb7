package game

// Outbound socket.io event names. Kept in one place so the closed set of
// events the server can emit is visible at a glance.
const (
	EventRosterUpdate        = "roster_update"
	EventGameStarted         = "game_started" // targeted: carries the player's own target
	EventProfilesBroadcast   = "profiles_broadcast"
	EventChatStarted         = "chat_started" // targeted: carries the player's own catfish profile
	EventDecisionStarted     = "decision_started"
	EventProfilesUpdated     = "profiles_updated"
	EventMessageReceived     = "message_received" // targeted
	EventRevealStarted       = "reveal_started"
	EventIntermissionStarted = "intermission_started"
	EventGameOver            = "game_over"
	EventGameEnded           = "game_ended"
	EventTick                = "tick"
	EventImageResults        = "image_results" // targeted
)

// Emitter delivers outbound events to connected players. The socket.io
// server implements it; tests use a recording fake.
type Emitter interface {
	// Broadcast sends an event to every connected player.
	Broadcast(event string, payload interface{})
	// EmitTo sends an event to a single player by connection id. Unknown
	// ids are silently dropped.
	EmitTo(playerID string, event string, payload interface{})
}
