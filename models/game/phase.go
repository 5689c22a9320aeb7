package game

// GamePhase is the authoritative phase value owned by the phase clock.
// Clients mirror it from tick events and never derive it locally.
type GamePhase string

const (
	PhaseLobby           GamePhase = "Lobby"
	PhaseAssignment      GamePhase = "Assignment"
	PhaseProfileCreation GamePhase = "ProfileCreation"
	PhaseSabotage        GamePhase = "Sabotage"
	PhaseChat            GamePhase = "Chat"
	PhaseDecision        GamePhase = "Decision"
	PhaseReveal          GamePhase = "Reveal"
	PhaseIntermission    GamePhase = "Intermission"
	PhaseGameOver        GamePhase = "GameOver"
)

// Decision values submitted by targets
const (
	DecisionAgree  = "agree"
	DecisionReject = "reject"
)
