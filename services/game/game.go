package game

import (
	game_constants "Heartbait/constants/game"
	game_models "Heartbait/models/game"
	"log"
	"sync"

	"github.com/gin-gonic/gin"
)

// Game is the authoritative coordinator: connection roster, per-round
// state, phase clock and transition engine all live behind one mutex, so
// action handlers and clock ticks are serialized and never observe a
// half-applied mutation.
type Game struct {
	mu      sync.Mutex
	emitter Emitter

	// Connection registry, in join order. HostID is explicit instead of
	// "first element of the roster": it survives reordering and is
	// reassigned on host disconnect.
	players []*game_models.Player
	hostID  string

	// Phase clock tuple, mirrored verbatim by every client via tick events
	phase       game_models.GamePhase
	timeLeft    int
	duration    int
	round       int
	totalRounds int

	// Round state store, wiped at every round start
	assignments    map[string]string // creator id -> target id, a derangement
	profiles       map[string]*game_models.CatfishProfile
	sabotageCounts map[string]int
	sabotageLogs   map[string][]game_models.SabotageAction // keyed by profile creator id
	decisions      map[string]string                       // target id -> agree|reject
	votes          map[string]string                       // voter id -> voted-for id
	messages       []game_models.Message

	// clockGen invalidates ticker goroutines that outlive their round
	clockGen  int
	clockStop chan struct{}
}

func New(emitter Emitter) *Game {
	g := &Game{
		emitter:     emitter,
		phase:       game_models.PhaseLobby,
		totalRounds: game_constants.TOTAL_ROUNDS,
	}
	g.clearRoundStateLocked()
	return g
}

// Join adds a player to the connection registry and rebroadcasts the full
// roster. Joining twice with the same connection id is a no-op (besides
// the rebroadcast).
func (g *Game) Join(playerID string, name string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.findPlayerLocked(playerID) == nil {
		g.players = append(g.players, &game_models.Player{ID: playerID, Name: name})
		if g.hostID == "" {
			g.hostID = playerID
		}
		log.Printf("[JOIN] Player %s (%s) joined the lobby (%d connected)", name, playerID, len(g.players))
	}

	g.broadcastRosterLocked()
}

// Disconnect removes a player from the registry. If the player count drops
// below the minimum during active play the round is not salvaged: the
// clock is torn down, the phase resets to Lobby and everyone is notified.
func (g *Game) Disconnect(playerID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	player := g.findPlayerLocked(playerID)
	if player == nil {
		return
	}

	dst := g.players[:0]
	for _, p := range g.players {
		if p.ID == playerID {
			continue
		}
		dst = append(dst, p)
	}
	g.players = dst
	log.Printf("[DISCONNECT] Player %s (%s) left (%d connected)", player.Name, playerID, len(g.players))

	if g.hostID == playerID {
		g.hostID = ""
		if len(g.players) > 0 {
			g.hostID = g.players[0].ID
			log.Printf("[DISCONNECT] Host reassigned to %s", g.hostID)
		}
	}

	g.broadcastRosterLocked()

	if g.roundActiveLocked() && len(g.players) < game_constants.MIN_PLAYERS_TO_KEEP_PLAYING {
		log.Printf("[DISCONNECT] Fewer than %d players remain, terminating game",
			game_constants.MIN_PLAYERS_TO_KEEP_PLAYING)
		g.terminateGameLocked()
		return
	}

	// The leaver is excluded from completeness checks, so their departure
	// can itself complete the current phase.
	g.checkEarlyAdvanceLocked()
	g.checkVotesCompleteLocked()
}

// StartGame begins a fresh game: scores to zero, round counter to zero,
// then the first round. Ignored while a game is in progress.
func (g *Game) StartGame(requesterID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.roundActiveLocked() {
		log.Printf("[START-GAME] Ignoring start_game from %s, game already in progress (phase %s)",
			requesterID, g.phase)
		return
	}
	if len(g.players) < game_constants.MIN_PLAYERS_TO_KEEP_PLAYING {
		log.Printf("[START-GAME] Ignoring start_game from %s, only %d players connected",
			requesterID, len(g.players))
		return
	}

	g.round = 0
	for _, p := range g.players {
		p.Score = 0
	}

	log.Printf("[START-GAME] Game started by %s with %d players", requesterID, len(g.players))
	g.startRoundLocked()
}

// RequestNextRound starts the next round after an intermission. Only the
// designated host may trigger it; duplicate or concurrent requests are
// ignored once the round is underway.
func (g *Game) RequestNextRound(requesterID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.hostID == "" || requesterID != g.hostID {
		log.Printf("[NEXT-ROUND] Ignoring request_next_round from non-host %s", requesterID)
		return
	}
	if g.phase != game_models.PhaseIntermission {
		log.Printf("[NEXT-ROUND] Ignoring request_next_round during phase %s", g.phase)
		return
	}

	g.startRoundLocked()
}

// Snapshot returns the clock tuple and a roster copy for the REST status
// endpoint.
func (g *Game) Snapshot() (gin.H, []game_models.Player) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tickPayloadLocked(), g.rosterLocked()
}

// HostID returns the current designated host's connection id, empty when
// the roster is empty.
func (g *Game) HostID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.hostID
}

// roundActiveLocked reports whether a round-cycle is in progress. Reveal
// and Intermission still belong to the cycle even though the countdown
// clock is stopped there.
func (g *Game) roundActiveLocked() bool {
	return g.phase != game_models.PhaseLobby && g.phase != game_models.PhaseGameOver
}

func (g *Game) findPlayerLocked(playerID string) *game_models.Player {
	for _, p := range g.players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

func (g *Game) rosterLocked() []game_models.Player {
	roster := make([]game_models.Player, 0, len(g.players))
	for _, p := range g.players {
		roster = append(roster, *p)
	}
	return roster
}

func (g *Game) broadcastRosterLocked() {
	g.emitter.Broadcast(EventRosterUpdate, gin.H{"players": g.rosterLocked()})
}

// terminateGameLocked force-resets to Lobby, overriding every other
// transition. No partial round state survives.
func (g *Game) terminateGameLocked() {
	g.stopClockLocked()
	g.phase = game_models.PhaseLobby
	g.timeLeft = 0
	g.duration = 0
	g.round = 0
	g.clearRoundStateLocked()
	g.emitter.Broadcast(EventGameEnded, gin.H{})
}

func (g *Game) clearRoundStateLocked() {
	g.assignments = make(map[string]string)
	g.profiles = make(map[string]*game_models.CatfishProfile)
	g.sabotageCounts = make(map[string]int)
	g.sabotageLogs = make(map[string][]game_models.SabotageAction)
	g.decisions = make(map[string]string)
	g.votes = make(map[string]string)
	g.messages = nil
}
