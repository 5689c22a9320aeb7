package game

import (
	game_models "Heartbait/models/game"
	"log"
	"math/rand"

	"github.com/gin-gonic/gin"
)

// startRoundLocked wipes the round state store, builds a fresh target
// derangement, tells every player privately who their target is, and kicks
// off the Assignment countdown.
func (g *Game) startRoundLocked() {
	g.round++
	g.clearRoundStateLocked()

	g.assignments = buildAssignments(g.players)

	for _, p := range g.players {
		targetID := g.assignments[p.ID]
		target := g.findPlayerLocked(targetID)
		if target == nil {
			continue
		}
		g.emitter.EmitTo(p.ID, EventGameStarted, gin.H{"target": *target})
	}

	log.Printf("[ROUND-START] Round %d/%d started with %d players", g.round, g.totalRounds, len(g.players))

	g.setPhaseLocked(game_models.PhaseAssignment)
	g.startClockLocked()
	g.emitTickLocked()
}

// buildAssignments maps every player to a distinct other player, with no
// player assigned to themselves. Sattolo's shuffle yields a single-cycle
// permutation, which for n >= 2 is always a derangement.
func buildAssignments(players []*game_models.Player) map[string]string {
	assignments := make(map[string]string, len(players))
	if len(players) < 2 {
		return assignments
	}

	targets := make([]string, len(players))
	for i, p := range players {
		targets[i] = p.ID
	}
	for i := len(targets) - 1; i > 0; i-- {
		j := rand.Intn(i)
		targets[i], targets[j] = targets[j], targets[i]
	}

	for i, p := range players {
		assignments[p.ID] = targets[i]
	}
	return assignments
}
