package game

import (
	game_constants "Heartbait/constants/game"
	game_models "Heartbait/models/game"
	"log"

	"github.com/gin-gonic/gin"
)

// advancePhaseLocked is the transition engine: a linear state machine with
// one branch after Reveal. It is invoked by the clock on timeout and by
// the early-advance checks, always under the game mutex, so a timeout and
// a completeness trigger can never both fire for the same phase.
func (g *Game) advancePhaseLocked() {
	from := g.phase

	switch g.phase {
	case game_models.PhaseAssignment:
		g.setPhaseLocked(game_models.PhaseProfileCreation)

	case game_models.PhaseProfileCreation:
		// Sabotage needs visibility into everyone's work
		g.setPhaseLocked(game_models.PhaseSabotage)
		g.emitter.Broadcast(EventProfilesBroadcast, gin.H{"profiles": g.profiles})

	case game_models.PhaseSabotage:
		// Each player privately receives the (possibly sabotaged) profile
		// that was built to deceive them.
		g.setPhaseLocked(game_models.PhaseChat)
		for _, p := range g.players {
			creatorID := g.creatorForTargetLocked(p.ID)
			profile := g.profiles[creatorID]
			if profile == nil {
				continue
			}
			g.emitter.EmitTo(p.ID, EventChatStarted, gin.H{"catfish_profile": profile})
		}

	case game_models.PhaseChat:
		g.setPhaseLocked(game_models.PhaseDecision)
		g.emitter.Broadcast(EventDecisionStarted, gin.H{})

	case game_models.PhaseDecision:
		// Terminal for the round's live play: stop the clock, compile the
		// reveal exactly once, and wait for votes instead of a timer.
		g.stopClockLocked()
		g.phase = game_models.PhaseReveal
		g.timeLeft = 0
		g.duration = 0
		payload := g.compileRevealLocked()
		g.emitter.Broadcast(EventRevealStarted, payload)

	default:
		// Reveal, Intermission, GameOver and Lobby are not timer-driven
		return
	}

	log.Printf("[PHASE] %s -> %s (round %d)", from, g.phase, g.round)
}

// creatorForTargetLocked resolves "who is my catfish": the creator whose
// assigned target is the given player. Empty when nobody targets them.
func (g *Game) creatorForTargetLocked(targetID string) string {
	for creatorID, tid := range g.assignments {
		if tid == targetID {
			return creatorID
		}
	}
	return ""
}

// checkEarlyAdvanceLocked advances the current phase ahead of the timer
// when its completion condition holds for the currently connected player
// set. Submissions from players who have since disconnected are kept but
// no longer counted.
func (g *Game) checkEarlyAdvanceLocked() {
	if len(g.players) == 0 {
		return
	}

	complete := false
	switch g.phase {
	case game_models.PhaseProfileCreation:
		complete = g.allProfilesSubmittedLocked()
	case game_models.PhaseSabotage:
		complete = g.allSabotagesExhaustedLocked()
	case game_models.PhaseDecision:
		complete = g.allDecisionsSubmittedLocked()
	}

	if !complete {
		return
	}

	log.Printf("[PHASE] Phase %s completed by all players, advancing early", g.phase)
	g.advancePhaseLocked()
	if g.clockStop != nil {
		g.emitTickLocked()
	}
}

func (g *Game) allProfilesSubmittedLocked() bool {
	for _, p := range g.players {
		if _, ok := g.profiles[p.ID]; !ok {
			return false
		}
	}
	return true
}

func (g *Game) allSabotagesExhaustedLocked() bool {
	for _, p := range g.players {
		if g.sabotageCounts[p.ID] < game_constants.MAX_SABOTAGES_PER_ROUND {
			return false
		}
	}
	return true
}

func (g *Game) allDecisionsSubmittedLocked() bool {
	for _, p := range g.players {
		if _, ok := g.decisions[p.ID]; !ok {
			return false
		}
	}
	return true
}

// checkVotesCompleteLocked tallies the "best catfish" votes once every
// connected player has voted, converts them into score bonuses, and routes
// to Intermission or GameOver depending on remaining rounds.
func (g *Game) checkVotesCompleteLocked() {
	if g.phase != game_models.PhaseReveal || len(g.players) == 0 {
		return
	}
	for _, p := range g.players {
		if _, ok := g.votes[p.ID]; !ok {
			return
		}
	}

	voteCounts := make(map[string]int)
	for _, votedForID := range g.votes {
		voteCounts[votedForID]++
	}
	for _, p := range g.players {
		if count := voteCounts[p.ID]; count > 0 {
			p.Score += count * game_constants.VOTE_BONUS
		}
	}

	if g.round < g.totalRounds {
		g.phase = game_models.PhaseIntermission
		log.Printf("[VOTING] Votes tallied, intermission before round %d", g.round+1)
		g.emitter.Broadcast(EventIntermissionStarted, gin.H{
			"players":    g.rosterLocked(),
			"next_round": g.round + 1,
		})
	} else {
		g.phase = game_models.PhaseGameOver
		log.Printf("[VOTING] Votes tallied after final round, game over")
		g.emitter.Broadcast(EventGameOver, gin.H{"players": g.rosterLocked()})
	}
}
