package game

import (
	game_constants "Heartbait/constants/game"
	game_models "Heartbait/models/game"
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// phaseDuration returns the countdown for a timed phase, in whole seconds.
// Zero means the phase is not timer-driven.
func phaseDuration(phase game_models.GamePhase) int {
	switch phase {
	case game_models.PhaseAssignment:
		return int(game_constants.ASSIGNMENT_DURATION.Seconds())
	case game_models.PhaseProfileCreation:
		return int(game_constants.PROFILE_CREATION_DURATION.Seconds())
	case game_models.PhaseSabotage:
		return int(game_constants.SABOTAGE_DURATION.Seconds())
	case game_models.PhaseChat:
		return int(game_constants.CHAT_DURATION.Seconds())
	case game_models.PhaseDecision:
		return int(game_constants.DECISION_DURATION.Seconds())
	default:
		return 0
	}
}

// setPhaseLocked moves the clock tuple to a new phase and resets the
// countdown to that phase's full duration.
func (g *Game) setPhaseLocked(phase game_models.GamePhase) {
	g.phase = phase
	g.duration = phaseDuration(phase)
	g.timeLeft = g.duration
}

// startClockLocked launches the once-per-second ticker goroutine. Any
// previous ticker is invalidated via the generation counter, so a stale
// goroutine that fires after a teardown mutates nothing.
func (g *Game) startClockLocked() {
	g.stopClockLocked()
	g.clockGen++
	gen := g.clockGen
	stop := make(chan struct{})
	g.clockStop = stop

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if !g.tick(gen) {
					return
				}
			}
		}
	}()

	log.Printf("[CLOCK] Clock started for round %d (phase %s)", g.round, g.phase)
}

func (g *Game) stopClockLocked() {
	if g.clockStop != nil {
		close(g.clockStop)
		g.clockStop = nil
	}
	g.clockGen++
}

// tick is one authoritative clock step: re-emit the clock tuple, then
// either count down or hand over to the transition engine. Returns false
// when this ticker generation is no longer current.
func (g *Game) tick(gen int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if gen != g.clockGen {
		return false
	}

	g.emitTickLocked()
	if g.timeLeft > 0 {
		g.timeLeft--
	} else {
		g.advancePhaseLocked()
	}
	return true
}

func (g *Game) emitTickLocked() {
	g.emitter.Broadcast(EventTick, g.tickPayloadLocked())
}

func (g *Game) tickPayloadLocked() gin.H {
	return gin.H{
		"phase":        g.phase,
		"time_left":    g.timeLeft,
		"duration":     g.duration,
		"round":        g.round,
		"total_rounds": g.totalRounds,
	}
}
