package game

import (
	"fmt"
	"testing"

	game_models "Heartbait/models/game"

	"github.com/stretchr/testify/assert"
)

func TestBuildAssignmentsIsDerangement(t *testing.T) {
	for n := 2; n <= 8; n++ {
		t.Run(fmt.Sprintf("%d players", n), func(t *testing.T) {
			players := make([]*game_models.Player, 0, n)
			for i := 0; i < n; i++ {
				players = append(players, &game_models.Player{ID: fmt.Sprintf("p%d", i)})
			}

			// Shuffle-based, so exercise it repeatedly
			for trial := 0; trial < 50; trial++ {
				assignments := buildAssignments(players)

				assert.Len(t, assignments, n)

				targetCounts := make(map[string]int)
				for _, p := range players {
					targetID := assignments[p.ID]
					assert.NotEqual(t, p.ID, targetID, "player assigned to themselves")
					targetCounts[targetID]++
				}

				// Every player is exactly one creator's target
				for _, p := range players {
					assert.Equal(t, 1, targetCounts[p.ID], "player %s targeted %d times", p.ID, targetCounts[p.ID])
				}
			}
		})
	}
}

func TestBuildAssignmentsTooFewPlayers(t *testing.T) {
	assert.Empty(t, buildAssignments(nil))
	assert.Empty(t, buildAssignments([]*game_models.Player{{ID: "solo"}}))
}

func TestStartRoundResetsStateAndNotifiesTargets(t *testing.T) {
	emitter := newRecordingEmitter()
	g := New(emitter)
	g.Join("a", "Alice")
	g.Join("b", "Bob")

	g.StartGame("a")
	defer stopClock(g)

	assert.Equal(t, string(game_models.PhaseAssignment), currentPhase(g))
	assert.Equal(t, 1, g.round)

	// Every player privately learns their own target
	started := emitter.named(EventGameStarted)
	assert.Len(t, started, 2)
	targets := map[string]bool{}
	for _, ev := range started {
		assert.NotEmpty(t, ev.Target)
		targets[ev.Target] = true
	}
	assert.True(t, targets["a"])
	assert.True(t, targets["b"])

	// With two players the derangement is a swap
	assert.Equal(t, "b", g.assignments["a"])
	assert.Equal(t, "a", g.assignments["b"])

	// An immediate tick announces the new clock tuple
	assert.GreaterOrEqual(t, emitter.count(EventTick), 1)
}
