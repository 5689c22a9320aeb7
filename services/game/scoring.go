package game

import (
	game_constants "Heartbait/constants/game"
	game_models "Heartbait/models/game"
	"log"

	"github.com/gin-gonic/gin"
)

// compileRevealLocked derives the round's scores and assembles the ordered
// reveal narrative. Invoked exactly once per round, at Decision -> Reveal;
// deterministic given the round state accumulated so far.
func (g *Game) compileRevealLocked() gin.H {
	roundScores := make(map[string]int)

	// A creator scores when their target accepted the fabricated match.
	for _, p := range g.players {
		targetID := g.assignments[p.ID]
		if g.decisions[targetID] == game_models.DecisionAgree {
			roundScores[p.ID] += game_constants.AGREE_BONUS
		}
	}

	// A sabotage pays off when the target of the sabotaged profile ended
	// up rejecting, regardless of who created that profile.
	for creatorID, actions := range g.sabotageLogs {
		targetID := g.assignments[creatorID]
		if g.decisions[targetID] != game_models.DecisionReject {
			continue
		}
		for _, action := range actions {
			roundScores[action.SabotagerID] += game_constants.SABOTAGE_BONUS
		}
	}

	for _, p := range g.players {
		p.Score += roundScores[p.ID]
	}

	entries := g.buildRevealEntriesLocked(roundScores)

	log.Printf("[REVEAL] Round %d reveal compiled: %d entries, %d scored players",
		g.round, len(entries), len(roundScores))

	return gin.H{
		"round":        g.round,
		"players":      g.rosterLocked(),
		"round_scores": roundScores,
		"entries":      entries,
	}
}

// buildRevealEntriesLocked walks the roster once in join order. Per
// creator: intro, profile snapshot, sabotage replay in chronological
// order, the pair's conversation (each unordered creator/target pair
// exactly once), decision outcome, round score. One voting invitation
// closes the sequence.
func (g *Game) buildRevealEntriesLocked(roundScores map[string]int) []game_models.RevealEntry {
	entries := make([]game_models.RevealEntry, 0, len(g.players)*6+1)
	revealedPairs := make(map[string]bool)

	for _, creator := range g.players {
		targetID, ok := g.assignments[creator.ID]
		if !ok {
			// Joined mid-round, nothing to reveal for them
			continue
		}
		targetName := ""
		if target := g.findPlayerLocked(targetID); target != nil {
			targetName = target.Name
		}

		entries = append(entries, game_models.RevealEntry{
			Kind:        game_models.RevealIntro,
			CreatorID:   creator.ID,
			CreatorName: creator.Name,
			TargetID:    targetID,
			TargetName:  targetName,
		})

		if profile := g.profiles[creator.ID]; profile != nil {
			entries = append(entries, game_models.RevealEntry{
				Kind:      game_models.RevealProfile,
				CreatorID: creator.ID,
				Profile:   profile.Clone(),
			})
		}

		for i := range g.sabotageLogs[creator.ID] {
			action := g.sabotageLogs[creator.ID][i]
			entries = append(entries, game_models.RevealEntry{
				Kind:      game_models.RevealSabotage,
				CreatorID: creator.ID,
				Sabotage:  &action,
			})
		}

		pair := pairKey(creator.ID, targetID)
		if !revealedPairs[pair] {
			revealedPairs[pair] = true
			entries = append(entries, game_models.RevealEntry{
				Kind:      game_models.RevealConversation,
				CreatorID: creator.ID,
				TargetID:  targetID,
				Messages:  g.conversationLocked(creator.ID, targetID),
			})
		}

		entries = append(entries, game_models.RevealEntry{
			Kind:      game_models.RevealDecision,
			CreatorID: creator.ID,
			TargetID:  targetID,
			Decision:  g.decisions[targetID],
		})

		entries = append(entries, game_models.RevealEntry{
			Kind:      game_models.RevealScore,
			CreatorID: creator.ID,
			Points:    roundScores[creator.ID],
		})
	}

	entries = append(entries, game_models.RevealEntry{Kind: game_models.RevealVoting})
	return entries
}

// conversationLocked extracts the two-party transcript for an unordered
// pair, preserving send order regardless of which side initiated.
func (g *Game) conversationLocked(a, b string) []game_models.Message {
	var conversation []game_models.Message
	for _, m := range g.messages {
		if (m.SenderID == a && m.RecipientID == b) || (m.SenderID == b && m.RecipientID == a) {
			conversation = append(conversation, m)
		}
	}
	return conversation
}

func pairKey(a, b string) string {
	if a < b {
		return a + "|" + b
	}
	return b + "|" + a
}
