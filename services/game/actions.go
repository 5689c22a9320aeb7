package game

import (
	game_constants "Heartbait/constants/game"
	game_models "Heartbait/models/game"
	"log"

	"github.com/gin-gonic/gin"
)

// SubmitProfile stores a creator's fake profile. First submission wins;
// later submissions from the same creator in the same round are silently
// discarded. When every connected player has submitted, the phase advances
// ahead of the timer.
func (g *Game) SubmitProfile(playerID string, profile game_models.CatfishProfile) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != game_models.PhaseProfileCreation {
		log.Printf("[PROFILE] Ignoring submit_profile from %s during phase %s", playerID, g.phase)
		return
	}
	if _, exists := g.profiles[playerID]; exists {
		log.Printf("[PROFILE] Ignoring duplicate profile from %s", playerID)
		return
	}
	if g.findPlayerLocked(playerID) == nil {
		return
	}

	profile.CreatorID = playerID
	g.profiles[playerID] = &profile
	log.Printf("[PROFILE] Profile submitted by %s (%d/%d)", playerID, len(g.profiles), len(g.players))

	g.checkEarlyAdvanceLocked()
}

// SabotageAction applies one edit to another creator's live profile and
// appends it to that profile's sabotage log. Rejected as a no-op once the
// sabotager's allowance is exhausted or when the profile does not exist.
func (g *Game) SabotageAction(playerID, targetCreatorID, field string, index *int, oldValue, newValue string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != game_models.PhaseSabotage {
		log.Printf("[SABOTAGE] Ignoring sabotage_action from %s during phase %s", playerID, g.phase)
		return
	}
	player := g.findPlayerLocked(playerID)
	if player == nil {
		return
	}
	if g.sabotageCounts[playerID] >= game_constants.MAX_SABOTAGES_PER_ROUND {
		log.Printf("[SABOTAGE] Player %s exhausted their sabotage allowance", playerID)
		return
	}
	profile := g.profiles[targetCreatorID]
	if profile == nil {
		log.Printf("[SABOTAGE] No profile for creator %s, ignoring", targetCreatorID)
		return
	}
	if !applySabotage(profile, field, index, newValue) {
		log.Printf("[SABOTAGE] Invalid field %q (index %v) from %s, ignoring", field, index, playerID)
		return
	}

	g.sabotageLogs[targetCreatorID] = append(g.sabotageLogs[targetCreatorID], game_models.SabotageAction{
		SabotagerID:   playerID,
		SabotagerName: player.Name,
		Field:         field,
		Index:         index,
		OldValue:      oldValue,
		NewValue:      newValue,
	})
	g.sabotageCounts[playerID]++

	log.Printf("[SABOTAGE] %s sabotaged %s's profile field %s (%d/%d used)",
		playerID, targetCreatorID, field, g.sabotageCounts[playerID], game_constants.MAX_SABOTAGES_PER_ROUND)

	g.emitter.Broadcast(EventProfilesUpdated, gin.H{"profiles": g.profiles})
	g.checkEarlyAdvanceLocked()
}

// applySabotage mutates the live profile field in place. Returns false for
// unknown fields or out-of-range list indices.
func applySabotage(profile *game_models.CatfishProfile, field string, index *int, newValue string) bool {
	switch field {
	case game_models.FieldFakeName:
		profile.FakeName = newValue
	case game_models.FieldBio:
		profile.Bio = newValue
	case game_models.FieldImageURL:
		profile.ImageURL = newValue
	case game_models.FieldLikes:
		if index == nil || *index < 0 || *index >= len(profile.Likes) {
			return false
		}
		profile.Likes[*index] = newValue
	case game_models.FieldDislikes:
		if index == nil || *index < 0 || *index >= len(profile.Dislikes) {
			return false
		}
		profile.Dislikes[*index] = newValue
	default:
		return false
	}
	return true
}

// SendMessage appends a chat message to the round transcript and delivers
// it only to the named recipient. The transcript is retained for the
// reveal replay.
func (g *Game) SendMessage(senderID, recipientID, text string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != game_models.PhaseChat {
		log.Printf("[CHAT] Ignoring send_message from %s during phase %s", senderID, g.phase)
		return
	}
	if g.findPlayerLocked(senderID) == nil {
		return
	}

	g.messages = append(g.messages, game_models.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Text:        text,
	})
	g.emitter.EmitTo(recipientID, EventMessageReceived, gin.H{
		"sender_id": senderID,
		"text":      text,
	})
}

// SubmitDecision records a target's agree/reject verdict on their match.
// First submission wins. When every connected player has decided, the
// round closes ahead of the timer.
func (g *Game) SubmitDecision(playerID, decision string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != game_models.PhaseDecision {
		log.Printf("[DECISION] Ignoring submit_decision from %s during phase %s", playerID, g.phase)
		return
	}
	if decision != game_models.DecisionAgree && decision != game_models.DecisionReject {
		log.Printf("[DECISION] Invalid decision %q from %s, ignoring", decision, playerID)
		return
	}
	if _, exists := g.decisions[playerID]; exists {
		log.Printf("[DECISION] Ignoring duplicate decision from %s", playerID)
		return
	}
	if g.findPlayerLocked(playerID) == nil {
		return
	}

	g.decisions[playerID] = decision
	log.Printf("[DECISION] Decision %q submitted by %s (%d/%d)", decision, playerID, len(g.decisions), len(g.players))

	g.checkEarlyAdvanceLocked()
}

// SubmitVote records a "best catfish" vote during the reveal. First
// submission wins; once all currently connected players have voted the
// votes are tallied and the game routes to Intermission or GameOver.
func (g *Game) SubmitVote(voterID, votedForID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != game_models.PhaseReveal {
		log.Printf("[VOTING] Ignoring submit_vote from %s during phase %s", voterID, g.phase)
		return
	}
	if _, exists := g.votes[voterID]; exists {
		log.Printf("[VOTING] Ignoring duplicate vote from %s", voterID)
		return
	}
	if g.findPlayerLocked(voterID) == nil {
		return
	}

	g.votes[voterID] = votedForID
	log.Printf("[VOTING] Vote submitted by %s (%d/%d)", voterID, len(g.votes), len(g.players))

	g.checkVotesCompleteLocked()
}
