package game_constants

import "time"

const TOTAL_ROUNDS = 3
const MIN_PLAYERS_TO_KEEP_PLAYING = 2

// Per-player sabotage allowance within a single round
const MAX_SABOTAGES_PER_ROUND = 3

// Scoring constants
const (
	AGREE_BONUS    = 1000 // creator's target accepted the match
	SABOTAGE_BONUS = 250  // per sabotage action on a profile whose target rejected
	VOTE_BONUS     = 200  // per "best catfish" vote received
)

// Countdown durations for the timed phases. Lobby, Reveal, Intermission
// and GameOver are not timer-driven.
const (
	ASSIGNMENT_DURATION       = 15 * time.Second
	PROFILE_CREATION_DURATION = 90 * time.Second
	SABOTAGE_DURATION         = 60 * time.Second
	CHAT_DURATION             = 120 * time.Second
	DECISION_DURATION         = 30 * time.Second
)

// Pexels image search
const PEXELS_SEARCH_URL = "https://api.pexels.com/v1/search"
const PEXELS_PAGE_SIZE = 15
