package game

// RevealEntryKind is the closed set of reveal narrative entry types.
type RevealEntryKind string

const (
	RevealIntro        RevealEntryKind = "intro"
	RevealProfile      RevealEntryKind = "profile"
	RevealSabotage     RevealEntryKind = "sabotage"
	RevealConversation RevealEntryKind = "conversation"
	RevealDecision     RevealEntryKind = "decision"
	RevealScore        RevealEntryKind = "score"
	RevealVoting       RevealEntryKind = "voting"
)

// RevealEntry is one step of the ordered reveal narrative. The full
// sequence is broadcast as a single self-contained payload so every client
// can replay it at its own pace.
type RevealEntry struct {
	Kind        RevealEntryKind `json:"kind"`
	CreatorID   string          `json:"creator_id,omitempty"`
	CreatorName string          `json:"creator_name,omitempty"`
	TargetID    string          `json:"target_id,omitempty"`
	TargetName  string          `json:"target_name,omitempty"`
	Profile     *CatfishProfile `json:"profile,omitempty"`
	Sabotage    *SabotageAction `json:"sabotage,omitempty"`
	Messages    []Message       `json:"messages,omitempty"`
	Decision    string          `json:"decision,omitempty"` // agree, reject or empty for none
	Points      int             `json:"points,omitempty"`
}
