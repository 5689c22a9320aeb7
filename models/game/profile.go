package game

// Profile fields that can be sabotaged. The values match what the
// frontend sends in sabotage_action events.
const (
	FieldFakeName = "fakeName"
	FieldBio      = "bio"
	FieldImageURL = "imageUrl"
	FieldLikes    = "likes"
	FieldDislikes = "dislikes"
)

// CatfishProfile is the fake dating profile a creator builds for their
// assigned target. Exactly one per creator per round; mutable only through
// sabotage actions once submitted.
type CatfishProfile struct {
	CreatorID string   `json:"creator_id"`
	FakeName  string   `json:"fake_name"`
	Bio       string   `json:"bio"`
	Likes     []string `json:"likes"`
	Dislikes  []string `json:"dislikes"`
	ImageURL  string   `json:"image_url"`
}

// Clone returns a deep copy, used to freeze a profile snapshot for the
// reveal before any further mutation.
func (p *CatfishProfile) Clone() *CatfishProfile {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Likes = append([]string(nil), p.Likes...)
	cp.Dislikes = append([]string(nil), p.Dislikes...)
	return &cp
}

// SabotageAction is one edit a rival applied to someone else's profile.
// Actions are append-only history; the live profile always reflects the
// latest value per field/index.
type SabotageAction struct {
	SabotagerID   string `json:"sabotager_id"`
	SabotagerName string `json:"sabotager_name"`
	Field         string `json:"field"`
	Index         *int   `json:"index,omitempty"` // only for likes/dislikes
	OldValue      string `json:"old_value"`
	NewValue      string `json:"new_value"`
}
