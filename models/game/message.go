package game

// Message is one chat message between a creator and their target. The
// round transcript is append-only and keeps send order, so two-party
// conversations can be replayed at reveal time.
type Message struct {
	SenderID    string `json:"sender_id"`
	RecipientID string `json:"recipient_id"`
	Text        string `json:"text"`
}
