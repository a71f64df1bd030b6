package models

// Conversation is a derived view, never persisted: one row per counterpart
// the viewing user has exchanged messages with, carrying the most recent
// message between the two.
type Conversation struct {
	Counterpart User    `json:"counterpart"`
	LastMessage Message `json:"last_message"`
}
