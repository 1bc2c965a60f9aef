// File: models/chat.go
package models

// Chat message senders.
const (
	ChatSenderUser = "user"
	ChatSenderBot  = "bot"
)

// ChatMessage is one bubble in the assistant conversation.
type ChatMessage struct {
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"` // unix millis
	// TargetScreen names a client screen the reply offers to open, empty when
	// the reply is plain text.
	TargetScreen string `json:"targetScreen,omitempty"`
}
