package models

import "time"

// Message types as stored in the external messages table.
const (
	MessageTypeText   = "text"
	MessageTypeFile   = "file"
	MessageTypeSystem = "system"
)

// Message is one row of the joined message query: a chat message together
// with its sender name and the topic of the room it was posted in.
// Messages are created and owned entirely by the chat server; this service
// only reads them.
type Message struct {
	// Content is the message text, or the file name for file messages.
	Content string
	// MessageType is one of text, file or system.
	MessageType string
	// CreatedAt is the timestamp the chat server assigned to the message.
	CreatedAt time.Time
	// SenderName is the display name of the sending user.
	SenderName string
	// Topic is the topic of the chat room the message belongs to.
	Topic string
}
