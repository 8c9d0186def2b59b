package models

// ChatRoom is a 1-on-1 room between a CEO and a member, as listed for the
// AI service. The row is owned by the chat server and only read here.
type ChatRoom struct {
	// ID is the room UUID.
	ID string
	// Topic is the room topic (e.g. operations, feedback).
	Topic string
	// CEOName is the display name of the CEO participant.
	CEOName string `gorm:"column:ceo_name"`
	// MemberName is the display name of the member participant.
	MemberName string
}
