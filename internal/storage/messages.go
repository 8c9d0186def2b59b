package storage

import (
	"log"
	"strings"
	"time"

	"qim/ai-backend/internal/models"
)

// messageFilter builds the conjunctive WHERE conditions and bind args for
// the three optional message filters. dateTo is inclusive: the bound is
// strictly before the midnight following that day.
func messageFilter(roomID *string, dateFrom, dateTo *time.Time) ([]string, []interface{}) {
	var conditions []string
	var args []interface{}

	if roomID != nil {
		conditions = append(conditions, "m.room_id = ?")
		args = append(args, *roomID)
	}
	if dateFrom != nil {
		conditions = append(conditions, "m.created_at >= ?")
		args = append(args, *dateFrom)
	}
	if dateTo != nil {
		conditions = append(conditions, "m.created_at < ?")
		args = append(args, dateTo.AddDate(0, 0, 1))
	}

	return conditions, args
}

// FetchMessages loads chat messages joined with sender name and room topic,
// ordered by creation time ascending. Each of the three filter arguments is
// optional; a nil room ID means all rooms, and the date bounds are applied
// to created_at. dateTo is inclusive: messages up to the end of that day
// are returned.
func (s *Service) FetchMessages(roomID *string, dateFrom, dateTo *time.Time) ([]models.Message, error) {
	query := `
        SELECT m.content, m.message_type, m.created_at,
               u.name AS sender_name,
               cr.topic
        FROM messages m
        JOIN users u ON m.sender_id = u.id
        JOIN chat_rooms cr ON m.room_id = cr.id`

	conditions, args := messageFilter(roomID, dateFrom, dateTo)

	if len(conditions) > 0 {
		query += "\n        WHERE " + strings.Join(conditions, " AND ")
	}
	query += "\n        ORDER BY m.created_at ASC"

	var messages []models.Message
	if err := s.DB.Raw(query, args...).Scan(&messages).Error; err != nil {
		log.Printf("ERROR: Failed to fetch messages: %v", err)
		return nil, err
	}
	return messages, nil
}

// FetchRooms returns every chat room with the names of its CEO and member,
// ordered by member name and then topic.
func (s *Service) FetchRooms() ([]models.ChatRoom, error) {
	query := `
        SELECT cr.id, cr.topic,
               ceo.name AS ceo_name,
               mem.name AS member_name
        FROM chat_rooms cr
        JOIN users ceo ON cr.ceo_id = ceo.id
        JOIN users mem ON cr.member_id = mem.id
        ORDER BY mem.name, cr.topic`

	var rooms []models.ChatRoom
	if err := s.DB.Raw(query).Scan(&rooms).Error; err != nil {
		log.Printf("ERROR: Failed to fetch rooms: %v", err)
		return nil, err
	}
	return rooms, nil
}
