// Package transcript converts an ordered sequence of chat messages into
// the text block fed to the generation step as context.
package transcript

import (
	"fmt"
	"strings"

	"qim/ai-backend/internal/models"
)

// Placeholder is returned when there is no conversation content to format.
const Placeholder = "(대화 내용 없음)"

// Format renders messages as one line each, preserving input order.
// System messages are skipped; file messages are wrapped with a file
// marker. An empty result yields the fixed placeholder.
func Format(messages []models.Message) string {
	var lines []string
	for _, msg := range messages {
		if msg.MessageType == models.MessageTypeSystem {
			continue
		}
		content := msg.Content
		if msg.MessageType == models.MessageTypeFile {
			content = fmt.Sprintf("[파일: %s]", content)
		}
		timestamp := msg.CreatedAt.Format("2006-01-02 15:04")
		lines = append(lines, fmt.Sprintf("[%s] %s: %s", timestamp, msg.SenderName, content))
	}

	if len(lines) == 0 {
		return Placeholder
	}
	return strings.Join(lines, "\n")
}
