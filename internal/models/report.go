package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Report types persisted in the report_type column.
const (
	ReportTypeSummary = "summary"
	ReportTypeSearch  = "search"
)

// Report is a persisted AI generation result in the ai_reports table.
// A report is immutable once created; the only mutation is deletion.
type Report struct {
	// ID is the report UUID, generated before insert.
	ID string `gorm:"type:uuid;primaryKey"`
	// RoomID restricts the report to one chat room; nil means all rooms.
	RoomID *string `gorm:"type:uuid;index"`
	// ReportType is either summary or search.
	ReportType string `gorm:"type:text;not null"`
	// Query is the user's search term, or a synthesized label for summaries.
	Query string `gorm:"type:text;not null"`
	// Result is the generated text.
	Result string `gorm:"type:text;not null"`
	// DateFrom is the inclusive lower date bound of the source messages.
	DateFrom *time.Time `gorm:"type:date"`
	// DateTo is the inclusive upper date bound of the source messages.
	DateTo *time.Time `gorm:"type:date"`
	// CreatedAt is assigned on insert.
	CreatedAt time.Time
}

// TableName maps the model onto the ai_reports table.
func (Report) TableName() string {
	return "ai_reports"
}

// BeforeCreate is a GORM hook that generates a new UUID for the report
// if the ID has not been set yet.
func (r *Report) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}

// ReportRow is a report joined with its room topic and member name for
// display. Topic and MemberName are nil for reports spanning all rooms.
type ReportRow struct {
	ID         string
	RoomID     *string
	ReportType string
	Query      string
	Result     string
	DateFrom   *time.Time
	DateTo     *time.Time
	CreatedAt  time.Time
	Topic      *string
	MemberName *string
}
