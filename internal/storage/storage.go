// Package storage provides access to the PostgreSQL database shared with
// the chat server. Messages, users and chat rooms are owned by the chat
// server and only read here; the ai_reports table is owned by this service.
package storage

import (
	"time"

	"qim/ai-backend/internal/models"

	"gorm.io/gorm"
)

// Storage is the minimal repository interface the API layer depends on.
// It exists so handlers can be tested against a mock instead of a live
// database.
type Storage interface {
	FetchMessages(roomID *string, dateFrom, dateTo *time.Time) ([]models.Message, error)
	FetchRooms() ([]models.ChatRoom, error)

	SaveReport(report *models.Report) error
	FetchReports() ([]models.ReportRow, error)
	FetchReportByID(id string) (*models.ReportRow, error)
	DeleteReport(id string) (bool, error)
}

// Service is the GORM-backed implementation of Storage.
type Service struct {
	DB *gorm.DB
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB) *Service {
	return &Service{DB: db}
}
