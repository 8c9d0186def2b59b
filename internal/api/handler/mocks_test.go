package handler_test

import (
	"time"

	"qim/ai-backend/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockStorage is a mock implementation of the storage.Storage interface.
// It uses testify/mock to allow flexible expectation setting in tests.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) FetchMessages(roomID *string, dateFrom, dateTo *time.Time) ([]models.Message, error) {
	args := m.Called(roomID, dateFrom, dateTo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MockStorage) FetchRooms() ([]models.ChatRoom, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatRoom), args.Error(1)
}

func (m *MockStorage) SaveReport(report *models.Report) error {
	args := m.Called(report)
	return args.Error(0)
}

func (m *MockStorage) FetchReports() ([]models.ReportRow, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReportRow), args.Error(1)
}

func (m *MockStorage) FetchReportByID(id string) (*models.ReportRow, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReportRow), args.Error(1)
}

func (m *MockStorage) DeleteReport(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

// MockGenerator is a mock implementation of the handler.Generator interface.
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(prompt, system string) (string, error) {
	args := m.Called(prompt, system)
	return args.String(0), args.Error(1)
}
