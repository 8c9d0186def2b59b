package storage

import (
	"log"

	"qim/ai-backend/internal/models"
)

// reportSelect joins reports with their room topic and member name for
// display. Reports without a room (all-rooms reports) keep NULLs.
const reportSelect = `
        SELECT r.id, r.room_id, r.report_type, r.query, r.result,
               r.date_from, r.date_to, r.created_at,
               cr.topic,
               mem.name AS member_name
        FROM ai_reports r
        LEFT JOIN chat_rooms cr ON r.room_id = cr.id
        LEFT JOIN users mem ON cr.member_id = mem.id`

// SaveReport inserts a new report row. The report's ID and CreatedAt are
// populated on the passed struct so the caller can surface them.
func (s *Service) SaveReport(report *models.Report) error {
	if err := s.DB.Create(report).Error; err != nil {
		log.Printf("ERROR: Failed to save report (type=%s): %v", report.ReportType, err)
		return err
	}
	return nil
}

// FetchReports returns the 50 most recent reports, newest first.
func (s *Service) FetchReports() ([]models.ReportRow, error) {
	query := reportSelect + `
        ORDER BY r.created_at DESC
        LIMIT 50`

	var reports []models.ReportRow
	if err := s.DB.Raw(query).Scan(&reports).Error; err != nil {
		log.Printf("ERROR: Failed to fetch reports: %v", err)
		return nil, err
	}
	return reports, nil
}

// FetchReportByID returns one report with its room annotations, or nil
// without an error if the id does not exist.
func (s *Service) FetchReportByID(id string) (*models.ReportRow, error) {
	query := reportSelect + `
        WHERE r.id = ?`

	var report models.ReportRow
	result := s.DB.Raw(query, id).Scan(&report)
	if result.Error != nil {
		log.Printf("ERROR: Failed to fetch report %s: %v", id, result.Error)
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &report, nil
}

// DeleteReport removes a report by id. It returns true iff a row existed.
func (s *Service) DeleteReport(id string) (bool, error) {
	result := s.DB.Where("id = ?", id).Delete(&models.Report{})
	if result.Error != nil {
		log.Printf("ERROR: Failed to delete report %s: %v", id, result.Error)
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
