package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"qim/ai-backend/internal/models"
	"qim/ai-backend/internal/prompts"
	"qim/ai-backend/internal/transcript"
)

// User-facing messages, kept in Korean like the rest of the product.
const (
	errEmptyQuery      = "검색어를 입력해주세요."
	errNoConversations = "해당 조건의 대화 내용이 없습니다."
	errReportNotFound  = "리포트를 찾을 수 없습니다."
	errInvalidDate     = "날짜 형식이 올바르지 않습니다. (YYYY-MM-DD)"
)

const dateLayout = "2006-01-02"

type summarizeRequest struct {
	RoomID   string `json:"room_id"`
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
	Save     bool   `json:"save"`
}

type searchRequest struct {
	Query    string `json:"query"`
	RoomID   string `json:"room_id"`
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
	Save     bool   `json:"save"`
}

type reportRequest struct {
	RoomID   string `json:"room_id"`
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
}

// Health reports service liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "qim-ai"})
}

// Summarize generates a summary of the filtered conversations and
// optionally persists it as a report.
func (h *Handler) Summarize(c *gin.Context) {
	var req summarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	roomID := optionalString(req.RoomID)
	dateFrom, dateTo, ok := parseDateRange(c, req.DateFrom, req.DateTo)
	if !ok {
		return
	}

	conversations, count, ok := h.loadConversations(c, roomID, dateFrom, dateTo)
	if !ok {
		return
	}

	result, err := h.AI.Generate(prompts.Summarize(conversations), prompts.System)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if req.Save {
		report := &models.Report{
			RoomID:     roomID,
			ReportType: models.ReportTypeSummary,
			Query:      rangeLabel("요약", dateFrom, dateTo),
			Result:     result,
			DateFrom:   dateFrom,
			DateTo:     dateTo,
		}
		if err := h.Storage.SaveReport(report); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"result": result, "report_id": report.ID})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result, "message_count": count})
}

// Search answers the given query from the filtered conversations and
// optionally persists the answer as a report.
func (h *Handler) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errEmptyQuery})
		return
	}

	roomID := optionalString(req.RoomID)
	dateFrom, dateTo, ok := parseDateRange(c, req.DateFrom, req.DateTo)
	if !ok {
		return
	}

	conversations, count, ok := h.loadConversations(c, roomID, dateFrom, dateTo)
	if !ok {
		return
	}

	result, err := h.AI.Generate(prompts.Search(req.Query, conversations), prompts.System)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if req.Save {
		report := &models.Report{
			RoomID:     roomID,
			ReportType: models.ReportTypeSearch,
			Query:      req.Query,
			Result:     result,
			DateFrom:   dateFrom,
			DateTo:     dateTo,
		}
		if err := h.Storage.SaveReport(report); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"result": result, "report_id": report.ID})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result, "message_count": count})
}

// CreateReport generates a comprehensive report from the filtered
// conversations. Unlike the other endpoints the result is always saved.
func (h *Handler) CreateReport(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	roomID := optionalString(req.RoomID)
	dateFrom, dateTo, ok := parseDateRange(c, req.DateFrom, req.DateTo)
	if !ok {
		return
	}

	conversations, _, ok := h.loadConversations(c, roomID, dateFrom, dateTo)
	if !ok {
		return
	}

	result, err := h.AI.Generate(prompts.Report(conversations), prompts.System)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	report := &models.Report{
		RoomID:     roomID,
		ReportType: models.ReportTypeSummary,
		Query:      rangeLabel("종합 리포트", dateFrom, dateTo),
		Result:     result,
		DateFrom:   dateFrom,
		DateTo:     dateTo,
	}
	if err := h.Storage.SaveReport(report); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result, "report_id": report.ID})
}

// ListReports returns summary fields of the 50 most recent reports.
func (h *Handler) ListReports(c *gin.Context) {
	reports, err := h.Storage.FetchReports()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := make([]gin.H, 0, len(reports))
	for _, r := range reports {
		items = append(items, gin.H{
			"id":          r.ID,
			"report_type": r.ReportType,
			"query":       r.Query,
			"member_name": r.MemberName,
			"topic":       r.Topic,
			"date_from":   formatDate(r.DateFrom),
			"date_to":     formatDate(r.DateTo),
			"created_at":  r.CreatedAt.Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, items)
}

// GetReport returns one report in full, including the generated text.
func (h *Handler) GetReport(c *gin.Context) {
	report, err := h.Storage.FetchReportByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errReportNotFound})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          report.ID,
		"report_type": report.ReportType,
		"query":       report.Query,
		"result":      report.Result,
		"member_name": report.MemberName,
		"topic":       report.Topic,
		"date_from":   formatDate(report.DateFrom),
		"date_to":     formatDate(report.DateTo),
		"created_at":  report.CreatedAt.Format(time.RFC3339),
	})
}

// DeleteReport removes a report by id.
func (h *Handler) DeleteReport(c *gin.Context) {
	deleted, err := h.Storage.DeleteReport(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": errReportNotFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListRooms lists every chat room with its participants.
func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.Storage.FetchRooms()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := make([]gin.H, 0, len(rooms))
	for _, r := range rooms {
		items = append(items, gin.H{
			"id":          r.ID,
			"topic":       r.Topic,
			"ceo_name":    r.CEOName,
			"member_name": r.MemberName,
		})
	}
	c.JSON(http.StatusOK, items)
}

// loadConversations fetches the filtered messages and formats them into a
// transcript. It writes the 404 response itself when nothing matches; a
// room id that refers to no room collapses into the same 404.
func (h *Handler) loadConversations(c *gin.Context, roomID *string, dateFrom, dateTo *time.Time) (string, int, bool) {
	messages, err := h.Storage.FetchMessages(roomID, dateFrom, dateTo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return "", 0, false
	}
	if len(messages) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": errNoConversations})
		return "", 0, false
	}
	return transcript.Format(messages), len(messages), true
}

// parseDateRange parses the optional request date strings. It writes the
// 400 response itself when a date is malformed.
func parseDateRange(c *gin.Context, from, to string) (*time.Time, *time.Time, bool) {
	dateFrom, err := parseDate(from)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidDate})
		return nil, nil, false
	}
	dateTo, err := parseDate(to)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidDate})
		return nil, nil, false
	}
	return dateFrom, dateTo, true
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// rangeLabel synthesizes the query label stored with summary reports,
// e.g. "요약 (2024-01-01 ~ 2024-01-31)" or "종합 리포트 (전체 ~ 현재)".
func rangeLabel(kind string, from, to *time.Time) string {
	fromLabel := "전체"
	if from != nil {
		fromLabel = from.Format(dateLayout)
	}
	toLabel := "현재"
	if to != nil {
		toLabel = to.Format(dateLayout)
	}
	return kind + " (" + fromLabel + " ~ " + toLabel + ")"
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(dateLayout)
	return &formatted
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
