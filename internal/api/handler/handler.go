// Package handler implements the HTTP surface of the AI backend: the three
// generation endpoints (summarize, search, report) and the read endpoints
// for rooms and saved reports.
package handler

import (
	"github.com/gin-gonic/gin"

	"qim/ai-backend/internal/storage"
)

// Generator produces text from a prompt and an optional system instruction.
// It is satisfied by the ollama client and mocked in tests.
type Generator interface {
	Generate(prompt, system string) (string, error)
}

// Handler holds the dependencies of the API layer.
type Handler struct {
	Storage storage.Storage
	AI      Generator
}

// NewHandler creates the API handler with its storage and generation
// dependencies.
func NewHandler(s storage.Storage, ai Generator) *Handler {
	return &Handler{Storage: s, AI: ai}
}

// RegisterRoutes attaches all /ai routes to the router.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	ai := r.Group("/ai")
	ai.GET("/health", h.Health)
	ai.POST("/summarize", h.Summarize)
	ai.POST("/search", h.Search)
	ai.POST("/report", h.CreateReport)
	ai.GET("/reports", h.ListReports)
	ai.GET("/reports/:id", h.GetReport)
	ai.DELETE("/reports/:id", h.DeleteReport)
	ai.GET("/rooms", h.ListRooms)
}
