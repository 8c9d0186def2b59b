package main

import (
	"log"
	"net/http"
	"time"

	"qim/ai-backend/internal/api/handler"
	"qim/ai-backend/internal/config"
	"qim/ai-backend/internal/models"
	"qim/ai-backend/internal/ollama"
	"qim/ai-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDatabase(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	// Only the ai_reports table is owned by this service; messages, users
	// and chat_rooms belong to the chat server.
	if err := db.AutoMigrate(&models.Report{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database connection established, migrations complete.")
	return db
}

func main() {
	log.Println("Starting QIM AI Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	cfg := config.Load()

	db := setupDatabase(cfg)
	s := storage.NewStorageService(db)
	ai := ollama.NewClient(cfg)

	r := gin.Default()
	r.Use(handler.CORSMiddleware())

	h := handler.NewHandler(s, ai)
	h.RegisterRoutes(r)

	// WriteTimeout must outlast the 120s generation call.
	server := &http.Server{
		Addr:           cfg.Addr(),
		Handler:        r,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   150 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Listening on %s", cfg.Addr())
	log.Fatal(server.ListenAndServe())
}
