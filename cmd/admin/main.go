package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"qim/ai-backend/internal/config"
	"qim/ai-backend/internal/storage"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load() // a .env file is optional for the CLI
	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewStorageService(db)

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		fmt.Println("Commands: reports | show <report_id> | delete <report_id>")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "reports":
		if err := listReports(storageSvc); err != nil {
			log.Fatalf("Error listing reports: %v", err)
		}
	case "show":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin show <report_id>")
			os.Exit(1)
		}
		if err := showReport(storageSvc, os.Args[2]); err != nil {
			log.Fatalf("Error showing report: %v", err)
		}
	case "delete":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin delete <report_id>")
			os.Exit(1)
		}
		deleted, err := storageSvc.DeleteReport(os.Args[2])
		if err != nil {
			log.Fatalf("Error deleting report: %v", err)
		}
		if !deleted {
			fmt.Printf("Report %s not found.\n", os.Args[2])
			os.Exit(1)
		}
		fmt.Printf("Report %s has been deleted.\n", os.Args[2])
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

func listReports(s storage.Storage) error {
	reports, err := s.FetchReports()
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		fmt.Println("No reports stored.")
		return nil
	}
	for _, r := range reports {
		fmt.Printf("%s  %-8s  %s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.ReportType,
			r.ID,
			r.Query,
		)
	}
	return nil
}

func showReport(s storage.Storage, id string) error {
	report, err := s.FetchReportByID(id)
	if err != nil {
		return err
	}
	if report == nil {
		fmt.Printf("Report %s not found.\n", id)
		os.Exit(1)
	}
	fmt.Printf("ID:          %s\n", report.ID)
	fmt.Printf("Type:        %s\n", report.ReportType)
	fmt.Printf("Query:       %s\n", report.Query)
	if report.Topic != nil {
		fmt.Printf("Topic:       %s\n", *report.Topic)
	}
	if report.MemberName != nil {
		fmt.Printf("Member:      %s\n", *report.MemberName)
	}
	fmt.Printf("Range:       %s ~ %s\n", dateOr(report.DateFrom, "-"), dateOr(report.DateTo, "-"))
	fmt.Printf("Created at:  %s\n", report.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Println("--------------------------------")
	fmt.Println(report.Result)
	return nil
}

func dateOr(t *time.Time, fallback string) string {
	if t == nil {
		return fallback
	}
	return t.Format("2006-01-02")
}
