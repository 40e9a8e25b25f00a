package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	firebase "firebase.google.com/go/v4"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"

	_ "github.com/lib/pq"

	"renthub-backend/internal/config"
	"renthub-backend/internal/jobs"
	"renthub-backend/internal/logger"
	"renthub-backend/internal/repository"
	fsrepo "renthub-backend/internal/repository/firestore"
	"renthub-backend/internal/repository/postgres"
	"renthub-backend/internal/scheduler"
	"renthub-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'send-overdue-reminders', 'all-nightly')")
	flag.Parse()

	// Load .env for local development; a missing file is fine
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting RentHub Cronjob Runner...", "log_level", cfg.Log.Level)

	ctx := context.Background()

	// Initialize Repositories
	var (
		rents repository.RentRepository
		users repository.UserRepository
	)
	switch cfg.Database.Type {
	case "firestore":
		var firebaseOpts []option.ClientOption
		if cfg.Firebase.CredentialsFile != "" {
			firebaseOpts = append(firebaseOpts, option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
		}
		app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, firebaseOpts...)
		if err != nil {
			logger.Error("Failed to initialize Firebase app", "error", err)
			log.Fatalf("Failed to initialize Firebase app: %v", err)
		}
		client, err := app.Firestore(ctx)
		if err != nil {
			logger.Error("Failed to connect to Firestore", "error", err)
			log.Fatalf("Failed to connect to Firestore: %v", err)
		}
		defer client.Close()

		store := fsrepo.NewStore(client)
		rents, users = store.RentRepository, store.UserRepository
		logger.Info("Firestore connection established", "project_id", cfg.Firebase.ProjectID)
	case "postgres":
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			logger.Error("Failed to ping database", "error", err)
			log.Fatalf("Failed to ping database: %v", err)
		}

		store := postgres.NewStore(db)
		rents, users = store.RentRepository, store.UserRepository
		logger.Info("Database connection established", "host", cfg.Database.Host, "database", cfg.Database.Database)
	}

	// Initialize Email Service
	var emailSvc service.EmailService
	if cfg.Email.APIKey != "" {
		emailSvc = service.NewEmailService(cfg.Email)
	} else {
		logger.Info("No SendGrid key configured, emails are logged only")
		emailSvc = service.NewLogEmailService()
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(rents, users, emailSvc, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "send-overdue-reminders":
		jobRunner.SendOverdueReminders()
	case "report-rent-activity":
		jobRunner.ReportRentActivity()
	case "all-nightly":
		jobRunner.RunAllNightlyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - send-overdue-reminders\n")
		fmt.Printf("  - report-rent-activity\n")
		fmt.Printf("  - all-nightly\n")
		os.Exit(1)
	}
}
