package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"

	_ "github.com/lib/pq"

	httpapi "renthub-backend/internal/api/http"
	"renthub-backend/internal/auth"
	"renthub-backend/internal/classifier"
	"renthub-backend/internal/config"
	"renthub-backend/internal/jobs"
	"renthub-backend/internal/logger"
	"renthub-backend/internal/repository"
	fsrepo "renthub-backend/internal/repository/firestore"
	"renthub-backend/internal/repository/postgres"
	"renthub-backend/internal/scheduler"
	"renthub-backend/internal/security"
	"renthub-backend/internal/service"
	"renthub-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
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
	logger.Info("Starting RentHub Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "type", cfg.Database.Type)
	logger.Info("Storage configuration", "type", cfg.Storage.Type)

	ctx := context.Background()

	var firebaseOpts []option.ClientOption
	if cfg.Firebase.CredentialsFile != "" {
		firebaseOpts = append(firebaseOpts, option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
	}

	// Initialize Repositories
	var (
		items repository.ItemRepository
		rents repository.RentRepository
		users repository.UserRepository
		db    *sql.DB
	)
	switch cfg.Database.Type {
	case "firestore":
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
		items, rents, users = store.ItemRepository, store.RentRepository, store.UserRepository
		logger.Info("Firestore connection established", "project_id", cfg.Firebase.ProjectID)
	case "postgres":
		db, err = sql.Open("postgres", cfg.GetDatabaseConnectionString())
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
		items, rents, users = store.ItemRepository, store.RentRepository, store.UserRepository
		logger.Info("Database connection established", "host", cfg.Database.Host, "database", cfg.Database.Database)
	}

	// Initialize Identity Provider
	var provider auth.Provider
	switch cfg.Auth.Provider {
	case "firebase":
		app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, firebaseOpts...)
		if err != nil {
			logger.Error("Failed to initialize Firebase app for auth", "error", err)
			log.Fatalf("Failed to initialize Firebase app for auth: %v", err)
		}
		authClient, err := app.Auth(ctx)
		if err != nil {
			logger.Error("Failed to initialize Firebase auth", "error", err)
			log.Fatalf("Failed to initialize Firebase auth: %v", err)
		}
		provider = auth.NewFirebaseProvider(authClient)
		logger.Info("Using Firebase identity provider")
	case "local":
		tokenManager := security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)
		provider = auth.NewLocalProvider(db, tokenManager)
		logger.Info("Using local identity provider")
	}

	// Initialize Blob Storage
	var (
		blobs        storage.BlobStorage
		localStorage *storage.LocalStorage
	)
	switch cfg.Storage.Type {
	case "gcs":
		gcsClient, err := gcs.NewClient(ctx, firebaseOpts...)
		if err != nil {
			logger.Error("Failed to initialize GCS client", "error", err)
			log.Fatalf("Failed to initialize GCS client: %v", err)
		}
		defer gcsClient.Close()
		blobs = storage.NewGCSStorage(gcsClient.Bucket(cfg.Storage.Bucket), cfg.Storage.Bucket)
		logger.Info("Using GCS storage", "bucket", cfg.Storage.Bucket)
	case "local":
		localStorage, err = storage.NewLocalStorage(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
		if err != nil {
			logger.Error("Failed to initialize local storage", "error", err)
			log.Fatalf("Failed to initialize local storage: %v", err)
		}
		blobs = localStorage
		logger.Info("Using local storage", "upload_dir", cfg.Storage.UploadDir)
	}

	// Initialize Classifier
	var imageClassifier classifier.Classifier
	if cfg.Classifier.Endpoint != "" {
		imageClassifier = classifier.NewHTTPClassifier(cfg.Classifier.Endpoint)
		logger.Info("Using image classifier", "endpoint", cfg.Classifier.Endpoint)
	} else {
		logger.Info("No classifier configured, new items default to category 'other'")
	}

	// Initialize Email Service
	var emailSvc service.EmailService
	if cfg.Email.APIKey != "" {
		emailSvc = service.NewEmailService(cfg.Email)
	} else {
		logger.Info("No SendGrid key configured, emails are logged only")
		emailSvc = service.NewLogEmailService()
	}

	// Initialize Services
	catalogSvc := service.NewCatalogService(items, blobs, imageClassifier)
	rentalSvc := service.NewRentalService(items, rents, users, emailSvc)
	rentLogSvc := service.NewRentLogService(rents)
	userSvc := service.NewUserService(users, provider)

	// Initialize HTTP handlers
	router := httpapi.NewRouter(httpapi.RouterDeps{
		Middleware:   httpapi.NewMiddleware(provider, users),
		Items:        httpapi.NewItemHandler(catalogSvc),
		Rents:        httpapi.NewRentHandler(rentalSvc, rentLogSvc),
		Users:        httpapi.NewUserHandler(userSvc),
		LocalStorage: localStorage,
	})

	// Run the overdue reminder schedule alongside the API
	jobRunner := jobs.NewJobRunner(rents, users, emailSvc, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
