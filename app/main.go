package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glowlabs/pagegen/app/api"
	"github.com/glowlabs/pagegen/app/cfg"
	"github.com/glowlabs/pagegen/app/config"
	"github.com/glowlabs/pagegen/app/database"
	"github.com/glowlabs/pagegen/app/output"
	"github.com/glowlabs/pagegen/app/pipeline"
	"github.com/glowlabs/pagegen/app/templates"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Load configuration from environment variables and command-line flags
	appConfig, err := cfg.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	if appConfig == nil {
		// Help was shown, exit gracefully
		return
	}

	if appConfig.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	log.Println("Starting PageGen...")

	// Database connection
	log.Printf("Opening database %s...", appConfig.DBPath)
	db, err := database.NewConnection(appConfig.DBPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	log.Printf("Database ready (schema version %d, dirty: %t)", version, dirty)

	// Template registry: static, read-only document contracts
	registry, err := templates.NewRegistry()
	if err != nil {
		log.Fatal("Failed to load templates:", err)
	}
	log.Printf("Loaded %d page templates", len(registry.List()))

	// Repositories and core pipeline
	runRepo := database.NewRunRepository(db)
	documentRepo := database.NewDocumentRepository(db)
	contentPipeline := pipeline.New(registry)

	// One-shot mode: generate documents for a single record file and exit
	if appConfig.InputFile != "" {
		if err := runOnce(appConfig, contentPipeline, runRepo, documentRepo); err != nil {
			log.Fatal("Generation failed: ", err)
		}
		return
	}

	// Initialize HTTP server
	log.Println("Initializing HTTP server...")
	apiHandler := api.NewHandler(contentPipeline, registry, runRepo, documentRepo)
	server := api.NewServer(apiHandler, appConfig.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + appConfig.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start HTTP server in a goroutine
	serverErrChan := make(chan error, 1)
	go func() {
		log.Printf("Starting HTTP server on port %s", appConfig.Port)
		log.Printf("Endpoints available:")
		log.Printf("  Generate:      http://localhost:%s/generate (POST)", appConfig.Port)
		log.Printf("  Health check:  http://localhost:%s/health", appConfig.Port)
		log.Printf("  Templates:     http://localhost:%s/templates", appConfig.Port)

		if appConfig.APIAccessKey != "" {
			log.Printf("  List runs:     http://localhost:%s/api/runs (requires API key)", appConfig.Port)
			log.Printf("  Run documents: http://localhost:%s/api/runs/<id>/documents (requires API key)", appConfig.Port)
		} else {
			log.Printf("  API endpoints: DISABLED (API_ACCESS_KEY not set)")
		}

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for interrupt signal or server error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	log.Println("PageGen started successfully!")
	log.Println("Press Ctrl+C to shutdown gracefully...")

	select {
	case sig := <-sigChan:
		log.Printf("Received signal: %v", sig)
	case err := <-serverErrChan:
		log.Printf("Server error: %v", err)
	}

	// Graceful shutdown
	log.Println("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	} else {
		log.Println("HTTP server stopped")
	}

	log.Println("PageGen shutdown complete")
}

// runOnce generates the three documents for a single product record file,
// persists the run, and writes the documents to the output directory.
func runOnce(appConfig *cfg.Cfg, contentPipeline *pipeline.Pipeline,
	runRepo database.RunRepository, documentRepo database.DocumentRepository) error {
	log.Printf("Loading product record from %s...", appConfig.InputFile)
	raw, err := config.LoadRecordFile(appConfig.InputFile)
	if err != nil {
		return err
	}

	result, err := contentPipeline.Run(raw)
	if err != nil {
		return err
	}
	log.Printf("Generated %d FAQ items, %d product page sections, %d comparison rows for %s",
		result.FAQ.TotalQuestions, len(result.Product.Sections),
		len(result.Comparison.ComparisonItems), result.Record.Name)

	run, err := database.PersistResult(runRepo, documentRepo, result)
	if err != nil {
		return err
	}
	log.Printf("Run %s persisted", run.ID)

	writer := output.NewWriter(appConfig.OutputDir)
	if err := writer.WriteResult(result); err != nil {
		return err
	}
	log.Printf("Documents written to %s", appConfig.OutputDir)

	return nil
}
