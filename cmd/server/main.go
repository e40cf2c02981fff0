/*
main.go - Dataset preview server entry point

PURPOSE:
  Serves a previously generated dataset over a read-only HTTP API for
  local inspection. The CSV directory is loaded once into an in-memory
  SQLite store at startup; flat files remain the only persisted artifact.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Load the CSV dataset directory
  3. Fill the SQLite store (in-memory by default)
  4. Configure HTTP router
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port    HTTP server port (default: 8080)
  -data    Dataset directory written by the generator
           (default: data/synthetic_raw, or OUT_DIR)
  -db      SQLite path (default: ":memory:")

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close the store
  4. Exit

EXAMPLES:
  # Serve the default output directory
  ./server

  # Serve a specific run on another port
  ./server -data=./runs/2026-08-01 -port=3000

SEE ALSO:
  - cmd/generate/main.go: produces the dataset this serves
  - api/server.go: router configuration
  - store/sqlite/sqlite.go: dataset store
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/warp/workforce-engine/api"
	"github.com/warp/workforce-engine/config"
	"github.com/warp/workforce-engine/output"
	"github.com/warp/workforce-engine/store/sqlite"
)

func main() {
	_ = godotenv.Load()

	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	dataDir := flag.String("data", config.OutDir(), "generated dataset directory")
	dbPath := flag.String("db", ":memory:", "SQLite path (\":memory:\" keeps nothing on disk)")
	flag.Parse()

	// Load the generated flat files
	ds, err := output.ReadDataset(*dataDir)
	if err != nil {
		log.Fatalf("Failed to load dataset from %s: %v", *dataDir, err)
	}

	// Fill the store
	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer store.Close()

	if err := store.LoadDataset(context.Background(), ds); err != nil {
		log.Fatalf("Failed to load dataset into store: %v", err)
	}
	log.Printf("Loaded %d employees, %d shifts, %d timecards from %s",
		len(ds.Employees), len(ds.Shifts), len(ds.Timecards), *dataDir)

	// Create router
	handler := api.NewHandler(store)
	router := api.NewRouter(handler)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Preview server on http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
