package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/meur/gamevault/internal/api"
	"github.com/meur/gamevault/internal/config"
	"github.com/meur/gamevault/internal/storage"
)

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Parse flags
	port := flag.String("port", cfg.Port, "Server port")
	dbPath := flag.String("db", cfg.DBPath, "SQLite database path")
	staticDir := flag.String("static", cfg.StaticDir, "Directory served under /images")
	flag.Parse()

	// Initialize storage
	store, err := storage.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	// Create router
	r := api.New(store, api.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		StaticDir:      *staticDir,
	})

	log.Printf("GameVault API starting on http://localhost:%s", *port)
	log.Printf("Database: %s", *dbPath)

	if err := http.ListenAndServe(":"+*port, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
