package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/meur/gamevault/internal/config"
	"github.com/meur/gamevault/internal/models"
	"github.com/meur/gamevault/internal/storage"
)

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dbPath := flag.String("db", cfg.DBPath, "SQLite database path")
	linksPath := flag.String("links", "data/links.json", "Links JSON path, keyed by item id")
	flag.Parse()

	data, err := os.ReadFile(*linksPath)
	if err != nil {
		log.Fatalf("Failed to read links: %v", err)
	}

	var links map[string]models.LinkUpdate
	if err := json.Unmarshal(data, &links); err != nil {
		log.Fatalf("Failed to parse links: %v", err)
	}

	fmt.Printf("Loaded %d link updates\n", len(links))

	store, err := storage.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	updated := 0
	notFound := 0

	for id, update := range links {
		ok, err := store.UpdateLinks(id, &update)
		if err != nil {
			log.Printf("Failed to update %s: %v", id, err)
			continue
		}
		if !ok {
			notFound++
			continue
		}
		updated++
	}

	fmt.Printf("Updated: %d items\n", updated)
	fmt.Printf("Not found: %d items\n", notFound)
}
