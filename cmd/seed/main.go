package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
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
	seedPath := flag.String("items", "./seeds/games.json", "Items JSON file")
	dryRun := flag.Bool("dry-run", false, "Validate the seed file without writing")
	flag.Parse()

	data, err := os.ReadFile(*seedPath)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}

	var items []models.Item
	if err := json.Unmarshal(data, &items); err != nil {
		log.Fatalf("Failed to parse seed file: %v", err)
	}

	store, err := storage.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	items, created, updated, skipped := prepare(store, items)

	if *dryRun {
		log.Printf("Dry run: would import %d items (created %d, updated %d, skipped %d)",
			len(items), created, updated, skipped)
		return
	}

	if err := store.BulkCreateItems(items); err != nil {
		log.Fatalf("Failed to import items: %v", err)
	}

	fmt.Printf("✓ Imported %d items (created %d, updated %d, skipped %d)\n", len(items), created, updated, skipped)
}

// prepare assigns ids to new entries and drops the ones that cannot be stored
func prepare(store *storage.Store, in []models.Item) (items []models.Item, created, updated, skipped int) {
	seen := make(map[string]bool, len(in))
	for _, item := range in {
		item.Title = strings.TrimSpace(item.Title)
		if item.Title == "" || item.Likes < 0 {
			log.Printf("Warning: skipping entry %q: needs a title and non-negative likes", item.ID)
			skipped++
			continue
		}
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		if seen[item.ID] {
			log.Printf("Warning: duplicate id %s in seed file", item.ID)
			skipped++
			continue
		}
		seen[item.ID] = true

		existing, err := store.GetItem(item.ID)
		if err != nil {
			log.Fatalf("Failed to read existing item %s: %v", item.ID, err)
		}
		if existing != nil {
			updated++
		} else {
			created++
		}
		items = append(items, item)
	}
	return items, created, updated, skipped
}
