package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/meur/gamevault/internal/models"
)

// Store handles all database operations
type Store struct {
	db *sql.DB
}

// New creates a new Store with SQLite
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate runs database migrations
func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			images TEXT NOT NULL DEFAULT '[]',
			likes INTEGER NOT NULL DEFAULT 0 CHECK (likes >= 0),
			basic_information TEXT,
			details TEXT,
			link_android TEXT,
			link_windows TEXT,
			link_mac TEXT,
			link_ios TEXT,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_games_created ON games(created_at)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

const itemColumns = `id, title, description, images, likes, basic_information, details,
	link_android, link_windows, link_mac, link_ios, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(row scanner) (*models.Item, error) {
	var item models.Item
	var images string
	var basicInfo, details sql.NullString
	var android, windows, mac, ios sql.NullString

	err := row.Scan(&item.ID, &item.Title, &item.Description, &images, &item.Likes,
		&basicInfo, &details, &android, &windows, &mac, &ios, &item.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(images), &item.Images); err != nil {
		return nil, fmt.Errorf("item %s: bad images: %w", item.ID, err)
	}
	if basicInfo.Valid {
		if err := json.Unmarshal([]byte(basicInfo.String), &item.BasicInformation); err != nil {
			return nil, fmt.Errorf("item %s: bad basic information: %w", item.ID, err)
		}
	}
	if details.Valid {
		if err := json.Unmarshal([]byte(details.String), &item.Details); err != nil {
			return nil, fmt.Errorf("item %s: bad details: %w", item.ID, err)
		}
	}
	item.LinkAndroid = nullToPtr(android)
	item.LinkWindows = nullToPtr(windows)
	item.LinkMac = nullToPtr(mac)
	item.LinkIOS = nullToPtr(ios)
	return &item, nil
}

func nullToPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func ptrToNull(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

// jsonList encodes an optional list; nil stays NULL
func jsonList(list []string) (sql.NullString, error) {
	if list == nil {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(list)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

func itemArgs(item *models.Item) ([]any, error) {
	images := item.Images
	if images == nil {
		images = []string{}
	}
	imagesJSON, err := json.Marshal(images)
	if err != nil {
		return nil, err
	}
	basicInfo, err := jsonList(item.BasicInformation)
	if err != nil {
		return nil, err
	}
	details, err := jsonList(item.Details)
	if err != nil {
		return nil, err
	}
	createdAt := item.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	return []any{item.ID, item.Title, item.Description, string(imagesJSON), item.Likes,
		basicInfo, details,
		ptrToNull(item.LinkAndroid), ptrToNull(item.LinkWindows),
		ptrToNull(item.LinkMac), ptrToNull(item.LinkIOS), createdAt}, nil
}

// --- Items ---

// GetItems returns every item. Order is not part of the contract;
// consumers sort on their side.
func (s *Store) GetItems() ([]models.Item, error) {
	rows, err := s.db.Query(`SELECT ` + itemColumns + ` FROM games ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// GetItem returns an item by ID, or nil when it does not exist
func (s *Store) GetItem(id string) (*models.Item, error) {
	item, err := scanItem(s.db.QueryRow(`SELECT `+itemColumns+` FROM games WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// BulkCreateItems inserts or replaces multiple items in a transaction
func (s *Store) BulkCreateItems(items []models.Item) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO games (` + itemColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := range items {
		if err := validate(&items[i]); err != nil {
			return err
		}
		args, err := itemArgs(&items[i])
		if err != nil {
			return err
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("insert %s: %w", items[i].ID, err)
		}
	}

	return tx.Commit()
}

// UpdateLinks patches the download links of an item. It reports false
// when the item does not exist.
func (s *Store) UpdateLinks(id string, update *models.LinkUpdate) (bool, error) {
	// Build dynamic update query
	var sets []string
	var args []any

	add := func(column string, v *string) {
		if v == nil {
			return
		}
		sets = append(sets, column+" = ?")
		if strings.TrimSpace(*v) == "" {
			args = append(args, nil)
		} else {
			args = append(args, *v)
		}
	}
	add("link_android", update.LinkAndroid)
	add("link_windows", update.LinkWindows)
	add("link_mac", update.LinkMac)
	add("link_ios", update.LinkIOS)

	if len(sets) == 0 {
		item, err := s.GetItem(id)
		return item != nil, err
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE games SET %s WHERE id = ?", strings.Join(sets, ", "))

	res, err := s.db.Exec(query, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func validate(item *models.Item) error {
	if item.ID == "" {
		return fmt.Errorf("item id is required")
	}
	if item.Title == "" {
		return fmt.Errorf("item %s: title is required", item.ID)
	}
	if item.Likes < 0 {
		return fmt.Errorf("item %s: likes must not be negative", item.ID)
	}
	return nil
}
