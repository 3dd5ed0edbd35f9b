package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/meur/gamevault/internal/models"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func strPtr(s string) *string { return &s }

func TestCreateAndGetItem(t *testing.T) {
	s := newStore(t)
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	in := &models.Item{
		ID:               "g1",
		Title:            "Zelda",
		Description:      "Adventure",
		Images:           []string{"a.png", "b.png"},
		Likes:            7,
		CreatedAt:        created,
		BasicInformation: []string{"Size: 2GB"},
		Details:          []string{"RPG"},
		LinkWindows:      strPtr("https://example.com/z.exe"),
	}
	if err := s.BulkCreateItems([]models.Item{*in}); err != nil {
		t.Fatalf("BulkCreateItems: %v", err)
	}

	got, err := s.GetItem("g1")
	if err != nil || got == nil {
		t.Fatalf("GetItem = %v, %v", got, err)
	}
	if got.Title != "Zelda" || got.Likes != 7 || len(got.Images) != 2 {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("createdAt = %v, want %v", got.CreatedAt, created)
	}
	if got.LinkWindows == nil || *got.LinkWindows != "https://example.com/z.exe" || got.LinkMac != nil {
		t.Errorf("links = %v / %v", got.LinkWindows, got.LinkMac)
	}
	if len(got.Details) != 1 || got.Details[0] != "RPG" {
		t.Errorf("details = %v", got.Details)
	}
}

func TestGetItemMissing(t *testing.T) {
	s := newStore(t)
	got, err := s.GetItem("nope")
	if err != nil || got != nil {
		t.Errorf("GetItem = %v, %v", got, err)
	}
}

func TestBulkCreateItemsValidation(t *testing.T) {
	s := newStore(t)
	tests := []struct {
		name string
		item models.Item
	}{
		{"missing id", models.Item{Title: "x"}},
		{"missing title", models.Item{ID: "x"}},
		{"negative likes", models.Item{ID: "x", Title: "x", Likes: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := s.BulkCreateItems([]models.Item{{ID: "ok", Title: "ok"}, tt.item}); err == nil {
				t.Error("expected error")
			}
			if got, _ := s.GetItem("ok"); got != nil {
				t.Error("batch with an invalid item was partly committed")
			}
		})
	}
}

func TestGetItemsEmpty(t *testing.T) {
	s := newStore(t)
	items, err := s.GetItems()
	if err != nil {
		t.Fatalf("GetItems: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("want empty non-nil list, got %v", items)
	}
}

func TestBulkCreateAndUpdateLinks(t *testing.T) {
	s := newStore(t)
	items := []models.Item{
		{ID: "a", Title: "A", Images: []string{}},
		{ID: "b", Title: "B", LinkMac: strPtr("https://m/b")},
	}
	if err := s.BulkCreateItems(items); err != nil {
		t.Fatalf("BulkCreateItems: %v", err)
	}
	all, err := s.GetItems()
	if err != nil || len(all) != 2 {
		t.Fatalf("GetItems = %d, %v", len(all), err)
	}

	ok, err := s.UpdateLinks("b", &models.LinkUpdate{LinkMac: strPtr(""), LinkIOS: strPtr("https://i/b")})
	if err != nil || !ok {
		t.Fatalf("UpdateLinks = %v, %v", ok, err)
	}
	b, _ := s.GetItem("b")
	if b.LinkMac != nil || b.LinkIOS == nil || *b.LinkIOS != "https://i/b" {
		t.Errorf("links after update: mac=%v ios=%v", b.LinkMac, b.LinkIOS)
	}

	ok, err = s.UpdateLinks("missing", &models.LinkUpdate{LinkMac: strPtr("x")})
	if err != nil || ok {
		t.Errorf("update of missing item = %v, %v", ok, err)
	}
}
