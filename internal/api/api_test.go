package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/meur/gamevault/internal/models"
)

type fakeStore struct {
	items []models.Item
	err   error
}

func (f *fakeStore) GetItems() ([]models.Item, error) { return f.items, f.err }

func TestGetItems(t *testing.T) {
	store := &fakeStore{items: []models.Item{{ID: "1", Title: "Zelda"}, {ID: "2", Title: "Mario"}}}
	srv := New(store, Options{})

	tests := []struct {
		name string
		path string
	}{
		{"plain", "/api/game/get"},
		{"query ignored", "/api/game/get?order=likes&page=2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			srv.ServeHTTP(rr, httptest.NewRequest("GET", tt.path, nil))

			if rr.Code != http.StatusOK {
				t.Fatalf("status = %d", rr.Code)
			}
			var got []models.Item
			if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(got) != 2 || got[0].ID != "1" {
				t.Errorf("items = %+v", got)
			}
		})
	}
}

func TestGetItemsStoreError(t *testing.T) {
	srv := New(&fakeStore{err: errors.New("disk gone")}, Options{})
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest("GET", "/api/game/get", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"error"`) {
		t.Errorf("body = %s", rr.Body.String())
	}
}

func TestDonatePage(t *testing.T) {
	srv := New(&fakeStore{}, Options{})
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest("GET", "/donate/binance", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `src="/images/binance-qr.png"`) || !strings.Contains(body, "<li>Confirm the transaction.</li>") {
		t.Errorf("body = %s", body)
	}
}

func TestStaticImages(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "binance-qr.png"), []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	srv := New(&fakeStore{}, Options{StaticDir: dir})

	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest("GET", "/images/binance-qr.png", nil))
	if rr.Code != http.StatusOK || rr.Body.String() != "png" {
		t.Errorf("status = %d, body = %q", rr.Code, rr.Body.String())
	}
}

func TestHealth(t *testing.T) {
	srv := New(&fakeStore{}, Options{})
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest("GET", "/health", nil))
	if rr.Code != http.StatusOK || rr.Body.String() != "OK" {
		t.Errorf("status = %d, body = %q", rr.Code, rr.Body.String())
	}
}
