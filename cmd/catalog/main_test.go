package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/meur/gamevault/internal/catalog"
	"github.com/meur/gamevault/internal/loader"
	"github.com/meur/gamevault/internal/render"
)

func TestShowMessagesGoThroughRenderer(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		payload string
		want    string
	}{
		{"load failure", http.StatusBadGateway, `{"error":"down"}`, catalog.MsgLoadFailed},
		{"unknown id", http.StatusOK, `[{"id":"1","title":"Zelda","createdAt":"2024-01-01T00:00:00Z"}]`, render.MsgNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.payload))
			}))
			defer srv.Close()

			var buf bytes.Buffer
			out := render.New(&buf, language.English)
			if err := show(context.Background(), loader.New(srv.URL, time.Second), out, []string{"missing"}); err != nil {
				t.Fatalf("show: %v", err)
			}
			if got := strings.TrimSpace(buf.String()); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHelpListsEveryOrder(t *testing.T) {
	for _, o := range []string{"random", "newest", "oldest", "alphabetical", "likes"} {
		if !strings.Contains(help, o) {
			t.Errorf("help text is missing order %q", o)
		}
	}
}
