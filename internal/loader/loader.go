// Package loader retrieves the catalog from the item endpoint.
package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/meur/gamevault/internal/models"
)

// ItemsPath is the endpoint returning the full item list
const ItemsPath = "/api/game/get"

// ErrNotFound is returned when an id is not in the fetched list
var ErrNotFound = errors.New("item not found")

// Client fetches items from a catalog server
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the server at baseURL
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Items retrieves the whole catalog in one request. It never retries.
func (c *Client) Items(ctx context.Context) ([]models.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+ItemsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("loader: GET %s: %v", ItemsPath, err)
		return nil, fmt.Errorf("fetch items: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("loader: GET %s: status %d", ItemsPath, resp.StatusCode)
		return nil, fmt.Errorf("fetch items: unexpected status %d", resp.StatusCode)
	}

	var items []models.Item
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		log.Printf("loader: decode %s: %v", ItemsPath, err)
		return nil, fmt.Errorf("decode items: %w", err)
	}
	return items, nil
}

// Item re-fetches the catalog and returns the entry with the given id
func (c *Client) Item(ctx context.Context, id string) (*models.Item, error) {
	items, err := c.Items(ctx)
	if err != nil {
		return nil, err
	}
	return Find(items, id)
}

// Find looks id up in an already fetched list
func Find(items []models.Item, id string) (*models.Item, error) {
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}
