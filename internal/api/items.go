package api

import (
	"log"
	"net/http"
)

// handleGetItems returns every item as a flat array. Query parameters
// are ignored.
func (s *Server) handleGetItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.GetItems()
	if err != nil {
		log.Printf("api: get items: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch items")
		return
	}
	respondJSON(w, http.StatusOK, items)
}
