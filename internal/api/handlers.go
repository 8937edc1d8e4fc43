package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pharmadev/apollo-composition-scraper/internal/scraper"
)

type Handlers struct {
	scraper scraper.Scraper
	logger  *slog.Logger
}

func NewHandlers(s scraper.Scraper, logger *slog.Logger) *Handlers {
	return &Handlers{
		scraper: s,
		logger:  logger,
	}
}

// SearchDrug handles GET /search?drug-name=<text>. A drug with no match on
// the site is still a 200 with an empty composition; only scrape failures
// become a 500, with the detail kept server-side.
func (h *Handlers) SearchDrug(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("drug-name"))
	if name == "" {
		h.respondError(w, http.StatusBadRequest, "Please provide 'drug-name' parameter")
		return
	}

	result, err := h.scraper.Scrape(r.Context(), name)
	if err != nil {
		h.logger.Error("scrape failed", "drug_name", name, "error", err)
		h.respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// Health handles GET /health.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handlers) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
