package journal

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"animal-zoo/internal/domain/zoo"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, zooSvc *zoo.Service) {
	r.Route("/residents/{residentID}/journal", func(jr chi.Router) {
		jr.Get("/", listEntriesHandler(svc, zooSvc))
	})
}

// entryResponse representa una entrada del diario de un residente.
type entryResponse struct {
	ID         string    `json:"id"`
	ResidentID string    `json:"resident_id"`
	Action     string    `json:"action"`
	Message    string    `json:"message"`
	RecordedAt time.Time `json:"recorded_at"`
}

// listEntriesHandler godoc
// @Summary Diario de un residente
// @Description Lista lo que le pasó al residente, más reciente primero.
// @Tags journal
// @Produce json
// @Param residentID path string true "ID del residente"
// @Param limit query int false "Máximo de entradas (1-200). Por defecto 50"
// @Param actions query string false "Lista CSV de acciones a incluir (ej: admitted,learn_trick)"
// @Success 200 {array} entryResponse
// @Failure 404 {string} string "resident not found"
// @Failure 500 {string} string "internal error"
// @Router /residents/{residentID}/journal [get]
func listEntriesHandler(svc *Service, zooSvc *zoo.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		residentID := chi.URLParam(r, "residentID")
		if _, err := zooSvc.GetByID(r.Context(), residentID); err != nil {
			http.Error(w, "resident not found", http.StatusNotFound)
			return
		}

		items, err := svc.ListByResident(r.Context(), residentID, parseListFilter(r))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]entryResponse, 0, len(items))
		for _, e := range items {
			out = append(out, entryResponse{
				ID:         e.ID,
				ResidentID: e.ResidentID,
				Action:     e.Action,
				Message:    e.Message,
				RecordedAt: e.RecordedAt,
			})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func parseListFilter(r *http.Request) ListFilter {
	limit := DefaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	filter := ListFilter{Limit: limit}

	// actions=admitted,learn_trick
	if v := strings.TrimSpace(r.URL.Query().Get("actions")); v != "" {
		for _, p := range strings.Split(v, ",") {
			if a := strings.TrimSpace(p); a != "" {
				filter.Actions = append(filter.Actions, a)
			}
		}
	}

	return filter
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos (zoo/journal).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
