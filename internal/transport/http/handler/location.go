package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-notify-relay/internal/application/location"
	"github.com/go-notify-relay/internal/domain"
	"github.com/go-notify-relay/internal/pkg/validate"
)

// LocationHandler handles the location/geofence ingest endpoint.
type LocationHandler struct {
	svc location.Service
}

func NewLocationHandler(svc location.Service) *LocationHandler { return &LocationHandler{svc: svc} }

// Receive ingests one location update. Ingestion is fire-and-forget: the
// tracking client always gets `200 []`, whatever happens inside. Malformed
// bodies are logged and dropped.
func (h *LocationHandler) Receive(w http.ResponseWriter, r *http.Request) {
	defer writeJSON(w, http.StatusOK, []interface{}{})

	var upd domain.LocationUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		log.Printf("location ingest error: %v", err)
		return
	}
	if err := validate.Struct(upd); err != nil {
		log.Printf("location ingest error: %v", err)
		return
	}

	h.svc.HandleUpdate(r.Context(), upd)
}
