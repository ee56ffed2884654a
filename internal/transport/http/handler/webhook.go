package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-notify-relay/internal/application/linebot"
	"github.com/go-notify-relay/internal/domain"
)

// WebhookHandler handles the LINE platform webhook endpoint.
type WebhookHandler struct {
	svc linebot.Service
}

func NewWebhookHandler(svc linebot.Service) *WebhookHandler { return &WebhookHandler{svc: svc} }

// Receive processes a webhook event batch. The response is the per-event
// result array, index-aligned with the batch; skipped events are null. Any
// processing failure fails the whole batch with a 500.
func (h *WebhookHandler) Receive(w http.ResponseWriter, r *http.Request) {
	var req domain.LineWebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	results, err := h.svc.HandleEvents(r.Context(), req.Events)
	if err != nil {
		log.Printf("webhook batch error: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, results)
}
