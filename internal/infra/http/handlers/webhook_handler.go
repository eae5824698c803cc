package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/bloomafter40/platform/internal/entity"
	"github.com/bloomafter40/platform/internal/usecase"
)

type WebhookHandler struct {
	trackConversion *usecase.TrackConversionUseCase
}

func NewWebhookHandler(trackConversion *usecase.TrackConversionUseCase) *WebhookHandler {
	return &WebhookHandler{trackConversion: trackConversion}
}

// Handle maps payment_intent.succeeded onto a coaching_purchased conversion
// for the lead carried in the intent metadata. Every other event type is
// acknowledged and ignored.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var event struct {
		Type string `json:"type"`
		Data struct {
			Object struct {
				ID       string            `json:"id"`
				Amount   int64             `json:"amount"`
				Metadata map[string]string `json:"metadata"`
			} `json:"object"`
		} `json:"data"`
	}

	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if event.Type != "payment_intent.succeeded" {
		writeJSON(w, http.StatusOK, map[string]bool{"received": true})
		return
	}

	leadID := event.Data.Object.Metadata["lead_id"]
	if leadID == "" {
		// A purchase outside the funnel (no lead attached) is fine; there
		// is just nothing to convert.
		log.Printf("💳 payment %s succeeded with no lead attribution", event.Data.Object.ID)
		writeJSON(w, http.StatusOK, map[string]bool{"received": true})
		return
	}

	value := float64(event.Data.Object.Amount) / 100.0
	err := h.trackConversion.Execute(r.Context(), usecase.TrackConversionInput{
		LeadID:    leadID,
		EventType: entity.EventTypeCoachingPurchased,
		Value:     &value,
	})
	if err != nil {
		// 500 so the processor retries the webhook later.
		log.Printf("❌ webhook conversion failed for lead %s: %v", leadID, err)
		writeError(w, http.StatusInternalServerError, "Failed to record conversion")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"received": true})
}
