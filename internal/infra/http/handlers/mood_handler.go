package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bloomafter40/platform/internal/entity"
	"github.com/bloomafter40/platform/internal/infra/http/middleware"
)

type MoodHandler struct {
	moods entity.MoodRepositoryInterface
}

func NewMoodHandler(moods entity.MoodRepositoryInterface) *MoodHandler {
	return &MoodHandler{moods: moods}
}

type moodRequest struct {
	Mood   int    `json:"mood"`
	Energy int    `json:"energy"`
	Notes  string `json:"notes,omitempty"`
}

func (h *MoodHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req moodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid mood data")
		return
	}

	entry, err := entity.NewMoodEntry(middleware.UserID(r.Context()), req.Mood, req.Energy, req.Notes)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.moods.Create(r.Context(), entry); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save mood entry")
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

func (h *MoodHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.moods.FindByUserID(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch mood entries")
		return
	}

	writeJSON(w, http.StatusOK, entries)
}
