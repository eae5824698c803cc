package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bloomafter40/platform/internal/entity"
	"github.com/bloomafter40/platform/internal/infra/http/middleware"
)

type JournalHandler struct {
	journal entity.JournalRepositoryInterface
}

func NewJournalHandler(journal entity.JournalRepositoryInterface) *JournalHandler {
	return &JournalHandler{journal: journal}
}

type journalRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Mood    string `json:"mood,omitempty"`
}

func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req journalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid journal data")
		return
	}

	entry, err := entity.NewJournalEntry(middleware.UserID(r.Context()), req.Title, req.Content, req.Mood)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.journal.Create(r.Context(), entry); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save journal entry")
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.journal.FindByUserID(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch journal entries")
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

func (h *JournalHandler) Update(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.ownedEntry(w, r)
	if !ok {
		return
	}

	var req journalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid journal data")
		return
	}

	entry.Title = req.Title
	entry.Content = req.Content
	entry.Mood = req.Mood

	if err := h.journal.Update(r.Context(), entry); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update journal entry")
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.ownedEntry(w, r)
	if !ok {
		return
	}

	if err := h.journal.Delete(r.Context(), entry.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete journal entry")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// ownedEntry loads the entry and enforces ownership. Someone else's entry
// answers 404, not 403, so ids do not leak.
func (h *JournalHandler) ownedEntry(w http.ResponseWriter, r *http.Request) (*entity.JournalEntry, bool) {
	entry, err := h.journal.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil || entry.UserID != middleware.UserID(r.Context()) {
		writeError(w, http.StatusNotFound, "Journal entry not found")
		return nil, false
	}
	return entry, true
}
