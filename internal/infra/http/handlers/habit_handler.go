package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bloomafter40/platform/internal/entity"
	"github.com/bloomafter40/platform/internal/infra/http/middleware"
)

type HabitHandler struct {
	habits entity.HabitRepositoryInterface
}

func NewHabitHandler(habits entity.HabitRepositoryInterface) *HabitHandler {
	return &HabitHandler{habits: habits}
}

type habitRequest struct {
	Name      string `json:"name"`
	Frequency string `json:"frequency,omitempty"`
}

func (h *HabitHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req habitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		writeError(w, http.StatusBadRequest, "Invalid habit data")
		return
	}

	habit := entity.NewHabit(middleware.UserID(r.Context()), req.Name, req.Frequency)

	if err := h.habits.Create(r.Context(), habit); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save habit")
		return
	}

	writeJSON(w, http.StatusCreated, habit)
}

func (h *HabitHandler) List(w http.ResponseWriter, r *http.Request) {
	habits, err := h.habits.FindByUserID(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch habits")
		return
	}

	writeJSON(w, http.StatusOK, habits)
}

// CheckIn marks a habit done for the day and advances the streak. A gap of
// more than one period resets the streak to one.
func (h *HabitHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	habit, err := h.habits.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil || habit.UserID != middleware.UserID(r.Context()) {
		writeError(w, http.StatusNotFound, "Habit not found")
		return
	}

	now := time.Now()
	period := 24 * time.Hour
	if habit.Frequency == "weekly" {
		period = 7 * 24 * time.Hour
	}

	switch {
	case habit.LastCompletedAt == nil:
		habit.Streak = 1
	case now.Sub(*habit.LastCompletedAt) <= 2*period:
		habit.Streak++
	default:
		habit.Streak = 1
	}
	habit.LastCompletedAt = &now

	if err := h.habits.Update(r.Context(), habit); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update habit")
		return
	}

	writeJSON(w, http.StatusOK, habit)
}

func (h *HabitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	habit, err := h.habits.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil || habit.UserID != middleware.UserID(r.Context()) {
		writeError(w, http.StatusNotFound, "Habit not found")
		return
	}

	if err := h.habits.Delete(r.Context(), habit.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete habit")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
