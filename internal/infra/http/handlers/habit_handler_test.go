package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/bloomafter40/platform/internal/entity"
	"github.com/bloomafter40/platform/internal/infra/http/middleware"
)

type stubHabitRepo struct {
	byID map[string]*entity.Habit
}

func newStubHabitRepo(habits ...*entity.Habit) *stubHabitRepo {
	r := &stubHabitRepo{byID: make(map[string]*entity.Habit)}
	for _, h := range habits {
		r.byID[h.ID] = h
	}
	return r
}

func (r *stubHabitRepo) Create(_ context.Context, habit *entity.Habit) error {
	r.byID[habit.ID] = habit
	return nil
}

func (r *stubHabitRepo) FindByUserID(_ context.Context, userID string) ([]*entity.Habit, error) {
	var out []*entity.Habit
	for _, h := range r.byID {
		if h.UserID == userID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *stubHabitRepo) FindByID(_ context.Context, id string) (*entity.Habit, error) {
	h, ok := r.byID[id]
	if !ok {
		return nil, errors.New("row not found")
	}
	return h, nil
}

func (r *stubHabitRepo) Update(_ context.Context, habit *entity.Habit) error {
	r.byID[habit.ID] = habit
	return nil
}

func (r *stubHabitRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func habitRouter(repo entity.HabitRepositoryInterface, userID string) http.Handler {
	handler := NewHabitHandler(repo)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(middleware.WithUserID(req.Context(), userID)))
		})
	})
	r.Post("/api/habits", handler.Create)
	r.Get("/api/habits", handler.List)
	r.Post("/api/habits/{id}/checkin", handler.CheckIn)
	r.Delete("/api/habits/{id}", handler.Delete)
	return r
}

func TestHabitCheckInStartsStreak(t *testing.T) {
	habit := entity.NewHabit("user-1", "Evening walk", "daily")
	router := habitRouter(newStubHabitRepo(habit), "user-1")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/habits/"+habit.ID+"/checkin", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var updated entity.Habit
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, 1, updated.Streak)
	assert.NotNil(t, updated.LastCompletedAt)
}

func TestHabitCheckInExtendsStreakWithinPeriod(t *testing.T) {
	yesterday := time.Now().Add(-24 * time.Hour)
	habit := entity.NewHabit("user-1", "Evening walk", "daily")
	habit.Streak = 4
	habit.LastCompletedAt = &yesterday

	router := habitRouter(newStubHabitRepo(habit), "user-1")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/habits/"+habit.ID+"/checkin", nil))

	var updated entity.Habit
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, 5, updated.Streak)
}

func TestHabitCheckInResetsStreakAfterGap(t *testing.T) {
	lastWeek := time.Now().Add(-5 * 24 * time.Hour)
	habit := entity.NewHabit("user-1", "Evening walk", "daily")
	habit.Streak = 12
	habit.LastCompletedAt = &lastWeek

	router := habitRouter(newStubHabitRepo(habit), "user-1")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/habits/"+habit.ID+"/checkin", nil))

	var updated entity.Habit
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, 1, updated.Streak)
}

func TestHabitCheckInWeeklyUsesLongerPeriod(t *testing.T) {
	// Five days ago breaks a daily streak but keeps a weekly one.
	fiveDaysAgo := time.Now().Add(-5 * 24 * time.Hour)
	habit := entity.NewHabit("user-1", "Sunday meal prep", "weekly")
	habit.Streak = 3
	habit.LastCompletedAt = &fiveDaysAgo

	router := habitRouter(newStubHabitRepo(habit), "user-1")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/habits/"+habit.ID+"/checkin", nil))

	var updated entity.Habit
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, 4, updated.Streak)
}

func TestHabitCheckInHidesOtherUsersHabits(t *testing.T) {
	habit := entity.NewHabit("user-2", "Evening walk", "daily")
	router := habitRouter(newStubHabitRepo(habit), "user-1")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/habits/"+habit.ID+"/checkin", nil))

	// Someone else's row answers like a missing one.
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHabitCreateDefaultsToDaily(t *testing.T) {
	repo := newStubHabitRepo()
	router := habitRouter(repo, "user-1")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/habits", strings.NewReader(`{"name":"Evening walk"}`)))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var created entity.Habit
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "daily", created.Frequency)
	assert.Equal(t, "user-1", created.UserID)
}
