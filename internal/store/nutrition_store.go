package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/blaisecz/wellness-tracker/internal/domain"
	"github.com/blaisecz/wellness-tracker/internal/service"
	"github.com/blaisecz/wellness-tracker/internal/stats"
)

type NutritionStore struct {
	svc    service.NutritionService
	userID uuid.UUID
	goal   domain.NutritionGoal
	now    func() time.Time

	records []domain.NutritionRecord
	loading bool
	lastErr string

	daily domain.DailyNutritionSummary
}

func NewNutritionStore(svc service.NutritionService, userID uuid.UUID, goal domain.NutritionGoal) *NutritionStore {
	return &NutritionStore{
		svc:    svc,
		userID: userID,
		goal:   goal,
		now:    time.Now,
	}
}

// Load refreshes today's records from the backend. A failed load keeps
// the previous collection and records the error message.
func (s *NutritionStore) Load(ctx context.Context) {
	s.loading = true
	s.lastErr = ""
	defer func() { s.loading = false }()

	records, err := s.svc.Records(ctx, s.now())
	if err != nil {
		s.lastErr = err.Error()
		return
	}
	s.records = records
	s.recompute()
}

func (s *NutritionStore) Create(ctx context.Context, req *domain.CreateNutritionRecordRequest) (*domain.NutritionRecord, error) {
	s.loading = true
	s.lastErr = ""
	defer func() { s.loading = false }()

	record, err := s.svc.Create(ctx, s.userID, req)
	if err != nil {
		s.lastErr = err.Error()
		return nil, fmt.Errorf("create nutrition record: %w", err)
	}
	s.records = append(s.records, *record)
	s.recompute()
	return record, nil
}

func (s *NutritionStore) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateNutritionRecordRequest) (*domain.NutritionRecord, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("nutrition record %s: %w", id, domain.ErrNotFound)
	}

	s.loading = true
	s.lastErr = ""
	defer func() { s.loading = false }()

	record, err := s.svc.Update(ctx, id, req)
	if err != nil {
		s.lastErr = err.Error()
		return nil, fmt.Errorf("update nutrition record: %w", err)
	}
	s.records[idx] = *record
	s.recompute()
	return record, nil
}

// Delete is idempotent: an id absent from the collection is a no-op.
func (s *NutritionStore) Delete(ctx context.Context, id uuid.UUID) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}

	s.loading = true
	s.lastErr = ""
	defer func() { s.loading = false }()

	if err := s.svc.Delete(ctx, id); err != nil {
		s.lastErr = err.Error()
		return fmt.Errorf("delete nutrition record: %w", err)
	}
	s.records = append(s.records[:idx], s.records[idx+1:]...)
	s.recompute()
	return nil
}

func (s *NutritionStore) Records() []domain.NutritionRecord { return s.records }

func (s *NutritionStore) Loading() bool { return s.loading }

func (s *NutritionStore) LastError() string { return s.lastErr }

func (s *NutritionStore) Goal() domain.NutritionGoal { return s.goal }

// DailySummary is today's intake scored against the daily goals.
func (s *NutritionStore) DailySummary() domain.DailyNutritionSummary { return s.daily }

// RecordsByMealType filters the collection for one meal.
func (s *NutritionStore) RecordsByMealType(mealType domain.MealType) []domain.NutritionRecord {
	return stats.RecordsByMealType(s.records, mealType)
}

// RecentRecords returns the limit most recently created records.
func (s *NutritionStore) RecentRecords(limit int) []domain.NutritionRecord {
	return stats.RecentNutritionRecords(s.records, limit)
}

func (s *NutritionStore) recompute() {
	s.daily = stats.DailyNutrition(s.records, stats.Midnight(s.now()), s.goal)
}

func (s *NutritionStore) indexOf(id uuid.UUID) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}
