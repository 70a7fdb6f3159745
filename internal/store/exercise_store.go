package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/blaisecz/wellness-tracker/internal/domain"
	"github.com/blaisecz/wellness-tracker/internal/recommend"
	"github.com/blaisecz/wellness-tracker/internal/service"
	"github.com/blaisecz/wellness-tracker/internal/stats"
)

type ExerciseStore struct {
	svc    service.ExerciseService
	userID uuid.UUID
	now    func() time.Time

	records []domain.Exercise
	plans   []domain.ExercisePlan
	loading bool
	lastErr string

	weekly       domain.WeeklyExerciseStats
	todaySummary domain.TodayExerciseSummary
}

func NewExerciseStore(svc service.ExerciseService, userID uuid.UUID) *ExerciseStore {
	return &ExerciseStore{
		svc:    svc,
		userID: userID,
		now:    time.Now,
	}
}

// Load refreshes records and plans from the backend. A failed fetch
// keeps the previous data and records the error message.
func (s *ExerciseStore) Load(ctx context.Context) {
	s.loading = true
	s.lastErr = ""
	defer func() { s.loading = false }()

	records, err := s.svc.List(ctx, time.Time{}, time.Time{})
	if err != nil {
		s.lastErr = err.Error()
	} else {
		s.records = records
	}

	plans, err := s.svc.Plans(ctx)
	if err != nil {
		s.lastErr = err.Error()
	} else {
		s.plans = plans
	}

	s.recompute()
}

func (s *ExerciseStore) Create(ctx context.Context, req *domain.CreateExerciseRequest) (*domain.Exercise, error) {
	s.loading = true
	s.lastErr = ""
	defer func() { s.loading = false }()

	record, err := s.svc.Create(ctx, s.userID, req)
	if err != nil {
		s.lastErr = err.Error()
		return nil, fmt.Errorf("create exercise: %w", err)
	}
	s.records = append(s.records, *record)
	s.recompute()
	return record, nil
}

func (s *ExerciseStore) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateExerciseRequest) (*domain.Exercise, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("exercise %s: %w", id, domain.ErrNotFound)
	}

	s.loading = true
	s.lastErr = ""
	defer func() { s.loading = false }()

	record, err := s.svc.Update(ctx, id, req)
	if err != nil {
		s.lastErr = err.Error()
		return nil, fmt.Errorf("update exercise: %w", err)
	}
	s.records[idx] = *record
	s.recompute()
	return record, nil
}

// Delete is idempotent: an id absent from the collection is a no-op.
func (s *ExerciseStore) Delete(ctx context.Context, id uuid.UUID) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}

	s.loading = true
	s.lastErr = ""
	defer func() { s.loading = false }()

	if err := s.svc.Delete(ctx, id); err != nil {
		s.lastErr = err.Error()
		return fmt.Errorf("delete exercise: %w", err)
	}
	s.records = append(s.records[:idx], s.records[idx+1:]...)
	s.recompute()
	return nil
}

func (s *ExerciseStore) CreatePlan(ctx context.Context, req *domain.CreateExercisePlanRequest) (*domain.ExercisePlan, error) {
	s.loading = true
	s.lastErr = ""
	defer func() { s.loading = false }()

	plan, err := s.svc.CreatePlan(ctx, s.userID, req)
	if err != nil {
		s.lastErr = err.Error()
		return nil, fmt.Errorf("create exercise plan: %w", err)
	}
	s.plans = append(s.plans, *plan)
	s.recompute()
	return plan, nil
}

func (s *ExerciseStore) UpdatePlan(ctx context.Context, id uuid.UUID, req *domain.CreateExercisePlanRequest) (*domain.ExercisePlan, error) {
	idx := s.planIndexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("exercise plan %s: %w", id, domain.ErrNotFound)
	}

	s.loading = true
	s.lastErr = ""
	defer func() { s.loading = false }()

	plan, err := s.svc.UpdatePlan(ctx, id, req)
	if err != nil {
		s.lastErr = err.Error()
		return nil, fmt.Errorf("update exercise plan: %w", err)
	}
	s.plans[idx] = *plan
	s.recompute()
	return plan, nil
}

// DeletePlan is idempotent like record deletion.
func (s *ExerciseStore) DeletePlan(ctx context.Context, id uuid.UUID) error {
	idx := s.planIndexOf(id)
	if idx < 0 {
		return nil
	}

	s.loading = true
	s.lastErr = ""
	defer func() { s.loading = false }()

	if err := s.svc.DeletePlan(ctx, id); err != nil {
		s.lastErr = err.Error()
		return fmt.Errorf("delete exercise plan: %w", err)
	}
	s.plans = append(s.plans[:idx], s.plans[idx+1:]...)
	s.recompute()
	return nil
}

func (s *ExerciseStore) CompletePlan(ctx context.Context, id uuid.UUID) (*domain.ExercisePlan, error) {
	idx := s.planIndexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("exercise plan %s: %w", id, domain.ErrNotFound)
	}

	s.loading = true
	s.lastErr = ""
	defer func() { s.loading = false }()

	plan, err := s.svc.CompletePlan(ctx, id)
	if err != nil {
		s.lastErr = err.Error()
		return nil, fmt.Errorf("complete exercise plan: %w", err)
	}
	s.plans[idx] = *plan
	s.recompute()
	return plan, nil
}

func (s *ExerciseStore) Records() []domain.Exercise { return s.records }

func (s *ExerciseStore) Plans() []domain.ExercisePlan { return s.plans }

func (s *ExerciseStore) Loading() bool { return s.loading }

func (s *ExerciseStore) LastError() string { return s.lastErr }

func (s *ExerciseStore) WeeklyStats() domain.WeeklyExerciseStats { return s.weekly }

func (s *ExerciseStore) TodaySummary() domain.TodayExerciseSummary { return s.todaySummary }

// TodayExercises selects the sessions recorded today.
func (s *ExerciseStore) TodayExercises() []domain.Exercise {
	return stats.TodayExercises(s.records, s.now())
}

// ActivePlans filters out completed plans.
func (s *ExerciseStore) ActivePlans() []domain.ExercisePlan {
	return stats.ActivePlans(s.plans)
}

// Recommendations derives training advice from this week's statistics.
func (s *ExerciseStore) Recommendations() []domain.ExerciseRecommendation {
	return recommend.ForExercise(s.weekly)
}

func (s *ExerciseStore) recompute() {
	now := s.now()
	s.weekly = stats.WeeklyExercise(s.records, now)
	s.todaySummary = stats.TodayExerciseSummary(s.records, s.plans, now)
}

func (s *ExerciseStore) indexOf(id uuid.UUID) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *ExerciseStore) planIndexOf(id uuid.UUID) int {
	for i := range s.plans {
		if s.plans[i].ID == id {
			return i
		}
	}
	return -1
}
