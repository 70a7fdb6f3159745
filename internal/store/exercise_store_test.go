package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/blaisecz/wellness-tracker/internal/domain"
)

func testExercise(id uuid.UUID, recordedAt time.Time, duration int) domain.Exercise {
	return domain.Exercise{
		ID:             id,
		Name:           "session",
		Category:       domain.ExerciseCardio,
		Duration:       duration,
		Intensity:      domain.IntensityMedium,
		CaloriesBurned: duration * 10,
		RecordedAt:     recordedAt,
	}
}

func TestExerciseStore_LoadComputesWeekly(t *testing.T) {
	svc := &mockExerciseService{
		records: []domain.Exercise{
			testExercise(uuid.New(), time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC), 30),
			testExercise(uuid.New(), time.Date(2024, 3, 12, 8, 0, 0, 0, time.UTC), 40),
		},
		plans: []domain.ExercisePlan{
			{ID: uuid.New(), Name: "open"},
			{ID: uuid.New(), Name: "done", Completed: true},
		},
	}
	s := NewExerciseStore(svc, uuid.New())
	s.now = func() time.Time { return testNow }

	s.Load(context.Background())

	if s.LastError() != "" {
		t.Fatalf("unexpected error: %s", s.LastError())
	}
	weekly := s.WeeklyStats()
	if weekly.TotalDuration != 70 || weekly.ExerciseDays != 2 {
		t.Errorf("weekly = %+v, want 70 min over 2 days", weekly)
	}
	if got := s.ActivePlans(); len(got) != 1 || got[0].Name != "open" {
		t.Errorf("ActivePlans = %+v, want only the open plan", got)
	}
	if s.TodaySummary().CompletedPlans != 1 {
		t.Errorf("CompletedPlans = %d, want 1", s.TodaySummary().CompletedPlans)
	}
	// 70 minutes on 2 days trips both advisory rules.
	if recs := s.Recommendations(); len(recs) != 2 {
		t.Errorf("recommendations = %d, want frequency and duration advice", len(recs))
	}
}

func TestExerciseStore_LoadFailureRetainsData(t *testing.T) {
	svc := &mockExerciseService{
		records: []domain.Exercise{
			testExercise(uuid.New(), time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC), 30),
		},
	}
	s := NewExerciseStore(svc, uuid.New())
	s.now = func() time.Time { return testNow }

	s.Load(context.Background())
	svc.err = errors.New("backend down")
	s.Load(context.Background())

	if s.LastError() == "" {
		t.Error("expected error message to be recorded")
	}
	if len(s.Records()) != 1 {
		t.Errorf("len = %d, want previous collection retained", len(s.Records()))
	}
}

func TestExerciseStore_CompletePlan(t *testing.T) {
	planID := uuid.New()
	svc := &mockExerciseService{
		plans: []domain.ExercisePlan{{ID: planID, Name: "plan"}},
	}
	s := NewExerciseStore(svc, uuid.New())
	s.now = func() time.Time { return testNow }
	s.Load(context.Background())

	plan, err := s.CompletePlan(context.Background(), planID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !plan.Completed {
		t.Error("expected completed plan")
	}
	if s.TodaySummary().CompletedPlans != 1 {
		t.Error("derived summary must see the completed plan")
	}
	if len(s.ActivePlans()) != 0 {
		t.Error("completed plan must leave the active set")
	}
}

func TestExerciseStore_CompletePlanUnknownID(t *testing.T) {
	svc := &mockExerciseService{}
	s := NewExerciseStore(svc, uuid.New())
	s.now = func() time.Time { return testNow }

	_, err := s.CompletePlan(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestExerciseStore_DeleteUnknownIDIsNoOp(t *testing.T) {
	svc := &mockExerciseService{}
	s := NewExerciseStore(svc, uuid.New())
	s.now = func() time.Time { return testNow }

	if err := s.Delete(context.Background(), uuid.New()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if svc.deleteCalls != 0 {
		t.Error("unknown id must not reach the backend")
	}
}
