package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/blaisecz/wellness-tracker/internal/domain"
)

func TestStressStore_CurrentLevel(t *testing.T) {
	svc := &mockStressService{
		records: []domain.StressRecord{
			{
				ID:          uuid.New(),
				StressLevel: 7,
				Timestamp:   time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC),
			},
			{
				ID:          uuid.New(),
				StressLevel: 4,
				Timestamp:   time.Date(2024, 3, 13, 11, 0, 0, 0, time.UTC),
			},
		},
	}
	s := NewStressStore(svc, uuid.New())
	s.now = func() time.Time { return testNow }
	s.Load(context.Background())

	level, ok := s.CurrentLevel()
	if !ok || level != 4 {
		t.Errorf("CurrentLevel = %d, %v; want 4, true", level, ok)
	}
	assessment, ok := s.Assessment()
	if !ok || assessment == "" {
		t.Errorf("Assessment = %q, %v; want advisory text", assessment, ok)
	}
}

func TestStressStore_CurrentLevelEmptyDay(t *testing.T) {
	svc := &mockStressService{
		records: []domain.StressRecord{
			{
				ID:          uuid.New(),
				StressLevel: 9,
				Timestamp:   time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC),
			},
		},
	}
	s := NewStressStore(svc, uuid.New())
	s.now = func() time.Time { return testNow }
	s.Load(context.Background())

	if _, ok := s.CurrentLevel(); ok {
		t.Error("expected ok=false for a day without records")
	}
}

func TestStressStore_WeeklyAndRankings(t *testing.T) {
	svc := &mockStressService{
		records: []domain.StressRecord{
			{
				ID:          uuid.New(),
				StressLevel: 6,
				Timestamp:   time.Date(2024, 3, 12, 18, 0, 0, 0, time.UTC),
				Sources: []domain.StressSource{
					{Type: domain.SourceWork, Intensity: 4},
				},
				CopingStrategies: []domain.CopingStrategy{
					{Type: domain.CopingDeepBreathing, Effectiveness: 4},
					{Type: domain.CopingExercise, Effectiveness: 2},
				},
			},
			{
				ID:          uuid.New(),
				StressLevel: 4,
				Timestamp:   time.Date(2024, 3, 11, 18, 0, 0, 0, time.UTC),
				Sources: []domain.StressSource{
					{Type: domain.SourceWork, Intensity: 3},
					{Type: domain.SourceHealth, Intensity: 2},
				},
			},
		},
	}
	s := NewStressStore(svc, uuid.New())
	s.now = func() time.Time { return testNow }
	s.Load(context.Background())

	weekly := s.WeeklyStats()
	if weekly.AverageStressLevel != 5 {
		t.Errorf("AverageStressLevel = %v, want 5", weekly.AverageStressLevel)
	}
	if weekly.CopingSuccessRate != 0.5 {
		t.Errorf("CopingSuccessRate = %v, want 0.5", weekly.CopingSuccessRate)
	}
	if sources := s.CommonSources(); len(sources) == 0 || sources[0] != domain.SourceWork {
		t.Errorf("CommonSources = %v, want work first", sources)
	}
	if strategies := s.EffectiveStrategies(); len(strategies) == 0 || strategies[0].Type != domain.CopingDeepBreathing {
		t.Errorf("EffectiveStrategies = %v, want deep breathing first", strategies)
	}
}

func TestStressStore_CreateRecomputesTrend(t *testing.T) {
	svc := &mockStressService{}
	s := NewStressStore(svc, uuid.New())
	s.now = func() time.Time { return testNow }

	_, err := s.Create(context.Background(), &domain.CreateStressRecordRequest{StressLevel: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Trend()) != 1 {
		t.Errorf("trend len = %d, want 1 after create", len(s.Trend()))
	}
}
