package stats

import (
	"math"
	"testing"
	"time"

	"github.com/blaisecz/wellness-tracker/internal/domain"
)

func stressRecord(ts time.Time, level int, strategies ...domain.CopingStrategy) domain.StressRecord {
	return domain.StressRecord{
		StressLevel:      level,
		Timestamp:        ts,
		CopingStrategies: strategies,
	}
}

func TestCurrentStressLevel(t *testing.T) {
	ref := time.Date(2024, 3, 13, 20, 0, 0, 0, time.UTC)

	t.Run("latest of today wins", func(t *testing.T) {
		records := []domain.StressRecord{
			stressRecord(time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC), 7),
			stressRecord(time.Date(2024, 3, 13, 18, 0, 0, 0, time.UTC), 4),
			stressRecord(time.Date(2024, 3, 12, 18, 0, 0, 0, time.UTC), 9),
		}
		level, ok := CurrentStressLevel(records, ref)
		if !ok || level != 4 {
			t.Errorf("CurrentStressLevel = %d, %v; want 4, true", level, ok)
		}
	})

	t.Run("no record today", func(t *testing.T) {
		records := []domain.StressRecord{
			stressRecord(time.Date(2024, 3, 12, 18, 0, 0, 0, time.UTC), 9),
		}
		if _, ok := CurrentStressLevel(records, ref); ok {
			t.Error("expected ok=false for a day without records")
		}
	})
}

func TestWeeklyStress(t *testing.T) {
	ref := time.Date(2024, 3, 13, 20, 0, 0, 0, time.UTC)

	t.Run("empty collection yields zero stats", func(t *testing.T) {
		got := WeeklyStress(nil, ref)
		if got.AverageStressLevel != 0 || got.CopingSuccessRate != 0 {
			t.Errorf("WeeklyStress(nil) = %+v, want zero value", got)
		}
	})

	t.Run("average rounded, variation raw", func(t *testing.T) {
		records := []domain.StressRecord{
			stressRecord(time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC), 3),
			stressRecord(time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC), 8),
		}
		got := WeeklyStress(records, ref)
		if got.AverageStressLevel != 5.5 {
			t.Errorf("AverageStressLevel = %v, want 5.5", got.AverageStressLevel)
		}
		if got.StressVariation != 2.5 {
			t.Errorf("StressVariation = %v, want 2.5", got.StressVariation)
		}
	})

	t.Run("coping success rate counts effectiveness at or above three", func(t *testing.T) {
		records := []domain.StressRecord{
			stressRecord(time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC), 5,
				domain.CopingStrategy{Type: domain.CopingDeepBreathing, Effectiveness: 4},
				domain.CopingStrategy{Type: domain.CopingExercise, Effectiveness: 2},
			),
			stressRecord(time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC), 5,
				domain.CopingStrategy{Type: domain.CopingMeditation, Effectiveness: 3},
			),
		}
		got := WeeklyStress(records, ref)
		want := 2.0 / 3.0
		if math.Abs(got.CopingSuccessRate-want) > 1e-9 {
			t.Errorf("CopingSuccessRate = %v, want %v", got.CopingSuccessRate, want)
		}
	})

	t.Run("common sources ranked by frequency", func(t *testing.T) {
		records := []domain.StressRecord{
			{
				StressLevel: 5,
				Timestamp:   time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC),
				Sources: []domain.StressSource{
					{Type: domain.SourceWork, Intensity: 4},
					{Type: domain.SourceHealth, Intensity: 2},
				},
			},
			{
				StressLevel: 4,
				Timestamp:   time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC),
				Sources: []domain.StressSource{
					{Type: domain.SourceWork, Intensity: 3},
				},
			},
		}
		got := WeeklyStress(records, ref)
		if len(got.MostCommonSources) != 2 || got.MostCommonSources[0] != domain.SourceWork {
			t.Errorf("MostCommonSources = %v, want work first", got.MostCommonSources)
		}
	})
}

func TestEffectiveCopingStrategies(t *testing.T) {
	records := []domain.StressRecord{
		stressRecord(time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC), 5,
			domain.CopingStrategy{Type: domain.CopingExercise, Effectiveness: 5},
			domain.CopingStrategy{Type: domain.CopingDeepBreathing, Effectiveness: 2},
		),
		stressRecord(time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC), 5,
			domain.CopingStrategy{Type: domain.CopingExercise, Effectiveness: 3},
		),
	}

	got := EffectiveCopingStrategies(records)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Type != domain.CopingExercise || got[0].AverageEffectiveness != 4 || got[0].UsageCount != 2 {
		t.Errorf("top strategy = %+v, want exercise avg 4 count 2", got[0])
	}
}

func TestStressSummaryFor(t *testing.T) {
	ref := time.Date(2024, 3, 13, 20, 0, 0, 0, time.UTC)
	records := []domain.StressRecord{
		stressRecord(time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC), 6,
			domain.CopingStrategy{Type: domain.CopingMeditation, Effectiveness: 4}),
		stressRecord(time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC), 2),
		stressRecord(time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC), 10),
	}

	t.Run("day period covers only today", func(t *testing.T) {
		got := StressSummaryFor(records, domain.PeriodDay, ref)
		if got.AverageStressLevel != 6 {
			t.Errorf("AverageStressLevel = %v, want 6", got.AverageStressLevel)
		}
		if got.CopingEffectiveness != 4 {
			t.Errorf("CopingEffectiveness = %v, want 4", got.CopingEffectiveness)
		}
	})

	t.Run("week period covers the last seven days", func(t *testing.T) {
		got := StressSummaryFor(records, domain.PeriodWeek, ref)
		if got.AverageStressLevel != 4 {
			t.Errorf("AverageStressLevel = %v, want 4", got.AverageStressLevel)
		}
	})

	t.Run("month period still excludes older records", func(t *testing.T) {
		got := StressSummaryFor(records, domain.PeriodMonth, ref)
		if got.AverageStressLevel != 4 {
			t.Errorf("AverageStressLevel = %v, want 4 (February record outside 30 days)", got.AverageStressLevel)
		}
	})
}

func TestStressTrend(t *testing.T) {
	var records []domain.StressRecord
	for i := 0; i < 10; i++ {
		records = append(records, stressRecord(
			time.Date(2024, 3, 1+i, 9, 0, 0, 0, time.UTC), i))
	}

	points := StressTrend(records, StressTrendDays)
	if len(points) != StressTrendDays {
		t.Fatalf("len = %d, want %d", len(points), StressTrendDays)
	}
	if points[len(points)-1].StressLevel != 9 {
		t.Errorf("last point level = %d, want 9 (most recent)", points[len(points)-1].StressLevel)
	}
	for i := 1; i < len(points); i++ {
		if !points[i].Date.After(points[i-1].Date) {
			t.Errorf("points not chronological at %d", i)
		}
	}
}
