package stats

import (
	"testing"
	"time"

	"github.com/blaisecz/wellness-tracker/internal/domain"
)

func exerciseAt(recordedAt time.Time, duration, calories int) domain.Exercise {
	return domain.Exercise{
		Name:           "session",
		Category:       domain.ExerciseCardio,
		Duration:       duration,
		Intensity:      domain.IntensityMedium,
		CaloriesBurned: calories,
		RecordedAt:     recordedAt,
	}
}

func TestWeeklyExercise(t *testing.T) {
	// Wednesday; week runs Sunday 2024-03-10 through Saturday 2024-03-16.
	ref := time.Date(2024, 3, 13, 12, 0, 0, 0, time.UTC)

	t.Run("average is per active day, not per session", func(t *testing.T) {
		records := []domain.Exercise{
			exerciseAt(time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC), 30, 300),
			exerciseAt(time.Date(2024, 3, 11, 18, 0, 0, 0, time.UTC), 20, 200),
			exerciseAt(time.Date(2024, 3, 12, 8, 0, 0, 0, time.UTC), 40, 400),
		}
		got := WeeklyExercise(records, ref)
		if got.TotalDuration != 90 {
			t.Errorf("TotalDuration = %d, want 90", got.TotalDuration)
		}
		if got.TotalCalories != 900 {
			t.Errorf("TotalCalories = %d, want 900", got.TotalCalories)
		}
		if got.ExerciseDays != 2 {
			t.Errorf("ExerciseDays = %d, want 2 (two sessions on one day count once)", got.ExerciseDays)
		}
		if got.AverageDuration != 45 {
			t.Errorf("AverageDuration = %v, want 45", got.AverageDuration)
		}
	})

	t.Run("empty week divides by one", func(t *testing.T) {
		got := WeeklyExercise(nil, ref)
		if got.AverageDuration != 0 || got.ExerciseDays != 0 {
			t.Errorf("got %+v, want zero stats", got)
		}
	})

	t.Run("sessions outside the calendar week excluded", func(t *testing.T) {
		records := []domain.Exercise{
			exerciseAt(time.Date(2024, 3, 9, 8, 0, 0, 0, time.UTC), 60, 600),  // Saturday before
			exerciseAt(time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC), 30, 300), // Sunday, in week
		}
		got := WeeklyExercise(records, ref)
		if got.TotalDuration != 30 {
			t.Errorf("TotalDuration = %d, want 30", got.TotalDuration)
		}
	})
}

func TestTodayExerciseSummary(t *testing.T) {
	ref := time.Date(2024, 3, 13, 20, 0, 0, 0, time.UTC)
	records := []domain.Exercise{
		exerciseAt(time.Date(2024, 3, 13, 8, 0, 0, 0, time.UTC), 30, 300),
		exerciseAt(time.Date(2024, 3, 12, 8, 0, 0, 0, time.UTC), 45, 450),
	}
	plans := []domain.ExercisePlan{
		{Name: "a", Completed: true},
		{Name: "b", Completed: false},
	}

	got := TodayExerciseSummary(records, plans, ref)
	if got.ExerciseCount != 1 || got.TotalDuration != 30 || got.TotalCalories != 300 {
		t.Errorf("summary = %+v, want today's single session only", got)
	}
	if got.CompletedPlans != 1 {
		t.Errorf("CompletedPlans = %d, want 1", got.CompletedPlans)
	}
}

func TestActivePlans(t *testing.T) {
	plans := []domain.ExercisePlan{
		{Name: "done", Completed: true},
		{Name: "open", Completed: false},
	}
	got := ActivePlans(plans)
	if len(got) != 1 || got[0].Name != "open" {
		t.Errorf("ActivePlans = %+v, want only the open plan", got)
	}
}
