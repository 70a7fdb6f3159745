package stats

import (
	"time"

	"github.com/blaisecz/wellness-tracker/internal/domain"
)

// TodayExercises selects the sessions recorded on ref's calendar date.
func TodayExercises(records []domain.Exercise, ref time.Time) []domain.Exercise {
	var out []domain.Exercise
	for _, r := range records {
		if SameDay(r.RecordedAt, ref) {
			out = append(out, r)
		}
	}
	return out
}

// WeeklyExercise aggregates sessions within the calendar week
// containing ref. AverageDuration divides by the number of distinct
// active days, never by zero.
func WeeklyExercise(records []domain.Exercise, ref time.Time) domain.WeeklyExerciseStats {
	window := Week(ref)

	var totalDuration, totalCalories int
	activeDays := make(map[time.Weekday]struct{})
	for _, r := range records {
		if !window.Contains(r.RecordedAt) {
			continue
		}
		totalDuration += r.Duration
		totalCalories += r.CaloriesBurned
		activeDays[r.RecordedAt.Weekday()] = struct{}{}
	}

	days := len(activeDays)
	divisor := days
	if divisor == 0 {
		divisor = 1
	}

	return domain.WeeklyExerciseStats{
		TotalDuration:   totalDuration,
		TotalCalories:   totalCalories,
		ExerciseDays:    days,
		AverageDuration: float64(totalDuration) / float64(divisor),
	}
}

// TodayExerciseSummary digests the current day's sessions and the
// completion state of the user's plans.
func TodayExerciseSummary(records []domain.Exercise, plans []domain.ExercisePlan, ref time.Time) domain.TodayExerciseSummary {
	summary := domain.TodayExerciseSummary{}
	for _, r := range TodayExercises(records, ref) {
		summary.TotalDuration += r.Duration
		summary.TotalCalories += r.CaloriesBurned
		summary.ExerciseCount++
	}
	for _, p := range plans {
		if p.Completed {
			summary.CompletedPlans++
		}
	}
	return summary
}

// ActivePlans filters out completed plans.
func ActivePlans(plans []domain.ExercisePlan) []domain.ExercisePlan {
	var out []domain.ExercisePlan
	for _, p := range plans {
		if !p.Completed {
			out = append(out, p)
		}
	}
	return out
}
