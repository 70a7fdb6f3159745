package recommend

import "github.com/blaisecz/wellness-tracker/internal/domain"

const (
	// MinExerciseDays is the weekly active-day target.
	MinExerciseDays = 3

	// MinWeeklyMinutes follows the common 150-minutes-per-week guideline.
	MinWeeklyMinutes = 150
)

// ForExercise derives recommendations from weekly training statistics.
// Order is frequency, then duration.
func ForExercise(weekly domain.WeeklyExerciseStats) []domain.ExerciseRecommendation {
	var recs []domain.ExerciseRecommendation

	if weekly.ExerciseDays < MinExerciseDays {
		recs = append(recs, domain.ExerciseRecommendation{
			Type:        domain.ExerciseRecFrequency,
			Title:       "Train more often",
			Description: "You were active on fewer than three days this week. Spreading sessions out beats one long workout.",
			Priority:    domain.PriorityHigh,
			ActionSteps: []string{
				"Schedule three fixed training days",
				"Start with short 20-minute sessions",
				"Pair workouts with an existing habit",
			},
		})
	}

	if weekly.TotalDuration < MinWeeklyMinutes {
		recs = append(recs, domain.ExerciseRecommendation{
			Type:        domain.ExerciseRecDuration,
			Title:       "Extend your weekly volume",
			Description: "Your total training time is under 150 minutes this week. Gradually add time to each session.",
			Priority:    domain.PriorityMedium,
			ActionSteps: []string{
				"Add 10 minutes to two sessions",
				"Include a brisk walk on rest days",
			},
		})
	}

	return recs
}
