// Package recommend maps computed statistics to prioritized
// recommendations via independent threshold rules. Rules are evaluated
// in declaration order and are not mutually exclusive; a snapshot that
// trips no rule yields an empty list.
package recommend

import "github.com/blaisecz/wellness-tracker/internal/domain"

const (
	// MinSleepHours is the duration below which the duration rule fires.
	MinSleepHours = 7.0

	// MinSleepQuality is the 1-5 quality below which the quality rule fires.
	MinSleepQuality = 3.0

	// MinConsistencyScore is the 0-100 score below which the
	// consistency rule fires.
	MinConsistencyScore = 70.0
)

// ForSleep derives recommendations from weekly sleep statistics.
// Emission order follows the rule order: duration, quality, consistency.
func ForSleep(weekly domain.WeeklySleepStats) []domain.SleepRecommendation {
	var recs []domain.SleepRecommendation

	if weekly.AverageDuration < MinSleepHours {
		recs = append(recs, domain.SleepRecommendation{
			Type:        domain.SleepRecDuration,
			Title:       "Increase sleep duration",
			Description: "Your average sleep duration is under 7 hours. Aim for more time in bed to get proper rest.",
			Priority:    domain.PriorityHigh,
			ActionSteps: []string{
				"Go to bed 30 minutes earlier",
				"Establish a fixed pre-sleep routine",
				"Avoid screens before bedtime",
			},
		})
	}

	if weekly.AverageQuality < MinSleepQuality {
		recs = append(recs, domain.SleepRecommendation{
			Type:        domain.SleepRecQuality,
			Title:       "Improve sleep quality",
			Description: "Your sleep quality could be better. Consider optimizing your sleep environment.",
			Priority:    domain.PriorityMedium,
			ActionSteps: []string{
				"Keep the bedroom between 18-22°C",
				"Use blackout curtains to reduce light",
				"Try white noise or relaxing music",
			},
		})
	}

	if weekly.ConsistencyScore < MinConsistencyScore {
		recs = append(recs, domain.SleepRecommendation{
			Type:        domain.SleepRecConsistency,
			Title:       "Build a regular routine",
			Description: "Your sleep schedule is irregular. Fixed bed and wake times help stabilize it.",
			Priority:    domain.PriorityMedium,
			ActionSteps: []string{
				"Wake up at the same time every day, weekends included",
				"Establish a wind-down ritual before bed",
				"Avoid long weekend lie-ins",
			},
		})
	}

	return recs
}
