package recommend

import "github.com/blaisecz/wellness-tracker/internal/domain"

// Stress level buckets for the quick assessment.
const (
	StressLowMax      = 3
	StressModerateMax = 6
	StressHighMax     = 8
)

// StressAssessment maps a 0-10 stress level to an advisory string.
func StressAssessment(level int) string {
	switch {
	case level <= StressLowMax:
		return "Stress level is low. Keep up your current stress management habits."
	case level <= StressModerateMax:
		return "Moderate stress level. Consider taking some time to relax."
	case level <= StressHighMax:
		return "Stress level is elevated. Take active steps to manage it."
	default:
		return "Stress level is very high. Consider seeking professional help or taking immediate relief measures."
	}
}

// ForStress derives recommendations from the current level and the
// weekly statistics. Rules are independent; order is level, then
// coping effectiveness, then lifestyle.
func ForStress(level int, weekly domain.WeeklyStressStats) []domain.StressRecommendation {
	var recs []domain.StressRecommendation

	if level > StressModerateMax {
		recs = append(recs, domain.StressRecommendation{
			Type:        domain.StressRecImmediate,
			Title:       "Deep breathing practice",
			Description: "Five minutes of deep breathing can lower acute stress quickly.",
			Priority:    domain.PriorityHigh,
			ActionSteps: []string{
				"Find a quiet place to sit",
				"Inhale for 5 seconds, hold for 2, exhale for 7",
				"Repeat 5-10 times",
			},
			ExpectedBenefits: []string{
				"Lower heart rate",
				"Reduced anxiety",
				"Improved focus",
			},
		})
	}

	if weekly.CopingSuccessRate > 0 && weekly.CopingSuccessRate < 0.5 {
		recs = append(recs, domain.StressRecommendation{
			Type:        domain.StressRecCoping,
			Title:       "Revisit your coping strategies",
			Description: "Less than half of your coping attempts have been effective lately. Try alternatives.",
			Priority:    domain.PriorityMedium,
			ActionSteps: []string{
				"Review which strategies rated lowest",
				"Try one new technique this week",
				"Log effectiveness right after each attempt",
			},
			ExpectedBenefits: []string{
				"Better matched coping toolkit",
				"Faster recovery from stress episodes",
			},
		})
	}

	if weekly.AverageStressLevel > float64(StressLowMax) {
		recs = append(recs, domain.StressRecommendation{
			Type:        domain.StressRecLifestyle,
			Title:       "Regular daily rhythm",
			Description: "A regular sleep schedule improves baseline stress resilience.",
			Priority:    domain.PriorityMedium,
			ActionSteps: []string{
				"Fix your bed and wake times",
				"Avoid screens for an hour before sleep",
				"Create a relaxing pre-sleep ritual",
			},
			ExpectedBenefits: []string{
				"Better sleep quality",
				"Stronger immune function",
				"More stable mood",
			},
		})
	}

	return recs
}
