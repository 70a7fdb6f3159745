// Package fixture holds the static development datasets served by the
// fixture invoker and the devserver. Timestamps are generated relative
// to a caller-supplied reference instant so windowed statistics over
// fixture data stay meaningful.
package fixture

import (
	"strings"
	"time"

	"github.com/blaisecz/wellness-tracker/internal/domain"
	"github.com/google/uuid"
)

// DefaultUserID is the owner of all fixture records.
var DefaultUserID = uuid.MustParse("11111111-1111-1111-1111-111111111111")

// SleepRecords returns two recent nights for the fixture user.
func SleepRecords(userID uuid.UUID, now time.Time) []domain.SleepRecord {
	lastNight := day(now, -1)
	nightBefore := day(now, -2)
	return []domain.SleepRecord{
		{
			ID:         uuid.New(),
			UserID:     userID,
			Bedtime:    lastNight.Add(22*time.Hour + 30*time.Minute),
			WakeupTime: lastNight.Add(24*time.Hour + 6*time.Hour + 30*time.Minute),
			Duration:   8,
			Quality:    4,
			Factors: []domain.SleepFactor{
				{Type: domain.FactorScreenTime, Description: "An hour on the phone before bed"},
				{Type: domain.FactorCaffeine, Description: "Afternoon coffee"},
			},
			Notes:     "Decent sleep, went to bed late",
			CreatedAt: lastNight.Add(24*time.Hour + 7*time.Hour),
			UpdatedAt: lastNight.Add(24*time.Hour + 7*time.Hour),
		},
		{
			ID:         uuid.New(),
			UserID:     userID,
			Bedtime:    nightBefore.Add(23 * time.Hour),
			WakeupTime: nightBefore.Add(24*time.Hour + 7*time.Hour),
			Duration:   8,
			Quality:    3,
			Factors: []domain.SleepFactor{
				{Type: domain.FactorStress, Description: "High workload"},
				{Type: domain.FactorNoise, Description: "Street noise"},
			},
			Notes:     "Woke up a few times",
			CreatedAt: nightBefore.Add(24*time.Hour + 7*time.Hour + 30*time.Minute),
			UpdatedAt: nightBefore.Add(24*time.Hour + 7*time.Hour + 30*time.Minute),
		},
	}
}

// StressRecords returns two recent stress episodes for the fixture user.
func StressRecords(userID uuid.UUID, now time.Time) []domain.StressRecord {
	yesterday := day(now, -1).Add(18*time.Hour + 30*time.Minute)
	twoDaysAgo := day(now, -2).Add(21 * time.Hour)
	return []domain.StressRecord{
		{
			ID:          uuid.New(),
			UserID:      userID,
			StressLevel: 6,
			Timestamp:   yesterday,
			Sources: []domain.StressSource{
				{Type: domain.SourceWork, Intensity: 4},
				{Type: domain.SourceRelationship, Intensity: 3},
			},
			PhysicalSymptoms: []domain.PhysicalSymptom{
				{Type: domain.SymptomHeadache, Severity: 3},
				{Type: domain.SymptomMuscleTension, Severity: 2},
			},
			CopingStrategies: []domain.CopingStrategy{
				{Type: domain.CopingDeepBreathing, Effectiveness: 4},
				{Type: domain.CopingExercise, Effectiveness: 3},
			},
			Notes:     "Rough day at work, need to unwind tonight",
			CreatedAt: yesterday,
			UpdatedAt: yesterday,
		},
		{
			ID:          uuid.New(),
			UserID:      userID,
			StressLevel: 4,
			Timestamp:   twoDaysAgo,
			Sources: []domain.StressSource{
				{Type: domain.SourceHealth, Intensity: 3},
			},
			PhysicalSymptoms: []domain.PhysicalSymptom{
				{Type: domain.SymptomSleepProblem, Severity: 4},
			},
			CopingStrategies: []domain.CopingStrategy{
				{Type: domain.CopingMeditation, Effectiveness: 4},
			},
			Notes:     "Sleeping poorly, should adjust my schedule",
			CreatedAt: twoDaysAgo,
			UpdatedAt: twoDaysAgo,
		},
	}
}

// Exercises returns two recent training sessions for the fixture user.
func Exercises(userID uuid.UUID, now time.Time) []domain.Exercise {
	morning := day(now, 0).Add(7*time.Hour + 30*time.Minute)
	yesterdayEvening := day(now, -1).Add(18 * time.Hour)
	return []domain.Exercise{
		{
			ID:             uuid.New(),
			UserID:         userID,
			Name:           "Morning run",
			Category:       domain.ExerciseCardio,
			Duration:       30,
			Intensity:      domain.IntensityMedium,
			CaloriesBurned: 300,
			RecordedAt:     morning,
			CreatedAt:      morning,
			UpdatedAt:      morning,
		},
		{
			ID:             uuid.New(),
			UserID:         userID,
			Name:           "Squat session",
			Category:       domain.ExerciseFunctional,
			Duration:       20,
			Intensity:      domain.IntensityHigh,
			CaloriesBurned: 200,
			RecordedAt:     yesterdayEvening,
			CreatedAt:      yesterdayEvening,
			UpdatedAt:      yesterdayEvening,
		},
	}
}

// NutritionRecords returns a day's worth of meals for the fixture user.
func NutritionRecords(userID uuid.UUID, now time.Time) []domain.NutritionRecord {
	breakfast := day(now, 0).Add(8 * time.Hour)
	lunch := day(now, 0).Add(12*time.Hour + 30*time.Minute)
	return []domain.NutritionRecord{
		{
			ID:          uuid.New(),
			UserID:      userID,
			FoodItemID:  "4",
			FoodName:    "Egg",
			MealType:    domain.MealBreakfast,
			ServingSize: "1 piece",
			Quantity:    2,
			Calories:    156,
			Protein:     12.6,
			Carbs:       1.2,
			Fat:         10.6,
			RecordedAt:  breakfast,
			CreatedAt:   breakfast,
			UpdatedAt:   breakfast,
		},
		{
			ID:          uuid.New(),
			UserID:      userID,
			FoodItemID:  "1",
			FoodName:    "Chicken breast",
			MealType:    domain.MealLunch,
			ServingSize: "100g",
			Quantity:    1.5,
			Calories:    247.5,
			Protein:     46.5,
			Carbs:       0,
			Fat:         5.4,
			RecordedAt:  lunch,
			CreatedAt:   lunch,
			UpdatedAt:   lunch,
		},
	}
}

// ExercisePlans returns a single active plan for the fixture user.
func ExercisePlans(userID uuid.UUID) []domain.ExercisePlan {
	return []domain.ExercisePlan{
		{
			ID:     uuid.New(),
			UserID: userID,
			Name:   "This week's workout plan",
			Exercises: []domain.PlanItem{
				{ExerciseID: "ex-1", Duration: 30},
				{ExerciseID: "ex-2", Sets: 3, Reps: 12},
			},
			Schedule: domain.Schedule{
				Frequency: domain.FrequencyWeekly,
				Days:      []int{1, 3, 5},
				Time:      "19:00",
			},
			Completed: false,
		},
	}
}

// ExerciseLibrary returns the catalog of known exercises.
func ExerciseLibrary() []domain.LibraryExercise {
	return []domain.LibraryExercise{
		{
			ID:            "ex-1",
			Name:          "Squat",
			Category:      "functional",
			Difficulty:    domain.DifficultyIntermediate,
			TargetMuscles: []string{"quadriceps", "glutes", "hamstrings"},
			Instructions: []string{
				"Stand with feet shoulder-width apart",
				"Keep your back straight and lower slowly",
				"Descend until thighs are parallel to the floor",
				"Drive up through your heels",
			},
			VideoURL: "https://example.com/squat.mp4",
		},
		{
			ID:            "ex-2",
			Name:          "Plank",
			Category:      "bodyweight",
			Difficulty:    domain.DifficultyBeginner,
			TargetMuscles: []string{"core", "shoulders", "back"},
			Instructions: []string{
				"Lie face down, support on your elbows",
				"Keep your body in a straight line",
				"Brace your core and hold for 30-60 seconds",
			},
		},
		{
			ID:            "ex-3",
			Name:          "Glute bridge",
			Category:      "posture",
			Difficulty:    domain.DifficultyBeginner,
			TargetMuscles: []string{"glutes", "lower back"},
			Instructions: []string{
				"Lie on your back with knees bent",
				"Lift your hips into a bridge",
				"Hold for 2-3 seconds, then lower slowly",
			},
		},
	}
}

// FoodDatabase returns the development food catalog.
func FoodDatabase() []domain.FoodItem {
	return []domain.FoodItem{
		{ID: "1", Name: "Chicken breast", ServingSize: "100g", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Category: "meat", Tags: []string{"high-protein", "low-fat"}},
		{ID: "2", Name: "Brown rice", ServingSize: "100g", Calories: 111, Protein: 2.6, Carbs: 23, Fat: 0.9, Category: "grains", Tags: []string{"carbs", "fiber"}},
		{ID: "3", Name: "Broccoli", ServingSize: "100g", Calories: 34, Protein: 2.8, Carbs: 7, Fat: 0.4, Category: "vegetables", Tags: []string{"low-calorie", "high-fiber"}},
		{ID: "4", Name: "Egg", ServingSize: "1 piece", Calories: 78, Protein: 6.3, Carbs: 0.6, Fat: 5.3, Category: "eggs", Tags: []string{"high-protein", "nutritious"}},
		{ID: "5", Name: "Milk", ServingSize: "250ml", Calories: 150, Protein: 8, Carbs: 12, Fat: 8, Category: "dairy", Tags: []string{"calcium", "protein"}},
	}
}

// SearchFood filters the food database by name, category or tag.
func SearchFood(query string) []domain.FoodItem {
	q := strings.ToLower(query)
	var out []domain.FoodItem
	for _, item := range FoodDatabase() {
		if strings.Contains(strings.ToLower(item.Name), q) ||
			strings.Contains(strings.ToLower(item.Category), q) ||
			tagMatches(item.Tags, q) {
			out = append(out, item)
		}
	}
	return out
}

func tagMatches(tags []string, q string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

// RestaurantGuide returns ordering advice for a restaurant type.
func RestaurantGuide(restaurantType string) domain.RestaurantRecommendation {
	switch strings.ToLower(restaurantType) {
	case "fast_food", "fastfood":
		return domain.RestaurantRecommendation{
			Recommended: []string{"Grilled chicken sandwich", "Side salad"},
			Avoid:       []string{"Fried items", "Sugary drinks"},
			Tips:        []string{"Skip the combo upgrade", "Ask for dressing on the side"},
		}
	case "italian":
		return domain.RestaurantRecommendation{
			Recommended: []string{"Tomato-based pasta", "Grilled fish"},
			Avoid:       []string{"Cream sauces", "Garlic bread baskets"},
			Tips:        []string{"Share the appetizer", "Half portion of pasta with a salad"},
		}
	default:
		return domain.RestaurantRecommendation{
			Recommended: []string{"Lean protein with vegetables"},
			Avoid:       []string{"Deep-fried dishes"},
			Tips:        []string{"Stop eating when comfortably full"},
		}
	}
}

// SleepPatterns is the canned longer-horizon sleep analysis.
func SleepPatterns() domain.SleepPatternAnalysis {
	return domain.SleepPatternAnalysis{
		AverageBedtime:      "22:00",
		AverageWakeTime:     "06:00",
		SleepEfficiency:     85,
		REMSleepPercentage:  25,
		DeepSleepPercentage: 15,
	}
}

// StressPatterns is the canned longer-horizon stress analysis.
func StressPatterns() domain.StressPatternAnalysis {
	return domain.StressPatternAnalysis{
		PeakStressTimes:        []string{"09:00-11:00", "14:00-16:00"},
		CommonTriggers:         []string{"meetings", "deadlines"},
		EffectiveInterventions: []string{"walking", "meditation"},
		ImprovementRate:        0.15,
	}
}

func day(now time.Time, offset int) time.Time {
	d := now.AddDate(0, 0, offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}
