package stats

import (
	"sort"
	"time"

	"github.com/blaisecz/wellness-tracker/internal/domain"
)

// DailyNutrition sums one day's records and scores them against the
// daily goals.
func DailyNutrition(records []domain.NutritionRecord, date time.Time, goal domain.NutritionGoal) domain.DailyNutritionSummary {
	summary := domain.DailyNutritionSummary{
		Date:      date,
		MealCount: len(records),
	}
	for _, r := range records {
		summary.TotalCalories += r.Calories
		summary.TotalProtein += r.Protein
		summary.TotalCarbs += r.Carbs
		summary.TotalFat += r.Fat
	}
	summary.GoalCompletion = GoalCompletion(
		summary.TotalCalories, summary.TotalProtein,
		summary.TotalCarbs, summary.TotalFat, goal)
	return summary
}

// GoalCompletion computes per-nutrient completion capped at 1.0.
// Overall is the mean of the four raw ratios and deliberately stays
// uncapped, so overshooting one goal still raises the overall score.
func GoalCompletion(calories, protein, carbs, fat float64, goal domain.NutritionGoal) domain.GoalCompletion {
	calRatio := calories / goal.DailyCalories
	proRatio := protein / goal.DailyProtein
	carbRatio := carbs / goal.DailyCarbs
	fatRatio := fat / goal.DailyFat

	return domain.GoalCompletion{
		Calories: capRatio(calRatio),
		Protein:  capRatio(proRatio),
		Carbs:    capRatio(carbRatio),
		Fat:      capRatio(fatRatio),
		Overall:  (calRatio + proRatio + carbRatio + fatRatio) / 4,
	}
}

func capRatio(r float64) float64 {
	if r > 1 {
		return 1
	}
	return r
}

// RecordsByMealType filters records for one meal.
func RecordsByMealType(records []domain.NutritionRecord, mealType domain.MealType) []domain.NutritionRecord {
	var out []domain.NutritionRecord
	for _, r := range records {
		if r.MealType == mealType {
			out = append(out, r)
		}
	}
	return out
}

// RecentNutritionRecords returns the limit most recently created
// records, newest first.
func RecentNutritionRecords(records []domain.NutritionRecord, limit int) []domain.NutritionRecord {
	sorted := make([]domain.NutritionRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
