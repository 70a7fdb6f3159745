// Package backend is the remote-procedure boundary of the data layer.
// Every operation is a method name plus structured parameters invoked
// against an Invoker. The HTTP implementation talks to the real
// backend; the fixture implementation serves canned data for
// development and tests. Which one a process uses is decided once, at
// construction time.
package backend

import "context"

// Invoker executes one backend operation. Params are serialized as the
// request payload; the response is decoded into result, which must be
// a pointer (or nil for operations without a payload).
type Invoker interface {
	Invoke(ctx context.Context, method string, params, result any) error
}

// Operation catalog. Method names are the wire-level identifiers
// shared by every Invoker implementation.
const (
	// Exercise
	MethodGetExercises            = "get_exercises"
	MethodCreateExercise          = "create_exercise"
	MethodUpdateExercise          = "update_exercise"
	MethodDeleteExercise          = "delete_exercise"
	MethodGetExercisePlans        = "get_exercise_plans"
	MethodCreateExercisePlan      = "create_exercise_plan"
	MethodUpdateExercisePlan      = "update_exercise_plan"
	MethodDeleteExercisePlan      = "delete_exercise_plan"
	MethodCompleteExercisePlan    = "complete_exercise_plan"
	MethodGetExerciseStats        = "get_exercise_stats"
	MethodGetExerciseLibrary      = "get_exercise_library"
	MethodSearchExercises         = "search_exercises"
	MethodGetTodayExerciseSummary = "get_today_exercise_summary"

	// Nutrition
	MethodGetNutritionRecords          = "get_nutrition_records"
	MethodCreateNutritionRecord        = "create_nutrition_record"
	MethodUpdateNutritionRecord        = "update_nutrition_record"
	MethodDeleteNutritionRecord        = "delete_nutrition_record"
	MethodGetFoodDatabase              = "get_food_database"
	MethodSearchFoodItems              = "search_food_items"
	MethodGetRestaurantRecommendations = "get_restaurant_recommendations"
	MethodCalculateNutrition           = "calculate_nutrition"
	MethodGetTodayNutritionSummary     = "get_today_nutrition_summary"
	MethodExportNutritionData          = "export_nutrition_data"

	// Sleep
	MethodGetSleepRecords         = "get_sleep_records"
	MethodCreateSleepRecord       = "create_sleep_record"
	MethodUpdateSleepRecord       = "update_sleep_record"
	MethodDeleteSleepRecord       = "delete_sleep_record"
	MethodGetSleepQualitySummary  = "get_sleep_quality_summary"
	MethodGetWeeklySleepStats     = "get_weekly_sleep_stats"
	MethodGetSleepRecommendations = "get_sleep_recommendations"
	MethodAnalyzeSleepPatterns    = "analyze_sleep_patterns"
	MethodExportSleepData         = "export_sleep_data"

	// Stress
	MethodGetStressRecords         = "get_stress_records"
	MethodCreateStressRecord       = "create_stress_record"
	MethodUpdateStressRecord       = "update_stress_record"
	MethodDeleteStressRecord       = "delete_stress_record"
	MethodGetStressSummary         = "get_stress_summary"
	MethodGetWeeklyStressStats     = "get_weekly_stress_stats"
	MethodGetStressRecommendations = "get_stress_recommendations"
	MethodAnalyzeStressPatterns    = "analyze_stress_patterns"
	MethodExportStressData         = "export_stress_data"
)
