// Smoke-checks the full data layer against the selected backend:
// wires config, invoker, services and stores, loads every domain and
// prints the derived statistics and recommendations.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/blaisecz/wellness-tracker/internal/backend"
	"github.com/blaisecz/wellness-tracker/internal/config"
	"github.com/blaisecz/wellness-tracker/internal/domain"
	"github.com/blaisecz/wellness-tracker/internal/fixture"
	"github.com/blaisecz/wellness-tracker/internal/service"
	"github.com/blaisecz/wellness-tracker/internal/store"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	goal := domain.NutritionGoal{
		DailyCalories: cfg.DailyCalories,
		DailyProtein:  cfg.DailyProtein,
		DailyCarbs:    cfg.DailyCarbs,
		DailyFat:      cfg.DailyFat,
	}

	var inv backend.Invoker
	switch cfg.BackendMode {
	case "http":
		log.Printf("Using HTTP backend at %s", cfg.BackendURL)
		inv = backend.NewHTTPInvoker(cfg.BackendURL)
	default:
		log.Println("Using fixture backend")
		inv = backend.NewFixtureInvoker(goal)
	}

	userID := fixture.DefaultUserID

	sleepStore := store.NewSleepStore(service.NewSleepService(inv), userID)
	stressStore := store.NewStressStore(service.NewStressService(inv), userID)
	exerciseStore := store.NewExerciseStore(service.NewExerciseService(inv), userID)
	nutritionStore := store.NewNutritionStore(service.NewNutritionService(inv), userID, goal)

	sleepStore.Load(ctx)
	if sleepStore.LastError() != "" {
		log.Fatalf("Sleep load failed: %s", sleepStore.LastError())
	}
	weeklySleep := sleepStore.WeeklyStats()
	fmt.Printf("Sleep: %d records, avg %.1fh quality %.1f consistency %.1f\n",
		len(sleepStore.Records()), weeklySleep.AverageDuration,
		weeklySleep.AverageQuality, weeklySleep.ConsistencyScore)
	if night := sleepStore.LastNight(); night != nil {
		fmt.Printf("Last night: %.1fh, quality %d\n", night.Duration, night.Quality)
	}

	stressStore.Load(ctx)
	if stressStore.LastError() != "" {
		log.Fatalf("Stress load failed: %s", stressStore.LastError())
	}
	weeklyStress := stressStore.WeeklyStats()
	fmt.Printf("Stress: %d records, avg level %.1f, coping success %.0f%%\n",
		len(stressStore.Records()), weeklyStress.AverageStressLevel,
		weeklyStress.CopingSuccessRate*100)

	exerciseStore.Load(ctx)
	if exerciseStore.LastError() != "" {
		log.Fatalf("Exercise load failed: %s", exerciseStore.LastError())
	}
	weeklyExercise := exerciseStore.WeeklyStats()
	fmt.Printf("Exercise: %d records, %d min over %d days this week\n",
		len(exerciseStore.Records()), weeklyExercise.TotalDuration,
		weeklyExercise.ExerciseDays)
	for _, rec := range exerciseStore.Recommendations() {
		fmt.Printf("Exercise recommendation [%s]: %s\n", rec.Priority, rec.Title)
	}

	nutritionStore.Load(ctx)
	if nutritionStore.LastError() != "" {
		log.Fatalf("Nutrition load failed: %s", nutritionStore.LastError())
	}
	daily := nutritionStore.DailySummary()
	fmt.Printf("Nutrition: %d meals today, %.0f kcal, overall goal %.0f%%\n",
		daily.MealCount, daily.TotalCalories, daily.GoalCompletion.Overall*100)

	sleepSvc := service.NewSleepService(inv)
	recs, err := sleepSvc.Recommendations(ctx)
	if err != nil {
		log.Fatalf("Sleep recommendations failed: %v", err)
	}
	for _, rec := range recs {
		fmt.Printf("Sleep recommendation [%s]: %s\n", rec.Priority, rec.Title)
	}

	if assessment, ok := stressStore.Assessment(); ok {
		fmt.Printf("Stress assessment: %s\n", assessment)
	}

	stressSvc := service.NewStressService(inv)
	if level, ok := stressStore.CurrentLevel(); ok {
		stressRecs, err := stressSvc.Recommendations(ctx, userID, level)
		if err != nil {
			log.Fatalf("Stress recommendations failed: %v", err)
		}
		for _, rec := range stressRecs {
			fmt.Printf("Stress recommendation [%s]: %s\n", rec.Priority, rec.Title)
		}
	}
}
