package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/blaisecz/wellness-tracker/internal/domain"
	"github.com/blaisecz/wellness-tracker/internal/export"
	"github.com/blaisecz/wellness-tracker/internal/fixture"
	"github.com/blaisecz/wellness-tracker/internal/recommend"
	"github.com/blaisecz/wellness-tracker/internal/stats"
)

type handlerFunc func(ctx context.Context, raw json.RawMessage) (any, error)

// FixtureInvoker serves the full operation catalog from in-memory
// collections seeded with development data. It implements the exact
// semantics the real backend implements: creates assign ids and
// timestamps, updates merge partial payloads, deletes are idempotent.
// Safe for concurrent use; the devserver dispatches requests to it
// from multiple goroutines.
type FixtureInvoker struct {
	mu  sync.Mutex
	now func() time.Time

	// latency delays each invocation to mimic a remote call.
	latency time.Duration

	goal domain.NutritionGoal

	sleepRecords     []domain.SleepRecord
	stressRecords    []domain.StressRecord
	exercises        []domain.Exercise
	exercisePlans    []domain.ExercisePlan
	nutritionRecords []domain.NutritionRecord

	handlers map[string]handlerFunc
}

// NewFixtureInvoker creates a seeded invoker using the wall clock.
func NewFixtureInvoker(goal domain.NutritionGoal) *FixtureInvoker {
	f := newFixtureInvoker(goal, time.Now)
	f.Seed()
	return f
}

// NewEmptyFixtureInvoker creates an unseeded invoker with an injectable
// clock, for tests that need deterministic collections and timestamps.
func NewEmptyFixtureInvoker(goal domain.NutritionGoal, now func() time.Time) *FixtureInvoker {
	return newFixtureInvoker(goal, now)
}

func newFixtureInvoker(goal domain.NutritionGoal, now func() time.Time) *FixtureInvoker {
	f := &FixtureInvoker{
		now:  now,
		goal: goal,
	}
	f.handlers = map[string]handlerFunc{
		MethodGetExercises:            f.getExercises,
		MethodCreateExercise:          f.createExercise,
		MethodUpdateExercise:          f.updateExercise,
		MethodDeleteExercise:          f.deleteExercise,
		MethodGetExercisePlans:        f.getExercisePlans,
		MethodCreateExercisePlan:      f.createExercisePlan,
		MethodUpdateExercisePlan:      f.updateExercisePlan,
		MethodDeleteExercisePlan:      f.deleteExercisePlan,
		MethodCompleteExercisePlan:    f.completeExercisePlan,
		MethodGetExerciseStats:        f.getExerciseStats,
		MethodGetExerciseLibrary:      f.getExerciseLibrary,
		MethodSearchExercises:         f.searchExercises,
		MethodGetTodayExerciseSummary: f.getTodayExerciseSummary,

		MethodGetNutritionRecords:          f.getNutritionRecords,
		MethodCreateNutritionRecord:        f.createNutritionRecord,
		MethodUpdateNutritionRecord:        f.updateNutritionRecord,
		MethodDeleteNutritionRecord:        f.deleteNutritionRecord,
		MethodGetFoodDatabase:              f.getFoodDatabase,
		MethodSearchFoodItems:              f.searchFoodItems,
		MethodGetRestaurantRecommendations: f.getRestaurantRecommendations,
		MethodCalculateNutrition:           f.calculateNutrition,
		MethodGetTodayNutritionSummary:     f.getTodayNutritionSummary,
		MethodExportNutritionData:          f.exportNutritionData,

		MethodGetSleepRecords:         f.getSleepRecords,
		MethodCreateSleepRecord:       f.createSleepRecord,
		MethodUpdateSleepRecord:       f.updateSleepRecord,
		MethodDeleteSleepRecord:       f.deleteSleepRecord,
		MethodGetSleepQualitySummary:  f.getSleepQualitySummary,
		MethodGetWeeklySleepStats:     f.getWeeklySleepStats,
		MethodGetSleepRecommendations: f.getSleepRecommendations,
		MethodAnalyzeSleepPatterns:    f.analyzeSleepPatterns,
		MethodExportSleepData:         f.exportSleepData,

		MethodGetStressRecords:         f.getStressRecords,
		MethodCreateStressRecord:       f.createStressRecord,
		MethodUpdateStressRecord:       f.updateStressRecord,
		MethodDeleteStressRecord:       f.deleteStressRecord,
		MethodGetStressSummary:         f.getStressSummary,
		MethodGetWeeklyStressStats:     f.getWeeklyStressStats,
		MethodGetStressRecommendations: f.getStressRecommendations,
		MethodAnalyzeStressPatterns:    f.analyzeStressPatterns,
		MethodExportStressData:         f.exportStressData,
	}
	return f
}

// Seed loads the development datasets into the collections.
func (f *FixtureInvoker) Seed() {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := f.now()
	userID := fixture.DefaultUserID
	f.sleepRecords = fixture.SleepRecords(userID, now)
	f.stressRecords = fixture.StressRecords(userID, now)
	f.exercises = fixture.Exercises(userID, now)
	f.exercisePlans = fixture.ExercisePlans(userID)
	f.nutritionRecords = fixture.NutritionRecords(userID, now)
}

// SetLatency delays every invocation by d to mimic a remote backend.
func (f *FixtureInvoker) SetLatency(d time.Duration) {
	f.latency = d
}

func (f *FixtureInvoker) Invoke(ctx context.Context, method string, params, result any) error {
	h, ok := f.handlers[method]
	if !ok {
		return fmt.Errorf("unknown method %q: %w", method, domain.ErrInvalidInput)
	}
	if err := f.wait(ctx); err != nil {
		return err
	}

	raw, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("marshal params: %w", err)
	}

	f.mu.Lock()
	out, err := h(ctx, raw)
	f.mu.Unlock()
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}

	buf, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := json.Unmarshal(buf, result); err != nil {
		return fmt.Errorf("decode result: %w", err)
	}
	return nil
}

func (f *FixtureInvoker) wait(ctx context.Context) error {
	if f.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(f.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Exercise handlers

func (f *FixtureInvoker) getExercises(_ context.Context, raw json.RawMessage) (any, error) {
	var p DateRangeParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	start, end, err := parseDateRange(p.StartDate, p.EndDate)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Exercise, 0, len(f.exercises))
	for _, r := range f.exercises {
		if inRange(r.RecordedAt, start, end) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *FixtureInvoker) createExercise(_ context.Context, raw json.RawMessage) (any, error) {
	var p CreateExerciseParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	userID, err := parseUserID(p.UserID)
	if err != nil {
		return nil, err
	}
	now := f.now()
	record := domain.Exercise{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           p.Record.Name,
		Category:       p.Record.Category,
		Duration:       p.Record.Duration,
		Intensity:      p.Record.Intensity,
		CaloriesBurned: p.Record.CaloriesBurned,
		Notes:          p.Record.Notes,
		RecordedAt:     now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	f.exercises = append(f.exercises, record)
	return record, nil
}

func (f *FixtureInvoker) updateExercise(_ context.Context, raw json.RawMessage) (any, error) {
	var p UpdateExerciseParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	for i := range f.exercises {
		if f.exercises[i].ID.String() != p.ID {
			continue
		}
		r := &f.exercises[i]
		if p.Updates.Name != nil {
			r.Name = *p.Updates.Name
		}
		if p.Updates.Category != nil {
			r.Category = *p.Updates.Category
		}
		if p.Updates.Duration != nil {
			r.Duration = *p.Updates.Duration
		}
		if p.Updates.Intensity != nil {
			r.Intensity = *p.Updates.Intensity
		}
		if p.Updates.CaloriesBurned != nil {
			r.CaloriesBurned = *p.Updates.CaloriesBurned
		}
		if p.Updates.Notes != nil {
			r.Notes = *p.Updates.Notes
		}
		r.UpdatedAt = f.now()
		return *r, nil
	}
	return nil, fmt.Errorf("exercise %s: %w", p.ID, domain.ErrNotFound)
}

func (f *FixtureInvoker) deleteExercise(_ context.Context, raw json.RawMessage) (any, error) {
	var p IDParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	for i := range f.exercises {
		if f.exercises[i].ID.String() == p.ID {
			f.exercises = append(f.exercises[:i], f.exercises[i+1:]...)
			break
		}
	}
	return nil, nil
}

func (f *FixtureInvoker) getExercisePlans(_ context.Context, _ json.RawMessage) (any, error) {
	out := make([]domain.ExercisePlan, len(f.exercisePlans))
	copy(out, f.exercisePlans)
	return out, nil
}

func (f *FixtureInvoker) createExercisePlan(_ context.Context, raw json.RawMessage) (any, error) {
	var p CreateExercisePlanParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	userID, err := parseUserID(p.UserID)
	if err != nil {
		return nil, err
	}
	plan := domain.ExercisePlan{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      p.Plan.Name,
		Exercises: p.Plan.Exercises,
		Schedule:  p.Plan.Schedule,
	}
	f.exercisePlans = append(f.exercisePlans, plan)
	return plan, nil
}

func (f *FixtureInvoker) updateExercisePlan(_ context.Context, raw json.RawMessage) (any, error) {
	var p struct {
		ID   string                           `json:"id"`
		Plan domain.CreateExercisePlanRequest `json:"plan"`
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	for i := range f.exercisePlans {
		if f.exercisePlans[i].ID.String() != p.ID {
			continue
		}
		plan := &f.exercisePlans[i]
		plan.Name = p.Plan.Name
		plan.Exercises = p.Plan.Exercises
		plan.Schedule = p.Plan.Schedule
		return *plan, nil
	}
	return nil, fmt.Errorf("exercise plan %s: %w", p.ID, domain.ErrNotFound)
}

func (f *FixtureInvoker) deleteExercisePlan(_ context.Context, raw json.RawMessage) (any, error) {
	var p IDParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	for i := range f.exercisePlans {
		if f.exercisePlans[i].ID.String() == p.ID {
			f.exercisePlans = append(f.exercisePlans[:i], f.exercisePlans[i+1:]...)
			break
		}
	}
	return nil, nil
}

func (f *FixtureInvoker) completeExercisePlan(_ context.Context, raw json.RawMessage) (any, error) {
	var p IDParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	for i := range f.exercisePlans {
		if f.exercisePlans[i].ID.String() == p.ID {
			f.exercisePlans[i].Completed = true
			return f.exercisePlans[i], nil
		}
	}
	return nil, fmt.Errorf("exercise plan %s: %w", p.ID, domain.ErrNotFound)
}

func (f *FixtureInvoker) getExerciseStats(_ context.Context, raw json.RawMessage) (any, error) {
	var p DateRangeParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	start, end, err := parseDateRange(p.StartDate, p.EndDate)
	if err != nil {
		return nil, err
	}

	var totalDuration, totalCalories int
	activeDays := make(map[string]struct{})
	for _, r := range f.exercises {
		if !inRange(r.RecordedAt, start, end) {
			continue
		}
		totalDuration += r.Duration
		totalCalories += r.CaloriesBurned
		activeDays[r.RecordedAt.Format("2006-01-02")] = struct{}{}
	}
	days := len(activeDays)
	divisor := days
	if divisor == 0 {
		divisor = 1
	}
	return domain.ExerciseStats{
		TotalDuration:   totalDuration,
		TotalCalories:   totalCalories,
		ExerciseDays:    days,
		AverageDuration: float64(totalDuration) / float64(divisor),
	}, nil
}

func (f *FixtureInvoker) getExerciseLibrary(_ context.Context, _ json.RawMessage) (any, error) {
	return fixture.ExerciseLibrary(), nil
}

func (f *FixtureInvoker) searchExercises(_ context.Context, raw json.RawMessage) (any, error) {
	var p SearchExercisesParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	q := strings.ToLower(p.Query)
	out := make([]domain.LibraryExercise, 0)
	for _, e := range fixture.ExerciseLibrary() {
		if p.Category != "" && e.Category != p.Category {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(e.Name), q) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *FixtureInvoker) getTodayExerciseSummary(_ context.Context, _ json.RawMessage) (any, error) {
	return stats.TodayExerciseSummary(f.exercises, f.exercisePlans, f.now()), nil
}

// Nutrition handlers

func (f *FixtureInvoker) getNutritionRecords(_ context.Context, raw json.RawMessage) (any, error) {
	var p DateParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	out := make([]domain.NutritionRecord, 0, len(f.nutritionRecords))
	if p.Date == "" {
		return append(out, f.nutritionRecords...), nil
	}
	date, err := parseDate(p.Date)
	if err != nil {
		return nil, err
	}
	for _, r := range f.nutritionRecords {
		if stats.SameDay(r.RecordedAt, date) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *FixtureInvoker) createNutritionRecord(_ context.Context, raw json.RawMessage) (any, error) {
	var p CreateNutritionRecordParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	userID, err := parseUserID(p.UserID)
	if err != nil {
		return nil, err
	}
	now := f.now()
	record := domain.NutritionRecord{
		ID:          uuid.New(),
		UserID:      userID,
		FoodItemID:  p.Record.FoodItemID,
		FoodName:    p.Record.FoodName,
		MealType:    p.Record.MealType,
		ServingSize: p.Record.ServingSize,
		Quantity:    p.Record.Quantity,
		Calories:    p.Record.Calories,
		Protein:     p.Record.Protein,
		Carbs:       p.Record.Carbs,
		Fat:         p.Record.Fat,
		Notes:       p.Record.Notes,
		RecordedAt:  now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	f.nutritionRecords = append(f.nutritionRecords, record)
	return record, nil
}

func (f *FixtureInvoker) updateNutritionRecord(_ context.Context, raw json.RawMessage) (any, error) {
	var p UpdateNutritionRecordParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	for i := range f.nutritionRecords {
		if f.nutritionRecords[i].ID.String() != p.ID {
			continue
		}
		r := &f.nutritionRecords[i]
		if p.Updates.FoodName != nil {
			r.FoodName = *p.Updates.FoodName
		}
		if p.Updates.MealType != nil {
			r.MealType = *p.Updates.MealType
		}
		if p.Updates.ServingSize != nil {
			r.ServingSize = *p.Updates.ServingSize
		}
		if p.Updates.Quantity != nil {
			r.Quantity = *p.Updates.Quantity
		}
		if p.Updates.Calories != nil {
			r.Calories = *p.Updates.Calories
		}
		if p.Updates.Protein != nil {
			r.Protein = *p.Updates.Protein
		}
		if p.Updates.Carbs != nil {
			r.Carbs = *p.Updates.Carbs
		}
		if p.Updates.Fat != nil {
			r.Fat = *p.Updates.Fat
		}
		if p.Updates.Notes != nil {
			r.Notes = *p.Updates.Notes
		}
		r.UpdatedAt = f.now()
		return *r, nil
	}
	return nil, fmt.Errorf("nutrition record %s: %w", p.ID, domain.ErrNotFound)
}

func (f *FixtureInvoker) deleteNutritionRecord(_ context.Context, raw json.RawMessage) (any, error) {
	var p IDParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	for i := range f.nutritionRecords {
		if f.nutritionRecords[i].ID.String() == p.ID {
			f.nutritionRecords = append(f.nutritionRecords[:i], f.nutritionRecords[i+1:]...)
			break
		}
	}
	return nil, nil
}

func (f *FixtureInvoker) getFoodDatabase(_ context.Context, _ json.RawMessage) (any, error) {
	return fixture.FoodDatabase(), nil
}

func (f *FixtureInvoker) searchFoodItems(_ context.Context, raw json.RawMessage) (any, error) {
	var p SearchFoodItemsParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	items := fixture.SearchFood(p.Query)
	if p.Limit > 0 && len(items) > p.Limit {
		items = items[:p.Limit]
	}
	return items, nil
}

func (f *FixtureInvoker) getRestaurantRecommendations(_ context.Context, raw json.RawMessage) (any, error) {
	var p RestaurantParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	return fixture.RestaurantGuide(p.RestaurantType), nil
}

func (f *FixtureInvoker) calculateNutrition(_ context.Context, raw json.RawMessage) (any, error) {
	var p CalculateNutritionParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	name := strings.ToLower(p.FoodName)
	for _, item := range fixture.FoodDatabase() {
		if strings.ToLower(item.Name) != name {
			continue
		}
		return domain.NutritionFacts{
			Calories: item.Calories * p.Quantity,
			Protein:  item.Protein * p.Quantity,
			Carbs:    item.Carbs * p.Quantity,
			Fat:      item.Fat * p.Quantity,
		}, nil
	}
	return nil, fmt.Errorf("food %q: %w", p.FoodName, domain.ErrNotFound)
}

func (f *FixtureInvoker) getTodayNutritionSummary(_ context.Context, _ json.RawMessage) (any, error) {
	now := f.now()
	var today []domain.NutritionRecord
	for _, r := range f.nutritionRecords {
		if stats.SameDay(r.RecordedAt, now) {
			today = append(today, r)
		}
	}
	return stats.DailyNutrition(today, stats.Midnight(now), f.goal), nil
}

func (f *FixtureInvoker) exportNutritionData(_ context.Context, raw json.RawMessage) (any, error) {
	var p ExportParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	var (
		data string
		err  error
	)
	switch p.Format {
	case "csv":
		data, err = export.NutritionCSV(f.nutritionRecords)
	default:
		data, err = export.JSON(f.nutritionRecords)
	}
	if err != nil {
		return nil, err
	}
	return ExportResult{Data: data}, nil
}

// Sleep handlers

func (f *FixtureInvoker) getSleepRecords(_ context.Context, raw json.RawMessage) (any, error) {
	var p DateRangeParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	start, end, err := parseDateRange(p.StartDate, p.EndDate)
	if err != nil {
		return nil, err
	}
	out := make([]domain.SleepRecord, 0, len(f.sleepRecords))
	for _, r := range f.sleepRecords {
		if inRange(r.Bedtime, start, end) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *FixtureInvoker) createSleepRecord(_ context.Context, raw json.RawMessage) (any, error) {
	var p CreateSleepRecordParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	userID, err := parseUserID(p.UserID)
	if err != nil {
		return nil, err
	}
	now := f.now()
	record := domain.SleepRecord{
		ID:         uuid.New(),
		UserID:     userID,
		Bedtime:    p.Record.Bedtime,
		WakeupTime: p.Record.WakeupTime,
		Duration:   p.Record.Duration,
		Quality:    p.Record.Quality,
		Factors:    p.Record.Factors,
		Notes:      p.Record.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	f.sleepRecords = append(f.sleepRecords, record)
	return record, nil
}

func (f *FixtureInvoker) updateSleepRecord(_ context.Context, raw json.RawMessage) (any, error) {
	var p UpdateSleepRecordParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	for i := range f.sleepRecords {
		if f.sleepRecords[i].ID.String() != p.ID {
			continue
		}
		r := &f.sleepRecords[i]
		if p.Updates.Bedtime != nil {
			r.Bedtime = *p.Updates.Bedtime
		}
		if p.Updates.WakeupTime != nil {
			r.WakeupTime = *p.Updates.WakeupTime
		}
		if p.Updates.Duration != nil {
			r.Duration = *p.Updates.Duration
		}
		if p.Updates.Quality != nil {
			r.Quality = *p.Updates.Quality
		}
		if p.Updates.Factors != nil {
			r.Factors = *p.Updates.Factors
		}
		if p.Updates.Notes != nil {
			r.Notes = *p.Updates.Notes
		}
		r.UpdatedAt = f.now()
		return *r, nil
	}
	return nil, fmt.Errorf("sleep record %s: %w", p.ID, domain.ErrNotFound)
}

func (f *FixtureInvoker) deleteSleepRecord(_ context.Context, raw json.RawMessage) (any, error) {
	var p IDParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	for i := range f.sleepRecords {
		if f.sleepRecords[i].ID.String() == p.ID {
			f.sleepRecords = append(f.sleepRecords[:i], f.sleepRecords[i+1:]...)
			break
		}
	}
	return nil, nil
}

func (f *FixtureInvoker) getSleepQualitySummary(_ context.Context, raw json.RawMessage) (any, error) {
	var p DateParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	date := f.now()
	if p.Date != "" {
		parsed, err := parseDate(p.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	}
	for _, r := range f.sleepRecords {
		if !stats.SameDay(r.Bedtime, date) {
			continue
		}
		factors := make([]domain.SleepFactorType, len(r.Factors))
		for i, fac := range r.Factors {
			factors[i] = fac.Type
		}
		return domain.SleepQualitySummary{
			Date:     stats.Midnight(date),
			Duration: r.Duration,
			Quality:  float64(r.Quality),
			Factors:  factors,
		}, nil
	}
	return nil, fmt.Errorf("sleep record for %s: %w", p.Date, domain.ErrNotFound)
}

func (f *FixtureInvoker) getWeeklySleepStats(_ context.Context, raw json.RawMessage) (any, error) {
	var p WeekStartParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	ref := f.now()
	if p.StartDate != "" {
		parsed, err := parseDate(p.StartDate)
		if err != nil {
			return nil, err
		}
		ref = parsed.AddDate(0, 0, 7)
	}
	return stats.WeeklySleep(f.sleepRecords, ref), nil
}

func (f *FixtureInvoker) getSleepRecommendations(_ context.Context, _ json.RawMessage) (any, error) {
	weekly := stats.WeeklySleep(f.sleepRecords, f.now())
	return recommend.ForSleep(weekly), nil
}

func (f *FixtureInvoker) analyzeSleepPatterns(_ context.Context, _ json.RawMessage) (any, error) {
	return fixture.SleepPatterns(), nil
}

func (f *FixtureInvoker) exportSleepData(_ context.Context, raw json.RawMessage) (any, error) {
	var p ExportParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	var (
		data string
		err  error
	)
	switch p.Format {
	case "csv":
		data, err = export.SleepCSV(f.sleepRecords)
	default:
		data, err = export.JSON(f.sleepRecords)
	}
	if err != nil {
		return nil, err
	}
	return ExportResult{Data: data}, nil
}

// Stress handlers

func (f *FixtureInvoker) getStressRecords(_ context.Context, raw json.RawMessage) (any, error) {
	var p StressRecordsParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	start, end, err := parseDateRange(p.StartDate, p.EndDate)
	if err != nil {
		return nil, err
	}
	out := make([]domain.StressRecord, 0, len(f.stressRecords))
	for _, r := range f.stressRecords {
		if inRange(r.Timestamp, start, end) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *FixtureInvoker) createStressRecord(_ context.Context, raw json.RawMessage) (any, error) {
	var p CreateStressRecordParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	userID, err := parseUserID(p.UserID)
	if err != nil {
		return nil, err
	}
	now := f.now()
	record := domain.StressRecord{
		ID:               uuid.New(),
		UserID:           userID,
		StressLevel:      p.Record.StressLevel,
		Timestamp:        now,
		Sources:          p.Record.Sources,
		PhysicalSymptoms: p.Record.PhysicalSymptoms,
		CopingStrategies: p.Record.CopingStrategies,
		Notes:            p.Record.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	f.stressRecords = append(f.stressRecords, record)
	return record, nil
}

func (f *FixtureInvoker) updateStressRecord(_ context.Context, raw json.RawMessage) (any, error) {
	var p UpdateStressRecordParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	for i := range f.stressRecords {
		if f.stressRecords[i].ID.String() != p.ID {
			continue
		}
		r := &f.stressRecords[i]
		if p.Updates.StressLevel != nil {
			r.StressLevel = *p.Updates.StressLevel
		}
		if p.Updates.Sources != nil {
			r.Sources = *p.Updates.Sources
		}
		if p.Updates.PhysicalSymptoms != nil {
			r.PhysicalSymptoms = *p.Updates.PhysicalSymptoms
		}
		if p.Updates.CopingStrategies != nil {
			r.CopingStrategies = *p.Updates.CopingStrategies
		}
		if p.Updates.Notes != nil {
			r.Notes = *p.Updates.Notes
		}
		r.UpdatedAt = f.now()
		return *r, nil
	}
	return nil, fmt.Errorf("stress record %s: %w", p.ID, domain.ErrNotFound)
}

func (f *FixtureInvoker) deleteStressRecord(_ context.Context, raw json.RawMessage) (any, error) {
	var p IDParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	for i := range f.stressRecords {
		if f.stressRecords[i].ID.String() == p.ID {
			f.stressRecords = append(f.stressRecords[:i], f.stressRecords[i+1:]...)
			break
		}
	}
	return nil, nil
}

func (f *FixtureInvoker) getStressSummary(_ context.Context, raw json.RawMessage) (any, error) {
	var p StressSummaryParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	return stats.StressSummaryFor(f.stressRecords, p.Period, f.now()), nil
}

func (f *FixtureInvoker) getWeeklyStressStats(_ context.Context, raw json.RawMessage) (any, error) {
	var p WeeklyStressParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	ref := f.now()
	if p.WeekStart != "" {
		parsed, err := parseDate(p.WeekStart)
		if err != nil {
			return nil, err
		}
		ref = parsed.AddDate(0, 0, 7)
	}
	return stats.WeeklyStress(f.stressRecords, ref), nil
}

func (f *FixtureInvoker) getStressRecommendations(_ context.Context, raw json.RawMessage) (any, error) {
	var p StressRecommendationsParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	weekly := stats.WeeklyStress(f.stressRecords, f.now())
	return recommend.ForStress(p.StressLevel, weekly), nil
}

func (f *FixtureInvoker) analyzeStressPatterns(_ context.Context, _ json.RawMessage) (any, error) {
	return fixture.StressPatterns(), nil
}

func (f *FixtureInvoker) exportStressData(_ context.Context, raw json.RawMessage) (any, error) {
	var p ExportParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	var (
		data string
		err  error
	)
	switch p.Format {
	case "csv":
		data, err = export.StressCSV(f.stressRecords)
	default:
		data, err = export.JSON(f.stressRecords)
	}
	if err != nil {
		return nil, err
	}
	return ExportResult{Data: data}, nil
}

// Helpers

func parseUserID(s string) (uuid.UUID, error) {
	if s == "" {
		return fixture.DefaultUserID, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("user id %q: %w", s, domain.ErrInvalidInput)
	}
	return id, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: %w", s, domain.ErrInvalidInput)
	}
	return t, nil
}

func parseDateRange(start, end string) (time.Time, time.Time, error) {
	var from, to time.Time
	if start != "" {
		parsed, err := parseDate(start)
		if err != nil {
			return from, to, err
		}
		from = parsed
	}
	if end != "" {
		parsed, err := parseDate(end)
		if err != nil {
			return from, to, err
		}
		to = parsed
	}
	return from, to, nil
}

// inRange treats zero bounds as open.
func inRange(t, from, to time.Time) bool {
	if !from.IsZero() && t.Before(from) {
		return false
	}
	if !to.IsZero() && t.After(to) {
		return false
	}
	return true
}
