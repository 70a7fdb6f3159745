package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/blaisecz/wellness-tracker/internal/domain"
)

// mockSleepService plays back canned collections and failures.
type mockSleepService struct {
	records []domain.SleepRecord
	err     error

	deleteCalls int
	updateCalls int
}

func (m *mockSleepService) Records(ctx context.Context, from, to time.Time) ([]domain.SleepRecord, error) {
	if m.err != nil {
		return []domain.SleepRecord{}, m.err
	}
	return m.records, nil
}

func (m *mockSleepService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	now := time.Now()
	return &domain.SleepRecord{
		ID:         uuid.New(),
		UserID:     userID,
		Bedtime:    req.Bedtime,
		WakeupTime: req.WakeupTime,
		Duration:   req.Duration,
		Quality:    req.Quality,
		Factors:    req.Factors,
		Notes:      req.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

func (m *mockSleepService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateSleepRecordRequest) (*domain.SleepRecord, error) {
	m.updateCalls++
	if m.err != nil {
		return nil, m.err
	}
	record := domain.SleepRecord{ID: id, UpdatedAt: time.Now()}
	if req.Quality != nil {
		record.Quality = *req.Quality
	}
	if req.Duration != nil {
		record.Duration = *req.Duration
	}
	return &record, nil
}

func (m *mockSleepService) Delete(ctx context.Context, id uuid.UUID) error {
	m.deleteCalls++
	return m.err
}

func (m *mockSleepService) QualitySummary(ctx context.Context, date time.Time) (*domain.SleepQualitySummary, error) {
	return &domain.SleepQualitySummary{}, m.err
}

func (m *mockSleepService) WeeklyStats(ctx context.Context, weekStart time.Time) (*domain.WeeklySleepStats, error) {
	return &domain.WeeklySleepStats{}, m.err
}

func (m *mockSleepService) Recommendations(ctx context.Context) ([]domain.SleepRecommendation, error) {
	return nil, m.err
}

func (m *mockSleepService) AnalyzePatterns(ctx context.Context, days int) (*domain.SleepPatternAnalysis, error) {
	return &domain.SleepPatternAnalysis{}, m.err
}

func (m *mockSleepService) Export(ctx context.Context, format string) (string, error) {
	return "", m.err
}

// mockExerciseService plays back canned collections and failures.
type mockExerciseService struct {
	records []domain.Exercise
	plans   []domain.ExercisePlan
	err     error

	deleteCalls int
}

func (m *mockExerciseService) List(ctx context.Context, from, to time.Time) ([]domain.Exercise, error) {
	if m.err != nil {
		return []domain.Exercise{}, m.err
	}
	return m.records, nil
}

func (m *mockExerciseService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateExerciseRequest) (*domain.Exercise, error) {
	if m.err != nil {
		return nil, m.err
	}
	now := time.Now()
	return &domain.Exercise{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           req.Name,
		Category:       req.Category,
		Duration:       req.Duration,
		Intensity:      req.Intensity,
		CaloriesBurned: req.CaloriesBurned,
		RecordedAt:     now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

func (m *mockExerciseService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateExerciseRequest) (*domain.Exercise, error) {
	if m.err != nil {
		return nil, m.err
	}
	record := domain.Exercise{ID: id, UpdatedAt: time.Now()}
	if req.Duration != nil {
		record.Duration = *req.Duration
	}
	return &record, nil
}

func (m *mockExerciseService) Delete(ctx context.Context, id uuid.UUID) error {
	m.deleteCalls++
	return m.err
}

func (m *mockExerciseService) Plans(ctx context.Context) ([]domain.ExercisePlan, error) {
	if m.err != nil {
		return []domain.ExercisePlan{}, m.err
	}
	return m.plans, nil
}

func (m *mockExerciseService) CreatePlan(ctx context.Context, userID uuid.UUID, req *domain.CreateExercisePlanRequest) (*domain.ExercisePlan, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.ExercisePlan{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      req.Name,
		Exercises: req.Exercises,
		Schedule:  req.Schedule,
	}, nil
}

func (m *mockExerciseService) UpdatePlan(ctx context.Context, id uuid.UUID, req *domain.CreateExercisePlanRequest) (*domain.ExercisePlan, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.ExercisePlan{ID: id, Name: req.Name, Exercises: req.Exercises, Schedule: req.Schedule}, nil
}

func (m *mockExerciseService) DeletePlan(ctx context.Context, id uuid.UUID) error {
	return m.err
}

func (m *mockExerciseService) CompletePlan(ctx context.Context, id uuid.UUID) (*domain.ExercisePlan, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.ExercisePlan{ID: id, Completed: true}, nil
}

func (m *mockExerciseService) Stats(ctx context.Context, from, to time.Time) (*domain.ExerciseStats, error) {
	return &domain.ExerciseStats{}, m.err
}

func (m *mockExerciseService) Library(ctx context.Context) ([]domain.LibraryExercise, error) {
	return nil, m.err
}

func (m *mockExerciseService) Search(ctx context.Context, query, category string) ([]domain.LibraryExercise, error) {
	return nil, m.err
}

func (m *mockExerciseService) TodaySummary(ctx context.Context) (*domain.TodayExerciseSummary, error) {
	return &domain.TodayExerciseSummary{}, m.err
}

// mockStressService plays back canned collections and failures.
type mockStressService struct {
	records []domain.StressRecord
	err     error
}

func (m *mockStressService) Records(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.StressRecord, error) {
	if m.err != nil {
		return []domain.StressRecord{}, m.err
	}
	return m.records, nil
}

func (m *mockStressService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateStressRecordRequest) (*domain.StressRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	now := time.Now()
	return &domain.StressRecord{
		ID:               uuid.New(),
		UserID:           userID,
		StressLevel:      req.StressLevel,
		Timestamp:        now,
		Sources:          req.Sources,
		PhysicalSymptoms: req.PhysicalSymptoms,
		CopingStrategies: req.CopingStrategies,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

func (m *mockStressService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateStressRecordRequest) (*domain.StressRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	record := domain.StressRecord{ID: id, UpdatedAt: time.Now()}
	if req.StressLevel != nil {
		record.StressLevel = *req.StressLevel
	}
	return &record, nil
}

func (m *mockStressService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.err
}

func (m *mockStressService) Summary(ctx context.Context, userID uuid.UUID, period domain.SummaryPeriod) (*domain.StressSummary, error) {
	return &domain.StressSummary{}, m.err
}

func (m *mockStressService) WeeklyStats(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*domain.WeeklyStressStats, error) {
	return &domain.WeeklyStressStats{}, m.err
}

func (m *mockStressService) Recommendations(ctx context.Context, userID uuid.UUID, level int) ([]domain.StressRecommendation, error) {
	return nil, m.err
}

func (m *mockStressService) AnalyzePatterns(ctx context.Context, userID uuid.UUID, days int) (*domain.StressPatternAnalysis, error) {
	return &domain.StressPatternAnalysis{}, m.err
}

func (m *mockStressService) Export(ctx context.Context, format string) (string, error) {
	return "", m.err
}

// mockNutritionService plays back canned collections and failures.
type mockNutritionService struct {
	records []domain.NutritionRecord
	err     error

	deleteCalls int
}

func (m *mockNutritionService) Records(ctx context.Context, date time.Time) ([]domain.NutritionRecord, error) {
	if m.err != nil {
		return []domain.NutritionRecord{}, m.err
	}
	return m.records, nil
}

func (m *mockNutritionService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateNutritionRecordRequest) (*domain.NutritionRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	now := time.Now()
	return &domain.NutritionRecord{
		ID:         uuid.New(),
		UserID:     userID,
		FoodName:   req.FoodName,
		MealType:   req.MealType,
		Quantity:   req.Quantity,
		Calories:   req.Calories,
		Protein:    req.Protein,
		Carbs:      req.Carbs,
		Fat:        req.Fat,
		RecordedAt: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

func (m *mockNutritionService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateNutritionRecordRequest) (*domain.NutritionRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	record := domain.NutritionRecord{ID: id, UpdatedAt: time.Now()}
	if req.Calories != nil {
		record.Calories = *req.Calories
	}
	return &record, nil
}

func (m *mockNutritionService) Delete(ctx context.Context, id uuid.UUID) error {
	m.deleteCalls++
	return m.err
}

func (m *mockNutritionService) FoodDatabase(ctx context.Context) ([]domain.FoodItem, error) {
	return nil, m.err
}

func (m *mockNutritionService) SearchFood(ctx context.Context, query string, limit int) ([]domain.FoodItem, error) {
	return nil, m.err
}

func (m *mockNutritionService) RestaurantRecommendations(ctx context.Context, restaurantType string) (*domain.RestaurantRecommendation, error) {
	return &domain.RestaurantRecommendation{}, m.err
}

func (m *mockNutritionService) CalculateNutrition(ctx context.Context, foodName string, quantity float64, unit string) (*domain.NutritionFacts, error) {
	return &domain.NutritionFacts{}, m.err
}

func (m *mockNutritionService) TodaySummary(ctx context.Context) (*domain.DailyNutritionSummary, error) {
	return &domain.DailyNutritionSummary{}, m.err
}

func (m *mockNutritionService) Export(ctx context.Context, from, to time.Time, format string) (string, error) {
	return "", m.err
}

func intPtr(v int) *int { return &v }
