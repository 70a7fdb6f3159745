package backend

import (
	"github.com/blaisecz/wellness-tracker/internal/domain"
)

// Dates cross the boundary as RFC3339 strings; helpers for building
// them live in the service layer.

// DateParams scopes an operation to one calendar date.
type DateParams struct {
	Date string `json:"date"`
}

// DateRangeParams scopes an operation to a closed date range.
type DateRangeParams struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// IDParams addresses one record.
type IDParams struct {
	ID string `json:"id"`
}

// ExportParams selects a range and output format for an export.
type ExportParams struct {
	UserID    string `json:"user_id,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Format    string `json:"format"`
}

// Exercise

type CreateExerciseParams struct {
	UserID string                       `json:"user_id"`
	Record domain.CreateExerciseRequest `json:"record"`
}

type UpdateExerciseParams struct {
	ID      string                       `json:"id"`
	Updates domain.UpdateExerciseRequest `json:"updates"`
}

type CreateExercisePlanParams struct {
	UserID string                           `json:"user_id"`
	Plan   domain.CreateExercisePlanRequest `json:"plan"`
}

type SearchExercisesParams struct {
	Query    string `json:"query"`
	Category string `json:"category,omitempty"`
}

// Nutrition

type CreateNutritionRecordParams struct {
	UserID string                              `json:"user_id"`
	Record domain.CreateNutritionRecordRequest `json:"record"`
}

type UpdateNutritionRecordParams struct {
	ID      string                              `json:"id"`
	Updates domain.UpdateNutritionRecordRequest `json:"updates"`
}

type SearchFoodItemsParams struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

type RestaurantParams struct {
	RestaurantType string `json:"restaurant_type"`
}

type CalculateNutritionParams struct {
	FoodName string  `json:"food_name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Sleep

type CreateSleepRecordParams struct {
	UserID string                          `json:"user_id"`
	Record domain.CreateSleepRecordRequest `json:"record"`
}

type UpdateSleepRecordParams struct {
	ID      string                          `json:"id"`
	Updates domain.UpdateSleepRecordRequest `json:"updates"`
}

type WeekStartParams struct {
	StartDate string `json:"start_date"`
}

type AnalyzePatternsParams struct {
	UserID string `json:"user_id,omitempty"`
	Days   int    `json:"days"`
}

// Stress

type StressRecordsParams struct {
	UserID    string `json:"user_id"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

type CreateStressRecordParams struct {
	UserID string                           `json:"user_id"`
	Record domain.CreateStressRecordRequest `json:"record"`
}

type UpdateStressRecordParams struct {
	ID      string                           `json:"id"`
	Updates domain.UpdateStressRecordRequest `json:"updates"`
}

type StressSummaryParams struct {
	UserID string               `json:"user_id"`
	Period domain.SummaryPeriod `json:"period"`
}

type WeeklyStressParams struct {
	UserID    string `json:"user_id"`
	WeekStart string `json:"week_start"`
}

type StressRecommendationsParams struct {
	UserID      string `json:"user_id"`
	StressLevel int    `json:"stress_level"`
}

// ExportResult wraps an exported payload as one opaque text blob.
type ExportResult struct {
	Data string `json:"data"`
}
