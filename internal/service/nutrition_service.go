package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/blaisecz/wellness-tracker/internal/backend"
	"github.com/blaisecz/wellness-tracker/internal/domain"
	"github.com/blaisecz/wellness-tracker/internal/validation"
)

type NutritionService interface {
	Records(ctx context.Context, date time.Time) ([]domain.NutritionRecord, error)
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateNutritionRecordRequest) (*domain.NutritionRecord, error)
	Update(ctx context.Context, id uuid.UUID, req *domain.UpdateNutritionRecordRequest) (*domain.NutritionRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error

	FoodDatabase(ctx context.Context) ([]domain.FoodItem, error)
	SearchFood(ctx context.Context, query string, limit int) ([]domain.FoodItem, error)
	RestaurantRecommendations(ctx context.Context, restaurantType string) (*domain.RestaurantRecommendation, error)
	CalculateNutrition(ctx context.Context, foodName string, quantity float64, unit string) (*domain.NutritionFacts, error)
	TodaySummary(ctx context.Context) (*domain.DailyNutritionSummary, error)
	Export(ctx context.Context, from, to time.Time, format string) (string, error)
}

type nutritionService struct {
	inv backend.Invoker
}

func NewNutritionService(inv backend.Invoker) NutritionService {
	return &nutritionService{inv: inv}
}

func (s *nutritionService) Records(ctx context.Context, date time.Time) ([]domain.NutritionRecord, error) {
	var records []domain.NutritionRecord
	params := backend.DateParams{Date: fmtDate(date)}
	if err := read(ctx, s.inv, backend.MethodGetNutritionRecords, params, &records); err != nil {
		return []domain.NutritionRecord{}, err
	}
	return records, nil
}

func (s *nutritionService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateNutritionRecordRequest) (*domain.NutritionRecord, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	var record domain.NutritionRecord
	params := backend.CreateNutritionRecordParams{UserID: userID.String(), Record: *req}
	if err := write(ctx, s.inv, backend.MethodCreateNutritionRecord, params, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *nutritionService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateNutritionRecordRequest) (*domain.NutritionRecord, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	var record domain.NutritionRecord
	params := backend.UpdateNutritionRecordParams{ID: id.String(), Updates: *req}
	if err := write(ctx, s.inv, backend.MethodUpdateNutritionRecord, params, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *nutritionService) Delete(ctx context.Context, id uuid.UUID) error {
	params := backend.IDParams{ID: id.String()}
	return write(ctx, s.inv, backend.MethodDeleteNutritionRecord, params, nil)
}

func (s *nutritionService) FoodDatabase(ctx context.Context) ([]domain.FoodItem, error) {
	var items []domain.FoodItem
	if err := read(ctx, s.inv, backend.MethodGetFoodDatabase, nil, &items); err != nil {
		return []domain.FoodItem{}, err
	}
	return items, nil
}

func (s *nutritionService) SearchFood(ctx context.Context, query string, limit int) ([]domain.FoodItem, error) {
	var items []domain.FoodItem
	params := backend.SearchFoodItemsParams{Query: query, Limit: limit}
	if err := read(ctx, s.inv, backend.MethodSearchFoodItems, params, &items); err != nil {
		return []domain.FoodItem{}, err
	}
	return items, nil
}

func (s *nutritionService) RestaurantRecommendations(ctx context.Context, restaurantType string) (*domain.RestaurantRecommendation, error) {
	var rec domain.RestaurantRecommendation
	params := backend.RestaurantParams{RestaurantType: restaurantType}
	if err := read(ctx, s.inv, backend.MethodGetRestaurantRecommendations, params, &rec); err != nil {
		return &domain.RestaurantRecommendation{}, err
	}
	return &rec, nil
}

func (s *nutritionService) CalculateNutrition(ctx context.Context, foodName string, quantity float64, unit string) (*domain.NutritionFacts, error) {
	var facts domain.NutritionFacts
	params := backend.CalculateNutritionParams{FoodName: foodName, Quantity: quantity, Unit: unit}
	if err := read(ctx, s.inv, backend.MethodCalculateNutrition, params, &facts); err != nil {
		return &domain.NutritionFacts{}, err
	}
	return &facts, nil
}

func (s *nutritionService) TodaySummary(ctx context.Context) (*domain.DailyNutritionSummary, error) {
	var summary domain.DailyNutritionSummary
	if err := read(ctx, s.inv, backend.MethodGetTodayNutritionSummary, nil, &summary); err != nil {
		return &domain.DailyNutritionSummary{}, err
	}
	return &summary, nil
}

func (s *nutritionService) Export(ctx context.Context, from, to time.Time, format string) (string, error) {
	var result backend.ExportResult
	params := backend.ExportParams{StartDate: fmtDate(from), EndDate: fmtDate(to), Format: format}
	if err := read(ctx, s.inv, backend.MethodExportNutritionData, params, &result); err != nil {
		return "", err
	}
	return result.Data, nil
}
