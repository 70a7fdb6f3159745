package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/blaisecz/wellness-tracker/internal/backend"
	"github.com/blaisecz/wellness-tracker/internal/domain"
	"github.com/blaisecz/wellness-tracker/internal/validation"
)

type ExerciseService interface {
	List(ctx context.Context, from, to time.Time) ([]domain.Exercise, error)
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateExerciseRequest) (*domain.Exercise, error)
	Update(ctx context.Context, id uuid.UUID, req *domain.UpdateExerciseRequest) (*domain.Exercise, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Plans(ctx context.Context) ([]domain.ExercisePlan, error)
	CreatePlan(ctx context.Context, userID uuid.UUID, req *domain.CreateExercisePlanRequest) (*domain.ExercisePlan, error)
	UpdatePlan(ctx context.Context, id uuid.UUID, req *domain.CreateExercisePlanRequest) (*domain.ExercisePlan, error)
	DeletePlan(ctx context.Context, id uuid.UUID) error
	CompletePlan(ctx context.Context, id uuid.UUID) (*domain.ExercisePlan, error)

	Stats(ctx context.Context, from, to time.Time) (*domain.ExerciseStats, error)
	Library(ctx context.Context) ([]domain.LibraryExercise, error)
	Search(ctx context.Context, query, category string) ([]domain.LibraryExercise, error)
	TodaySummary(ctx context.Context) (*domain.TodayExerciseSummary, error)
}

type exerciseService struct {
	inv backend.Invoker
}

func NewExerciseService(inv backend.Invoker) ExerciseService {
	return &exerciseService{inv: inv}
}

func (s *exerciseService) List(ctx context.Context, from, to time.Time) ([]domain.Exercise, error) {
	var records []domain.Exercise
	params := backend.DateRangeParams{StartDate: fmtDate(from), EndDate: fmtDate(to)}
	if err := read(ctx, s.inv, backend.MethodGetExercises, params, &records); err != nil {
		return []domain.Exercise{}, err
	}
	return records, nil
}

func (s *exerciseService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateExerciseRequest) (*domain.Exercise, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	var record domain.Exercise
	params := backend.CreateExerciseParams{UserID: userID.String(), Record: *req}
	if err := write(ctx, s.inv, backend.MethodCreateExercise, params, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *exerciseService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateExerciseRequest) (*domain.Exercise, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	var record domain.Exercise
	params := backend.UpdateExerciseParams{ID: id.String(), Updates: *req}
	if err := write(ctx, s.inv, backend.MethodUpdateExercise, params, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *exerciseService) Delete(ctx context.Context, id uuid.UUID) error {
	params := backend.IDParams{ID: id.String()}
	return write(ctx, s.inv, backend.MethodDeleteExercise, params, nil)
}

func (s *exerciseService) Plans(ctx context.Context) ([]domain.ExercisePlan, error) {
	var plans []domain.ExercisePlan
	if err := read(ctx, s.inv, backend.MethodGetExercisePlans, nil, &plans); err != nil {
		return []domain.ExercisePlan{}, err
	}
	return plans, nil
}

func (s *exerciseService) CreatePlan(ctx context.Context, userID uuid.UUID, req *domain.CreateExercisePlanRequest) (*domain.ExercisePlan, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	var plan domain.ExercisePlan
	params := backend.CreateExercisePlanParams{UserID: userID.String(), Plan: *req}
	if err := write(ctx, s.inv, backend.MethodCreateExercisePlan, params, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *exerciseService) UpdatePlan(ctx context.Context, id uuid.UUID, req *domain.CreateExercisePlanRequest) (*domain.ExercisePlan, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	var plan domain.ExercisePlan
	params := struct {
		ID   string                           `json:"id"`
		Plan domain.CreateExercisePlanRequest `json:"plan"`
	}{ID: id.String(), Plan: *req}
	if err := write(ctx, s.inv, backend.MethodUpdateExercisePlan, params, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *exerciseService) DeletePlan(ctx context.Context, id uuid.UUID) error {
	params := backend.IDParams{ID: id.String()}
	return write(ctx, s.inv, backend.MethodDeleteExercisePlan, params, nil)
}

func (s *exerciseService) CompletePlan(ctx context.Context, id uuid.UUID) (*domain.ExercisePlan, error) {
	var plan domain.ExercisePlan
	params := backend.IDParams{ID: id.String()}
	if err := write(ctx, s.inv, backend.MethodCompleteExercisePlan, params, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *exerciseService) Stats(ctx context.Context, from, to time.Time) (*domain.ExerciseStats, error) {
	var stats domain.ExerciseStats
	params := backend.DateRangeParams{StartDate: fmtDate(from), EndDate: fmtDate(to)}
	if err := read(ctx, s.inv, backend.MethodGetExerciseStats, params, &stats); err != nil {
		return &domain.ExerciseStats{}, err
	}
	return &stats, nil
}

func (s *exerciseService) Library(ctx context.Context) ([]domain.LibraryExercise, error) {
	var library []domain.LibraryExercise
	if err := read(ctx, s.inv, backend.MethodGetExerciseLibrary, nil, &library); err != nil {
		return []domain.LibraryExercise{}, err
	}
	return library, nil
}

func (s *exerciseService) Search(ctx context.Context, query, category string) ([]domain.LibraryExercise, error) {
	var results []domain.LibraryExercise
	params := backend.SearchExercisesParams{Query: query, Category: category}
	if err := read(ctx, s.inv, backend.MethodSearchExercises, params, &results); err != nil {
		return []domain.LibraryExercise{}, err
	}
	return results, nil
}

func (s *exerciseService) TodaySummary(ctx context.Context) (*domain.TodayExerciseSummary, error) {
	var summary domain.TodayExerciseSummary
	if err := read(ctx, s.inv, backend.MethodGetTodayExerciseSummary, nil, &summary); err != nil {
		return &domain.TodayExerciseSummary{}, err
	}
	return &summary, nil
}
