package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/blaisecz/wellness-tracker/internal/backend"
	"github.com/blaisecz/wellness-tracker/internal/domain"
	"github.com/blaisecz/wellness-tracker/internal/validation"
)

type StressService interface {
	Records(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.StressRecord, error)
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateStressRecordRequest) (*domain.StressRecord, error)
	Update(ctx context.Context, id uuid.UUID, req *domain.UpdateStressRecordRequest) (*domain.StressRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Summary(ctx context.Context, userID uuid.UUID, period domain.SummaryPeriod) (*domain.StressSummary, error)
	WeeklyStats(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*domain.WeeklyStressStats, error)
	Recommendations(ctx context.Context, userID uuid.UUID, level int) ([]domain.StressRecommendation, error)
	AnalyzePatterns(ctx context.Context, userID uuid.UUID, days int) (*domain.StressPatternAnalysis, error)
	Export(ctx context.Context, format string) (string, error)
}

type stressService struct {
	inv backend.Invoker
}

func NewStressService(inv backend.Invoker) StressService {
	return &stressService{inv: inv}
}

func (s *stressService) Records(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.StressRecord, error) {
	var records []domain.StressRecord
	params := backend.StressRecordsParams{
		UserID:    userID.String(),
		StartDate: fmtDate(from),
		EndDate:   fmtDate(to),
	}
	if err := read(ctx, s.inv, backend.MethodGetStressRecords, params, &records); err != nil {
		return []domain.StressRecord{}, err
	}
	return records, nil
}

func (s *stressService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateStressRecordRequest) (*domain.StressRecord, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	var record domain.StressRecord
	params := backend.CreateStressRecordParams{UserID: userID.String(), Record: *req}
	if err := write(ctx, s.inv, backend.MethodCreateStressRecord, params, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *stressService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateStressRecordRequest) (*domain.StressRecord, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	var record domain.StressRecord
	params := backend.UpdateStressRecordParams{ID: id.String(), Updates: *req}
	if err := write(ctx, s.inv, backend.MethodUpdateStressRecord, params, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *stressService) Delete(ctx context.Context, id uuid.UUID) error {
	params := backend.IDParams{ID: id.String()}
	return write(ctx, s.inv, backend.MethodDeleteStressRecord, params, nil)
}

func (s *stressService) Summary(ctx context.Context, userID uuid.UUID, period domain.SummaryPeriod) (*domain.StressSummary, error) {
	var summary domain.StressSummary
	params := backend.StressSummaryParams{UserID: userID.String(), Period: period}
	if err := read(ctx, s.inv, backend.MethodGetStressSummary, params, &summary); err != nil {
		return &domain.StressSummary{}, err
	}
	return &summary, nil
}

func (s *stressService) WeeklyStats(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*domain.WeeklyStressStats, error) {
	var stats domain.WeeklyStressStats
	params := backend.WeeklyStressParams{UserID: userID.String(), WeekStart: fmtDate(weekStart)}
	if err := read(ctx, s.inv, backend.MethodGetWeeklyStressStats, params, &stats); err != nil {
		return &domain.WeeklyStressStats{}, err
	}
	return &stats, nil
}

func (s *stressService) Recommendations(ctx context.Context, userID uuid.UUID, level int) ([]domain.StressRecommendation, error) {
	var recs []domain.StressRecommendation
	params := backend.StressRecommendationsParams{UserID: userID.String(), StressLevel: level}
	if err := read(ctx, s.inv, backend.MethodGetStressRecommendations, params, &recs); err != nil {
		return []domain.StressRecommendation{}, err
	}
	return recs, nil
}

func (s *stressService) AnalyzePatterns(ctx context.Context, userID uuid.UUID, days int) (*domain.StressPatternAnalysis, error) {
	var analysis domain.StressPatternAnalysis
	params := backend.AnalyzePatternsParams{UserID: userID.String(), Days: days}
	if err := read(ctx, s.inv, backend.MethodAnalyzeStressPatterns, params, &analysis); err != nil {
		return &domain.StressPatternAnalysis{}, err
	}
	return &analysis, nil
}

func (s *stressService) Export(ctx context.Context, format string) (string, error) {
	var result backend.ExportResult
	params := backend.ExportParams{Format: format}
	if err := read(ctx, s.inv, backend.MethodExportStressData, params, &result); err != nil {
		return "", err
	}
	return result.Data, nil
}
