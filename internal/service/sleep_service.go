package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/blaisecz/wellness-tracker/internal/backend"
	"github.com/blaisecz/wellness-tracker/internal/domain"
	"github.com/blaisecz/wellness-tracker/internal/validation"
)

type SleepService interface {
	Records(ctx context.Context, from, to time.Time) ([]domain.SleepRecord, error)
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, error)
	Update(ctx context.Context, id uuid.UUID, req *domain.UpdateSleepRecordRequest) (*domain.SleepRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error

	QualitySummary(ctx context.Context, date time.Time) (*domain.SleepQualitySummary, error)
	WeeklyStats(ctx context.Context, weekStart time.Time) (*domain.WeeklySleepStats, error)
	Recommendations(ctx context.Context) ([]domain.SleepRecommendation, error)
	AnalyzePatterns(ctx context.Context, days int) (*domain.SleepPatternAnalysis, error)
	Export(ctx context.Context, format string) (string, error)
}

type sleepService struct {
	inv backend.Invoker
}

func NewSleepService(inv backend.Invoker) SleepService {
	return &sleepService{inv: inv}
}

func (s *sleepService) Records(ctx context.Context, from, to time.Time) ([]domain.SleepRecord, error) {
	var records []domain.SleepRecord
	params := backend.DateRangeParams{StartDate: fmtDate(from), EndDate: fmtDate(to)}
	if err := read(ctx, s.inv, backend.MethodGetSleepRecords, params, &records); err != nil {
		return []domain.SleepRecord{}, err
	}
	return records, nil
}

func (s *sleepService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	var record domain.SleepRecord
	params := backend.CreateSleepRecordParams{UserID: userID.String(), Record: *req}
	if err := write(ctx, s.inv, backend.MethodCreateSleepRecord, params, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *sleepService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateSleepRecordRequest) (*domain.SleepRecord, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	var record domain.SleepRecord
	params := backend.UpdateSleepRecordParams{ID: id.String(), Updates: *req}
	if err := write(ctx, s.inv, backend.MethodUpdateSleepRecord, params, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *sleepService) Delete(ctx context.Context, id uuid.UUID) error {
	params := backend.IDParams{ID: id.String()}
	return write(ctx, s.inv, backend.MethodDeleteSleepRecord, params, nil)
}

func (s *sleepService) QualitySummary(ctx context.Context, date time.Time) (*domain.SleepQualitySummary, error) {
	var summary domain.SleepQualitySummary
	params := backend.DateParams{Date: fmtDate(date)}
	if err := read(ctx, s.inv, backend.MethodGetSleepQualitySummary, params, &summary); err != nil {
		return &domain.SleepQualitySummary{}, err
	}
	return &summary, nil
}

func (s *sleepService) WeeklyStats(ctx context.Context, weekStart time.Time) (*domain.WeeklySleepStats, error) {
	var stats domain.WeeklySleepStats
	params := backend.WeekStartParams{StartDate: fmtDate(weekStart)}
	if err := read(ctx, s.inv, backend.MethodGetWeeklySleepStats, params, &stats); err != nil {
		return &domain.WeeklySleepStats{}, err
	}
	return &stats, nil
}

func (s *sleepService) Recommendations(ctx context.Context) ([]domain.SleepRecommendation, error) {
	var recs []domain.SleepRecommendation
	if err := read(ctx, s.inv, backend.MethodGetSleepRecommendations, nil, &recs); err != nil {
		return []domain.SleepRecommendation{}, err
	}
	return recs, nil
}

func (s *sleepService) AnalyzePatterns(ctx context.Context, days int) (*domain.SleepPatternAnalysis, error) {
	var analysis domain.SleepPatternAnalysis
	params := backend.AnalyzePatternsParams{Days: days}
	if err := read(ctx, s.inv, backend.MethodAnalyzeSleepPatterns, params, &analysis); err != nil {
		return &domain.SleepPatternAnalysis{}, err
	}
	return &analysis, nil
}

func (s *sleepService) Export(ctx context.Context, format string) (string, error) {
	var result backend.ExportResult
	params := backend.ExportParams{Format: format}
	if err := read(ctx, s.inv, backend.MethodExportSleepData, params, &result); err != nil {
		return "", err
	}
	return result.Data, nil
}
