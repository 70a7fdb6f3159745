package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/blaisecz/wellness-tracker/internal/domain"
	"github.com/blaisecz/wellness-tracker/internal/recommend"
	"github.com/blaisecz/wellness-tracker/internal/service"
	"github.com/blaisecz/wellness-tracker/internal/stats"
)

type StressStore struct {
	svc    service.StressService
	userID uuid.UUID
	now    func() time.Time

	records []domain.StressRecord
	loading bool
	lastErr string

	weekly domain.WeeklyStressStats
	trend  []domain.StressTrendPoint
}

func NewStressStore(svc service.StressService, userID uuid.UUID) *StressStore {
	return &StressStore{
		svc:    svc,
		userID: userID,
		now:    time.Now,
	}
}

// Load refreshes the collection from the backend. A failed load keeps
// the previous collection and records the error message.
func (s *StressStore) Load(ctx context.Context) {
	s.loading = true
	s.lastErr = ""
	defer func() { s.loading = false }()

	records, err := s.svc.Records(ctx, s.userID, time.Time{}, time.Time{})
	if err != nil {
		s.lastErr = err.Error()
		return
	}
	s.records = records
	s.recompute()
}

func (s *StressStore) Create(ctx context.Context, req *domain.CreateStressRecordRequest) (*domain.StressRecord, error) {
	s.loading = true
	s.lastErr = ""
	defer func() { s.loading = false }()

	record, err := s.svc.Create(ctx, s.userID, req)
	if err != nil {
		s.lastErr = err.Error()
		return nil, fmt.Errorf("create stress record: %w", err)
	}
	s.records = append(s.records, *record)
	s.recompute()
	return record, nil
}

func (s *StressStore) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateStressRecordRequest) (*domain.StressRecord, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("stress record %s: %w", id, domain.ErrNotFound)
	}

	s.loading = true
	s.lastErr = ""
	defer func() { s.loading = false }()

	record, err := s.svc.Update(ctx, id, req)
	if err != nil {
		s.lastErr = err.Error()
		return nil, fmt.Errorf("update stress record: %w", err)
	}
	s.records[idx] = *record
	s.recompute()
	return record, nil
}

// Delete is idempotent: an id absent from the collection is a no-op.
func (s *StressStore) Delete(ctx context.Context, id uuid.UUID) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}

	s.loading = true
	s.lastErr = ""
	defer func() { s.loading = false }()

	if err := s.svc.Delete(ctx, id); err != nil {
		s.lastErr = err.Error()
		return fmt.Errorf("delete stress record: %w", err)
	}
	s.records = append(s.records[:idx], s.records[idx+1:]...)
	s.recompute()
	return nil
}

func (s *StressStore) Records() []domain.StressRecord { return s.records }

func (s *StressStore) Loading() bool { return s.loading }

func (s *StressStore) LastError() string { return s.lastErr }

func (s *StressStore) WeeklyStats() domain.WeeklyStressStats { return s.weekly }

// Trend is the last week of records in chronological order.
func (s *StressStore) Trend() []domain.StressTrendPoint { return s.trend }

// CurrentLevel is the level of today's latest record; ok is false when
// nothing was logged today.
func (s *StressStore) CurrentLevel() (int, bool) {
	return stats.CurrentStressLevel(s.records, s.now())
}

// Assessment is the advisory text for today's latest stress level; ok
// is false when nothing was logged today.
func (s *StressStore) Assessment() (string, bool) {
	level, ok := s.CurrentLevel()
	if !ok {
		return "", false
	}
	return recommend.StressAssessment(level), true
}

// TodayRecords selects the records observed today.
func (s *StressStore) TodayRecords() []domain.StressRecord {
	return stats.TodayStressRecords(s.records, s.now())
}

// CommonSources ranks stress source tags by frequency, top five.
func (s *StressStore) CommonSources() []domain.StressSourceType {
	return stats.CommonStressSources(s.records)
}

// CommonSymptoms ranks symptom tags by frequency, top five.
func (s *StressStore) CommonSymptoms() []domain.PhysicalSymptomType {
	return stats.CommonSymptoms(s.records)
}

// EffectiveStrategies ranks coping strategies by average observed
// effectiveness, top five.
func (s *StressStore) EffectiveStrategies() []domain.StrategyEffectiveness {
	return stats.EffectiveCopingStrategies(s.records)
}

func (s *StressStore) recompute() {
	now := s.now()
	s.weekly = stats.WeeklyStress(s.records, now)
	s.trend = stats.StressTrend(s.records, stats.StressTrendDays)
}

func (s *StressStore) indexOf(id uuid.UUID) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}
