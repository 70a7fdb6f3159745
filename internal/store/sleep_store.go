// Package store holds the per-domain state containers: the current
// record collection, a loading flag, the last error message and
// eagerly recomputed derived statistics. Containers are not goroutine
// safe; all operations are expected to run on one logical thread of
// execution, and overlapping calls race on the shared flags with
// last-writer-wins semantics.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/blaisecz/wellness-tracker/internal/domain"
	"github.com/blaisecz/wellness-tracker/internal/service"
	"github.com/blaisecz/wellness-tracker/internal/stats"
)

type SleepStore struct {
	svc    service.SleepService
	userID uuid.UUID
	now    func() time.Time

	records []domain.SleepRecord
	loading bool
	lastErr string

	weekly domain.WeeklySleepStats
	trend  []domain.SleepTrendPoint
}

func NewSleepStore(svc service.SleepService, userID uuid.UUID) *SleepStore {
	return &SleepStore{
		svc:    svc,
		userID: userID,
		now:    time.Now,
	}
}

// Load refreshes the collection from the backend. A failed load keeps
// the previous collection and records the error message.
func (s *SleepStore) Load(ctx context.Context) {
	s.loading = true
	s.lastErr = ""
	defer func() { s.loading = false }()

	records, err := s.svc.Records(ctx, time.Time{}, time.Time{})
	if err != nil {
		s.lastErr = err.Error()
		return
	}
	s.records = records
	s.recompute()
}

func (s *SleepStore) Create(ctx context.Context, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, error) {
	s.loading = true
	s.lastErr = ""
	defer func() { s.loading = false }()

	record, err := s.svc.Create(ctx, s.userID, req)
	if err != nil {
		s.lastErr = err.Error()
		return nil, fmt.Errorf("create sleep record: %w", err)
	}
	s.records = append(s.records, *record)
	s.recompute()
	return record, nil
}

// Update fails with domain.ErrNotFound when the id is absent from the
// in-memory collection; the backend is not consulted for unknown ids.
func (s *SleepStore) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateSleepRecordRequest) (*domain.SleepRecord, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("sleep record %s: %w", id, domain.ErrNotFound)
	}

	s.loading = true
	s.lastErr = ""
	defer func() { s.loading = false }()

	record, err := s.svc.Update(ctx, id, req)
	if err != nil {
		s.lastErr = err.Error()
		return nil, fmt.Errorf("update sleep record: %w", err)
	}
	s.records[idx] = *record
	s.recompute()
	return record, nil
}

// Delete is idempotent: an id absent from the collection is a no-op.
func (s *SleepStore) Delete(ctx context.Context, id uuid.UUID) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}

	s.loading = true
	s.lastErr = ""
	defer func() { s.loading = false }()

	if err := s.svc.Delete(ctx, id); err != nil {
		s.lastErr = err.Error()
		return fmt.Errorf("delete sleep record: %w", err)
	}
	s.records = append(s.records[:idx], s.records[idx+1:]...)
	s.recompute()
	return nil
}

func (s *SleepStore) Records() []domain.SleepRecord { return s.records }

func (s *SleepStore) Loading() bool { return s.loading }

func (s *SleepStore) LastError() string { return s.lastErr }

func (s *SleepStore) WeeklyStats() domain.WeeklySleepStats { return s.weekly }

// QualityTrend is the last week of records in chronological order.
func (s *SleepStore) QualityTrend() []domain.SleepTrendPoint { return s.trend }

// LastNight returns yesterday's record, or nil when none was logged.
func (s *SleepStore) LastNight() *domain.SleepRecord {
	return stats.LastNight(s.records, s.now())
}

func (s *SleepStore) recompute() {
	now := s.now()
	s.weekly = stats.WeeklySleep(s.records, now)
	s.trend = stats.SleepTrend(s.records, stats.SleepTrendDays)
}

func (s *SleepStore) indexOf(id uuid.UUID) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}
