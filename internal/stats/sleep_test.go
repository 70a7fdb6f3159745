package stats

import (
	"testing"
	"time"

	"github.com/blaisecz/wellness-tracker/internal/domain"
)

func sleepRecord(bedtime time.Time, hours float64, quality int) domain.SleepRecord {
	return domain.SleepRecord{
		Bedtime:    bedtime,
		WakeupTime: bedtime.Add(time.Duration(hours * float64(time.Hour))),
		Duration:   hours,
		Quality:    quality,
	}
}

func TestWeeklySleep(t *testing.T) {
	ref := time.Date(2024, 3, 13, 12, 0, 0, 0, time.UTC)

	t.Run("empty collection yields zero stats", func(t *testing.T) {
		got := WeeklySleep(nil, ref)
		if got != (domain.WeeklySleepStats{}) {
			t.Errorf("WeeklySleep(nil) = %+v, want zero value", got)
		}
	})

	t.Run("averages rounded to one decimal", func(t *testing.T) {
		records := []domain.SleepRecord{
			sleepRecord(time.Date(2024, 3, 11, 23, 0, 0, 0, time.UTC), 7.5, 4),
			sleepRecord(time.Date(2024, 3, 12, 23, 0, 0, 0, time.UTC), 6.0, 3),
		}
		got := WeeklySleep(records, ref)
		if got.AverageDuration != 6.8 {
			t.Errorf("AverageDuration = %v, want 6.8", got.AverageDuration)
		}
		if got.AverageQuality != 3.5 {
			t.Errorf("AverageQuality = %v, want 3.5", got.AverageQuality)
		}
	})

	t.Run("identical wake times give full consistency", func(t *testing.T) {
		records := []domain.SleepRecord{
			sleepRecord(time.Date(2024, 3, 11, 23, 0, 0, 0, time.UTC), 8, 4),
			sleepRecord(time.Date(2024, 3, 12, 23, 0, 0, 0, time.UTC), 8, 4),
		}
		got := WeeklySleep(records, ref)
		if got.ConsistencyScore != 100 {
			t.Errorf("ConsistencyScore = %v, want 100", got.ConsistencyScore)
		}
		if got.BedTimeVariation != 0 || got.WakeTimeVariation != 0 {
			t.Errorf("variations = %v/%v, want 0/0", got.BedTimeVariation, got.WakeTimeVariation)
		}
	})

	t.Run("records older than seven days excluded", func(t *testing.T) {
		records := []domain.SleepRecord{
			sleepRecord(time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC), 4, 1),
			sleepRecord(time.Date(2024, 3, 12, 23, 0, 0, 0, time.UTC), 8, 5),
		}
		got := WeeklySleep(records, ref)
		if got.AverageDuration != 8 {
			t.Errorf("AverageDuration = %v, want 8 (stale record must be excluded)", got.AverageDuration)
		}
	})

	t.Run("variations are unrounded standard deviations", func(t *testing.T) {
		// Bedtimes 22:00 and 23:00: minutes 1320 and 1380, stddev 30.
		records := []domain.SleepRecord{
			sleepRecord(time.Date(2024, 3, 11, 22, 0, 0, 0, time.UTC), 8, 4),
			sleepRecord(time.Date(2024, 3, 12, 23, 0, 0, 0, time.UTC), 8, 4),
		}
		got := WeeklySleep(records, ref)
		if got.BedTimeVariation != 30 {
			t.Errorf("BedTimeVariation = %v, want 30", got.BedTimeVariation)
		}
	})
}

func TestSleepTrend(t *testing.T) {
	var records []domain.SleepRecord
	for i := 0; i < 10; i++ {
		records = append(records, sleepRecord(
			time.Date(2024, 3, 1+i, 23, 0, 0, 0, time.UTC), 7, 3))
	}

	points := SleepTrend(records, SleepTrendDays)

	if len(points) != SleepTrendDays {
		t.Fatalf("len(points) = %d, want %d", len(points), SleepTrendDays)
	}
	// Chronological order, ending with the most recent record.
	for i := 1; i < len(points); i++ {
		if !points[i].Date.After(points[i-1].Date) {
			t.Errorf("points not in chronological order at %d", i)
		}
	}
	if points[len(points)-1].Date.Day() != 10 {
		t.Errorf("last point day = %d, want 10", points[len(points)-1].Date.Day())
	}
	if points[0].Date.Day() != 4 {
		t.Errorf("first point day = %d, want 4 (oldest three dropped)", points[0].Date.Day())
	}
}

func TestLastNight(t *testing.T) {
	ref := time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC)
	records := []domain.SleepRecord{
		sleepRecord(time.Date(2024, 3, 10, 23, 0, 0, 0, time.UTC), 8, 4),
		sleepRecord(time.Date(2024, 3, 12, 22, 30, 0, 0, time.UTC), 7, 3),
	}

	got := LastNight(records, ref)
	if got == nil {
		t.Fatal("expected last night's record")
	}
	if got.Bedtime.Day() != 12 {
		t.Errorf("Bedtime day = %d, want 12", got.Bedtime.Day())
	}

	if LastNight(records[:1], ref) != nil {
		t.Error("expected nil when yesterday has no record")
	}
}
