package stats

import (
	"sort"
	"time"

	"github.com/blaisecz/wellness-tracker/internal/domain"
)

// SleepTrendDays is the default length of the quality trend.
const SleepTrendDays = 7

// WeeklySleep aggregates records from the last seven days before ref
// into weekly sleep statistics. Averages and the consistency score are
// rounded to one decimal; variations are reported unrounded.
func WeeklySleep(records []domain.SleepRecord, ref time.Time) domain.WeeklySleepStats {
	window := LastNDays(ref, 7)

	var durations, qualities, bedTimes, wakeTimes []float64
	for _, r := range records {
		if r.Bedtime.Before(window.From) {
			continue
		}
		durations = append(durations, r.Duration)
		qualities = append(qualities, float64(r.Quality))
		bedTimes = append(bedTimes, MinutesAfterMidnight(r.Bedtime))
		wakeTimes = append(wakeTimes, MinutesAfterMidnight(r.WakeupTime))
	}

	if len(durations) == 0 {
		return domain.WeeklySleepStats{}
	}

	return domain.WeeklySleepStats{
		AverageDuration:   Round1(Mean(durations)),
		AverageQuality:    Round1(Mean(qualities)),
		ConsistencyScore:  Round1(ConsistencyScore(wakeTimes)),
		BedTimeVariation:  StdDev(bedTimes),
		WakeTimeVariation: StdDev(wakeTimes),
	}
}

// SleepTrend orders the n most recent records chronologically for
// charting. Fewer than n records yields a shorter sequence.
func SleepTrend(records []domain.SleepRecord, n int) []domain.SleepTrendPoint {
	sorted := make([]domain.SleepRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Bedtime.After(sorted[j].Bedtime)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}

	points := make([]domain.SleepTrendPoint, 0, len(sorted))
	for i := len(sorted) - 1; i >= 0; i-- {
		r := sorted[i]
		points = append(points, domain.SleepTrendPoint{
			Date:     r.Bedtime,
			Duration: r.Duration,
			Quality:  r.Quality,
		})
	}
	return points
}

// LastNight returns the record whose bedtime falls on the day before
// ref, or nil when none exists.
func LastNight(records []domain.SleepRecord, ref time.Time) *domain.SleepRecord {
	yesterday := Midnight(ref.AddDate(0, 0, -1))
	for i := range records {
		if SameDay(records[i].Bedtime, yesterday) {
			return &records[i]
		}
	}
	return nil
}
