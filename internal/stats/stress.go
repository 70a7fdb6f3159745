package stats

import (
	"sort"
	"time"

	"github.com/blaisecz/wellness-tracker/internal/domain"
)

const (
	// TopTagLimit caps the "most common" rankings.
	TopTagLimit = 5

	// StressTrendDays is the default length of the stress trend.
	StressTrendDays = 7

	// EffectiveThreshold is the minimum effectiveness (1-5) for a
	// coping strategy usage to count as a success.
	EffectiveThreshold = 3
)

// TodayStressRecords selects records observed on ref's calendar date.
func TodayStressRecords(records []domain.StressRecord, ref time.Time) []domain.StressRecord {
	var out []domain.StressRecord
	for _, r := range records {
		if SameDay(r.Timestamp, ref) {
			out = append(out, r)
		}
	}
	return out
}

// CurrentStressLevel is the level of today's latest record. The second
// return value is false when no record exists for today.
func CurrentStressLevel(records []domain.StressRecord, ref time.Time) (int, bool) {
	today := TodayStressRecords(records, ref)
	if len(today) == 0 {
		return 0, false
	}
	latest := today[0]
	for _, r := range today[1:] {
		if r.Timestamp.After(latest.Timestamp) {
			latest = r
		}
	}
	return latest.StressLevel, true
}

// StressTrend orders the n most recent records chronologically for
// charting.
func StressTrend(records []domain.StressRecord, n int) []domain.StressTrendPoint {
	sorted := make([]domain.StressRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}

	points := make([]domain.StressTrendPoint, 0, len(sorted))
	for i := len(sorted) - 1; i >= 0; i-- {
		r := sorted[i]
		points = append(points, domain.StressTrendPoint{
			Date:                r.Timestamp,
			StressLevel:         r.StressLevel,
			CopingEffectiveness: AverageCopingEffectiveness(r.CopingStrategies),
		})
	}
	return points
}

// AverageCopingEffectiveness is the mean effectiveness of the applied
// strategies, 0 when none were used.
func AverageCopingEffectiveness(strategies []domain.CopingStrategy) float64 {
	if len(strategies) == 0 {
		return 0
	}
	total := 0.0
	for _, s := range strategies {
		total += float64(s.Effectiveness)
	}
	return total / float64(len(strategies))
}

// CommonStressSources ranks source tags across all records by
// frequency, top five.
func CommonStressSources(records []domain.StressRecord) []domain.StressSourceType {
	var tags []domain.StressSourceType
	for _, r := range records {
		for _, s := range r.Sources {
			tags = append(tags, s.Type)
		}
	}
	return TopK(tags, TopTagLimit)
}

// CommonSymptoms ranks symptom tags across all records by frequency,
// top five.
func CommonSymptoms(records []domain.StressRecord) []domain.PhysicalSymptomType {
	var tags []domain.PhysicalSymptomType
	for _, r := range records {
		for _, s := range r.PhysicalSymptoms {
			tags = append(tags, s.Type)
		}
	}
	return TopK(tags, TopTagLimit)
}

// EffectiveCopingStrategies ranks strategies by average observed
// effectiveness, top five.
func EffectiveCopingStrategies(records []domain.StressRecord) []domain.StrategyEffectiveness {
	type acc struct {
		count int
		total float64
	}
	byType := make(map[domain.CopingStrategyType]*acc)
	var order []domain.CopingStrategyType
	for _, r := range records {
		for _, s := range r.CopingStrategies {
			a, ok := byType[s.Type]
			if !ok {
				a = &acc{}
				byType[s.Type] = a
				order = append(order, s.Type)
			}
			a.count++
			a.total += float64(s.Effectiveness)
		}
	}

	ranked := make([]domain.StrategyEffectiveness, 0, len(order))
	for _, t := range order {
		a := byType[t]
		ranked = append(ranked, domain.StrategyEffectiveness{
			Type:                 t,
			AverageEffectiveness: a.total / float64(a.count),
			UsageCount:           a.count,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AverageEffectiveness > ranked[j].AverageEffectiveness
	})
	if len(ranked) > TopTagLimit {
		ranked = ranked[:TopTagLimit]
	}
	return ranked
}

// WeeklyStress aggregates the last seven days of stress records.
// Variation is the population standard deviation of the levels.
func WeeklyStress(records []domain.StressRecord, ref time.Time) domain.WeeklyStressStats {
	window := LastNDays(ref, 7)

	var inWindow []domain.StressRecord
	var levels []float64
	for _, r := range records {
		if !window.Contains(r.Timestamp) {
			continue
		}
		inWindow = append(inWindow, r)
		levels = append(levels, float64(r.StressLevel))
	}

	if len(inWindow) == 0 {
		return domain.WeeklyStressStats{}
	}

	return domain.WeeklyStressStats{
		AverageStressLevel: Round1(Mean(levels)),
		StressVariation:    StdDev(levels),
		MostCommonSources:  CommonStressSources(inWindow),
		MostCommonSymptoms: CommonSymptoms(inWindow),
		CopingSuccessRate:  copingSuccessRate(inWindow),
	}
}

// copingSuccessRate is the share of strategy usages rated at or above
// the effectiveness threshold.
func copingSuccessRate(records []domain.StressRecord) float64 {
	total, successes := 0, 0
	for _, r := range records {
		for _, s := range r.CopingStrategies {
			total++
			if s.Effectiveness >= EffectiveThreshold {
				successes++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(successes) / float64(total)
}

// StressSummaryFor digests records for one period ending at ref.
func StressSummaryFor(records []domain.StressRecord, period domain.SummaryPeriod, ref time.Time) domain.StressSummary {
	var window Window
	switch period {
	case domain.PeriodDay:
		window = Day(ref)
	case domain.PeriodMonth:
		window = LastNDays(ref, 30)
	default:
		window = LastNDays(ref, 7)
	}

	var inWindow []domain.StressRecord
	var levels []float64
	var effectiveness []float64
	for _, r := range records {
		if !window.Contains(r.Timestamp) {
			continue
		}
		inWindow = append(inWindow, r)
		levels = append(levels, float64(r.StressLevel))
		for _, s := range r.CopingStrategies {
			effectiveness = append(effectiveness, float64(s.Effectiveness))
		}
	}

	return domain.StressSummary{
		Date:                Midnight(ref),
		AverageStressLevel:  Round1(Mean(levels)),
		MainSources:         CommonStressSources(inWindow),
		MainSymptoms:        CommonSymptoms(inWindow),
		CopingEffectiveness: Round1(Mean(effectiveness)),
	}
}
