package recommend

import (
	"testing"

	"github.com/blaisecz/wellness-tracker/internal/domain"
)

func TestForSleep(t *testing.T) {
	tests := []struct {
		name      string
		weekly    domain.WeeklySleepStats
		wantTypes []domain.SleepRecommendationType
	}{
		{
			name: "healthy week triggers nothing",
			weekly: domain.WeeklySleepStats{
				AverageDuration:  8,
				AverageQuality:   4,
				ConsistencyScore: 90,
			},
			wantTypes: nil,
		},
		{
			name: "thresholds are strict: exactly at boundary does not fire",
			weekly: domain.WeeklySleepStats{
				AverageDuration:  7.0,
				AverageQuality:   3.0,
				ConsistencyScore: 70.0,
			},
			wantTypes: nil,
		},
		{
			name: "just under duration boundary fires",
			weekly: domain.WeeklySleepStats{
				AverageDuration:  6.99,
				AverageQuality:   4,
				ConsistencyScore: 90,
			},
			wantTypes: []domain.SleepRecommendationType{domain.SleepRecDuration},
		},
		{
			name: "all rules fire in duration, quality, consistency order",
			weekly: domain.WeeklySleepStats{
				AverageDuration:  5,
				AverageQuality:   2,
				ConsistencyScore: 40,
			},
			wantTypes: []domain.SleepRecommendationType{
				domain.SleepRecDuration,
				domain.SleepRecQuality,
				domain.SleepRecConsistency,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForSleep(tt.weekly)
			if len(got) != len(tt.wantTypes) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.wantTypes))
			}
			for i, rec := range got {
				if rec.Type != tt.wantTypes[i] {
					t.Errorf("rec[%d].Type = %s, want %s", i, rec.Type, tt.wantTypes[i])
				}
			}
		})
	}
}

func TestForSleepPriorities(t *testing.T) {
	recs := ForSleep(domain.WeeklySleepStats{
		AverageDuration:  5,
		AverageQuality:   2,
		ConsistencyScore: 40,
	})
	if recs[0].Priority != domain.PriorityHigh {
		t.Errorf("duration priority = %s, want high", recs[0].Priority)
	}
	if recs[1].Priority != domain.PriorityMedium || recs[2].Priority != domain.PriorityMedium {
		t.Error("quality and consistency priorities must be medium")
	}
	for _, rec := range recs {
		if len(rec.ActionSteps) == 0 {
			t.Errorf("%s: expected action steps", rec.Type)
		}
	}
}
