package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/blaisecz/wellness-tracker/internal/domain"
)

func TestSleepCSV(t *testing.T) {
	records := []domain.SleepRecord{
		{
			ID:         uuid.New(),
			UserID:     uuid.New(),
			Bedtime:    time.Date(2024, 3, 12, 23, 0, 0, 0, time.UTC),
			WakeupTime: time.Date(2024, 3, 13, 7, 0, 0, 0, time.UTC),
			Duration:   8,
			Quality:    4,
			Factors: []domain.SleepFactor{
				{Type: domain.FactorCaffeine},
				{Type: domain.FactorStress},
			},
		},
	}

	out, err := SleepCSV(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want header plus one row", len(lines))
	}
	if !strings.HasPrefix(lines[0], "id,user_id,bedtime") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "caffeine;stress") {
		t.Errorf("row = %q, want semicolon-joined factors", lines[1])
	}
}

func TestStressCSV(t *testing.T) {
	records := []domain.StressRecord{
		{
			ID:          uuid.New(),
			UserID:      uuid.New(),
			StressLevel: 6,
			Timestamp:   time.Date(2024, 3, 12, 18, 0, 0, 0, time.UTC),
			Sources: []domain.StressSource{
				{Type: domain.SourceWork},
			},
		},
		{
			ID:          uuid.New(),
			UserID:      uuid.New(),
			StressLevel: 3,
			Timestamp:   time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC),
		},
	}

	out, err := StressCSV(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want header plus two rows", len(lines))
	}
	if !strings.HasPrefix(lines[0], "id,user_id,stress_level") {
		t.Errorf("header = %q", lines[0])
	}
}

func TestStressCSVEmpty(t *testing.T) {
	out, err := StressCSV(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 1 {
		t.Errorf("lines = %d, want header only", len(lines))
	}
}

func TestJSON(t *testing.T) {
	records := []domain.NutritionRecord{
		{ID: uuid.New(), FoodName: "Chicken breast", Calories: 165},
	}

	out, err := JSON(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded []domain.NutritionRecord
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0].FoodName != "Chicken breast" {
		t.Errorf("decoded = %+v", decoded)
	}
}
