// Package export renders record collections as opaque text blobs for
// the export operations. JSON output is a pretty-printed dump; CSV
// output flattens each record to one row, joining set-valued fields
// with semicolons.
package export

import (
	"encoding/csv"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/blaisecz/wellness-tracker/internal/domain"
)

// JSON renders any record collection as indented JSON.
func JSON(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// SleepCSV renders sleep records as CSV with a header row.
func SleepCSV(records []domain.SleepRecord) (string, error) {
	rows := [][]string{{"id", "user_id", "bedtime", "wakeup_time", "duration", "quality", "factors", "notes"}}
	for _, r := range records {
		factors := make([]string, len(r.Factors))
		for i, f := range r.Factors {
			factors[i] = string(f.Type)
		}
		rows = append(rows, []string{
			r.ID.String(),
			r.UserID.String(),
			r.Bedtime.Format(time.RFC3339),
			r.WakeupTime.Format(time.RFC3339),
			strconv.FormatFloat(r.Duration, 'f', -1, 64),
			strconv.Itoa(r.Quality),
			strings.Join(factors, ";"),
			r.Notes,
		})
	}
	return renderCSV(rows)
}

// NutritionCSV renders nutrition records as CSV with a header row.
func NutritionCSV(records []domain.NutritionRecord) (string, error) {
	rows := [][]string{{"id", "user_id", "food_name", "meal_type", "quantity", "calories", "protein", "carbs", "fat", "recorded_at"}}
	for _, r := range records {
		rows = append(rows, []string{
			r.ID.String(),
			r.UserID.String(),
			r.FoodName,
			string(r.MealType),
			strconv.FormatFloat(r.Quantity, 'f', -1, 64),
			strconv.FormatFloat(r.Calories, 'f', -1, 64),
			strconv.FormatFloat(r.Protein, 'f', -1, 64),
			strconv.FormatFloat(r.Carbs, 'f', -1, 64),
			strconv.FormatFloat(r.Fat, 'f', -1, 64),
			r.RecordedAt.Format(time.RFC3339),
		})
	}
	return renderCSV(rows)
}

// StressCSV renders stress records as CSV with a header row.
func StressCSV(records []domain.StressRecord) (string, error) {
	rows := [][]string{{"id", "user_id", "stress_level", "timestamp", "sources", "symptoms", "coping_strategies", "notes"}}
	for _, r := range records {
		sources := make([]string, len(r.Sources))
		for i, s := range r.Sources {
			sources[i] = string(s.Type)
		}
		symptoms := make([]string, len(r.PhysicalSymptoms))
		for i, s := range r.PhysicalSymptoms {
			symptoms[i] = string(s.Type)
		}
		strategies := make([]string, len(r.CopingStrategies))
		for i, s := range r.CopingStrategies {
			strategies[i] = string(s.Type)
		}
		rows = append(rows, []string{
			r.ID.String(),
			r.UserID.String(),
			strconv.Itoa(r.StressLevel),
			r.Timestamp.Format(time.RFC3339),
			strings.Join(sources, ";"),
			strings.Join(symptoms, ";"),
			strings.Join(strategies, ";"),
			r.Notes,
		})
	}
	return renderCSV(rows)
}

func renderCSV(rows [][]string) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.WriteAll(rows); err != nil {
		return "", err
	}
	return sb.String(), nil
}
