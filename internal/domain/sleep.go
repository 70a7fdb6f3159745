package domain

import (
	"time"

	"github.com/google/uuid"
)

// SleepFactorType categorizes an influence on a night's sleep.
type SleepFactorType string

const (
	FactorCaffeine    SleepFactorType = "caffeine"
	FactorStress      SleepFactorType = "stress"
	FactorNoise       SleepFactorType = "noise"
	FactorScreenTime  SleepFactorType = "screenTime"
	FactorTemperature SleepFactorType = "temperature"
	FactorAlcohol     SleepFactorType = "alcohol"
	FactorMedication  SleepFactorType = "medication"
	FactorOther       SleepFactorType = "other"
)

// SleepFactor is one contributing factor with a free-text description.
type SleepFactor struct {
	Type        SleepFactorType `json:"type"`
	Description string          `json:"description"`
}

// SleepRecord is one night's sleep observation.
type SleepRecord struct {
	ID         uuid.UUID     `json:"id"`
	UserID     uuid.UUID     `json:"user_id"`
	Bedtime    time.Time     `json:"bedtime"`
	WakeupTime time.Time     `json:"wakeup_time"`
	Duration   float64       `json:"duration"` // hours
	Quality    int           `json:"quality"`  // 1-5
	Factors    []SleepFactor `json:"factors"`
	Notes      string        `json:"notes,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// CreateSleepRecordRequest is the payload for recording a night's sleep.
type CreateSleepRecordRequest struct {
	Bedtime    time.Time     `json:"bedtime" validate:"required"`
	WakeupTime time.Time     `json:"wakeup_time" validate:"required,gtfield=Bedtime"`
	Duration   float64       `json:"duration" validate:"required,gt=0"`
	Quality    int           `json:"quality" validate:"required,min=1,max=5"`
	Factors    []SleepFactor `json:"factors,omitempty"`
	Notes      string        `json:"notes,omitempty"`
}

// UpdateSleepRecordRequest carries a partial update.
type UpdateSleepRecordRequest struct {
	Bedtime    *time.Time     `json:"bedtime,omitempty"`
	WakeupTime *time.Time     `json:"wakeup_time,omitempty"`
	Duration   *float64       `json:"duration,omitempty" validate:"omitempty,gt=0"`
	Quality    *int           `json:"quality,omitempty" validate:"omitempty,min=1,max=5"`
	Factors    *[]SleepFactor `json:"factors,omitempty"`
	Notes      *string        `json:"notes,omitempty"`
}

// SleepQualitySummary is a single day's sleep digest.
type SleepQualitySummary struct {
	Date     time.Time         `json:"date"`
	Duration float64           `json:"duration"`
	Quality  float64           `json:"quality"`
	Factors  []SleepFactorType `json:"factors"`
}

// WeeklySleepStats aggregates the current week's sleep.
// Variations are standard deviations of bed/wake times in minutes
// after midnight.
type WeeklySleepStats struct {
	AverageDuration   float64 `json:"average_duration"`
	AverageQuality    float64 `json:"average_quality"`
	ConsistencyScore  float64 `json:"consistency_score"`
	BedTimeVariation  float64 `json:"bed_time_variation"`
	WakeTimeVariation float64 `json:"wake_time_variation"`
}

// SleepTrendPoint is one chartable day of the quality trend.
type SleepTrendPoint struct {
	Date     time.Time `json:"date"`
	Duration float64   `json:"duration"`
	Quality  int       `json:"quality"`
}

// SleepPatternAnalysis is the backend's longer-horizon pattern digest.
type SleepPatternAnalysis struct {
	AverageBedtime     string  `json:"average_bedtime"`  // HH:MM
	AverageWakeTime    string  `json:"average_wake_time"` // HH:MM
	SleepEfficiency    float64 `json:"sleep_efficiency"`
	REMSleepPercentage float64 `json:"rem_sleep_percentage"`
	DeepSleepPercentage float64 `json:"deep_sleep_percentage"`
}
