package domain

import (
	"time"

	"github.com/google/uuid"
)

// ExerciseCategory classifies the kind of training a session belongs to.
type ExerciseCategory string

const (
	ExerciseFunctional ExerciseCategory = "functional"
	ExerciseBodyweight ExerciseCategory = "bodyweight"
	ExercisePosture    ExerciseCategory = "posture"
	ExerciseCardio     ExerciseCategory = "cardio"
)

// ExerciseIntensity is the perceived effort of a session.
type ExerciseIntensity string

const (
	IntensityLow    ExerciseIntensity = "low"
	IntensityMedium ExerciseIntensity = "medium"
	IntensityHigh   ExerciseIntensity = "high"
)

// Exercise is one recorded training session.
type Exercise struct {
	ID             uuid.UUID         `json:"id"`
	UserID         uuid.UUID         `json:"user_id"`
	Name           string            `json:"name"`
	Category       ExerciseCategory  `json:"category"`
	Duration       int               `json:"duration"` // minutes
	Intensity      ExerciseIntensity `json:"intensity"`
	CaloriesBurned int               `json:"calories_burned"`
	Notes          string            `json:"notes,omitempty"`
	RecordedAt     time.Time         `json:"recorded_at"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// CreateExerciseRequest is the payload for recording a session.
// The backend assigns id and timestamps.
type CreateExerciseRequest struct {
	Name           string            `json:"name" validate:"required"`
	Category       ExerciseCategory  `json:"category" validate:"required,oneof=functional bodyweight posture cardio"`
	Duration       int               `json:"duration" validate:"required,min=1"`
	Intensity      ExerciseIntensity `json:"intensity" validate:"required,oneof=low medium high"`
	CaloriesBurned int               `json:"calories_burned" validate:"min=0"`
	Notes          string            `json:"notes,omitempty"`
}

// UpdateExerciseRequest carries a partial update; only non-nil fields change.
type UpdateExerciseRequest struct {
	Name           *string            `json:"name,omitempty" validate:"omitempty,min=1"`
	Category       *ExerciseCategory  `json:"category,omitempty" validate:"omitempty,oneof=functional bodyweight posture cardio"`
	Duration       *int               `json:"duration,omitempty" validate:"omitempty,min=1"`
	Intensity      *ExerciseIntensity `json:"intensity,omitempty" validate:"omitempty,oneof=low medium high"`
	CaloriesBurned *int               `json:"calories_burned,omitempty" validate:"omitempty,min=0"`
	Notes          *string            `json:"notes,omitempty"`
}

// PlanItem is one entry of an exercise plan, referencing a library exercise.
type PlanItem struct {
	ExerciseID string `json:"exercise_id"`
	Sets       int    `json:"sets,omitempty"`
	Reps       int    `json:"reps,omitempty"`
	Duration   int    `json:"duration,omitempty"` // minutes
	RestTime   int    `json:"rest_time,omitempty"`
}

// ScheduleFrequency describes how often a plan repeats.
type ScheduleFrequency string

const (
	FrequencyDaily  ScheduleFrequency = "daily"
	FrequencyWeekly ScheduleFrequency = "weekly"
	FrequencyCustom ScheduleFrequency = "custom"
)

// Schedule describes when a plan's sessions take place.
// Days uses 0-6 for Sunday through Saturday.
type Schedule struct {
	Frequency ScheduleFrequency `json:"frequency"`
	Days      []int             `json:"days"`
	Time      string            `json:"time,omitempty"` // HH:MM
}

// ExercisePlan groups planned sessions under a schedule.
type ExercisePlan struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Name      string     `json:"name"`
	Exercises []PlanItem `json:"exercises"`
	Schedule  Schedule   `json:"schedule"`
	Completed bool       `json:"completed"`
}

// CreateExercisePlanRequest is the payload for creating a plan.
type CreateExercisePlanRequest struct {
	Name      string     `json:"name" validate:"required"`
	Exercises []PlanItem `json:"exercises" validate:"required,min=1"`
	Schedule  Schedule   `json:"schedule" validate:"required"`
}

// WeeklyExerciseStats aggregates training over one calendar week.
type WeeklyExerciseStats struct {
	TotalDuration int `json:"total_duration"` // minutes
	TotalCalories int `json:"total_calories"`
	// Distinct weekdays with at least one session.
	ExerciseDays int `json:"exercise_days"`
	// Minutes per active day, not per session.
	AverageDuration float64 `json:"average_duration"`
}

// ExerciseStats is the backend aggregate for an arbitrary date range.
type ExerciseStats struct {
	TotalDuration   int     `json:"total_duration"`
	TotalCalories   int     `json:"total_calories"`
	ExerciseDays    int     `json:"exercise_days"`
	AverageDuration float64 `json:"average_duration"`
}

// TodayExerciseSummary is a compact view of the current day's training.
type TodayExerciseSummary struct {
	TotalDuration  int `json:"total_duration"`
	TotalCalories  int `json:"total_calories"`
	ExerciseCount  int `json:"exercise_count"`
	CompletedPlans int `json:"completed_plans"`
}

// Difficulty grades a library exercise.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// LibraryExercise is a catalog entry describing how to perform an exercise.
type LibraryExercise struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Category      string     `json:"category"`
	Difficulty    Difficulty `json:"difficulty"`
	TargetMuscles []string   `json:"target_muscles"`
	Instructions  []string   `json:"instructions"`
	VideoURL      string     `json:"video_url,omitempty"`
}
