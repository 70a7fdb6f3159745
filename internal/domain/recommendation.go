package domain

// Priority orders recommendations by urgency.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// SleepRecommendationType tags which aspect of sleep a recommendation targets.
type SleepRecommendationType string

const (
	SleepRecDuration    SleepRecommendationType = "duration"
	SleepRecQuality     SleepRecommendationType = "quality"
	SleepRecConsistency SleepRecommendationType = "consistency"
	SleepRecRoutine     SleepRecommendationType = "routine"
)

// SleepRecommendation is one actionable sleep improvement suggestion.
type SleepRecommendation struct {
	Type        SleepRecommendationType `json:"type"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Priority    Priority                `json:"priority"`
	ActionSteps []string                `json:"action_steps"`
}

// StressRecommendationType tags the horizon of a stress recommendation.
type StressRecommendationType string

const (
	StressRecImmediate  StressRecommendationType = "immediate"
	StressRecPreventive StressRecommendationType = "preventive"
	StressRecCoping     StressRecommendationType = "coping"
	StressRecLifestyle  StressRecommendationType = "lifestyle"
)

// StressRecommendation is one actionable stress management suggestion.
type StressRecommendation struct {
	Type             StressRecommendationType `json:"type"`
	Title            string                   `json:"title"`
	Description      string                   `json:"description"`
	Priority         Priority                 `json:"priority"`
	ActionSteps      []string                 `json:"action_steps"`
	ExpectedBenefits []string                 `json:"expected_benefits"`
}

// ExerciseRecommendationType tags which aspect of training a recommendation targets.
type ExerciseRecommendationType string

const (
	ExerciseRecFrequency ExerciseRecommendationType = "frequency"
	ExerciseRecDuration  ExerciseRecommendationType = "duration"
	ExerciseRecVariety   ExerciseRecommendationType = "variety"
)

// ExerciseRecommendation is one actionable training suggestion.
type ExerciseRecommendation struct {
	Type        ExerciseRecommendationType `json:"type"`
	Title       string                     `json:"title"`
	Description string                     `json:"description"`
	Priority    Priority                   `json:"priority"`
	ActionSteps []string                   `json:"action_steps"`
}
