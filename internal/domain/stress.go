package domain

import (
	"time"

	"github.com/google/uuid"
)

// StressSourceType categorizes where stress came from.
type StressSourceType string

const (
	SourceWork          StressSourceType = "work"
	SourceRelationship  StressSourceType = "relationship"
	SourceFinancial     StressSourceType = "financial"
	SourceHealth        StressSourceType = "health"
	SourceFamily        StressSourceType = "family"
	SourceAcademic      StressSourceType = "academic"
	SourceSocial        StressSourceType = "social"
	SourceEnvironmental StressSourceType = "environmental"
	SourceOther         StressSourceType = "other"
)

// StressSource is one contributing source with its intensity (1-5).
type StressSource struct {
	Type        StressSourceType `json:"type"`
	Intensity   int              `json:"intensity"`
	Description string           `json:"description,omitempty"`
}

// PhysicalSymptomType categorizes a stress symptom.
type PhysicalSymptomType string

const (
	SymptomHeadache           PhysicalSymptomType = "headache"
	SymptomMuscleTension      PhysicalSymptomType = "muscleTension"
	SymptomStomachIssue       PhysicalSymptomType = "stomachIssue"
	SymptomSleepProblem       PhysicalSymptomType = "sleepProblem"
	SymptomFatigue            PhysicalSymptomType = "fatigue"
	SymptomAppetiteChange     PhysicalSymptomType = "appetiteChange"
	SymptomConcentrationIssue PhysicalSymptomType = "concentrationIssue"
	SymptomHeartPalpitation   PhysicalSymptomType = "heartPalpitation"
	SymptomOther              PhysicalSymptomType = "other"
)

// PhysicalSymptom is one symptom with its severity (1-5).
type PhysicalSymptom struct {
	Type     PhysicalSymptomType `json:"type"`
	Severity int                 `json:"severity"`
}

// CopingStrategyType categorizes a coping technique.
type CopingStrategyType string

const (
	CopingDeepBreathing   CopingStrategyType = "deepBreathing"
	CopingMeditation      CopingStrategyType = "meditation"
	CopingExercise        CopingStrategyType = "exercise"
	CopingTalking         CopingStrategyType = "talking"
	CopingRelaxation      CopingStrategyType = "relaxation"
	CopingTimeManagement  CopingStrategyType = "timeManagement"
	CopingBoundarySetting CopingStrategyType = "boundarySetting"
	CopingHobby           CopingStrategyType = "hobby"
	CopingOther           CopingStrategyType = "other"
)

// CopingStrategy is one technique used with its effectiveness (1-5).
type CopingStrategy struct {
	Type          CopingStrategyType `json:"type"`
	Effectiveness int                `json:"effectiveness"`
	Duration      int                `json:"duration,omitempty"` // minutes
}

// StressRecord is one stress episode observation.
type StressRecord struct {
	ID               uuid.UUID         `json:"id"`
	UserID           uuid.UUID         `json:"user_id"`
	StressLevel      int               `json:"stress_level"` // 0-10
	Timestamp        time.Time         `json:"timestamp"`
	Sources          []StressSource    `json:"sources"`
	PhysicalSymptoms []PhysicalSymptom `json:"physical_symptoms"`
	CopingStrategies []CopingStrategy  `json:"coping_strategies"`
	Notes            string            `json:"notes,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// CreateStressRecordRequest is the payload for recording an episode.
// The backend assigns id, event timestamp and record timestamps.
type CreateStressRecordRequest struct {
	StressLevel      int               `json:"stress_level" validate:"min=0,max=10"`
	Sources          []StressSource    `json:"sources" validate:"dive"`
	PhysicalSymptoms []PhysicalSymptom `json:"physical_symptoms" validate:"dive"`
	CopingStrategies []CopingStrategy  `json:"coping_strategies" validate:"dive"`
	Notes            string            `json:"notes,omitempty"`
}

// UpdateStressRecordRequest carries a partial update.
type UpdateStressRecordRequest struct {
	StressLevel      *int               `json:"stress_level,omitempty" validate:"omitempty,min=0,max=10"`
	Sources          *[]StressSource    `json:"sources,omitempty"`
	PhysicalSymptoms *[]PhysicalSymptom `json:"physical_symptoms,omitempty"`
	CopingStrategies *[]CopingStrategy  `json:"coping_strategies,omitempty"`
	Notes            *string            `json:"notes,omitempty"`
}

// SummaryPeriod selects the horizon of a stress summary.
type SummaryPeriod string

const (
	PeriodDay   SummaryPeriod = "day"
	PeriodWeek  SummaryPeriod = "week"
	PeriodMonth SummaryPeriod = "month"
)

// StressSummary digests one period's stress records.
type StressSummary struct {
	Date                time.Time             `json:"date"`
	AverageStressLevel  float64               `json:"average_stress_level"`
	MainSources         []StressSourceType    `json:"main_sources"`
	MainSymptoms        []PhysicalSymptomType `json:"main_symptoms"`
	CopingEffectiveness float64               `json:"coping_effectiveness"`
}

// WeeklyStressStats aggregates the current week's stress.
type WeeklyStressStats struct {
	AverageStressLevel float64               `json:"average_stress_level"`
	StressVariation    float64               `json:"stress_variation"`
	MostCommonSources  []StressSourceType    `json:"most_common_sources"`
	MostCommonSymptoms []PhysicalSymptomType `json:"most_common_symptoms"`
	CopingSuccessRate  float64               `json:"coping_success_rate"`
}

// StressTrendPoint is one chartable day of the stress trend.
type StressTrendPoint struct {
	Date                time.Time `json:"date"`
	StressLevel         int       `json:"stress_level"`
	CopingEffectiveness float64   `json:"coping_effectiveness"`
}

// StrategyEffectiveness ranks a coping strategy by observed results.
type StrategyEffectiveness struct {
	Type                 CopingStrategyType `json:"type"`
	AverageEffectiveness float64            `json:"average_effectiveness"`
	UsageCount           int                `json:"usage_count"`
}

// StressPatternAnalysis is the backend's longer-horizon pattern digest.
type StressPatternAnalysis struct {
	PeakStressTimes        []string `json:"peak_stress_times"`
	CommonTriggers         []string `json:"common_triggers"`
	EffectiveInterventions []string `json:"effective_interventions"`
	ImprovementRate        float64  `json:"improvement_rate"`
}
