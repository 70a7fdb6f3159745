package domain

import (
	"time"

	"github.com/google/uuid"
)

// MealType identifies which meal a nutrition record belongs to.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// FoodItem is a food database entry with per-serving macros.
type FoodItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand,omitempty"`
	ServingSize string   `json:"serving_size"`
	Calories    float64  `json:"calories"`
	Protein     float64  `json:"protein"`
	Carbs       float64  `json:"carbs"`
	Fat         float64  `json:"fat"`
	Fiber       float64  `json:"fiber,omitempty"`
	Sugar       float64  `json:"sugar,omitempty"`
	Sodium      float64  `json:"sodium,omitempty"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

// NutritionRecord is one logged food intake.
type NutritionRecord struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	FoodItemID  string    `json:"food_item_id,omitempty"`
	FoodName    string    `json:"food_name"`
	MealType    MealType  `json:"meal_type"`
	ServingSize string    `json:"serving_size"`
	Quantity    float64   `json:"quantity"`
	Calories    float64   `json:"calories"`
	Protein     float64   `json:"protein"`
	Carbs       float64   `json:"carbs"`
	Fat         float64   `json:"fat"`
	Notes       string    `json:"notes,omitempty"`
	RecordedAt  time.Time `json:"recorded_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateNutritionRecordRequest is the payload for logging an intake.
type CreateNutritionRecordRequest struct {
	FoodItemID  string   `json:"food_item_id,omitempty"`
	FoodName    string   `json:"food_name" validate:"required"`
	MealType    MealType `json:"meal_type" validate:"required,oneof=breakfast lunch dinner snack"`
	ServingSize string   `json:"serving_size" validate:"required"`
	Quantity    float64  `json:"quantity" validate:"required,gt=0"`
	Calories    float64  `json:"calories" validate:"min=0"`
	Protein     float64  `json:"protein" validate:"min=0"`
	Carbs       float64  `json:"carbs" validate:"min=0"`
	Fat         float64  `json:"fat" validate:"min=0"`
	Notes       string   `json:"notes,omitempty"`
}

// UpdateNutritionRecordRequest carries a partial update.
type UpdateNutritionRecordRequest struct {
	FoodName    *string   `json:"food_name,omitempty" validate:"omitempty,min=1"`
	MealType    *MealType `json:"meal_type,omitempty" validate:"omitempty,oneof=breakfast lunch dinner snack"`
	ServingSize *string   `json:"serving_size,omitempty"`
	Quantity    *float64  `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	Calories    *float64  `json:"calories,omitempty" validate:"omitempty,min=0"`
	Protein     *float64  `json:"protein,omitempty" validate:"omitempty,min=0"`
	Carbs       *float64  `json:"carbs,omitempty" validate:"omitempty,min=0"`
	Fat         *float64  `json:"fat,omitempty" validate:"omitempty,min=0"`
	Notes       *string   `json:"notes,omitempty"`
}

// NutritionGoal holds the fixed daily targets used for goal completion.
type NutritionGoal struct {
	DailyCalories float64 `json:"daily_calories"`
	DailyProtein  float64 `json:"daily_protein"`
	DailyCarbs    float64 `json:"daily_carbs"`
	DailyFat      float64 `json:"daily_fat"`
}

// GoalCompletion holds per-nutrient completion ratios capped at 1.0.
// Overall is the mean of the raw (uncapped) ratios, so it can exceed 1.0
// when any nutrient overshoots its goal.
type GoalCompletion struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Overall  float64 `json:"overall"`
}

// DailyNutritionSummary aggregates one day's intake against the goals.
type DailyNutritionSummary struct {
	Date           time.Time      `json:"date"`
	TotalCalories  float64        `json:"total_calories"`
	TotalProtein   float64        `json:"total_protein"`
	TotalCarbs     float64        `json:"total_carbs"`
	TotalFat       float64        `json:"total_fat"`
	MealCount      int            `json:"meal_count"`
	GoalCompletion GoalCompletion `json:"goal_completion"`
}

// NutritionFacts is the computed macro breakdown for a named food portion.
type NutritionFacts struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// RestaurantRecommendation suggests what to order for a restaurant type.
type RestaurantRecommendation struct {
	Recommended []string `json:"recommended"`
	Avoid       []string `json:"avoid"`
	Tips        []string `json:"tips"`
}
