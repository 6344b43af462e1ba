package domain

import "time"

// FoodQuery is a single food line as extracted upstream (manual entry,
// barcode, or a recognition step). Input only; never persisted here.
type FoodQuery struct {
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	Unit     string  `json:"unit" binding:"required"`
}

// NutritionFacts holds macro/micro values per 100 g of the source record.
// Never per-serving. Absent fields default to zero at the boundary.
type NutritionFacts struct {
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`      // grams
	Carbs        float64 `json:"carbs"`        // grams
	Fat          float64 `json:"fat"`          // grams
	Fiber        float64 `json:"fiber"`        // grams
	Iron         float64 `json:"iron"`         // mg
	VitaminC     float64 `json:"vitaminC"`     // mg
	Magnesium    float64 `json:"magnesium"`    // mg
	VitaminB12   float64 `json:"vitaminB12"`   // mcg
	Sodium       float64 `json:"sodium"`       // mg
	Sugar        float64 `json:"sugar"`        // grams
	SaturatedFat float64 `json:"saturatedFat"` // grams
}

// SourceTier identifies which class of database a record came from.
type SourceTier string

const (
	TierAuthoritative SourceTier = "authoritative"
	TierCommunity     SourceTier = "community"
	TierCurated       SourceTier = "curated"
)

// SourceRecord is one candidate food returned by a nutrition source.
// Confidence is assigned by the source, not derived from match quality.
type SourceRecord struct {
	Name       string         `json:"name"`
	Facts      NutritionFacts `json:"facts"`
	Confidence float64        `json:"confidence"` // 0-1
	Source     SourceTier     `json:"source"`
	CachedAt   time.Time      `json:"cachedAt,omitempty"`
}

// ResolvedFoodItem ties a query to its matched record and the nutrition
// scaled to the requested quantity.
type ResolvedFoodItem struct {
	Query           FoodQuery      `json:"query"`
	Record          SourceRecord   `json:"record"`
	GramsEquivalent float64        `json:"gramsEquivalent"`
	ScaledNutrition NutritionFacts `json:"scaledNutrition"`
}

// AggregateNutrition is the componentwise sum of scaled nutrition across a
// meal. Same field set as NutritionFacts, no upper bound.
type AggregateNutrition = NutritionFacts

// ScoreBreakdown carries the signed point contribution of each scoring
// component. Bonuses are >= 0, penalties <= 0.
type ScoreBreakdown struct {
	MacroBalance    float64 `json:"macroBalance"`
	Micronutrients  float64 `json:"micronutrients"`
	Fiber           float64 `json:"fiber"`
	ProcessingLevel float64 `json:"processingLevel"`
	SodiumPenalty   float64 `json:"sodiumPenalty"`
}

// ScoreResult is the deterministic quality verdict for a meal.
type ScoreResult struct {
	Score       int            `json:"score"` // clamped to [0,100]
	Grade       string         `json:"grade"` // A-F
	Breakdown   ScoreBreakdown `json:"breakdown"`
	Explanation string         `json:"explanation"`
}

// Diet keys evaluated by the compatibility checker.
const (
	DietKeto       = "keto"
	DietVegan      = "vegan"
	DietVegetarian = "vegetarian"
	DietGlutenFree = "glutenFree"
	DietDairyFree  = "dairyFree"
	DietLowSodium  = "lowSodium"
)

// DietVerdict is a single diet-fit verdict. Confidence is a fixed per-check
// annotation, not computed from data.
type DietVerdict struct {
	Compatible bool    `json:"compatible"`
	Reason     string  `json:"reason"`
	Confidence float64 `json:"confidence"` // 0-1
}

// DietCompatibility maps diet key to verdict.
type DietCompatibility map[string]DietVerdict

// Goal is the user's body-composition goal for target calculation.
type Goal string

const (
	GoalWeightLoss  Goal = "weight_loss"
	GoalWeightGain  Goal = "weight_gain"
	GoalMaintenance Goal = "maintenance"
	GoalMuscleGain  Goal = "muscle_gain"
)

// PersonalProfile holds the body metrics required for target calculation.
// Every numeric field is required; a missing one is a validation failure,
// never a silent default.
type PersonalProfile struct {
	WeightKg      float64 `json:"weightKg"`
	HeightCm      float64 `json:"heightCm"`
	AgeYears      int     `json:"ageYears"`
	Gender        string  `json:"gender"`
	ActivityLevel string  `json:"activityLevel"`
}

// CalculatedTargets is the personalized daily macro target set.
type CalculatedTargets struct {
	Calories    int    `json:"calories"`
	Protein     int    `json:"protein"` // grams
	Carbs       int    `json:"carbs"`   // grams
	Fat         int    `json:"fat"`     // grams
	Fiber       int    `json:"fiber"`   // grams
	BMR         int    `json:"bmr"`
	TDEE        int    `json:"tdee"`
	Explanation string `json:"explanation"`
}

// MealResult is everything the engine produces for one meal: resolved
// items, the aggregate, the quality score, and the diet verdicts. Names
// that no source could resolve are listed in Unmatched.
type MealResult struct {
	Items         []ResolvedFoodItem `json:"items"`
	Unmatched     []string           `json:"unmatched,omitempty"`
	Aggregate     AggregateNutrition `json:"aggregate"`
	Score         ScoreResult        `json:"score"`
	Compatibility DietCompatibility  `json:"compatibility"`
}
