package usecase

import (
	"fmt"
	"math"
	"strings"

	"github.com/nutriscore/backend/internal/domain"
)

// Goal calorie deltas applied on top of TDEE.
const (
	weightLossDelta = -500
	weightGainDelta = +300
	muscleGainDelta = +200
)

// Calorie density per gram of fat and carbohydrate.
const (
	kcalPerGramFat  = 9.0
	kcalPerGramCarb = 4.0
)

// activityMultipliers maps activity level to the TDEE factor.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

const defaultActivityMultiplier = 1.55 // moderate

// CalculateTargets derives a personalized daily macro target from body
// metrics and a goal. Weight, height, and age are required; a missing one
// fails with a ValidationError rather than defaulting. Pure and
// deterministic.
func CalculateTargets(profile domain.PersonalProfile, goal domain.Goal) (*domain.CalculatedTargets, error) {
	if profile.WeightKg <= 0 {
		return nil, &domain.ValidationError{Field: "weightKg", Reason: "required and must be positive"}
	}
	if profile.HeightCm <= 0 {
		return nil, &domain.ValidationError{Field: "heightCm", Reason: "required and must be positive"}
	}
	if profile.AgeYears <= 0 {
		return nil, &domain.ValidationError{Field: "ageYears", Reason: "required and must be positive"}
	}

	bmr := mifflinStJeor(profile)

	multiplier, ok := activityMultipliers[strings.ToLower(strings.TrimSpace(profile.ActivityLevel))]
	if !ok {
		multiplier = defaultActivityMultiplier
	}
	tdee := math.Round(bmr * multiplier)

	calories := tdee + goalDelta(goal)

	proteinG, carbsG, fatG := macroSplit(profile.WeightKg, calories, goal)

	fiberG := math.Round(calories / 1000 * 14)

	return &domain.CalculatedTargets{
		Calories:    int(calories),
		Protein:     int(proteinG),
		Carbs:       int(carbsG),
		Fat:         int(fatG),
		Fiber:       int(fiberG),
		BMR:         int(math.Round(bmr)),
		TDEE:        int(tdee),
		Explanation: explainTargets(bmr, tdee, calories, goal),
	}, nil
}

// mifflinStJeor computes basal metabolic rate from body metrics. The
// female constant applies to any non-male gender value.
func mifflinStJeor(p domain.PersonalProfile) float64 {
	base := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.AgeYears)
	if strings.EqualFold(strings.TrimSpace(p.Gender), "male") {
		return base + 5
	}
	return base - 161
}

func goalDelta(goal domain.Goal) float64 {
	switch goal {
	case domain.GoalWeightLoss:
		return weightLossDelta
	case domain.GoalWeightGain:
		return weightGainDelta
	case domain.GoalMuscleGain:
		return muscleGainDelta
	default:
		return 0
	}
}

// macroSplit allocates calories to protein, carbs, and fat per goal.
// Cutting and bulking goals fix protein per kilogram and fat as a calorie
// share, with the remainder going to carbs; maintenance-style goals fix
// protein, carbs, and fat shares directly.
func macroSplit(weightKg, calories float64, goal domain.Goal) (proteinG, carbsG, fatG float64) {
	switch goal {
	case domain.GoalWeightLoss:
		proteinG = math.Round(weightKg * 1.8)
		fatG = math.Round(calories * 0.25 / kcalPerGramFat)
		carbsG = math.Round((calories - proteinG*kcalPerGramCarb - fatG*kcalPerGramFat) / kcalPerGramCarb)
	case domain.GoalMuscleGain:
		proteinG = math.Round(weightKg * 2.2)
		fatG = math.Round(calories * 0.25 / kcalPerGramFat)
		carbsG = math.Round((calories - proteinG*kcalPerGramCarb - fatG*kcalPerGramFat) / kcalPerGramCarb)
	default:
		proteinG = math.Round(weightKg * 1.2)
		carbsG = math.Round(calories * 0.45 / kcalPerGramCarb)
		fatG = math.Round(calories * 0.30 / kcalPerGramFat)
	}
	if carbsG < 0 {
		carbsG = 0
	}
	return proteinG, carbsG, fatG
}

func explainTargets(bmr, tdee, calories float64, goal domain.Goal) string {
	return fmt.Sprintf(
		"BMR %.0f kcal (Mifflin-St Jeor), TDEE %.0f kcal after activity; %s goal sets the daily target at %.0f kcal",
		bmr, tdee, goalLabel(goal), calories,
	)
}

func goalLabel(goal domain.Goal) string {
	switch goal {
	case domain.GoalWeightLoss, domain.GoalWeightGain, domain.GoalMuscleGain, domain.GoalMaintenance:
		return strings.ReplaceAll(string(goal), "_", " ")
	default:
		return "maintenance"
	}
}
