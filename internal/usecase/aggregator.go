package usecase

import (
	"math"

	"github.com/nutriscore/backend/internal/domain"
)

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}

// Scale converts per-100g facts to the given gram quantity. Rounding is
// applied after scaling, per field: calories to an integer, gram-based
// macros to 1 decimal, micros to 2 decimals. Rounding here keeps error
// from compounding before aggregation.
func Scale(facts domain.NutritionFacts, grams float64) domain.NutritionFacts {
	f := grams / 100
	return domain.NutritionFacts{
		Calories:     math.Round(facts.Calories * f),
		Protein:      roundTo(facts.Protein*f, 1),
		Carbs:        roundTo(facts.Carbs*f, 1),
		Fat:          roundTo(facts.Fat*f, 1),
		Fiber:        roundTo(facts.Fiber*f, 1),
		Sugar:        roundTo(facts.Sugar*f, 1),
		SaturatedFat: roundTo(facts.SaturatedFat*f, 1),
		Iron:         roundTo(facts.Iron*f, 2),
		VitaminC:     roundTo(facts.VitaminC*f, 2),
		Magnesium:    roundTo(facts.Magnesium*f, 2),
		VitaminB12:   roundTo(facts.VitaminB12*f, 2),
		Sodium:       roundTo(facts.Sodium*f, 2),
	}
}

// Aggregate sums scaled nutrition across all items in a meal. Summation is
// commutative, so items may be resolved concurrently and aggregated in any
// order. Fields absent at the boundary are already zero.
func Aggregate(items []domain.ResolvedFoodItem) domain.AggregateNutrition {
	var total domain.AggregateNutrition
	for _, item := range items {
		n := item.ScaledNutrition
		total.Calories += n.Calories
		total.Protein += n.Protein
		total.Carbs += n.Carbs
		total.Fat += n.Fat
		total.Fiber += n.Fiber
		total.Iron += n.Iron
		total.VitaminC += n.VitaminC
		total.Magnesium += n.Magnesium
		total.VitaminB12 += n.VitaminB12
		total.Sodium += n.Sodium
		total.Sugar += n.Sugar
		total.SaturatedFat += n.SaturatedFat
	}
	return total
}
