package usecase

import (
	"fmt"
	"strings"

	"github.com/nutriscore/backend/internal/domain"
)

// Diet check thresholds.
const (
	ketoCarbCalorieFraction = 0.10
	lowSodiumLimitMg        = 140.0
)

// Fixed confidence per check type, reflecting how reliable keyword or
// threshold matching is assumed to be for that category. Annotations, not
// computed values.
const (
	ketoConfidence       = 0.90
	veganConfidence      = 0.85
	vegetarianConfidence = 0.87
	glutenFreeConfidence = 0.88
	dairyFreeConfidence  = 0.88
	lowSodiumConfidence  = 0.99
)

var (
	veganKeywords = []string{
		"meat", "chicken", "beef", "pork", "fish", "egg", "dairy",
		"milk", "cheese", "butter", "yogurt", "honey",
	}
	vegetarianKeywords = []string{
		"meat", "chicken", "beef", "pork", "fish", "seafood",
	}
	glutenKeywords = []string{
		"wheat", "barley", "rye", "bread", "pasta", "cereal",
	}
	dairyKeywords = []string{
		"milk", "cheese", "butter", "yogurt", "cream", "dairy",
	}
)

// CheckDiets evaluates the six independent diet-fit verdicts against the
// meal's food names and aggregate nutrition. Keyword and threshold based
// only; each check is independent of the others and never fails.
func CheckDiets(foodNames []string, aggregate domain.AggregateNutrition) domain.DietCompatibility {
	return domain.DietCompatibility{
		domain.DietKeto:       checkKeto(aggregate),
		domain.DietVegan:      checkKeywords(foodNames, veganKeywords, "animal products", veganConfidence),
		domain.DietVegetarian: checkKeywords(foodNames, vegetarianKeywords, "meat or fish", vegetarianConfidence),
		domain.DietGlutenFree: checkKeywords(foodNames, glutenKeywords, "gluten", glutenFreeConfidence),
		domain.DietDairyFree:  checkKeywords(foodNames, dairyKeywords, "dairy", dairyFreeConfidence),
		domain.DietLowSodium:  checkLowSodium(aggregate.Sodium),
	}
}

// checkKeto tests whether carbohydrate calories stay under 10% of total
// calories. A zero-calorie aggregate is incompatible rather than a
// division by zero.
func checkKeto(n domain.AggregateNutrition) domain.DietVerdict {
	if n.Calories <= 0 {
		return domain.DietVerdict{
			Compatible: false,
			Reason:     "no calorie data to assess carb ratio",
			Confidence: ketoConfidence,
		}
	}

	fraction := n.Carbs * 4 / n.Calories
	if fraction < ketoCarbCalorieFraction {
		return domain.DietVerdict{
			Compatible: true,
			Reason:     fmt.Sprintf("carbs supply %.0f%% of calories", fraction*100),
			Confidence: ketoConfidence,
		}
	}
	return domain.DietVerdict{
		Compatible: false,
		Reason:     fmt.Sprintf("carbs supply %.0f%% of calories, above the 10%% keto limit", fraction*100),
		Confidence: ketoConfidence,
	}
}

// checkKeywords scans food names case-insensitively for any keyword of the
// excluded category. The reason names the first offending keyword found.
func checkKeywords(foodNames, keywords []string, category string, confidence float64) domain.DietVerdict {
	for _, name := range foodNames {
		lower := strings.ToLower(name)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return domain.DietVerdict{
					Compatible: false,
					Reason:     fmt.Sprintf("%q contains %s", name, kw),
					Confidence: confidence,
				}
			}
		}
	}
	return domain.DietVerdict{
		Compatible: true,
		Reason:     fmt.Sprintf("no %s detected", category),
		Confidence: confidence,
	}
}

// checkLowSodium compares total sodium against an absolute 140 mg limit,
// not scaled by meal quantity.
func checkLowSodium(sodium float64) domain.DietVerdict {
	if sodium < lowSodiumLimitMg {
		return domain.DietVerdict{
			Compatible: true,
			Reason:     fmt.Sprintf("%.0fmg sodium is under the 140mg low-sodium limit", sodium),
			Confidence: lowSodiumConfidence,
		}
	}
	return domain.DietVerdict{
		Compatible: false,
		Reason:     fmt.Sprintf("%.0fmg sodium exceeds the 140mg low-sodium limit", sodium),
		Confidence: lowSodiumConfidence,
	}
}
