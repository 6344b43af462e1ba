package usda

import "github.com/nutriscore/backend/internal/domain"

// FDC nutrient IDs for the fields the engine tracks.
const (
	nutrientIDEnergy       = 1008 // kcal
	nutrientIDProtein      = 1003 // g
	nutrientIDCarbohydrate = 1005 // g
	nutrientIDTotalFat     = 1004 // g
	nutrientIDFiber        = 1079 // g
	nutrientIDIron         = 1089 // mg
	nutrientIDVitaminC     = 1162 // mg
	nutrientIDMagnesium    = 1090 // mg
	nutrientIDVitaminB12   = 1178 // mcg
	nutrientIDSodium       = 1093 // mg
	nutrientIDSugar        = 2000 // g
	nutrientIDSaturatedFat = 1258 // g
)

// Confidence assigned per FDC data type. Source-assigned, never derived
// from match quality.
var dataTypeConfidence = map[string]float64{
	"Foundation":     0.95,
	"Survey (FNDDS)": 0.90,
	"SR Legacy":      0.90,
	"Branded":        0.85,
}

const defaultConfidence = 0.80

// mapFood converts an FDC food into a per-100g source record. FDC search
// results report nutrients per 100 g already, so values map directly.
func mapFood(food *fdcFood) domain.SourceRecord {
	confidence, ok := dataTypeConfidence[food.DataType]
	if !ok {
		confidence = defaultConfidence
	}

	return domain.SourceRecord{
		Name:       food.Description,
		Facts:      extractFacts(food.Nutrients),
		Confidence: confidence,
		Source:     domain.TierAuthoritative,
	}
}

// extractFacts pulls the tracked nutrients from the FDC nutrient list.
// Anything absent stays zero.
func extractFacts(nutrients []fdcNutrient) domain.NutritionFacts {
	var facts domain.NutritionFacts
	for _, n := range nutrients {
		switch n.NutrientID {
		case nutrientIDEnergy:
			facts.Calories = n.Value
		case nutrientIDProtein:
			facts.Protein = n.Value
		case nutrientIDCarbohydrate:
			facts.Carbs = n.Value
		case nutrientIDTotalFat:
			facts.Fat = n.Value
		case nutrientIDFiber:
			facts.Fiber = n.Value
		case nutrientIDIron:
			facts.Iron = n.Value
		case nutrientIDVitaminC:
			facts.VitaminC = n.Value
		case nutrientIDMagnesium:
			facts.Magnesium = n.Value
		case nutrientIDVitaminB12:
			facts.VitaminB12 = n.Value
		case nutrientIDSodium:
			facts.Sodium = n.Value
		case nutrientIDSugar:
			facts.Sugar = n.Value
		case nutrientIDSaturatedFat:
			facts.SaturatedFat = n.Value
		}
	}
	return facts
}
