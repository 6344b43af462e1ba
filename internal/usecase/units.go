package usecase

import "strings"

// unitGrams maps a normalized unit name to its weight in grams. Household
// measures are approximations; the named piece sizes (small/medium/large)
// are generic produce weights.
var unitGrams = map[string]float64{
	"g":           1,
	"gram":        1,
	"grams":       1,
	"kg":          1000,
	"kilogram":    1000,
	"kilograms":   1000,
	"oz":          28.35,
	"ounce":       28.35,
	"ounces":      28.35,
	"lb":          453.6,
	"lbs":         453.6,
	"pound":       453.6,
	"pounds":      453.6,
	"cup":         240,
	"cups":        240,
	"tbsp":        15,
	"tablespoon":  15,
	"tablespoons": 15,
	"tsp":         5,
	"teaspoon":    5,
	"teaspoons":   5,
	"slice":       30,
	"slices":      30,
	"piece":       50,
	"pieces":      50,
	"small":       80,
	"medium":      120,
	"large":       150,
	"ear":         90, // corn
	"ears":        90,
}

// defaultUnitGrams is used for units missing from the table. Keeping the
// pipeline total on noisy input beats failing; callers that need precision
// for unusual units must supply grams directly.
const defaultUnitGrams = 100

// NormalizeToGrams converts a (quantity, unit) pair to grams. Unit lookup
// is case-insensitive and trimmed. No rounding is applied here; full
// precision flows forward to scaling.
func NormalizeToGrams(quantity float64, unit string) float64 {
	perUnit, ok := unitGrams[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		perUnit = defaultUnitGrams
	}
	return quantity * perUnit
}
