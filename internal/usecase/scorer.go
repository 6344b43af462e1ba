package usecase

import (
	"math"
	"strings"

	"github.com/nutriscore/backend/internal/domain"
)

// Scoring component caps and thresholds.
const (
	macroBalanceMax   = 30.0
	macroBandPenalty  = 10.0
	micronutrientsMax = 25.0
	microThresholdPts = 5.0
	fiberMax          = 20.0
	fiberPtsPerGram   = 2.0
	processingPerHit  = 3.0
	processingMax     = 15.0
	sodiumFreeLimit   = 400.0 // mg, no penalty at or below
	sodiumPenaltyMax  = 10.0
)

// Ideal macro bands as shares of the protein+carbs+fat gram sum.
const (
	proteinShareMin = 0.15
	proteinShareMax = 0.30
	carbsShareMin   = 0.45
	carbsShareMax   = 0.65
	fatShareMin     = 0.20
	fatShareMax     = 0.35
)

// processingKeywords flag ultra-processed foods by name.
var processingKeywords = []string{
	"processed", "refined", "artificial", "preservative", "additive",
}

// Score computes the deterministic 0-100 meal quality score with letter
// grade and per-component breakdown. Pure: no randomness, no external
// calls, never fails. Degenerate inputs (zero macro sum, zero calories)
// skip the affected component instead of dividing by zero.
func Score(aggregate domain.AggregateNutrition, foodNames []string) domain.ScoreResult {
	breakdown := domain.ScoreBreakdown{
		MacroBalance:    macroBalancePoints(aggregate),
		Micronutrients:  micronutrientPoints(aggregate),
		Fiber:           fiberPoints(aggregate.Fiber),
		ProcessingLevel: negate(processingPenalty(foodNames)),
		SodiumPenalty:   negate(sodiumPenalty(aggregate.Sodium)),
	}

	total := breakdown.MacroBalance +
		breakdown.Micronutrients +
		breakdown.Fiber +
		breakdown.ProcessingLevel +
		breakdown.SodiumPenalty

	score := int(math.Round(math.Min(100, math.Max(0, total))))

	return domain.ScoreResult{
		Score:       score,
		Grade:       gradeFor(score),
		Breakdown:   breakdown,
		Explanation: explain(breakdown),
	}
}

// macroBalancePoints starts at the cap and deducts for each macro whose
// share of the macro gram sum falls outside its ideal band. A zero macro
// sum skips the component entirely.
func macroBalancePoints(n domain.AggregateNutrition) float64 {
	sum := n.Protein + n.Carbs + n.Fat
	if sum <= 0 {
		return 0
	}

	points := macroBalanceMax
	if out(n.Protein/sum, proteinShareMin, proteinShareMax) {
		points -= macroBandPenalty
	}
	if out(n.Carbs/sum, carbsShareMin, carbsShareMax) {
		points -= macroBandPenalty
	}
	if out(n.Fat/sum, fatShareMin, fatShareMax) {
		points -= macroBandPenalty
	}
	if points < 0 {
		points = 0
	}
	return points
}

func out(share, lo, hi float64) bool {
	return share < lo || share > hi
}

// negate flips a penalty magnitude to its signed contribution without
// producing negative zero.
func negate(v float64) float64 {
	if v == 0 {
		return 0
	}
	return -v
}

// micronutrientPoints awards a flat bonus per micro threshold met, plus a
// small graded bonus on the combined iron/vitC/magnesium mass, capped.
func micronutrientPoints(n domain.AggregateNutrition) float64 {
	points := 0.0
	if n.Iron > 2 {
		points += microThresholdPts
	}
	if n.VitaminC > 10 {
		points += microThresholdPts
	}
	if n.Magnesium > 50 {
		points += microThresholdPts
	}
	if n.VitaminB12 > 0.5 {
		points += microThresholdPts
	}
	points += math.Min(5, (n.Iron+n.VitaminC+n.Magnesium)/20)
	return math.Min(micronutrientsMax, points)
}

func fiberPoints(fiber float64) float64 {
	return math.Min(fiberMax, fiber*fiberPtsPerGram)
}

// processingPenalty returns a positive magnitude: 3 points per processing
// keyword found in any food name, capped.
func processingPenalty(foodNames []string) float64 {
	hits := 0
	for _, name := range foodNames {
		lower := strings.ToLower(name)
		for _, kw := range processingKeywords {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
	}
	return math.Min(processingMax, float64(hits)*processingPerHit)
}

// sodiumPenalty returns a positive magnitude: one point per 100 mg of
// sodium above the free limit, capped. Zero at or below the limit.
func sodiumPenalty(sodium float64) float64 {
	return math.Min(sodiumPenaltyMax, math.Max(0, (sodium-sodiumFreeLimit)/100))
}

// gradeFor maps a clamped score to a letter. Bands are inclusive at the
// lower bound.
func gradeFor(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// explain derives reader-facing notes from the strong and weak components.
// The text is illustrative; the numeric breakdown is the contract.
func explain(b domain.ScoreBreakdown) string {
	var notes []string

	if b.MacroBalance >= macroBalanceMax {
		notes = append(notes, "Well-balanced macronutrients")
	} else if b.MacroBalance <= macroBalanceMax-2*macroBandPenalty {
		notes = append(notes, "Macronutrient ratios are off target")
	}

	if b.Micronutrients >= 15 {
		notes = append(notes, "Rich in essential micronutrients")
	}

	if b.Fiber >= fiberMax {
		notes = append(notes, "High fiber content supports digestive health")
	} else if b.Fiber < 5 {
		notes = append(notes, "Low in fiber")
	}

	if b.ProcessingLevel < 0 {
		notes = append(notes, "Contains processed ingredients")
	}
	if b.SodiumPenalty < 0 {
		notes = append(notes, "Sodium exceeds recommended levels")
	}

	if len(notes) == 0 {
		return "Moderate nutritional quality"
	}
	return strings.Join(notes, ". ")
}
