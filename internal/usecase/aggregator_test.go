package usecase

import (
	"math/rand"
	"testing"

	"github.com/nutriscore/backend/internal/domain"
)

func TestScale(t *testing.T) {
	facts := domain.NutritionFacts{
		Calories:   52,
		Protein:    0.3,
		Carbs:      14,
		Fat:        0.2,
		Fiber:      2.4,
		Iron:       0.12,
		VitaminC:   4.6,
		Magnesium:  5,
		Sodium:     1,
		Sugar:      10.4,
		VitaminB12: 0,
	}

	t.Run("scales per-100g facts to quantity", func(t *testing.T) {
		got := Scale(facts, 150)

		if got.Calories != 78 {
			t.Errorf("Calories = %v, want 78", got.Calories)
		}
		if got.Protein != 0.5 {
			t.Errorf("Protein = %v, want 0.5 (1 decimal)", got.Protein)
		}
		if got.Carbs != 21 {
			t.Errorf("Carbs = %v, want 21", got.Carbs)
		}
		if got.Iron != 0.18 {
			t.Errorf("Iron = %v, want 0.18 (2 decimals)", got.Iron)
		}
		if got.VitaminC != 6.9 {
			t.Errorf("VitaminC = %v, want 6.9", got.VitaminC)
		}
	})

	t.Run("zero grams zeroes everything", func(t *testing.T) {
		got := Scale(facts, 0)
		if got != (domain.NutritionFacts{}) {
			t.Errorf("Scale(facts, 0) = %+v, want zero facts", got)
		}
	})

	t.Run("calories round to integer", func(t *testing.T) {
		got := Scale(domain.NutritionFacts{Calories: 100}, 33)
		if got.Calories != 33 {
			t.Errorf("Calories = %v, want 33", got.Calories)
		}
	})

	t.Run("100 grams is identity up to rounding", func(t *testing.T) {
		got := Scale(facts, 100)
		if got.Calories != facts.Calories || got.Protein != facts.Protein {
			t.Errorf("Scale(facts, 100) = %+v, want facts unchanged", got)
		}
	})
}

func item(facts domain.NutritionFacts) domain.ResolvedFoodItem {
	return domain.ResolvedFoodItem{ScaledNutrition: facts}
}

func TestAggregate(t *testing.T) {
	t.Run("sums componentwise", func(t *testing.T) {
		got := Aggregate([]domain.ResolvedFoodItem{
			item(domain.NutritionFacts{Calories: 100, Protein: 10, Sodium: 50}),
			item(domain.NutritionFacts{Calories: 200, Protein: 5, Sodium: 25, Fiber: 3}),
		})

		if got.Calories != 300 {
			t.Errorf("Calories = %v, want 300", got.Calories)
		}
		if got.Protein != 15 {
			t.Errorf("Protein = %v, want 15", got.Protein)
		}
		if got.Sodium != 75 {
			t.Errorf("Sodium = %v, want 75", got.Sodium)
		}
		if got.Fiber != 3 {
			t.Errorf("Fiber = %v, want 3", got.Fiber)
		}
	})

	t.Run("empty input yields zero aggregate", func(t *testing.T) {
		if got := Aggregate(nil); got != (domain.AggregateNutrition{}) {
			t.Errorf("Aggregate(nil) = %+v, want zero", got)
		}
	})

	t.Run("order independent", func(t *testing.T) {
		items := []domain.ResolvedFoodItem{
			item(domain.NutritionFacts{Calories: 78, Protein: 0.5, Iron: 0.25}),
			item(domain.NutritionFacts{Calories: 165, Protein: 31, Iron: 1}),
			item(domain.NutritionFacts{Calories: 34, Protein: 2.75, Iron: 0.75}),
			item(domain.NutritionFacts{Calories: 130, Protein: 2.25, Iron: 0.5}),
		}
		want := Aggregate(items)

		r := rand.New(rand.NewSource(1))
		for i := 0; i < 10; i++ {
			shuffled := make([]domain.ResolvedFoodItem, len(items))
			copy(shuffled, items)
			r.Shuffle(len(shuffled), func(a, b int) {
				shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
			})
			if got := Aggregate(shuffled); got != want {
				t.Fatalf("Aggregate order-dependent: got %+v, want %+v", got, want)
			}
		}
	})
}
