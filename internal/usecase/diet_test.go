package usecase

import (
	"strings"
	"testing"

	"github.com/nutriscore/backend/internal/domain"
)

func TestCheckDiets(t *testing.T) {
	t.Run("returns all six verdicts", func(t *testing.T) {
		result := CheckDiets([]string{"apple"}, domain.AggregateNutrition{Calories: 52, Carbs: 14})

		keys := []string{
			domain.DietKeto, domain.DietVegan, domain.DietVegetarian,
			domain.DietGlutenFree, domain.DietDairyFree, domain.DietLowSodium,
		}
		for _, key := range keys {
			if _, ok := result[key]; !ok {
				t.Errorf("missing verdict for %s", key)
			}
		}
	})

	t.Run("confidences are fixed annotations in range", func(t *testing.T) {
		result := CheckDiets([]string{"apple"}, domain.AggregateNutrition{Calories: 52})
		for key, verdict := range result {
			if verdict.Confidence < 0.85 || verdict.Confidence > 0.99 {
				t.Errorf("%s confidence = %v, want within [0.85, 0.99]", key, verdict.Confidence)
			}
		}
	})
}

func TestCheckKeto(t *testing.T) {
	t.Run("compatible under ten percent carb calories", func(t *testing.T) {
		// 5g carbs = 20 kcal of 400 kcal = 5%
		v := checkKeto(domain.AggregateNutrition{Calories: 400, Carbs: 5})
		if !v.Compatible {
			t.Errorf("keto compatible = false, want true: %s", v.Reason)
		}
	})

	t.Run("incompatible at or above ten percent", func(t *testing.T) {
		// 10g carbs = 40 kcal of 400 kcal = 10% exactly, not under
		v := checkKeto(domain.AggregateNutrition{Calories: 400, Carbs: 10})
		if v.Compatible {
			t.Errorf("keto compatible = true, want false at exactly 10%%")
		}
	})

	t.Run("zero calories treated as incompatible", func(t *testing.T) {
		v := checkKeto(domain.AggregateNutrition{})
		if v.Compatible {
			t.Error("keto compatible = true for zero calories, want false")
		}
	})
}

func TestKeywordChecks(t *testing.T) {
	t.Run("chicken fails vegan and vegetarian naming the keyword", func(t *testing.T) {
		result := CheckDiets([]string{"grilled chicken breast"}, domain.AggregateNutrition{Calories: 165})

		vegan := result[domain.DietVegan]
		if vegan.Compatible {
			t.Error("vegan = compatible, want incompatible")
		}
		if !strings.Contains(vegan.Reason, "chicken") {
			t.Errorf("vegan reason = %q, want it to name chicken", vegan.Reason)
		}

		vegetarian := result[domain.DietVegetarian]
		if vegetarian.Compatible {
			t.Error("vegetarian = compatible, want incompatible")
		}
		if !strings.Contains(vegetarian.Reason, "chicken") {
			t.Errorf("vegetarian reason = %q, want it to name chicken", vegetarian.Reason)
		}
	})

	t.Run("honey fails vegan but passes vegetarian", func(t *testing.T) {
		result := CheckDiets([]string{"honey oats"}, domain.AggregateNutrition{Calories: 300})
		if result[domain.DietVegan].Compatible {
			t.Error("vegan = compatible for honey, want incompatible")
		}
		if !result[domain.DietVegetarian].Compatible {
			t.Error("vegetarian = incompatible for honey, want compatible")
		}
	})

	t.Run("bread fails glutenFree", func(t *testing.T) {
		result := CheckDiets([]string{"whole wheat bread"}, domain.AggregateNutrition{Calories: 265})
		if result[domain.DietGlutenFree].Compatible {
			t.Error("glutenFree = compatible for bread, want incompatible")
		}
	})

	t.Run("cream fails dairyFree case-insensitively", func(t *testing.T) {
		result := CheckDiets([]string{"Ice CREAM sundae"}, domain.AggregateNutrition{Calories: 300})
		if result[domain.DietDairyFree].Compatible {
			t.Error("dairyFree = compatible for cream, want incompatible")
		}
	})
}

func TestCheckLowSodium(t *testing.T) {
	t.Run("under the absolute limit", func(t *testing.T) {
		if v := checkLowSodium(139); !v.Compatible {
			t.Errorf("lowSodium = incompatible at 139mg, want compatible: %s", v.Reason)
		}
	})

	t.Run("at the limit is incompatible", func(t *testing.T) {
		if v := checkLowSodium(140); v.Compatible {
			t.Error("lowSodium = compatible at 140mg, want incompatible")
		}
	})

	t.Run("absolute threshold regardless of meal size", func(t *testing.T) {
		// The 140mg limit is not scaled by quantity.
		if v := checkLowSodium(1500); v.Compatible {
			t.Error("lowSodium = compatible at 1500mg, want incompatible")
		}
	})
}
