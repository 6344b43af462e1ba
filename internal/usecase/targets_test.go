package usecase

import (
	"errors"
	"testing"

	"github.com/nutriscore/backend/internal/domain"
)

func validProfile() domain.PersonalProfile {
	return domain.PersonalProfile{
		WeightKg:      70,
		HeightCm:      175,
		AgeYears:      30,
		Gender:        "male",
		ActivityLevel: "moderate",
	}
}

func TestCalculateTargets(t *testing.T) {
	t.Run("reference male maintenance case", func(t *testing.T) {
		got, err := CalculateTargets(validProfile(), domain.GoalMaintenance)
		if err != nil {
			t.Fatalf("CalculateTargets() error = %v", err)
		}

		// BMR = 10*70 + 6.25*175 - 5*30 + 5 = 1723
		if got.BMR != 1723 {
			t.Errorf("BMR = %d, want 1723", got.BMR)
		}
		// TDEE = round(1723 * 1.55) = 2671
		if got.TDEE != 2671 {
			t.Errorf("TDEE = %d, want 2671", got.TDEE)
		}
		if got.Calories != 2671 {
			t.Errorf("Calories = %d, want 2671", got.Calories)
		}
		// maintenance: 1.2 g/kg protein, 45% carbs, 30% fat
		if got.Protein != 84 {
			t.Errorf("Protein = %d, want 84", got.Protein)
		}
		if got.Carbs != 300 {
			t.Errorf("Carbs = %d, want 300", got.Carbs)
		}
		if got.Fat != 89 {
			t.Errorf("Fat = %d, want 89", got.Fat)
		}
		// fiber = round(2671/1000 * 14) = 37
		if got.Fiber != 37 {
			t.Errorf("Fiber = %d, want 37", got.Fiber)
		}
	})

	t.Run("female weight loss case", func(t *testing.T) {
		profile := domain.PersonalProfile{
			WeightKg: 60, HeightCm: 165, AgeYears: 25,
			Gender: "female", ActivityLevel: "sedentary",
		}
		got, err := CalculateTargets(profile, domain.GoalWeightLoss)
		if err != nil {
			t.Fatalf("CalculateTargets() error = %v", err)
		}

		// BMR = 600 + 1031.25 - 125 - 161 = 1345.25 -> 1345
		if got.BMR != 1345 {
			t.Errorf("BMR = %d, want 1345", got.BMR)
		}
		// TDEE = round(1345.25 * 1.2) = 1614
		if got.TDEE != 1614 {
			t.Errorf("TDEE = %d, want 1614", got.TDEE)
		}
		// weight loss deficit of 500
		if got.Calories != 1114 {
			t.Errorf("Calories = %d, want 1114", got.Calories)
		}
		// 1.8 g/kg protein, 25% fat, remainder carbs
		if got.Protein != 108 {
			t.Errorf("Protein = %d, want 108", got.Protein)
		}
		if got.Fat != 31 {
			t.Errorf("Fat = %d, want 31", got.Fat)
		}
		if got.Carbs != 101 {
			t.Errorf("Carbs = %d, want 101", got.Carbs)
		}
	})

	t.Run("muscle gain surplus and protein", func(t *testing.T) {
		got, err := CalculateTargets(validProfile(), domain.GoalMuscleGain)
		if err != nil {
			t.Fatalf("CalculateTargets() error = %v", err)
		}
		if got.Calories != 2671+200 {
			t.Errorf("Calories = %d, want 2871", got.Calories)
		}
		// 2.2 g/kg
		if got.Protein != 154 {
			t.Errorf("Protein = %d, want 154", got.Protein)
		}
	})

	t.Run("weight gain surplus", func(t *testing.T) {
		got, err := CalculateTargets(validProfile(), domain.GoalWeightGain)
		if err != nil {
			t.Fatalf("CalculateTargets() error = %v", err)
		}
		if got.Calories != 2671+300 {
			t.Errorf("Calories = %d, want 2971", got.Calories)
		}
	})

	t.Run("unrecognized activity level defaults to moderate", func(t *testing.T) {
		profile := validProfile()
		profile.ActivityLevel = "couch-surfing"
		got, err := CalculateTargets(profile, domain.GoalMaintenance)
		if err != nil {
			t.Fatalf("CalculateTargets() error = %v", err)
		}
		if got.TDEE != 2671 {
			t.Errorf("TDEE = %d, want 2671 (moderate default)", got.TDEE)
		}
	})

	t.Run("non-male genders use the female constant", func(t *testing.T) {
		profile := validProfile()
		profile.Gender = "other"
		got, err := CalculateTargets(profile, domain.GoalMaintenance)
		if err != nil {
			t.Fatalf("CalculateTargets() error = %v", err)
		}
		// 1723 - 5 - 161 = 1557
		if got.BMR != 1557 {
			t.Errorf("BMR = %d, want 1557", got.BMR)
		}
	})
}

func TestCalculateTargetsValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.PersonalProfile)
		field  string
	}{
		{"missing weight", func(p *domain.PersonalProfile) { p.WeightKg = 0 }, "weightKg"},
		{"missing height", func(p *domain.PersonalProfile) { p.HeightCm = 0 }, "heightCm"},
		{"missing age", func(p *domain.PersonalProfile) { p.AgeYears = 0 }, "ageYears"},
		{"negative weight", func(p *domain.PersonalProfile) { p.WeightKg = -70 }, "weightKg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := validProfile()
			tt.mutate(&profile)

			_, err := CalculateTargets(profile, domain.GoalMaintenance)
			if err == nil {
				t.Fatal("CalculateTargets() error = nil, want ValidationError")
			}

			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error = %v, want *ValidationError", err)
			}
			if ve.Field != tt.field {
				t.Errorf("ValidationError.Field = %s, want %s", ve.Field, tt.field)
			}
		})
	}
}
