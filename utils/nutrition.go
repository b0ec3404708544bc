package utils

import (
	"errors"

	"github.com/eudoxia0/zetanom/models"
)

// Panel is a nutrient panel scaled to some amount of a food. Units match
// the per-100-unit fields on Food.
type Panel struct {
	Amount       float64            `json:"amount"`
	Unit         models.ServingUnit `json:"unit"`
	Energy       float64            `json:"energy"`
	Protein      float64            `json:"protein"`
	Fat          float64            `json:"fat"`
	FatSaturated float64            `json:"fat_saturated"`
	Carbs        float64            `json:"carbs"`
	CarbsSugars  float64            `json:"carbs_sugars"`
	Fibre        float64            `json:"fibre"`
	Sodium       float64            `json:"sodium"`
}

// ScaleForAmount computes the nutrition facts for amount units of the
// food's serving unit. Stored values are per 100 units, so this is a pure
// multiplication by amount/100.
func ScaleForAmount(food *models.Food, amount float64) (Panel, error) {
	if amount <= 0 {
		return Panel{}, errors.New("amount must be positive")
	}
	factor := amount / 100.0
	return Panel{
		Amount:       amount,
		Unit:         food.ServingUnit,
		Energy:       food.Energy * factor,
		Protein:      food.Protein * factor,
		Fat:          food.Fat * factor,
		FatSaturated: food.FatSaturated * factor,
		Carbs:        food.Carbs * factor,
		CarbsSugars:  food.CarbsSugars * factor,
		Fibre:        food.Fibre * factor,
		Sodium:       food.Sodium * factor,
	}, nil
}

// ScaleForServing computes the nutrition facts for one of a food's named
// servings.
func ScaleForServing(food *models.Food, serving *models.ServingSize) (Panel, error) {
	return ScaleForAmount(food, serving.ServingAmount)
}
