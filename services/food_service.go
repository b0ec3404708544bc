package services

import (
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/eudoxia0/zetanom/apperrors"
	"github.com/eudoxia0/zetanom/models"
)

// FoodService is the write/read authority for the food library. Every
// invariant on foods (unit restriction, nutrient ranges, cascade delete)
// is enforced here or by the schema, never by callers.
type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

// CreateFoodInput carries the client-supplied nutrient panel. Nutrient
// values are per 100 units of ServingUnit.
type CreateFoodInput struct {
	Name         string
	Brand        *string
	ServingUnit  models.ServingUnit
	Energy       float64
	Protein      float64
	Fat          float64
	FatSaturated float64
	Carbs        float64
	CarbsSugars  float64
	Fibre        float64
	Sodium       float64
}

// UpdateFoodInput is a partial update; nil fields are left unchanged.
// Setting Brand to an empty string clears it.
type UpdateFoodInput struct {
	Name         *string
	Brand        *string
	ServingUnit  *models.ServingUnit
	Energy       *float64
	Protein      *float64
	Fat          *float64
	FatSaturated *float64
	Carbs        *float64
	CarbsSugars  *float64
	Fibre        *float64
	Sodium       *float64
}

// FoodFilter narrows and orders ListFoods. Results are always ordered by
// name; Query, when set, matches a case-insensitive name substring.
type FoodFilter struct {
	Query string
}

func (s *FoodService) CreateFood(input CreateFoodInput) (*models.Food, error) {
	food := models.Food{
		Name:         input.Name,
		Brand:        normalizeBrand(input.Brand),
		ServingUnit:  input.ServingUnit,
		Energy:       input.Energy,
		Protein:      input.Protein,
		Fat:          input.Fat,
		FatSaturated: input.FatSaturated,
		Carbs:        input.Carbs,
		CarbsSugars:  input.CarbsSugars,
		Fibre:        input.Fibre,
		Sodium:       input.Sodium,
		CreatedAt:    time.Now().UTC(),
	}
	if err := validateFood(&food); err != nil {
		return nil, err
	}
	if err := s.db.Create(&food).Error; err != nil {
		return nil, apperrors.Storage(err, "creating food")
	}
	return &food, nil
}

func (s *FoodService) GetFood(foodID uint) (*models.Food, error) {
	var food models.Food
	if err := s.db.First(&food, foodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("food %d does not exist", foodID)
		}
		return nil, apperrors.Storage(err, "getting food %d", foodID)
	}
	return &food, nil
}

func (s *FoodService) ListFoods(filter FoodFilter) ([]models.Food, error) {
	q := s.db.Order("name")
	if filter.Query != "" {
		q = q.Where("name LIKE ?", "%"+filter.Query+"%")
	}
	var foods []models.Food
	if err := q.Find(&foods).Error; err != nil {
		return nil, apperrors.Storage(err, "listing foods")
	}
	return foods, nil
}

// CountFoods returns the total number of foods in the library.
func (s *FoodService) CountFoods() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Food{}).Count(&count).Error; err != nil {
		return 0, apperrors.Storage(err, "counting foods")
	}
	return count, nil
}

// UpdateFood applies a partial update. FoodID and CreatedAt are immutable;
// the merged record is re-validated before it is written.
func (s *FoodService) UpdateFood(foodID uint, input UpdateFoodInput) (*models.Food, error) {
	food, err := s.GetFood(foodID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		food.Name = *input.Name
	}
	if input.Brand != nil {
		food.Brand = normalizeBrand(input.Brand)
	}
	if input.ServingUnit != nil {
		food.ServingUnit = *input.ServingUnit
	}
	applyNutrient(&food.Energy, input.Energy)
	applyNutrient(&food.Protein, input.Protein)
	applyNutrient(&food.Fat, input.Fat)
	applyNutrient(&food.FatSaturated, input.FatSaturated)
	applyNutrient(&food.Carbs, input.Carbs)
	applyNutrient(&food.CarbsSugars, input.CarbsSugars)
	applyNutrient(&food.Fibre, input.Fibre)
	applyNutrient(&food.Sodium, input.Sodium)

	if err := validateFood(food); err != nil {
		return nil, err
	}
	if err := s.db.Save(food).Error; err != nil {
		return nil, apperrors.Storage(err, "updating food %d", foodID)
	}
	return food, nil
}

// DeleteFood removes a food together with its serving sizes and log
// entries in one transaction: either everything goes or nothing does.
func (s *FoodService) DeleteFood(foodID uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var food models.Food
		if err := tx.First(&food, foodID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("food %d does not exist", foodID)
			}
			return apperrors.Storage(err, "getting food %d", foodID)
		}
		if err := tx.Where("food_id = ?", foodID).Delete(&models.LogEntry{}).Error; err != nil {
			return apperrors.Storage(err, "deleting log entries of food %d", foodID)
		}
		if err := tx.Where("food_id = ?", foodID).Delete(&models.ServingSize{}).Error; err != nil {
			return apperrors.Storage(err, "deleting serving sizes of food %d", foodID)
		}
		if err := tx.Delete(&food).Error; err != nil {
			return apperrors.Storage(err, "deleting food %d", foodID)
		}
		return nil
	})
	return err
}

func validateFood(food *models.Food) error {
	if food.Name == "" {
		return apperrors.Validation("food name must not be empty")
	}
	if !food.ServingUnit.Valid() {
		return apperrors.Validation("invalid serving unit %q: must be %q or %q",
			food.ServingUnit, models.UnitGrams, models.UnitMilliliters)
	}
	nutrients := []struct {
		name  string
		value float64
	}{
		{"energy", food.Energy},
		{"protein", food.Protein},
		{"fat", food.Fat},
		{"fat_saturated", food.FatSaturated},
		{"carbs", food.Carbs},
		{"carbs_sugars", food.CarbsSugars},
		{"fibre", food.Fibre},
		{"sodium", food.Sodium},
	}
	for _, n := range nutrients {
		if math.IsNaN(n.value) || math.IsInf(n.value, 0) {
			return apperrors.Validation("%s must be a finite number", n.name)
		}
		if n.value < 0 {
			return apperrors.Validation("%s must not be negative", n.name)
		}
	}
	if food.FatSaturated > food.Fat {
		return apperrors.Validation("fat_saturated must not exceed fat")
	}
	if food.CarbsSugars > food.Carbs {
		return apperrors.Validation("carbs_sugars must not exceed carbs")
	}
	return nil
}

func applyNutrient(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

// normalizeBrand maps the empty string to NULL so unbranded foods are
// stored uniformly as an absent brand.
func normalizeBrand(brand *string) *string {
	if brand == nil || *brand == "" {
		return nil
	}
	return brand
}
