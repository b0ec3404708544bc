package services

import (
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/eudoxia0/zetanom/apperrors"
	"github.com/eudoxia0/zetanom/models"
)

// ServingService manages the named serving sizes of foods. Name uniqueness
// per food is enforced by the unique index on (food_id, serving_name), so
// two racing inserts resolve deterministically: one wins, one conflicts.
type ServingService struct {
	db *gorm.DB
}

func NewServingService(db *gorm.DB) *ServingService {
	return &ServingService{db: db}
}

// UpdateServingInput is a partial update; nil fields are left unchanged.
type UpdateServingInput struct {
	ServingName   *string
	ServingAmount *float64
}

// AddServingSize creates a named serving for an existing food.
func (s *ServingService) AddServingSize(foodID uint, servingName string, servingAmount float64) (*models.ServingSize, error) {
	if err := validateServing(servingName, servingAmount); err != nil {
		return nil, err
	}
	if err := s.requireFood(foodID); err != nil {
		return nil, err
	}
	serving := models.ServingSize{
		FoodID:        foodID,
		ServingName:   servingName,
		ServingAmount: servingAmount,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.db.Create(&serving).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("food %d already has a serving named %q", foodID, servingName)
		}
		return nil, apperrors.Storage(err, "creating serving size")
	}
	return &serving, nil
}

func (s *ServingService) GetServingSize(servingID uint) (*models.ServingSize, error) {
	var serving models.ServingSize
	if err := s.db.First(&serving, servingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("serving size %d does not exist", servingID)
		}
		return nil, apperrors.Storage(err, "getting serving size %d", servingID)
	}
	return &serving, nil
}

func (s *ServingService) UpdateServingSize(servingID uint, input UpdateServingInput) (*models.ServingSize, error) {
	serving, err := s.GetServingSize(servingID)
	if err != nil {
		return nil, err
	}
	if input.ServingName != nil {
		serving.ServingName = *input.ServingName
	}
	if input.ServingAmount != nil {
		serving.ServingAmount = *input.ServingAmount
	}
	if err := validateServing(serving.ServingName, serving.ServingAmount); err != nil {
		return nil, err
	}
	if err := s.db.Save(serving).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("food %d already has a serving named %q", serving.FoodID, serving.ServingName)
		}
		return nil, apperrors.Storage(err, "updating serving size %d", servingID)
	}
	return serving, nil
}

// DeleteServingSize removes a serving and, in the same transaction, any
// log entries recorded against it.
func (s *ServingService) DeleteServingSize(servingID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var serving models.ServingSize
		if err := tx.First(&serving, servingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("serving size %d does not exist", servingID)
			}
			return apperrors.Storage(err, "getting serving size %d", servingID)
		}
		if err := tx.Where("serving_id = ?", servingID).Delete(&models.LogEntry{}).Error; err != nil {
			return apperrors.Storage(err, "deleting log entries of serving %d", servingID)
		}
		if err := tx.Delete(&serving).Error; err != nil {
			return apperrors.Storage(err, "deleting serving size %d", servingID)
		}
		return nil
	})
}

// ListServingSizes returns a food's servings ordered by name. An unknown
// food is a NotFound error, matching AddServingSize.
func (s *ServingService) ListServingSizes(foodID uint) ([]models.ServingSize, error) {
	if err := s.requireFood(foodID); err != nil {
		return nil, err
	}
	var servings []models.ServingSize
	err := s.db.
		Where("food_id = ?", foodID).
		Order("serving_name").
		Find(&servings).Error
	if err != nil {
		return nil, apperrors.Storage(err, "listing serving sizes of food %d", foodID)
	}
	return servings, nil
}

func (s *ServingService) requireFood(foodID uint) error {
	var food models.Food
	if err := s.db.First(&food, foodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("food %d does not exist", foodID)
		}
		return apperrors.Storage(err, "getting food %d", foodID)
	}
	return nil
}

func validateServing(servingName string, servingAmount float64) error {
	if servingName == "" {
		return apperrors.Validation("serving name must not be empty")
	}
	if math.IsNaN(servingAmount) || math.IsInf(servingAmount, 0) {
		return apperrors.Validation("serving amount must be a finite number")
	}
	if servingAmount <= 0 {
		return apperrors.Validation("serving amount must be positive")
	}
	return nil
}
