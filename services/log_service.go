package services

import (
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/eudoxia0/zetanom/apperrors"
	"github.com/eudoxia0/zetanom/models"
)

// LogService records what was eaten on which date. Entries reference a
// food and optionally one of its named servings.
type LogService struct {
	db *gorm.DB
}

func NewLogService(db *gorm.DB) *LogService {
	return &LogService{db: db}
}

type AddLogEntryInput struct {
	Date      string
	FoodID    uint
	ServingID *uint
	Amount    float64
}

func (s *LogService) AddLogEntry(input AddLogEntryInput) (*models.LogEntry, error) {
	if _, err := time.Parse(models.DateLayout, input.Date); err != nil {
		return nil, apperrors.Validation("invalid date %q: want YYYY-MM-DD", input.Date)
	}
	if math.IsNaN(input.Amount) || math.IsInf(input.Amount, 0) {
		return nil, apperrors.Validation("amount must be a finite number")
	}
	if input.Amount <= 0 {
		return nil, apperrors.Validation("amount must be positive")
	}

	var food models.Food
	if err := s.db.First(&food, input.FoodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("food %d does not exist", input.FoodID)
		}
		return nil, apperrors.Storage(err, "getting food %d", input.FoodID)
	}
	if input.ServingID != nil {
		var serving models.ServingSize
		if err := s.db.First(&serving, *input.ServingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NotFound("serving size %d does not exist", *input.ServingID)
			}
			return nil, apperrors.Storage(err, "getting serving size %d", *input.ServingID)
		}
		if serving.FoodID != input.FoodID {
			return nil, apperrors.Validation("serving size %d does not belong to food %d", *input.ServingID, input.FoodID)
		}
	}

	entry := models.LogEntry{
		Date:      input.Date,
		FoodID:    input.FoodID,
		ServingID: input.ServingID,
		Amount:    input.Amount,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, apperrors.Storage(err, "creating log entry")
	}
	return &entry, nil
}

func (s *LogService) DeleteLogEntry(entryID uint) error {
	res := s.db.Delete(&models.LogEntry{}, entryID)
	if res.Error != nil {
		return apperrors.Storage(res.Error, "deleting log entry %d", entryID)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("log entry %d does not exist", entryID)
	}
	return nil
}

// ListLogEntries returns the entries for one date in the order they were
// recorded.
func (s *LogService) ListLogEntries(date string) ([]models.LogEntry, error) {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, apperrors.Validation("invalid date %q: want YYYY-MM-DD", date)
	}
	var entries []models.LogEntry
	err := s.db.
		Where("date = ?", date).
		Order("created_at").
		Order("entry_id").
		Find(&entries).Error
	if err != nil {
		return nil, apperrors.Storage(err, "listing log entries for %s", date)
	}
	return entries, nil
}
