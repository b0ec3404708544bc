package models

import "time"

// DateLayout is the wire format for log dates.
const DateLayout = "2006-01-02"

// LogEntry records eating some amount of a food on a date. When ServingID
// is nil, Amount is a raw quantity in the food's serving unit; otherwise it
// is a count of that named serving.
type LogEntry struct {
	EntryID   uint      `gorm:"column:entry_id;primaryKey" json:"entry_id"`
	Date      string    `gorm:"not null;index" json:"date"`
	FoodID    uint      `gorm:"not null;index" json:"food_id"`
	ServingID *uint     `json:"serving_id"`
	Amount    float64   `gorm:"not null" json:"amount"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (LogEntry) TableName() string {
	return "entries"
}
