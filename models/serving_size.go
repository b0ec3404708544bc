package models

import "time"

// ServingSize is a named real-world portion of one food ("cup", "slice"),
// expressed as an amount in the parent food's serving unit. Names are
// unique per food.
type ServingSize struct {
	ServingID     uint      `gorm:"column:serving_id;primaryKey" json:"serving_id"`
	FoodID        uint      `gorm:"not null;uniqueIndex:uniq_food_serving_name" json:"food_id"`
	ServingName   string    `gorm:"not null;uniqueIndex:uniq_food_serving_name" json:"serving_name"`
	ServingAmount float64   `gorm:"not null" json:"serving_amount"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
}

func (ServingSize) TableName() string {
	return "serving_sizes"
}
