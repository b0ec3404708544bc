package models

import "time"

// ServingUnit is the physical unit a food is measured in.
type ServingUnit string

const (
	UnitGrams       ServingUnit = "g"
	UnitMilliliters ServingUnit = "ml"
)

func (u ServingUnit) Valid() bool {
	return u == UnitGrams || u == UnitMilliliters
}

// Food is one nutritionally-distinct item, generic ("banana") or branded.
// All nutrient values are per 100 units of ServingUnit; the 100-unit
// reference serving is a convention, not a stored value.
type Food struct {
	FoodID      uint        `gorm:"column:food_id;primaryKey" json:"food_id"`
	Name        string      `gorm:"not null" json:"name"`
	Brand       *string     `json:"brand"`
	ServingUnit ServingUnit `gorm:"type:text;not null" json:"serving_unit"`

	Energy       float64 `gorm:"not null" json:"energy"`        // kcal
	Protein      float64 `gorm:"not null" json:"protein"`       // g
	Fat          float64 `gorm:"not null" json:"fat"`           // g
	FatSaturated float64 `gorm:"not null" json:"fat_saturated"` // g
	Carbs        float64 `gorm:"not null" json:"carbs"`         // g, excludes fibre
	CarbsSugars  float64 `gorm:"not null" json:"carbs_sugars"`  // g
	Fibre        float64 `gorm:"not null" json:"fibre"`         // g
	Sodium       float64 `gorm:"not null" json:"sodium"`        // mg

	CreatedAt time.Time `gorm:"not null" json:"created_at"`

	ServingSizes []ServingSize `gorm:"foreignKey:FoodID;constraint:OnDelete:CASCADE" json:"-"`
	LogEntries   []LogEntry    `gorm:"foreignKey:FoodID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Food) TableName() string {
	return "foods"
}
