package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/eudoxia0/zetanom/database"
	"github.com/eudoxia0/zetanom/models"
)

// newTestDB opens an isolated in-memory store per test. The pool is pinned
// to one connection so the in-memory database survives connection reuse.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		require.NoError(t, database.Close(db))
	})
	return db
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func uintPtr(u uint) *uint { return &u }

// almondMilk is a known-good nutrient panel used across tests.
func almondMilk() CreateFoodInput {
	return CreateFoodInput{
		Name:         "Almond Milk",
		Brand:        strPtr("Acme"),
		ServingUnit:  models.UnitMilliliters,
		Energy:       17,
		Protein:      0.6,
		Fat:          1.2,
		FatSaturated: 0.1,
		Carbs:        0.3,
		CarbsSugars:  0.3,
		Fibre:        0.2,
		Sodium:       40,
	}
}

func createTestFood(t *testing.T, svc *FoodService) *models.Food {
	t.Helper()
	food, err := svc.CreateFood(almondMilk())
	require.NoError(t, err)
	require.NotZero(t, food.FoodID)
	return food
}
