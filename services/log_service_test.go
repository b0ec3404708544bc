package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eudoxia0/zetanom/apperrors"
)

func TestAddLogEntryRawAmount(t *testing.T) {
	db := newTestDB(t)
	foodSvc := NewFoodService(db)
	svc := NewLogService(db)
	food := createTestFood(t, foodSvc)

	entry, err := svc.AddLogEntry(AddLogEntryInput{
		Date:   "2025-08-25",
		FoodID: food.FoodID,
		Amount: 150,
	})
	require.NoError(t, err)
	require.NotZero(t, entry.EntryID)
	require.Nil(t, entry.ServingID)
	require.Equal(t, 150.0, entry.Amount)
}

func TestAddLogEntryWithServing(t *testing.T) {
	db := newTestDB(t)
	foodSvc := NewFoodService(db)
	servingSvc := NewServingService(db)
	svc := NewLogService(db)
	food := createTestFood(t, foodSvc)

	serving, err := servingSvc.AddServingSize(food.FoodID, "glass", 250)
	require.NoError(t, err)

	entry, err := svc.AddLogEntry(AddLogEntryInput{
		Date:      "2025-08-25",
		FoodID:    food.FoodID,
		ServingID: &serving.ServingID,
		Amount:    2,
	})
	require.NoError(t, err)
	require.NotNil(t, entry.ServingID)
	require.Equal(t, serving.ServingID, *entry.ServingID)
}

func TestAddLogEntryServingOfOtherFood(t *testing.T) {
	db := newTestDB(t)
	foodSvc := NewFoodService(db)
	servingSvc := NewServingService(db)
	svc := NewLogService(db)

	food := createTestFood(t, foodSvc)
	input := almondMilk()
	input.Name = "Oat Milk"
	other, err := foodSvc.CreateFood(input)
	require.NoError(t, err)
	serving, err := servingSvc.AddServingSize(other.FoodID, "glass", 250)
	require.NoError(t, err)

	_, err = svc.AddLogEntry(AddLogEntryInput{
		Date:      "2025-08-25",
		FoodID:    food.FoodID,
		ServingID: &serving.ServingID,
		Amount:    1,
	})
	require.True(t, apperrors.IsValidation(err))
}

func TestAddLogEntryErrors(t *testing.T) {
	db := newTestDB(t)
	foodSvc := NewFoodService(db)
	svc := NewLogService(db)
	food := createTestFood(t, foodSvc)

	_, err := svc.AddLogEntry(AddLogEntryInput{Date: "25/08/2025", FoodID: food.FoodID, Amount: 1})
	require.True(t, apperrors.IsValidation(err))

	_, err = svc.AddLogEntry(AddLogEntryInput{Date: "2025-08-25", FoodID: food.FoodID, Amount: 0})
	require.True(t, apperrors.IsValidation(err))

	_, err = svc.AddLogEntry(AddLogEntryInput{Date: "2025-08-25", FoodID: 999, Amount: 1})
	require.True(t, apperrors.IsNotFound(err))

	_, err = svc.AddLogEntry(AddLogEntryInput{
		Date:      "2025-08-25",
		FoodID:    food.FoodID,
		ServingID: uintPtr(999),
		Amount:    1,
	})
	require.True(t, apperrors.IsNotFound(err))
}

func TestListLogEntries(t *testing.T) {
	db := newTestDB(t)
	foodSvc := NewFoodService(db)
	svc := NewLogService(db)
	food := createTestFood(t, foodSvc)

	for _, amount := range []float64{100, 200} {
		_, err := svc.AddLogEntry(AddLogEntryInput{
			Date:   "2025-08-25",
			FoodID: food.FoodID,
			Amount: amount,
		})
		require.NoError(t, err)
	}
	_, err := svc.AddLogEntry(AddLogEntryInput{
		Date:   "2025-08-26",
		FoodID: food.FoodID,
		Amount: 50,
	})
	require.NoError(t, err)

	entries, err := svc.ListLogEntries("2025-08-25")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, 100.0, entries[0].Amount)
	require.Equal(t, 200.0, entries[1].Amount)

	empty, err := svc.ListLogEntries("2025-01-01")
	require.NoError(t, err)
	require.Empty(t, empty)

	_, err = svc.ListLogEntries("not-a-date")
	require.True(t, apperrors.IsValidation(err))
}

func TestDeleteLogEntry(t *testing.T) {
	db := newTestDB(t)
	foodSvc := NewFoodService(db)
	svc := NewLogService(db)
	food := createTestFood(t, foodSvc)

	entry, err := svc.AddLogEntry(AddLogEntryInput{
		Date:   "2025-08-25",
		FoodID: food.FoodID,
		Amount: 100,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteLogEntry(entry.EntryID))
	require.True(t, apperrors.IsNotFound(svc.DeleteLogEntry(entry.EntryID)))
}
