package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/eudoxia0/zetanom/database"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	return SetupRouter(db)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func almondMilkBody() map[string]any {
	return map[string]any{
		"name":          "Almond Milk",
		"brand":         "Acme",
		"serving_unit":  "ml",
		"energy":        17,
		"protein":       0.6,
		"fat":           1.2,
		"fat_saturated": 0.1,
		"carbs":         0.3,
		"carbs_sugars":  0.3,
		"fibre":         0.2,
		"sodium":        40,
	}
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestFoodLifecycle(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/foods", almondMilkBody())
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode(t, w)
	foodID := uint(created["food_id"].(float64))
	require.NotZero(t, foodID)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/foods/%d", foodID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode(t, w)
	require.Equal(t, "Almond Milk", got["name"])
	require.Equal(t, "ml", got["serving_unit"])

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/foods/%d", foodID), map[string]any{"energy": 18})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 18.0, decode(t, w)["energy"])

	w = doJSON(t, r, http.MethodGet, "/foods/count", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1.0, decode(t, w)["count"])

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/foods/%d", foodID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/foods/%d", foodID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateFoodRejectsBadInput(t *testing.T) {
	r := newTestRouter(t)

	body := almondMilkBody()
	delete(body, "energy")
	w := doJSON(t, r, http.MethodPost, "/foods", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body = almondMilkBody()
	body["serving_unit"] = "oz"
	w = doJSON(t, r, http.MethodPost, "/foods", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body = almondMilkBody()
	body["energy"] = -1
	w = doJSON(t, r, http.MethodPost, "/foods", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServingConflictStatus(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/foods", almondMilkBody())
	require.Equal(t, http.StatusCreated, w.Code)
	foodID := uint(decode(t, w)["food_id"].(float64))

	servingsPath := fmt.Sprintf("/foods/%d/servings", foodID)
	w = doJSON(t, r, http.MethodPost, servingsPath, map[string]any{"serving_name": "cup", "serving_amount": 240})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, servingsPath, map[string]any{"serving_name": "cup", "serving_amount": 180})
	require.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPost, servingsPath, map[string]any{"serving_name": "slice", "serving_amount": 0})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServingNutritionEndToEnd(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/foods", almondMilkBody())
	require.Equal(t, http.StatusCreated, w.Code)
	foodID := uint(decode(t, w)["food_id"].(float64))

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/foods/%d/servings", foodID),
		map[string]any{"serving_name": "glass", "serving_amount": 250})
	require.Equal(t, http.StatusCreated, w.Code)
	servingID := uint(decode(t, w)["serving_id"].(float64))

	w = doJSON(t, r, http.MethodGet,
		fmt.Sprintf("/foods/%d/servings/%d/nutrition", foodID, servingID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	require.Equal(t, "glass", out["serving_name"])
	nutrition := out["nutrition"].(map[string]any)
	require.InDelta(t, 42.5, nutrition["energy"].(float64), 1e-9)
}

func TestLogEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/foods", almondMilkBody())
	require.Equal(t, http.StatusCreated, w.Code)
	foodID := uint(decode(t, w)["food_id"].(float64))

	w = doJSON(t, r, http.MethodPost, "/log", map[string]any{
		"date":    "2025-08-25",
		"food_id": foodID,
		"amount":  150,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	entryID := uint(decode(t, w)["entry_id"].(float64))

	w = doJSON(t, r, http.MethodGet, "/log/2025-08-25", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var entries []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 1)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/log/entries/%d", entryID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/log/entries/%d", entryID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
