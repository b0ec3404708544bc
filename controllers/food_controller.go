package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eudoxia0/zetanom/models"
	"github.com/eudoxia0/zetanom/services"
)

type FoodController struct {
	svc *services.FoodService
}

func NewFoodController(svc *services.FoodService) *FoodController {
	return &FoodController{svc: svc}
}

// createFoodRequest uses pointers for the required numeric fields so a
// missing field is rejected by binding instead of silently reading as 0.
type createFoodRequest struct {
	Name         string   `json:"name" binding:"required"`
	Brand        *string  `json:"brand"`
	ServingUnit  string   `json:"serving_unit" binding:"required"`
	Energy       *float64 `json:"energy" binding:"required"`
	Protein      *float64 `json:"protein" binding:"required"`
	Fat          *float64 `json:"fat" binding:"required"`
	FatSaturated *float64 `json:"fat_saturated" binding:"required"`
	Carbs        *float64 `json:"carbs" binding:"required"`
	CarbsSugars  *float64 `json:"carbs_sugars" binding:"required"`
	Fibre        *float64 `json:"fibre" binding:"required"`
	Sodium       *float64 `json:"sodium" binding:"required"`
}

// POST /foods
func (fc *FoodController) CreateFood(c *gin.Context) {
	var body createFoodRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	food, err := fc.svc.CreateFood(services.CreateFoodInput{
		Name:         body.Name,
		Brand:        body.Brand,
		ServingUnit:  models.ServingUnit(body.ServingUnit),
		Energy:       *body.Energy,
		Protein:      *body.Protein,
		Fat:          *body.Fat,
		FatSaturated: *body.FatSaturated,
		Carbs:        *body.Carbs,
		CarbsSugars:  *body.CarbsSugars,
		Fibre:        *body.Fibre,
		Sodium:       *body.Sodium,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, food)
}

// GET /foods?q=almond
func (fc *FoodController) ListFoods(c *gin.Context) {
	foods, err := fc.svc.ListFoods(services.FoodFilter{Query: c.Query("q")})
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// GET /foods/count
func (fc *FoodController) CountFoods(c *gin.Context) {
	count, err := fc.svc.CountFoods()
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// GET /foods/:id
func (fc *FoodController) GetFood(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	food, err := fc.svc.GetFood(id)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

type updateFoodRequest struct {
	Name         *string  `json:"name"`
	Brand        *string  `json:"brand"`
	ServingUnit  *string  `json:"serving_unit"`
	Energy       *float64 `json:"energy"`
	Protein      *float64 `json:"protein"`
	Fat          *float64 `json:"fat"`
	FatSaturated *float64 `json:"fat_saturated"`
	Carbs        *float64 `json:"carbs"`
	CarbsSugars  *float64 `json:"carbs_sugars"`
	Fibre        *float64 `json:"fibre"`
	Sodium       *float64 `json:"sodium"`
}

// PUT /foods/:id
func (fc *FoodController) UpdateFood(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var body updateFoodRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input := services.UpdateFoodInput{
		Name:         body.Name,
		Brand:        body.Brand,
		Energy:       body.Energy,
		Protein:      body.Protein,
		Fat:          body.Fat,
		FatSaturated: body.FatSaturated,
		Carbs:        body.Carbs,
		CarbsSugars:  body.CarbsSugars,
		Fibre:        body.Fibre,
		Sodium:       body.Sodium,
	}
	if body.ServingUnit != nil {
		unit := models.ServingUnit(*body.ServingUnit)
		input.ServingUnit = &unit
	}
	food, err := fc.svc.UpdateFood(id, input)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

// DELETE /foods/:id
func (fc *FoodController) DeleteFood(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := fc.svc.DeleteFood(id); err != nil {
		renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
