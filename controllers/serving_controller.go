package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eudoxia0/zetanom/services"
	"github.com/eudoxia0/zetanom/utils"
)

type ServingController struct {
	svc     *services.ServingService
	foodSvc *services.FoodService
}

func NewServingController(svc *services.ServingService, foodSvc *services.FoodService) *ServingController {
	return &ServingController{svc: svc, foodSvc: foodSvc}
}

type addServingRequest struct {
	ServingName   string   `json:"serving_name" binding:"required"`
	ServingAmount *float64 `json:"serving_amount" binding:"required"`
}

// POST /foods/:id/servings
func (sc *ServingController) AddServingSize(c *gin.Context) {
	foodID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var body addServingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	serving, err := sc.svc.AddServingSize(foodID, body.ServingName, *body.ServingAmount)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, serving)
}

// GET /foods/:id/servings
func (sc *ServingController) ListServingSizes(c *gin.Context) {
	foodID, ok := pathID(c, "id")
	if !ok {
		return
	}
	servings, err := sc.svc.ListServingSizes(foodID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, servings)
}

type updateServingRequest struct {
	ServingName   *string  `json:"serving_name"`
	ServingAmount *float64 `json:"serving_amount"`
}

// PUT /servings/:id
func (sc *ServingController) UpdateServingSize(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var body updateServingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	serving, err := sc.svc.UpdateServingSize(id, services.UpdateServingInput{
		ServingName:   body.ServingName,
		ServingAmount: body.ServingAmount,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, serving)
}

// DELETE /servings/:id
func (sc *ServingController) DeleteServingSize(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := sc.svc.DeleteServingSize(id); err != nil {
		renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /foods/:id/servings/:serving_id/nutrition
//
// Derived nutrition is a read-side concern: the store keeps per-100-unit
// values and this handler does the multiplication for display.
func (sc *ServingController) ServingNutrition(c *gin.Context) {
	foodID, ok := pathID(c, "id")
	if !ok {
		return
	}
	servingID, ok := pathID(c, "serving_id")
	if !ok {
		return
	}
	food, err := sc.foodSvc.GetFood(foodID)
	if err != nil {
		renderError(c, err)
		return
	}
	serving, err := sc.svc.GetServingSize(servingID)
	if err != nil {
		renderError(c, err)
		return
	}
	if serving.FoodID != food.FoodID {
		c.JSON(http.StatusNotFound, gin.H{"error": "serving size does not belong to this food"})
		return
	}
	panel, err := utils.ScaleForServing(food, serving)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"serving_name": serving.ServingName,
		"nutrition":    panel,
	})
}
