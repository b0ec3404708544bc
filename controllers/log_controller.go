package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eudoxia0/zetanom/services"
)

type LogController struct {
	svc *services.LogService
}

func NewLogController(svc *services.LogService) *LogController {
	return &LogController{svc: svc}
}

type addLogEntryRequest struct {
	Date      string   `json:"date" binding:"required"`
	FoodID    uint     `json:"food_id" binding:"required"`
	ServingID *uint    `json:"serving_id"`
	Amount    *float64 `json:"amount" binding:"required"`
}

// POST /log
func (lc *LogController) AddLogEntry(c *gin.Context) {
	var body addLogEntryRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := lc.svc.AddLogEntry(services.AddLogEntryInput{
		Date:      body.Date,
		FoodID:    body.FoodID,
		ServingID: body.ServingID,
		Amount:    *body.Amount,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GET /log/:date
func (lc *LogController) ListLogEntries(c *gin.Context) {
	entries, err := lc.svc.ListLogEntries(c.Param("date"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// DELETE /log/:id
func (lc *LogController) DeleteLogEntry(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := lc.svc.DeleteLogEntry(id); err != nil {
		renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
