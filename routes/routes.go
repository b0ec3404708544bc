package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/eudoxia0/zetanom/controllers"
	"github.com/eudoxia0/zetanom/middlewares"
	"github.com/eudoxia0/zetanom/services"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	foodSvc := services.NewFoodService(db)
	servingSvc := services.NewServingService(db)
	logSvc := services.NewLogService(db)

	foodCtl := controllers.NewFoodController(foodSvc)
	servingCtl := controllers.NewServingController(servingSvc, foodSvc)
	logCtl := controllers.NewLogController(logSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestIDMiddleware())
	r.Use(middlewares.LoggerMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	foods := r.Group("/foods")
	{
		foods.POST("", foodCtl.CreateFood)
		foods.GET("", foodCtl.ListFoods)
		foods.GET("/count", foodCtl.CountFoods)
		foods.GET("/:id", foodCtl.GetFood)
		foods.PUT("/:id", foodCtl.UpdateFood)
		foods.DELETE("/:id", foodCtl.DeleteFood)

		foods.POST("/:id/servings", servingCtl.AddServingSize)
		foods.GET("/:id/servings", servingCtl.ListServingSizes)
		foods.GET("/:id/servings/:serving_id/nutrition", servingCtl.ServingNutrition)
	}

	servings := r.Group("/servings")
	{
		servings.PUT("/:id", servingCtl.UpdateServingSize)
		servings.DELETE("/:id", servingCtl.DeleteServingSize)
	}

	logGroup := r.Group("/log")
	{
		logGroup.POST("", logCtl.AddLogEntry)
		logGroup.GET("/:date", logCtl.ListLogEntries)
		logGroup.DELETE("/entries/:id", logCtl.DeleteLogEntry)
	}

	return r
}
