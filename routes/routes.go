package routes

import (
	"backend/controllers"
	"backend/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.GET("/goals", controllers.GetGoals)
		user.PUT("/goals", controllers.UpdateGoals)
	}

	// Photo analysis and nutrition lookup
	food := r.Group("/food")
	food.Use(middlewares.AuthMiddleware())
	{
		food.POST("/analyze", controllers.AnalyzeFoodPhoto)
		food.POST("/resolve", controllers.ResolveNutrition)
		food.GET("/analysis-history", controllers.AnalysisHistory)
	}

	// Logged entries
	entries := r.Group("/entries")
	entries.Use(middlewares.AuthMiddleware())
	{
		entries.POST("", controllers.CreateEntry)
		entries.GET("", controllers.ListEntries)
		entries.GET("/:id", controllers.GetEntry)
		entries.PUT("/:id", controllers.UpdateEntry)
		entries.DELETE("/:id", controllers.DeleteEntry)
	}

	// Workouts
	workouts := r.Group("/workouts")
	workouts.Use(middlewares.AuthMiddleware())
	{
		workouts.POST("", controllers.LogWorkout)
		workouts.GET("", controllers.ListWorkouts)
		workouts.DELETE("/:id", controllers.DeleteWorkout)
	}

	// Daily summaries
	stats := r.Group("/stats")
	stats.Use(middlewares.AuthMiddleware())
	{
		stats.GET("/today", controllers.TodayStats)
		stats.GET("/history", controllers.StatsHistory)
	}

	return r
}
