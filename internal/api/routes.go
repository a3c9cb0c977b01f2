package api

import (
	"net/http"

	"arnold/tracker/internal/service"
	"arnold/tracker/internal/session"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	sessions *session.Manager,
	authService service.AuthService,
	workoutService service.WorkoutService,
	statsService service.StatsService,
	splitService service.SplitService,
	measurementService service.MeasurementService,
	noteService service.NoteService,
	profileService service.ProfileService,
) {
	authHandler := NewAuthHandler(authService, sessions)
	workoutHandler := NewWorkoutHandler(workoutService)
	statsHandler := NewStatsHandler(statsService)
	splitHandler := NewSplitHandler(splitService)
	measurementHandler := NewMeasurementHandler(measurementService)
	noteHandler := NewNoteHandler(noteService)
	profileHandler := NewProfileHandler(profileService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/logout", authMiddleware, authHandler.Logout)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.GET("", workoutHandler.GetWorkouts)
			workoutGroup.POST("", workoutHandler.SaveWorkout)
			workoutGroup.POST("/rest-day", workoutHandler.LogRestDay)
			workoutGroup.PUT("/:date/exercises", workoutHandler.UpdateExercises)
			workoutGroup.DELETE("/:date", workoutHandler.DeleteWorkout)
		}

		statsGroup := protected.Group("/stats")
		{
			statsGroup.GET("/dashboard", statsHandler.Dashboard)
			statsGroup.GET("/records", statsHandler.Records)
			statsGroup.GET("/trends", statsHandler.Trends)
			statsGroup.GET("/weekly-volume", statsHandler.WeeklyVolume)
			statsGroup.GET("/exercises", statsHandler.Exercises)
			statsGroup.GET("/exercises/:name/max-weight", statsHandler.MaxWeightSeries)
			statsGroup.GET("/splits/volume", statsHandler.SplitVolumeSeries)
			statsGroup.GET("/volume-by-exercise", statsHandler.VolumeByExercise)
		}

		splitGroup := protected.Group("/splits")
		{
			splitGroup.GET("", splitHandler.GetConfig)
			splitGroup.PUT("", splitHandler.SaveConfig)
			splitGroup.POST("", splitHandler.AddSplit)
			splitGroup.PUT("/:name", splitHandler.RenameSplit)
			splitGroup.PUT("/:name/exercises", splitHandler.UpdateExercises)
			splitGroup.DELETE("/:name", splitHandler.DeleteSplit)
		}

		measurementGroup := protected.Group("/measurements")
		{
			measurementGroup.GET("", measurementHandler.GetMeasurements)
			measurementGroup.POST("", measurementHandler.SaveMeasurement)
			measurementGroup.DELETE("/:date", measurementHandler.DeleteMeasurement)
		}

		noteGroup := protected.Group("/notes")
		{
			noteGroup.GET("", noteHandler.GetNotes)
			noteGroup.POST("", noteHandler.AddNote)
			noteGroup.DELETE("/:date/:id", noteHandler.DeleteNote)
		}

		profileGroup := protected.Group("/profile")
		{
			profileGroup.GET("", profileHandler.GetProfile)
			profileGroup.PUT("", profileHandler.SaveProfile)
		}
	}
}
