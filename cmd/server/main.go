package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"arnold/tracker/internal/api"
	"arnold/tracker/internal/config"
	"arnold/tracker/internal/repository/mongo"
	"arnold/tracker/internal/service"
	"arnold/tracker/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.Info("Starting workout tracker server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.WithError(err).Fatal("Could not load config")
	}
	if level, err := logrus.ParseLevel(cfg.App.LogLevel); err == nil {
		log.SetLevel(level)
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.WithError(err).WithField("timezone", cfg.App.Timezone).Fatal("Invalid timezone")
	}
	log.WithField("timezone", cfg.App.Timezone).Info("Configuration loaded")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.WithError(err).Fatal("Could not connect to MongoDB")
	}
	defer func() {
		log.Info("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.WithError(err).Error("Failed to disconnect MongoDB")
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Info("Database connection established")

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		if err := errors.Join(
			mongo.EnsureUserIndexes(ctx, appDB),
			mongo.EnsureWorkoutIndexes(ctx, appDB),
			mongo.EnsureMeasurementIndexes(ctx, appDB),
			mongo.EnsureNoteIndexes(ctx, appDB),
			mongo.EnsureProfileIndexes(ctx, appDB),
			mongo.EnsureSettingsIndexes(ctx, appDB),
		); err != nil {
			log.WithError(err).Error("Index creation failed")
			return
		}
		log.Info("Index creation completed")
	}()

	// --- Initialize Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	workoutRepo := mongo.NewMongoWorkoutRepository(appDB)
	measurementRepo := mongo.NewMongoMeasurementRepository(appDB)
	noteRepo := mongo.NewMongoNoteRepository(appDB)
	profileRepo := mongo.NewMongoProfileRepository(appDB)
	splitRepo := mongo.NewMongoSplitConfigRepository(appDB)

	// --- Live Sessions ---
	sessions := session.NewManager(workoutRepo, log)
	defer sessions.Close()

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	workoutService := service.NewWorkoutService(workoutRepo, loc)
	splitService := service.NewSplitService(splitRepo, workoutRepo)
	measurementService := service.NewMeasurementService(measurementRepo, loc)
	noteService := service.NewNoteService(noteRepo)
	profileService := service.NewProfileService(profileRepo)
	statsService := service.NewStatsService(sessions, profileService, splitService, loc)

	// --- Initialize Gin Engine ---
	router := gin.Default()

	// --- Setup Routes ---
	api.SetupRoutes(router, cfg.JWT.Secret, sessions,
		authService, workoutService, statsService,
		splitService, measurementService, noteService, profileService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.WithField("address", cfg.Server.Address).Info("Server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("ListenAndServe error")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.WithError(err).Fatal("Server forced to shutdown")
	}

	log.Info("Server exiting")
}
