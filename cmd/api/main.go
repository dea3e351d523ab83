package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bizmate/booking-api/internal/config"
	appointmentHandler "github.com/bizmate/booking-api/internal/handler/appointment"
	authHandler "github.com/bizmate/booking-api/internal/handler/auth"
	healthHandler "github.com/bizmate/booking-api/internal/handler/health"
	locationHandler "github.com/bizmate/booking-api/internal/handler/location"
	scheduleHandler "github.com/bizmate/booking-api/internal/handler/schedule"
	specialistHandler "github.com/bizmate/booking-api/internal/handler/specialist"
	"github.com/bizmate/booking-api/internal/middleware"
	"github.com/bizmate/booking-api/internal/repository/postgres"
	redisRepo "github.com/bizmate/booking-api/internal/repository/redis"
	"github.com/bizmate/booking-api/internal/router"
	appointmentService "github.com/bizmate/booking-api/internal/service/appointment"
	authService "github.com/bizmate/booking-api/internal/service/auth"
	locationService "github.com/bizmate/booking-api/internal/service/location"
	scheduleService "github.com/bizmate/booking-api/internal/service/schedule"
	userService "github.com/bizmate/booking-api/internal/service/user"
	"github.com/bizmate/booking-api/pkg/auth"
	"github.com/bizmate/booking-api/pkg/logger"
)

const cacheTTL = 30 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger(nil).Fatal(err, "failed to load configuration")
	}
	appLogger := setupLogging(cfg.Logger)

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		appLogger.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	if err := postgres.Migrate(context.Background(), db); err != nil {
		appLogger.Fatal(err, "failed to run migrations")
	}

	tokenRepo, err := redisRepo.NewTokenRepository(cfg.Redis.URL)
	if err != nil {
		appLogger.Fatal(err, "failed to connect to redis")
	}

	userRepo := postgres.NewUserRepository(db)
	locationRepo := postgres.NewLocationRepository(db)
	scheduleRepo := postgres.NewScheduleRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)

	// One cache shared by every service so write paths can invalidate
	// entries read elsewhere.
	sharedCache := cache.New(cacheTTL, 2*cacheTTL)

	jwtManager := auth.NewManager(auth.Config{
		Secret:        cfg.JWT.Secret,
		RefreshSecret: cfg.JWT.RefreshSecret,
		Expiry:        time.Duration(cfg.JWT.ExpiryHours) * time.Hour,
		RefreshExpiry: time.Duration(cfg.JWT.RefreshExpiryHours) * time.Hour,
	})

	userSvc := userService.NewService(userRepo)
	authSvc := authService.NewService(userRepo, tokenRepo, jwtManager)
	locationSvc := locationService.NewService(locationRepo, sharedCache)
	scheduleSvc := scheduleService.NewService(scheduleRepo, userRepo, sharedCache)
	appointmentSvc := appointmentService.NewService(appointmentRepo, userRepo, locationRepo, scheduleRepo, sharedCache)

	authMiddleware := middleware.NewAuthMiddleware(authSvc)

	r := router.NewRouter(authMiddleware, router.Handlers{
		Auth:        authHandler.NewHandler(authSvc),
		Specialist:  specialistHandler.NewHandler(userSvc),
		Location:    locationHandler.NewHandler(locationSvc),
		Schedule:    scheduleHandler.NewHandler(scheduleSvc, appointmentSvc),
		Appointment: appointmentHandler.NewHandler(appointmentSvc),
		Health:      healthHandler.NewHandler(db),
	}, router.Config{
		RateLimitRPS: cfg.Server.RateLimitRPS,
		RateBurst:    cfg.Server.RateBurst,
		CORS:         middleware.DefaultCORSConfig(),
	})
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal(err, "failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal(err, "server forced to shutdown")
	}

	appLogger.Info("server exited properly")
}

// setupLogging builds the application logger and configures the zerolog
// global that the request-log middleware writes through.
func setupLogging(cfg config.LoggerConfig) *logger.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	return logger.NewLogger(&logger.Config{
		Level:      level,
		TimeFormat: time.RFC3339,
		Pretty:     cfg.Pretty,
	})
}
