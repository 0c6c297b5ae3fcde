package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/openslot/slotbook/config"
	"github.com/openslot/slotbook/internal/handlers"
	"github.com/openslot/slotbook/internal/metrics"
	"github.com/openslot/slotbook/internal/middleware"
	"github.com/openslot/slotbook/internal/services"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func Start(logger *zerolog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	rdb := config.NewRedisClient(cfg)

	r := NewRouter(db, rdb, cfg, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config, logger *zerolog.Logger) *gin.Engine {
	metrics.Register()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.HTTPMetrics())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	categoryHandler := handlers.NewCategoryHandler(services.NewCategoryService(db, logger))
	timeslotHandler := handlers.NewTimeSlotHandler(services.NewSlotService(db, logger))
	bookingHandler := handlers.NewBookingHandler(services.NewBookingService(db, logger))

	v1 := r.Group("/v1")
	v1.Use(middleware.RateLimit(cfg.RateLimit, rdb, logger))
	{
		categories := v1.Group("/categories")
		{
			categories.GET("", categoryHandler.List)
			categories.GET("/:id", categoryHandler.Get)
		}

		timeslots := v1.Group("/timeslots")
		{
			timeslots.GET("", timeslotHandler.List)
			timeslots.POST("", timeslotHandler.Create)
			timeslots.DELETE("/:id", timeslotHandler.Delete)
			timeslots.POST("/:id/book", bookingHandler.Book)
			timeslots.POST("/:id/cancel", bookingHandler.Cancel)
		}
	}

	return r
}
