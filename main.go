package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Murugadoss7/dental-app/config"
	_ "github.com/Murugadoss7/dental-app/docs"
	"github.com/Murugadoss7/dental-app/internal/lock"
	"github.com/Murugadoss7/dental-app/internal/repository"
	"github.com/Murugadoss7/dental-app/internal/service"
	"github.com/Murugadoss7/dental-app/internal/storage"
	"github.com/Murugadoss7/dental-app/internal/transport/rest"
	"github.com/Murugadoss7/dental-app/pkg/database"
	"github.com/Murugadoss7/dental-app/pkg/logger"
)

// @title Dental Clinic API
// @version 1.0
// @description Scheduling and clinical records API for a dental clinic: doctors, patients, appointments, treatments.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	log, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := database.NewPostgresDB(cfg.Postgres, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	log.Info("running database migrations")
	if err := database.RunMigrations(db, "./migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	var locker lock.Locker = lock.NewNoopLocker()
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("failed to connect to redis", zap.Error(err))
		}
		locker = lock.NewRedisDoctorLocker(redisClient, cfg.Redis.LockTTL)
		log.Info("redis booking lock enabled", zap.String("addr", cfg.Redis.Addr))
	} else {
		log.Warn("redis not configured, relying on the database unique index for double-booking protection")
	}

	var fileStorage storage.FileStorage
	if cfg.S3.Endpoint != "" {
		s3Storage, err := storage.NewS3Storage(cfg.S3, log)
		if err != nil {
			log.Fatal("failed to initialize object storage", zap.Error(err))
		}
		fileStorage = s3Storage
		log.Info("object storage initialized", zap.String("endpoint", cfg.S3.Endpoint))
	} else {
		log.Warn("object storage not configured, attachment upload is disabled")
	}

	repos := repository.NewRepositories(db)

	services := service.NewServices(service.Deps{
		Repos:       repos,
		Logger:      log,
		Locker:      locker,
		FileStorage: fileStorage,
	})

	handler := rest.NewHandler(services, log)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	handler.InitRoutes(router)

	srv := &http.Server{
		Addr:           ":" + cfg.HTTP.Port,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderMB << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	log.Info("server started", zap.String("addr", srv.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("failed to stop server gracefully", zap.Error(err))
	}

	log.Info("server stopped")
}
