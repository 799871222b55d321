package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/inuteam04/vitamin-dispenser/internal/config"
	"github.com/inuteam04/vitamin-dispenser/internal/consumer"
	"github.com/inuteam04/vitamin-dispenser/internal/deriver"
	"github.com/inuteam04/vitamin-dispenser/internal/models"
	"github.com/inuteam04/vitamin-dispenser/internal/mqtt"
	"github.com/inuteam04/vitamin-dispenser/internal/repository"
	"github.com/inuteam04/vitamin-dispenser/internal/store"

	"github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// DashboardService wires the dashboard backend together: Postgres for
// reference data, Redis for the device read cache, MQTT for telemetry
// in and commands out.
type DashboardService struct {
	config      *config.Config
	db          *sql.DB
	redisClient *redis.Client
	mqttClient  *mqtt.Client
	logger      *zap.Logger
	deviceID    string

	cacheManager  *consumer.CacheManager
	activityLog   *deriver.ActivityLog
	telemetry     *consumer.TelemetryConsumer
	commandWriter *mqtt.CommandWriter

	catalogRepo *repository.FoodCatalogRepository
	diseaseRepo *repository.DiseaseRuleRepository
	profileRepo *repository.ProfileRepository
	bottleRepo  *repository.BottleConfigRepository
}

// NewDashboardService connects the backing stores and builds every
// layer for one device.
func NewDashboardService(cfg *config.Config, logger *zap.Logger) (*DashboardService, error) {
	db, err := sql.Open("postgres", buildDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	mqttClient, err := mqtt.NewClient(&cfg.MQTT, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect mqtt broker: %w", err)
	}

	catalogRepo := repository.NewFoodCatalogRepository(db, logger)
	diseaseRepo := repository.NewDiseaseRuleRepository(db, logger)
	profileRepo := repository.NewProfileRepository(db, logger)
	bottleRepo := repository.NewBottleConfigRepository(db, logger)

	cacheManager := consumer.NewCacheManager(cfg, store.NewRedisKV(redisClient), logger)
	activityLog := deriver.NewActivityLog(cfg.Dispenser.EventLogSize)
	drv := deriver.NewDeriver(logger)
	telemetry := consumer.NewTelemetryConsumer(cfg, mqttClient, drv, activityLog, cacheManager, logger)
	commandWriter := mqtt.NewCommandWriter(mqttClient, cfg.Dispenser.TopicPrefix, logger)

	return &DashboardService{
		config:        cfg,
		db:            db,
		redisClient:   redisClient,
		mqttClient:    mqttClient,
		logger:        logger,
		deviceID:      cfg.Dispenser.DeviceID,
		cacheManager:  cacheManager,
		activityLog:   activityLog,
		telemetry:     telemetry,
		commandWriter: commandWriter,
		catalogRepo:   catalogRepo,
		diseaseRepo:   diseaseRepo,
		profileRepo:   profileRepo,
		bottleRepo:    bottleRepo,
	}, nil
}

// Start runs the telemetry consumer until the context is cancelled.
func (s *DashboardService) Start(ctx context.Context) error {
	s.logger.Info("Starting dashboard service",
		zap.String("device_id", s.deviceID),
	)

	if err := s.telemetry.Start(ctx); err != nil {
		return fmt.Errorf("failed to start telemetry consumer: %w", err)
	}
	return nil
}

// Stop closes the backing connections.
func (s *DashboardService) Stop() error {
	s.logger.Info("Stopping dashboard service")

	s.mqttClient.Disconnect()

	if err := s.db.Close(); err != nil {
		s.logger.Error("Failed to close database",
			zap.Error(err),
		)
	}
	if err := s.redisClient.Close(); err != nil {
		s.logger.Error("Failed to close redis",
			zap.Error(err),
		)
	}
	return nil
}

// DeviceSnapshot returns the latest cached sensor snapshot, or nil when
// the cache entry has expired.
func (s *DashboardService) DeviceSnapshot(ctx context.Context) (*models.SensorSnapshot, error) {
	return s.cacheManager.GetSnapshot(ctx, s.deviceID)
}

// DeviceStatus returns the classified device status; a missing cache
// entry reads as offline.
func (s *DashboardService) DeviceStatus(ctx context.Context) (deriver.SystemStatus, error) {
	return s.cacheManager.GetStatus(ctx, s.deviceID)
}

// RecentEvents returns the cached activity log, newest first.
func (s *DashboardService) RecentEvents(ctx context.Context) ([]models.ActivityEvent, error) {
	return s.cacheManager.GetEventLog(ctx, s.deviceID)
}

// RequestDispense publishes a dispense command for a bottle.
func (s *DashboardService) RequestDispense(bottleID, count int) error {
	return s.commandWriter.WriteDispense(s.deviceID, bottleID, count)
}

// RequestRefill publishes a refill-to-capacity command for a bottle.
func (s *DashboardService) RequestRefill(bottleID int) error {
	return s.commandWriter.WriteRefill(s.deviceID, bottleID)
}

// Profile returns the stored profile for a user, or nil when none was
// saved.
func (s *DashboardService) Profile(ctx context.Context, userID string) (*models.UserProfile, error) {
	return s.profileRepo.GetProfile(ctx, userID)
}

// SaveProfile upserts the profile for a user.
func (s *DashboardService) SaveProfile(ctx context.Context, userID string, profile *models.UserProfile) error {
	return s.profileRepo.SaveProfile(ctx, userID, profile)
}

// BottleConfig returns the stored pill assignment for this device.
func (s *DashboardService) BottleConfig(ctx context.Context) (*models.PillBottleConfig, error) {
	return s.bottleRepo.GetBottleConfig(ctx, s.deviceID)
}

// SaveBottleConfig upserts the pill assignment for this device.
func (s *DashboardService) SaveBottleConfig(ctx context.Context, cfg *models.PillBottleConfig) error {
	cfg.DeviceID = s.deviceID
	return s.bottleRepo.SaveBottleConfig(ctx, cfg)
}

// buildDSN builds the Postgres connection string.
func buildDSN(cfg *config.Config) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Database,
		cfg.Database.SSLMode,
	)
}
