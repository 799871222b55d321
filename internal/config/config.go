package config

import (
	"os"
	"strconv"
)

// DatabaseConfig holds the Postgres connection settings.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// RedisConfig holds the dashboard-cache Redis settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// MQTTConfig holds the telemetry broker settings.
type MQTTConfig struct {
	Broker   string
	ClientID string
	Username string
	Password string
	QoS      byte
}

// Config is the dashboard service configuration.
type Config struct {
	Database DatabaseConfig
	Redis    RedisConfig
	MQTT     MQTTConfig

	Dispenser struct {
		// Device whose telemetry this instance follows
		DeviceID string

		// Topic layout: <TopicPrefix>/<device>/telemetry and /command
		TopicPrefix string

		// Redis cache key layout, e.g. "dispenser:device:" + id + ":events"
		Cache struct {
			KeyPrefix      string
			SnapshotSuffix string
			StatusSuffix   string
			EventsSuffix   string
			SnapshotTTL    int // seconds
			EventsTTL      int // seconds; 0 = keep until replaced
		}

		// Bound of the visible activity log
		EventLogSize int
	}

	Log struct {
		Level  string
		Format string
	}
}

// Load reads configuration from environment variables with sensible
// local-development defaults.
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnvInt("DB_PORT", 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.Database.Database = getEnv("DB_NAME", "dispenser")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvInt("REDIS_DB", 0)

	cfg.MQTT.Broker = getEnv("MQTT_BROKER", "tcp://localhost:1883")
	cfg.MQTT.ClientID = getEnv("MQTT_CLIENT_ID", "dispenser-dashboard")
	cfg.MQTT.Username = getEnv("MQTT_USERNAME", "")
	cfg.MQTT.Password = getEnv("MQTT_PASSWORD", "")
	cfg.MQTT.QoS = 1

	cfg.Dispenser.DeviceID = getEnv("DEVICE_ID", "")
	cfg.Dispenser.TopicPrefix = getEnv("MQTT_TOPIC_PREFIX", "dispenser")

	cfg.Dispenser.Cache.KeyPrefix = getEnv("CACHE_KEY_PREFIX", "dispenser:device:")
	cfg.Dispenser.Cache.SnapshotSuffix = ":snapshot"
	cfg.Dispenser.Cache.StatusSuffix = ":status"
	cfg.Dispenser.Cache.EventsSuffix = ":events"
	cfg.Dispenser.Cache.SnapshotTTL = getEnvInt("CACHE_SNAPSHOT_TTL", 60)
	cfg.Dispenser.Cache.EventsTTL = getEnvInt("CACHE_EVENTS_TTL", 0)

	cfg.Dispenser.EventLogSize = getEnvInt("EVENT_LOG_SIZE", 50)

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
