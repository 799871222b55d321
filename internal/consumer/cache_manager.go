package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/inuteam04/vitamin-dispenser/internal/config"
	"github.com/inuteam04/vitamin-dispenser/internal/deriver"
	"github.com/inuteam04/vitamin-dispenser/internal/models"
	"github.com/inuteam04/vitamin-dispenser/internal/store"

	"go.uber.org/zap"
)

// CacheManager maintains the dashboard read cache: latest snapshot,
// classified status and the bounded activity log, one key set per device.
type CacheManager struct {
	config *config.Config
	kv     store.KV
	logger *zap.Logger
}

// NewCacheManager creates a cache manager.
func NewCacheManager(cfg *config.Config, kv store.KV, logger *zap.Logger) *CacheManager {
	return &CacheManager{config: cfg, kv: kv, logger: logger}
}

// UpdateSnapshot caches the latest raw snapshot. The TTL doubles as the
// staleness signal: an expired key reads back as a cache miss and the
// dashboard shows the device as offline.
func (c *CacheManager) UpdateSnapshot(ctx context.Context, deviceID string, snapshot *models.SensorSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	ttl := time.Duration(c.config.Dispenser.Cache.SnapshotTTL) * time.Second
	if err := c.kv.Set(ctx, c.key(deviceID, c.config.Dispenser.Cache.SnapshotSuffix), string(data), ttl); err != nil {
		return fmt.Errorf("failed to set snapshot cache: %w", err)
	}
	return nil
}

// GetSnapshot reads the cached snapshot; (nil, nil) when absent or
// expired.
func (c *CacheManager) GetSnapshot(ctx context.Context, deviceID string) (*models.SensorSnapshot, error) {
	val, err := c.kv.Get(ctx, c.key(deviceID, c.config.Dispenser.Cache.SnapshotSuffix))
	if err != nil {
		if err == store.ErrCacheMiss {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get snapshot cache: %w", err)
	}

	var snapshot models.SensorSnapshot
	if err := json.Unmarshal([]byte(val), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &snapshot, nil
}

// UpdateStatus caches the classified system status.
func (c *CacheManager) UpdateStatus(ctx context.Context, deviceID string, status deriver.SystemStatus) error {
	ttl := time.Duration(c.config.Dispenser.Cache.SnapshotTTL) * time.Second
	if err := c.kv.Set(ctx, c.key(deviceID, c.config.Dispenser.Cache.StatusSuffix), string(status), ttl); err != nil {
		return fmt.Errorf("failed to set status cache: %w", err)
	}
	return nil
}

// GetStatus reads the cached status. An absent or expired key maps to
// offline rather than an error.
func (c *CacheManager) GetStatus(ctx context.Context, deviceID string) (deriver.SystemStatus, error) {
	val, err := c.kv.Get(ctx, c.key(deviceID, c.config.Dispenser.Cache.StatusSuffix))
	if err != nil {
		if err == store.ErrCacheMiss {
			return deriver.StatusOffline, nil
		}
		return deriver.StatusOffline, fmt.Errorf("failed to get status cache: %w", err)
	}
	return deriver.SystemStatus(val), nil
}

// UpdateEventLog caches the visible activity log, newest first.
func (c *CacheManager) UpdateEventLog(ctx context.Context, deviceID string, events []models.ActivityEvent) error {
	data, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("failed to marshal event log: %w", err)
	}
	ttl := time.Duration(c.config.Dispenser.Cache.EventsTTL) * time.Second
	if err := c.kv.Set(ctx, c.key(deviceID, c.config.Dispenser.Cache.EventsSuffix), string(data), ttl); err != nil {
		return fmt.Errorf("failed to set event log cache: %w", err)
	}

	c.logger.Debug("Updated event log cache",
		zap.String("device_id", deviceID),
		zap.Int("event_count", len(events)),
	)
	return nil
}

// GetEventLog reads the cached activity log; empty when absent.
func (c *CacheManager) GetEventLog(ctx context.Context, deviceID string) ([]models.ActivityEvent, error) {
	val, err := c.kv.Get(ctx, c.key(deviceID, c.config.Dispenser.Cache.EventsSuffix))
	if err != nil {
		if err == store.ErrCacheMiss {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get event log cache: %w", err)
	}

	var events []models.ActivityEvent
	if err := json.Unmarshal([]byte(val), &events); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event log: %w", err)
	}
	return events, nil
}

func (c *CacheManager) key(deviceID, suffix string) string {
	return fmt.Sprintf("%s%s%s", c.config.Dispenser.Cache.KeyPrefix, deviceID, suffix)
}
