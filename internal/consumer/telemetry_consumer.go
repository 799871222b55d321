package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/inuteam04/vitamin-dispenser/internal/config"
	"github.com/inuteam04/vitamin-dispenser/internal/deriver"
	"github.com/inuteam04/vitamin-dispenser/internal/models"
	"github.com/inuteam04/vitamin-dispenser/internal/mqtt"

	"go.uber.org/zap"
)

// TelemetryConsumer subscribes to the device telemetry topic and runs
// one synchronous derivation pass per snapshot. All snapshots are
// funneled through a single channel so the deriver always sees them in
// arrival order with exactly one previous reference. The broker
// callback never touches the previous-snapshot slot directly.
type TelemetryConsumer struct {
	config   *config.Config
	client   *mqtt.Client
	deriver  *deriver.Deriver
	log      *deriver.ActivityLog
	cache    *CacheManager
	logger   *zap.Logger
	deviceID string

	snapshots chan models.SensorSnapshot

	// single-slot previous snapshot, owned by the Start goroutine
	prev *models.SensorSnapshot
}

// NewTelemetryConsumer creates a consumer for one device.
func NewTelemetryConsumer(
	cfg *config.Config,
	client *mqtt.Client,
	drv *deriver.Deriver,
	log *deriver.ActivityLog,
	cache *CacheManager,
	logger *zap.Logger,
) *TelemetryConsumer {
	return &TelemetryConsumer{
		config:    cfg,
		client:    client,
		deriver:   drv,
		log:       log,
		cache:     cache,
		logger:    logger,
		deviceID:  cfg.Dispenser.DeviceID,
		snapshots: make(chan models.SensorSnapshot, 64),
	}
}

// Start subscribes and processes snapshots until the context is
// cancelled.
func (c *TelemetryConsumer) Start(ctx context.Context) error {
	topic := fmt.Sprintf("%s/%s/telemetry", c.config.Dispenser.TopicPrefix, c.deviceID)
	if err := c.client.Subscribe(topic, c.handleMessage); err != nil {
		return fmt.Errorf("failed to subscribe to telemetry: %w", err)
	}

	c.logger.Info("Telemetry consumer started",
		zap.String("device_id", c.deviceID),
		zap.String("topic", topic),
	)

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("Telemetry consumer stopped")
			return nil
		case snapshot := <-c.snapshots:
			c.process(ctx, snapshot)
		}
	}
}

// handleMessage decodes one telemetry payload and queues it. Malformed
// payloads are dropped with a log line; sensor transports are noisy and
// a bad frame must not take the consumer down.
func (c *TelemetryConsumer) handleMessage(topic string, payload []byte) error {
	var snapshot models.SensorSnapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	select {
	case c.snapshots <- snapshot:
	default:
		// Backpressure: the dashboard only needs the latest state, so
		// dropping under burst is preferable to blocking the broker
		// callback.
		c.logger.Warn("Snapshot queue full, dropping telemetry frame",
			zap.Int64("captured_at", snapshot.CapturedAt),
		)
	}
	return nil
}

// process runs one derivation pass: derive events against the previous
// snapshot, advance the slot, refresh the bounded log and the cache.
func (c *TelemetryConsumer) process(ctx context.Context, snapshot models.SensorSnapshot) {
	events := c.deriver.Derive(c.prev, &snapshot)
	c.prev = &snapshot

	if len(events) > 0 {
		c.log.Prepend(events)
		if err := c.cache.UpdateEventLog(ctx, c.deviceID, c.log.Events()); err != nil {
			c.logger.Error("Failed to update event log cache",
				zap.String("device_id", c.deviceID),
				zap.Error(err),
			)
		}
	}

	if err := c.cache.UpdateSnapshot(ctx, c.deviceID, &snapshot); err != nil {
		c.logger.Error("Failed to update snapshot cache",
			zap.String("device_id", c.deviceID),
			zap.Error(err),
		)
	}

	status := deriver.ClassifyStatus(&snapshot)
	if err := c.cache.UpdateStatus(ctx, c.deviceID, status); err != nil {
		c.logger.Error("Failed to update status cache",
			zap.String("device_id", c.deviceID),
			zap.Error(err),
		)
	}
}
