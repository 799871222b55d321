package mqtt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/inuteam04/vitamin-dispenser/internal/models"

	"go.uber.org/zap"
)

// Publisher is the outbound half of the broker client; satisfied by
// *Client and by fakes in tests.
type Publisher interface {
	Publish(topic string, payload []byte) error
}

// CommandWriter constructs dispense/refill commands and publishes them
// fire-and-forget to the device's command topic.
type CommandWriter struct {
	publisher   Publisher
	topicPrefix string
	logger      *zap.Logger
}

// NewCommandWriter creates a command writer.
func NewCommandWriter(publisher Publisher, topicPrefix string, logger *zap.Logger) *CommandWriter {
	return &CommandWriter{
		publisher:   publisher,
		topicPrefix: topicPrefix,
		logger:      logger,
	}
}

// WriteDispense requests a dispense of count pills from a bottle.
func (w *CommandWriter) WriteDispense(deviceID string, bottleID, count int) error {
	return w.write(deviceID, models.DispenseCommand{
		BottleID:    bottleID,
		Count:       count,
		Kind:        models.CommandDispense,
		RequestedAt: time.Now().Unix(),
	})
}

// WriteRefill marks a bottle as refilled to capacity.
func (w *CommandWriter) WriteRefill(deviceID string, bottleID int) error {
	return w.write(deviceID, models.DispenseCommand{
		BottleID:    bottleID,
		Count:       models.BottleCapacity,
		Kind:        models.CommandRefill,
		RequestedAt: time.Now().Unix(),
	})
}

func (w *CommandWriter) write(deviceID string, cmd models.DispenseCommand) error {
	payload, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("failed to marshal command: %w", err)
	}

	topic := fmt.Sprintf("%s/%s/command", w.topicPrefix, deviceID)
	if err := w.publisher.Publish(topic, payload); err != nil {
		return fmt.Errorf("failed to write command: %w", err)
	}

	w.logger.Info("Command written",
		zap.String("device_id", deviceID),
		zap.String("kind", cmd.Kind),
		zap.Int("bottle_id", cmd.BottleID),
		zap.Int("count", cmd.Count),
	)
	return nil
}
