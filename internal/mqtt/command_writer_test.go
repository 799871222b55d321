package mqtt

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/inuteam04/vitamin-dispenser/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePublisher struct {
	topic   string
	payload []byte
	err     error
}

func (f *fakePublisher) Publish(topic string, payload []byte) error {
	f.topic = topic
	f.payload = payload
	return f.err
}

func TestCommandWriter_WriteDispense(t *testing.T) {
	pub := &fakePublisher{}
	writer := NewCommandWriter(pub, "dispenser", zap.NewNop())

	err := writer.WriteDispense("device-42", 2, 1)
	require.NoError(t, err)

	assert.Equal(t, "dispenser/device-42/command", pub.topic)

	var cmd models.DispenseCommand
	require.NoError(t, json.Unmarshal(pub.payload, &cmd))
	assert.Equal(t, 2, cmd.BottleID)
	assert.Equal(t, 1, cmd.Count)
	assert.Equal(t, models.CommandDispense, cmd.Kind)
	assert.NotZero(t, cmd.RequestedAt)
}

func TestCommandWriter_WriteRefill(t *testing.T) {
	pub := &fakePublisher{}
	writer := NewCommandWriter(pub, "dispenser", zap.NewNop())

	err := writer.WriteRefill("device-42", 3)
	require.NoError(t, err)

	var cmd models.DispenseCommand
	require.NoError(t, json.Unmarshal(pub.payload, &cmd))
	assert.Equal(t, models.CommandRefill, cmd.Kind)
	assert.Equal(t, models.BottleCapacity, cmd.Count)
}

func TestCommandWriter_PublishFailure(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker down")}
	writer := NewCommandWriter(pub, "dispenser", zap.NewNop())

	err := writer.WriteDispense("device-42", 1, 1)
	assert.ErrorContains(t, err, "failed to write command")
}
