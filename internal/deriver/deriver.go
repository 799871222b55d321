package deriver

import (
	"github.com/inuteam04/vitamin-dispenser/internal/models"

	"go.uber.org/zap"
)

// Fixed sensor thresholds for the current hardware generation. Not
// user-configurable.
const (
	tempCriticalThreshold = 35.0 // Celsius
	tempWarningThreshold  = 30.0 // Celsius, lower edge of the warning band
	humidityThreshold     = 70.0 // percent
	lowStockThreshold     = 5    // pills
)

// Deriver turns a pair of consecutive snapshots into discrete activity
// events. It is a pure transition function: the caller owns the single
// "previous snapshot" slot and must deliver snapshots in capture order.
type Deriver struct {
	logger *zap.Logger
}

// NewDeriver creates a deriver.
func NewDeriver(logger *zap.Logger) *Deriver {
	return &Deriver{logger: logger}
}

// Derive detects every qualifying transition between prev and curr.
// The very first observation (prev == nil) produces no events; there is
// nothing to compare against and emitting level checks on initial load
// would cause an event storm. curr is required by contract.
func (d *Deriver) Derive(prev, curr *models.SensorSnapshot) []models.ActivityEvent {
	if curr == nil {
		panic("deriver: current snapshot is required")
	}
	if prev == nil {
		return nil
	}

	var events []models.ActivityEvent
	events = append(events, d.detectDispense(prev, curr)...)
	events = append(events, d.detectLowStock(prev, curr)...)
	events = append(events, d.detectFanToggle(prev, curr)...)
	events = append(events, d.detectTemperature(prev, curr)...)
	events = append(events, d.detectHumidity(prev, curr)...)

	if len(events) > 0 {
		d.logger.Debug("Derived activity events",
			zap.Int("event_count", len(events)),
			zap.Int64("captured_at", curr.CapturedAt),
		)
	}
	return events
}

// bottlePairs iterates bottles present in both snapshots. A bottle that
// appears in only one side has no transition to evaluate.
func bottlePairs(prev, curr *models.SensorSnapshot) int {
	n := len(prev.Bottles)
	if len(curr.Bottles) < n {
		n = len(curr.Bottles)
	}
	return n
}
