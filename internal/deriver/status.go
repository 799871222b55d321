package deriver

import "github.com/inuteam04/vitamin-dispenser/internal/models"

// SystemStatus is the coarse device state shown on the dashboard.
type SystemStatus string

const (
	StatusOffline    SystemStatus = "offline"
	StatusDispensing SystemStatus = "dispensing"
	StatusCooling    SystemStatus = "cooling"
	StatusError      SystemStatus = "error"
	StatusIdle       SystemStatus = "idle"
)

// ClassifyStatus maps the latest snapshot to a system state, first match
// wins. Dispensing outranks cooling, and cooling outranks the
// over-temperature error: an active fan means the device is already
// handling the condition.
func ClassifyStatus(snapshot *models.SensorSnapshot) SystemStatus {
	switch {
	case snapshot == nil:
		return StatusOffline
	case snapshot.IsDispensing:
		return StatusDispensing
	case snapshot.FanStatus:
		return StatusCooling
	case anyBottleOverTemp(snapshot):
		return StatusError
	default:
		return StatusIdle
	}
}

func anyBottleOverTemp(snapshot *models.SensorSnapshot) bool {
	for _, b := range snapshot.Bottles {
		if b.Temperature > tempCriticalThreshold {
			return true
		}
	}
	return false
}
