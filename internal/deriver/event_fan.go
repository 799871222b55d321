package deriver

import (
	"fmt"

	"github.com/inuteam04/vitamin-dispenser/internal/models"
)

// detectFanToggle emits FanOn or FanOff when the fan state flips,
// carrying the representative (bottle-averaged) temperature at the time
// of the toggle.
func (d *Deriver) detectFanToggle(prev, curr *models.SensorSnapshot) []models.ActivityEvent {
	if curr.FanStatus == prev.FanStatus {
		return nil
	}

	temp := curr.AverageTemperature()
	kind := models.EventFanOff
	msg := fmt.Sprintf("Cooling fan turned off (%.1f°C)", temp)
	if curr.FanStatus {
		kind = models.EventFanOn
		msg = fmt.Sprintf("Cooling fan turned on (%.1f°C)", temp)
	}

	event := newEvent(kind, "fan", curr.CapturedAt, msg)
	event.Reading = &temp
	return []models.ActivityEvent{event}
}
