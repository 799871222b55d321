package deriver

import (
	"fmt"

	"github.com/inuteam04/vitamin-dispenser/internal/models"
)

// detectTemperature emits threshold-crossing events per bottle.
// Both checks are strict crossings, not level checks: a temperature that
// stays above a threshold across ticks fires exactly once, when it
// crossed. The previous-state guards make critical and warning mutually
// exclusive for one transition.
func (d *Deriver) detectTemperature(prev, curr *models.SensorSnapshot) []models.ActivityEvent {
	var events []models.ActivityEvent
	for i := 0; i < bottlePairs(prev, curr); i++ {
		before := prev.Bottles[i].Temperature
		after := curr.Bottles[i].Temperature
		bottle := i + 1

		switch {
		case after > tempCriticalThreshold && before <= tempCriticalThreshold:
			msg := fmt.Sprintf("Bottle %d temperature critical: %.1f°C", bottle, after)
			events = append(events, newBottleEvent(models.EventTempCritical, bottle, curr.CapturedAt, after, msg))

		case after > tempWarningThreshold && after <= tempCriticalThreshold && before <= tempWarningThreshold:
			msg := fmt.Sprintf("Bottle %d temperature high: %.1f°C", bottle, after)
			events = append(events, newBottleEvent(models.EventTempWarning, bottle, curr.CapturedAt, after, msg))
		}
	}
	return events
}

// detectHumidity emits HumidityWarning when a bottle's humidity crosses
// above the threshold.
func (d *Deriver) detectHumidity(prev, curr *models.SensorSnapshot) []models.ActivityEvent {
	var events []models.ActivityEvent
	for i := 0; i < bottlePairs(prev, curr); i++ {
		before := prev.Bottles[i].Humidity
		after := curr.Bottles[i].Humidity
		if !(after > humidityThreshold && before <= humidityThreshold) {
			continue
		}
		bottle := i + 1
		msg := fmt.Sprintf("Bottle %d humidity high: %.1f%%", bottle, after)
		events = append(events, newBottleEvent(models.EventHumidityWarning, bottle, curr.CapturedAt, after, msg))
	}
	return events
}
