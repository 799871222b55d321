package deriver

import (
	"fmt"

	"github.com/inuteam04/vitamin-dispenser/internal/models"
)

// detectDispense emits PillDispensed for every bottle whose count
// dropped between the two snapshots.
func (d *Deriver) detectDispense(prev, curr *models.SensorSnapshot) []models.ActivityEvent {
	var events []models.ActivityEvent
	for i := 0; i < bottlePairs(prev, curr); i++ {
		before := prev.Bottles[i].Count
		after := curr.Bottles[i].Count
		if after >= before {
			continue
		}
		bottle := i + 1
		delta := before - after
		msg := fmt.Sprintf("Bottle %d dispensed %d pill(s) (%d -> %d)", bottle, delta, before, after)
		events = append(events, newBottleEvent(models.EventPillDispensed, bottle, curr.CapturedAt, float64(delta), msg))
	}
	return events
}

// detectLowStock emits PillLow when a bottle's count crosses from at or
// above the low-stock threshold to below it. Staying below the threshold
// does not re-fire; only the crossing does.
func (d *Deriver) detectLowStock(prev, curr *models.SensorSnapshot) []models.ActivityEvent {
	var events []models.ActivityEvent
	for i := 0; i < bottlePairs(prev, curr); i++ {
		before := prev.Bottles[i].Count
		after := curr.Bottles[i].Count
		if !(after < lowStockThreshold && before >= lowStockThreshold) {
			continue
		}
		bottle := i + 1
		msg := fmt.Sprintf("Bottle %d running low: %d of %d remaining", bottle, after, models.BottleCapacity)
		events = append(events, newBottleEvent(models.EventPillLow, bottle, curr.CapturedAt, float64(after), msg))
	}
	return events
}
