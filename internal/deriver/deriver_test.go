package deriver

import (
	"testing"

	"github.com/inuteam04/vitamin-dispenser/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// snapshot builds a three-bottle snapshot with uniform readings.
func snapshot(capturedAt int64, count int, temp, humidity float64) *models.SensorSnapshot {
	s := &models.SensorSnapshot{CapturedAt: capturedAt}
	for i := 0; i < models.BottleCount; i++ {
		s.Bottles = append(s.Bottles, models.BottleReading{
			Count:       count,
			Temperature: temp,
			Humidity:    humidity,
		})
	}
	return s
}

func newTestDeriver() *Deriver {
	return NewDeriver(zap.NewNop())
}

func kinds(events []models.ActivityEvent) []models.EventKind {
	var out []models.EventKind
	for _, e := range events {
		out = append(out, e.Kind)
	}
	return out
}

func TestDerive_FirstObservationEmitsNothing(t *testing.T) {
	d := newTestDeriver()

	// Even a snapshot that would trip every level check stays silent.
	curr := snapshot(100, 2, 40, 90)
	curr.FanStatus = true

	assert.Empty(t, d.Derive(nil, curr))
}

func TestDerive_NilCurrentPanics(t *testing.T) {
	d := newTestDeriver()
	assert.Panics(t, func() { d.Derive(snapshot(1, 6, 25, 50), nil) })
}

func TestDerive_PillDispensed(t *testing.T) {
	d := newTestDeriver()

	prev := snapshot(100, 6, 25, 50)
	curr := snapshot(105, 6, 25, 50)
	curr.Bottles[1].Count = 5

	events := d.Derive(prev, curr)

	require.Len(t, events, 1)
	e := events[0]
	assert.Equal(t, models.EventPillDispensed, e.Kind)
	require.NotNil(t, e.Bottle)
	assert.Equal(t, 2, *e.Bottle)
	require.NotNil(t, e.Reading)
	assert.Equal(t, 1.0, *e.Reading)
	assert.Contains(t, e.Message, "6 -> 5")
	assert.Equal(t, int64(105), e.OccurredAt)
}

func TestDerive_RefillEmitsNothing(t *testing.T) {
	d := newTestDeriver()

	prev := snapshot(100, 4, 25, 50)
	curr := snapshot(105, 18, 25, 50)

	assert.Empty(t, d.Derive(prev, curr))
}

func TestDerive_LowStockSingleFire(t *testing.T) {
	d := newTestDeriver()

	prev := snapshot(100, 6, 25, 50)
	mid := snapshot(105, 6, 25, 50)
	mid.Bottles[0].Count = 4

	events := d.Derive(prev, mid)

	// 6 -> 4 crosses the low-stock boundary: one dispense + one low stock.
	require.Len(t, events, 2)
	assert.Contains(t, kinds(events), models.EventPillLow)

	var low models.ActivityEvent
	for _, e := range events {
		if e.Kind == models.EventPillLow {
			low = e
		}
	}
	require.NotNil(t, low.Reading)
	assert.Equal(t, 4.0, *low.Reading)
	assert.Contains(t, low.Message, "4 of 18")

	// 4 -> 3 stays below the boundary: dispense only, no second PillLow.
	next := snapshot(110, 6, 25, 50)
	next.Bottles[0].Count = 3
	mid2 := snapshot(105, 6, 25, 50)
	mid2.Bottles[0].Count = 4

	events = d.Derive(mid2, next)
	assert.Equal(t, []models.EventKind{models.EventPillDispensed}, kinds(events))
}

func TestDerive_FanToggle(t *testing.T) {
	d := newTestDeriver()

	prev := snapshot(100, 6, 32, 50)
	curr := snapshot(105, 6, 32, 50)
	curr.FanStatus = true

	events := d.Derive(prev, curr)

	require.Len(t, events, 1)
	assert.Equal(t, models.EventFanOn, events[0].Kind)
	require.NotNil(t, events[0].Reading)
	assert.InDelta(t, 32.0, *events[0].Reading, 1e-9)

	// Turning it back off
	off := snapshot(110, 6, 28, 50)
	events = d.Derive(curr, off)

	require.Len(t, events, 1)
	assert.Equal(t, models.EventFanOff, events[0].Kind)
}

func TestDerive_FanSteadyStateEmitsNothing(t *testing.T) {
	d := newTestDeriver()

	prev := snapshot(100, 6, 32, 50)
	prev.FanStatus = true
	curr := snapshot(105, 6, 33, 50)
	curr.FanStatus = true

	assert.Empty(t, d.Derive(prev, curr))
}

func TestDerive_TempCriticalHysteresis(t *testing.T) {
	d := newTestDeriver()

	// A sequence of snapshots all ending above 35° must emit TempCritical
	// exactly once, on the crossing.
	seq := []*models.SensorSnapshot{
		snapshot(100, 6, 34, 50),
		snapshot(105, 6, 36, 50),
		snapshot(110, 6, 37, 50),
		snapshot(115, 6, 36.5, 50),
	}

	var critical int
	prev := seq[0]
	for _, curr := range seq[1:] {
		for _, e := range d.Derive(prev, curr) {
			if e.Kind == models.EventTempCritical {
				critical++
			}
		}
		prev = curr
	}

	// One crossing per bottle, exactly once across the whole sequence.
	assert.Equal(t, models.BottleCount, critical)
}

func TestDerive_TempCriticalRearmsAfterDroppingBelow(t *testing.T) {
	d := newTestDeriver()

	up := d.Derive(snapshot(100, 6, 34, 50), snapshot(105, 6, 36, 50))
	down := d.Derive(snapshot(105, 6, 36, 50), snapshot(110, 6, 30, 50))
	upAgain := d.Derive(snapshot(110, 6, 30, 50), snapshot(115, 6, 36, 50))

	assert.Len(t, filterKind(up, models.EventTempCritical), models.BottleCount)
	assert.Empty(t, filterKind(down, models.EventTempCritical))
	assert.Len(t, filterKind(upAgain, models.EventTempCritical), models.BottleCount)
}

func TestDerive_TempWarningBand(t *testing.T) {
	d := newTestDeriver()

	events := d.Derive(snapshot(100, 6, 29, 50), snapshot(105, 6, 31, 50))

	require.Len(t, events, models.BottleCount)
	for _, e := range events {
		assert.Equal(t, models.EventTempWarning, e.Kind)
	}
}

func TestDerive_WarningAndCriticalNeverBothFire(t *testing.T) {
	d := newTestDeriver()

	// Jumping straight past both thresholds: critical only.
	events := d.Derive(snapshot(100, 6, 28, 50), snapshot(105, 6, 38, 50))

	assert.Len(t, filterKind(events, models.EventTempCritical), models.BottleCount)
	assert.Empty(t, filterKind(events, models.EventTempWarning))

	// Warning band to critical: critical only, no second warning.
	events = d.Derive(snapshot(105, 6, 33, 50), snapshot(110, 6, 36, 50))
	assert.Len(t, filterKind(events, models.EventTempCritical), models.BottleCount)
	assert.Empty(t, filterKind(events, models.EventTempWarning))
}

func TestDerive_HumidityCrossing(t *testing.T) {
	d := newTestDeriver()

	events := d.Derive(snapshot(100, 6, 25, 65), snapshot(105, 6, 25, 75))
	require.Len(t, events, models.BottleCount)
	assert.Equal(t, models.EventHumidityWarning, events[0].Kind)

	// Staying above does not re-fire.
	events = d.Derive(snapshot(105, 6, 25, 75), snapshot(110, 6, 25, 80))
	assert.Empty(t, events)
}

func TestDerive_PerBottleIndependence(t *testing.T) {
	d := newTestDeriver()

	prev := snapshot(100, 6, 25, 50)
	curr := snapshot(105, 6, 25, 50)
	curr.Bottles[0].Temperature = 36 // bottle 1 crosses critical
	curr.Bottles[2].Humidity = 75    // bottle 3 crosses humidity

	events := d.Derive(prev, curr)

	require.Len(t, events, 2)
	crit := filterKind(events, models.EventTempCritical)
	hum := filterKind(events, models.EventHumidityWarning)
	require.Len(t, crit, 1)
	require.Len(t, hum, 1)
	assert.Equal(t, 1, *crit[0].Bottle)
	assert.Equal(t, 3, *hum[0].Bottle)
}

func TestDerive_MismatchedBottleCounts(t *testing.T) {
	d := newTestDeriver()

	prev := snapshot(100, 6, 25, 50)
	curr := &models.SensorSnapshot{
		CapturedAt: 105,
		Bottles:    []models.BottleReading{{Count: 5, Temperature: 25, Humidity: 50}},
	}

	events := d.Derive(prev, curr)

	// Only the bottle present in both snapshots is evaluated.
	require.Len(t, events, 1)
	assert.Equal(t, models.EventPillDispensed, events[0].Kind)
}

func TestNewEvent_UniqueIDs(t *testing.T) {
	a := newEvent(models.EventFanOn, "fan", 100, "x")
	b := newEvent(models.EventFanOn, "fan", 100, "x")

	assert.NotEqual(t, a.ID, b.ID)
	assert.Contains(t, a.ID, "FanOn:fan:100:")
}

func filterKind(events []models.ActivityEvent, kind models.EventKind) []models.ActivityEvent {
	var out []models.ActivityEvent
	for _, e := range events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
