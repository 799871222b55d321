package models

// BottleCapacity is the pill capacity of every reservoir in the current
// hardware generation.
const BottleCapacity = 18

// BottleCount is the number of reservoirs per device.
const BottleCount = 3

// BottleReading holds the per-bottle sensor values of one snapshot.
type BottleReading struct {
	Count       int     `json:"count"`       // remaining pills, >= 0
	Temperature float64 `json:"temperature"` // Celsius
	Humidity    float64 `json:"humidity"`    // percent, 0-100
}

// SensorSnapshot is one consistent reading of the whole device.
// Snapshots are immutable once captured; the deriver only ever compares
// two of them.
type SensorSnapshot struct {
	Bottles         []BottleReading `json:"bottles"`
	IsDispensing    bool            `json:"is_dispensing"`
	FanStatus       bool            `json:"fan_status"`
	LastDispensedAt int64           `json:"last_dispensed_at"` // unix seconds, 0 = never
	CapturedAt      int64           `json:"captured_at"`       // unix seconds
}

// AverageTemperature returns the mean temperature across all bottle
// sensors, or 0 when the snapshot carries no bottles.
func (s *SensorSnapshot) AverageTemperature() float64 {
	if len(s.Bottles) == 0 {
		return 0
	}
	var sum float64
	for _, b := range s.Bottles {
		sum += b.Temperature
	}
	return sum / float64(len(s.Bottles))
}
