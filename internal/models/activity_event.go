package models

// EventKind identifies one derived activity event type.
type EventKind string

const (
	EventPillDispensed   EventKind = "PillDispensed"
	EventFanOn           EventKind = "FanOn"
	EventFanOff          EventKind = "FanOff"
	EventTempWarning     EventKind = "TempWarning"
	EventTempCritical    EventKind = "TempCritical"
	EventHumidityWarning EventKind = "HumidityWarning"
	EventPillLow         EventKind = "PillLow"
)

// ActivityEvent is a discrete occurrence derived from a snapshot
// transition. Events are append-only; the visible log keeps the most
// recent N, newest first.
type ActivityEvent struct {
	ID         string    `json:"id"`
	Kind       EventKind `json:"kind"`
	Message    string    `json:"message"`
	OccurredAt int64     `json:"occurred_at"` // unix seconds

	// Optional structured payload
	Bottle  *int     `json:"bottle,omitempty"`  // 1-based bottle id
	Reading *float64 `json:"reading,omitempty"` // numeric value that triggered it
}
