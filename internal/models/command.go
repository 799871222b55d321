package models

// Command kinds
const (
	CommandDispense = "dispense"
	CommandRefill   = "refill"
)

// DispenseCommand is the abstract command value written back to the
// device. The core only constructs it; delivery is fire-and-forget.
type DispenseCommand struct {
	BottleID    int    `json:"bottle_id"`
	Count       int    `json:"count"`
	Kind        string `json:"kind"` // dispense or refill
	RequestedAt int64  `json:"requested_at"`
}
