package deriver

import (
	"fmt"

	"github.com/inuteam04/vitamin-dispenser/internal/models"

	"github.com/google/uuid"
)

// newEvent builds one activity event. The id combines kind, subject and
// emission time with a random suffix so that two events of the same kind
// in the same second never collide.
func newEvent(kind models.EventKind, subject string, occurredAt int64, message string) models.ActivityEvent {
	return models.ActivityEvent{
		ID:         fmt.Sprintf("%s:%s:%d:%s", kind, subject, occurredAt, uuid.NewString()[:8]),
		Kind:       kind,
		Message:    message,
		OccurredAt: occurredAt,
	}
}

// newBottleEvent builds an event carrying the subject bottle id and the
// numeric reading that triggered it.
func newBottleEvent(kind models.EventKind, bottle int, occurredAt int64, reading float64, message string) models.ActivityEvent {
	event := newEvent(kind, fmt.Sprintf("bottle%d", bottle), occurredAt, message)
	event.Bottle = &bottle
	event.Reading = &reading
	return event
}
