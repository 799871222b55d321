package deriver

import (
	"sort"

	"github.com/inuteam04/vitamin-dispenser/internal/models"
)

// DefaultLogSize bounds the visible activity log.
const DefaultLogSize = 50

// ActivityLog is the bounded most-recent-first event buffer. It has a
// single owner (the telemetry consumer goroutine) and is not safe for
// concurrent use.
type ActivityLog struct {
	max    int
	events []models.ActivityEvent
}

// NewActivityLog creates a log bounded to max events. A non-positive max
// falls back to DefaultLogSize.
func NewActivityLog(max int) *ActivityLog {
	if max <= 0 {
		max = DefaultLogSize
	}
	return &ActivityLog{max: max}
}

// Prepend inserts new events at the front, keeps descending occurredAt
// order, and evicts the oldest entries past the bound.
func (l *ActivityLog) Prepend(events []models.ActivityEvent) {
	if len(events) == 0 {
		return
	}
	l.events = append(append([]models.ActivityEvent{}, events...), l.events...)
	sort.SliceStable(l.events, func(i, j int) bool {
		return l.events[i].OccurredAt > l.events[j].OccurredAt
	})
	if len(l.events) > l.max {
		l.events = l.events[:l.max]
	}
}

// Events returns a copy of the current log, newest first.
func (l *ActivityLog) Events() []models.ActivityEvent {
	out := make([]models.ActivityEvent, len(l.events))
	copy(out, l.events)
	return out
}

// Len returns the number of retained events.
func (l *ActivityLog) Len() int {
	return len(l.events)
}
