// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergei Nazarov

package store

import "github.com/snazarov/aclsim/models"

// EventLog is a bounded, newest-first sequence of audit events. Appending
// beyond the capacity evicts the oldest entry (the one at the tail).
type EventLog struct {
	events   []models.Event
	capacity int
}

// NewEventLog returns an empty log retaining at most capacity entries.
// A non-positive capacity panics: the caller (config) guarantees at least 1.
func NewEventLog(capacity int) *EventLog {
	if capacity < 1 {
		panic("store: event log capacity must be positive")
	}
	return &EventLog{
		events:   make([]models.Event, 0, capacity),
		capacity: capacity,
	}
}

// Prepend records events in production order: the last event passed ends up
// newest (at index 0). Evicts from the tail once the capacity is exceeded.
func (l *EventLog) Prepend(events ...models.Event) {
	for _, ev := range events {
		l.events = append([]models.Event{ev}, l.events...)
		if len(l.events) > l.capacity {
			l.events = l.events[:l.capacity]
		}
	}
}

// List returns a copy of the retained events, newest first.
func (l *EventLog) List() []models.Event {
	out := make([]models.Event, len(l.events))
	copy(out, l.events)
	return out
}

// Len returns the number of retained events.
func (l *EventLog) Len() int {
	return len(l.events)
}

// Cap returns the maximum number of retained events.
func (l *EventLog) Cap() int {
	return l.capacity
}
