// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergei Nazarov

package models

import "time"

// EventKind classifies audit log entries produced by the permission engine.
type EventKind string

const (
	EventCreate         EventKind = "create"
	EventGrantPermanent EventKind = "grant-permanent"
	EventGrantTransient EventKind = "grant-transient"
	EventMakePublic     EventKind = "make-public"
	EventDecryptAttempt EventKind = "decrypt-attempt"
	EventDecryptGranted EventKind = "decrypt-granted"
	EventDecryptDenied  EventKind = "decrypt-denied"
)

// Event is a single immutable audit entry. One is produced for every
// engine operation; decryption attempts produce two (the attempt, then
// its outcome).
type Event struct {
	// Timestamp is the capture time, assigned when the event is produced.
	Timestamp time.Time `json:"timestamp"`

	// Kind classifies the event.
	Kind EventKind `json:"kind"`

	// SubjectID is the id of the ciphertext record this event concerns.
	SubjectID string `json:"subject_id"`

	// Actor is who or what triggered the event: a principal identity, or a
	// symbolic system actor such as ActorAuthService.
	Actor string `json:"actor"`

	// Message is a human-readable description of what happened.
	Message string `json:"message"`
}

// When renders the capture time in the human-readable form shown by the
// event log panel.
func (e Event) When() string {
	return e.Timestamp.Format("15:04:05")
}
