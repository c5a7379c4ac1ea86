// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergei Nazarov

package engine

import (
	"fmt"

	"github.com/snazarov/aclsim/models"
)

// IDGenerator yields unique ciphertext identifiers.
// Implemented by utils.UUIDGenerator in production and by fixed-sequence
// generators in tests.
type IDGenerator interface {
	Generate() string
}

// Engine computes ciphertext state transitions and evaluates decryption
// requests. It is safe to share: all state lives in the records it is
// handed.
type Engine struct {
	ids      IDGenerator
	clock    Clock
	contract string
}

// New constructs an Engine. contractIdentity is the platform identity that
// receives a permanent grant on every newly created ciphertext.
func New(ids IDGenerator, clock Clock, contractIdentity string) *Engine {
	return &Engine{
		ids:      ids,
		clock:    clock,
		contract: contractIdentity,
	}
}

// CreateCiphertext allocates a fresh record owned by owner with the given
// stand-in plaintext. The default grant policy runs immediately: the
// executing contract is granted first (the allow-this convenience), then
// the owner, so a new value is usable by its creator and by the managing
// contract without an extra round trip.
//
// Returns the record and two events: the creation, then the default grants.
func (e *Engine) CreateCiphertext(owner, payload string) (models.Ciphertext, []models.Event) {
	ct := models.Ciphertext{
		ID:                e.ids.Generate(),
		Payload:           payload,
		Owner:             owner,
		PermanentGrantees: models.NewIdentitySet(),
		TransientGrantees: models.NewIdentitySet(),
	}

	e.allowThis(&ct)
	ct.PermanentGrantees.Add(owner)

	created := e.newEvent(models.EventCreate, ct.ID, owner,
		fmt.Sprintf("%s encrypted a new value", owner))
	defaults := e.newEvent(models.EventGrantPermanent, ct.ID, e.contract,
		fmt.Sprintf("default policy: permanent access for %s and %s", e.contract, owner))

	return ct, []models.Event{created, defaults}
}

// allowThis grants the executing contract permanent access to the record,
// mirroring the platform convenience of the same name.
func (e *Engine) allowThis(ct *models.Ciphertext) {
	ct.PermanentGrantees.Add(e.contract)
}

// GrantPermanent adds identity to the record's permanent grantees.
// Idempotent: granting an identity that already holds access changes
// nothing, but an event is still emitted.
func (e *Engine) GrantPermanent(ct models.Ciphertext, identity string) (models.Ciphertext, models.Event) {
	next := ct.Clone()
	next.PermanentGrantees.Add(identity)

	ev := e.newEvent(models.EventGrantPermanent, ct.ID, e.contract,
		fmt.Sprintf("permanent access granted to %s", identity))
	return next, ev
}

// GrantTransient adds identity to the record's transient grantees. The
// grant is conceptually scoped to the current unit of work, but the
// simulation has no transaction boundary, so it is never cleared: no expiry
// timer, no implicit reset on later operations.
func (e *Engine) GrantTransient(ct models.Ciphertext, identity string) (models.Ciphertext, models.Event) {
	next := ct.Clone()
	next.TransientGrantees.Add(identity)

	ev := e.newEvent(models.EventGrantTransient, ct.ID, e.contract,
		fmt.Sprintf("transient access granted to %s for the current call", identity))
	return next, ev
}

// MakePublic sets the record's public flag, authorizing every principal.
// Monotonic: nothing in the simulation clears the flag. Repeating the
// operation is a no-op on state but still emits an event.
func (e *Engine) MakePublic(ct models.Ciphertext) (models.Ciphertext, models.Event) {
	next := ct.Clone()
	next.Public = true

	ev := e.newEvent(models.EventMakePublic, ct.ID, e.contract,
		"ciphertext marked public: every principal may decrypt")
	return next, ev
}

// IsAuthorized reports whether identity may decrypt the record: member of
// either grantee set, or the record is public. Pure predicate, no side
// effects.
func IsAuthorized(ct models.Ciphertext, identity string) bool {
	return ct.AuthorizedFor(identity)
}

// AttemptDecrypt evaluates a decryption request by identity against the
// record's ACL. The record is never mutated: access checks are read-only.
//
// Two events are produced in order: the attempt, then its outcome. Only the
// granted outcome reveals the payload, simulating a KMS that releases the
// plaintext strictly after the access check passes.
func (e *Engine) AttemptDecrypt(ct models.Ciphertext, identity string) ([]models.Event, models.Outcome) {
	attempt := e.newEvent(models.EventDecryptAttempt, ct.ID, identity,
		fmt.Sprintf("decryption requested by %s", identity))

	if !IsAuthorized(ct, identity) {
		denied := e.newEvent(models.EventDecryptDenied, ct.ID, models.ActorAuthService,
			fmt.Sprintf("access check failed: %s is not authorized", identity))
		return []models.Event{attempt, denied}, models.OutcomeDenied
	}

	granted := e.newEvent(models.EventDecryptGranted, ct.ID, models.ActorAuthService,
		fmt.Sprintf("access check passed, plaintext released to %s: %q", identity, ct.Payload))
	return []models.Event{attempt, granted}, models.OutcomeGranted
}

func (e *Engine) newEvent(kind models.EventKind, subjectID, actor, message string) models.Event {
	return models.Event{
		Timestamp: e.clock.Now(),
		Kind:      kind,
		SubjectID: subjectID,
		Actor:     actor,
		Message:   message,
	}
}
