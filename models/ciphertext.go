// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergei Nazarov

package models

// Ciphertext represents one simulated encrypted value together with its
// access-control lists. There is no real cryptography behind it: Payload is
// the would-be plaintext, kept opaque until a decryption request passes the
// authorization check.
//
// ID, Payload and Owner are fixed at creation and never mutated. The grantee
// sets and the Public flag only ever grow: no operation in the simulation
// revokes access.
type Ciphertext struct {
	// ID is an opaque unique identifier assigned at creation. Never reused.
	ID string

	// Payload stands in for the encrypted value's plaintext.
	Payload string

	// Owner is the identity of the creating principal.
	Owner string

	// PermanentGrantees holds principals with indefinite authorization.
	PermanentGrantees IdentitySet

	// TransientGrantees holds principals whose authorization is conceptually
	// scoped to the current unit of work. The simulation has no transaction
	// boundary, so these grants are never automatically cleared.
	TransientGrantees IdentitySet

	// Public, once set, authorizes every principal. Monotonic: nothing in
	// the simulation resets it to false.
	Public bool
}

// Clone returns a deep copy of the record. Engine operations work on clones
// so that a caller's copy is never mutated in place.
func (c Ciphertext) Clone() Ciphertext {
	clone := c
	clone.PermanentGrantees = c.PermanentGrantees.Clone()
	clone.TransientGrantees = c.TransientGrantees.Clone()
	return clone
}

// AuthorizedFor reports whether identity may decrypt this record:
// member of either grantee set, or the record is public.
func (c Ciphertext) AuthorizedFor(identity string) bool {
	return c.PermanentGrantees.Has(identity) ||
		c.TransientGrantees.Has(identity) ||
		c.Public
}
