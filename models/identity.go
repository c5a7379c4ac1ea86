// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergei Nazarov

package models

import "sort"

// Principal identities available in the simulation. The roster is fixed:
// the presentation layer only ever issues operations on behalf of one of
// these, so the engine never has to validate identity strings.
const (
	IdentityGenericUser  = "generic-user"
	IdentityOwnerAlice   = "owner-alice"
	IdentityContract     = "contract"
	IdentityGateway      = "gateway"
	IdentityUnauthorized = "unauthorized"
)

// ActorAuthService is the symbolic actor recorded on decryption outcome
// events. It stands for the authorization service / KMS that would perform
// the real decryption once the access check passes.
const ActorAuthService = "authorization-service"

// Roster returns the selectable principal identities in display order.
func Roster() []string {
	return []string{
		IdentityOwnerAlice,
		IdentityContract,
		IdentityGateway,
		IdentityGenericUser,
		IdentityUnauthorized,
	}
}

// IdentitySet is a set of principal identities. Membership is idempotent:
// adding an identity that is already present leaves the set unchanged.
type IdentitySet map[string]struct{}

// NewIdentitySet builds a set from the given identities.
func NewIdentitySet(identities ...string) IdentitySet {
	s := make(IdentitySet, len(identities))
	for _, id := range identities {
		s.Add(id)
	}
	return s
}

// Add inserts identity into the set.
func (s IdentitySet) Add(identity string) {
	s[identity] = struct{}{}
}

// Has reports whether identity is a member of the set.
func (s IdentitySet) Has(identity string) bool {
	_, ok := s[identity]
	return ok
}

// Len returns the number of identities in the set.
func (s IdentitySet) Len() int {
	return len(s)
}

// Clone returns an independent copy of the set.
func (s IdentitySet) Clone() IdentitySet {
	clone := make(IdentitySet, len(s))
	for id := range s {
		clone[id] = struct{}{}
	}
	return clone
}

// Sorted returns the members in lexicographic order. Used by the
// presentation layer for stable rendering.
func (s IdentitySet) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
