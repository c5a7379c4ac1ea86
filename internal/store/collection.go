// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergei Nazarov

package store

import (
	"fmt"

	"github.com/snazarov/aclsim/models"
)

// CiphertextCollection is an insertion-ordered mapping from record id to
// ciphertext record. Records are never deleted during a session.
//
// Lookups of ids that were never inserted are programming errors: the UI
// only ever issues operations on records it obtained from the collection,
// so the mutating accessors fail fast instead of returning errors.
type CiphertextCollection struct {
	byID  map[string]models.Ciphertext
	order []string
}

// NewCiphertextCollection returns an empty collection.
func NewCiphertextCollection() *CiphertextCollection {
	return &CiphertextCollection{
		byID: make(map[string]models.Ciphertext),
	}
}

// Insert adds a new record. Panics if the id is already present: engine ids
// are unique for the lifetime of the session.
func (c *CiphertextCollection) Insert(ct models.Ciphertext) {
	if _, exists := c.byID[ct.ID]; exists {
		panic(fmt.Sprintf("store: duplicate ciphertext id %s", ct.ID))
	}
	c.byID[ct.ID] = ct
	c.order = append(c.order, ct.ID)
}

// Replace swaps the record stored under id for the updated one. Panics if
// the id is unknown.
func (c *CiphertextCollection) Replace(id string, ct models.Ciphertext) {
	if _, exists := c.byID[id]; !exists {
		panic(fmt.Sprintf("store: unknown ciphertext id %s", id))
	}
	c.byID[id] = ct
}

// Get returns the record stored under id.
func (c *CiphertextCollection) Get(id string) (models.Ciphertext, bool) {
	ct, ok := c.byID[id]
	return ct, ok
}

// MustGet returns the record stored under id and panics if it is unknown.
func (c *CiphertextCollection) MustGet(id string) models.Ciphertext {
	ct, ok := c.byID[id]
	if !ok {
		panic(fmt.Sprintf("store: unknown ciphertext id %s", id))
	}
	return ct
}

// List returns clones of all records in insertion order. Callers may hold
// on to the result without observing later mutations.
func (c *CiphertextCollection) List() []models.Ciphertext {
	out := make([]models.Ciphertext, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id].Clone())
	}
	return out
}

// Len returns the number of stored records.
func (c *CiphertextCollection) Len() int {
	return len(c.order)
}
