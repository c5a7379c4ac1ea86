package service

//go:generate mockgen -source=interfaces.go -destination=../mock/simulator_mock.go -package=mock

import (
	"context"

	"github.com/snazarov/aclsim/models"
)

// Simulator is the operation surface the presentation layer drives. It is
// the single writer of the session state: every mutation of the ciphertext
// collection and the event log goes through it.
//
// None of the operations fail under well-formed input. A denied decryption
// is a normal result value, not an error. Passing an id that was never
// returned by CreateCiphertext is a programming error and panics.
type Simulator interface {
	// CreateCiphertext encrypts a new value for owner and returns the new
	// record's id. The default grant policy (contract, then owner) has
	// already been applied to the returned record.
	CreateCiphertext(ctx context.Context, owner, payload string) string

	// GrantPermanent gives identity indefinite access to the record.
	GrantPermanent(ctx context.Context, id, identity string)

	// GrantTransient gives identity call-scoped access to the record.
	// Never auto-revoked: the simulation has no transaction boundary.
	GrantTransient(ctx context.Context, id, identity string)

	// MakePublic authorizes every principal for the record.
	MakePublic(ctx context.Context, id string)

	// AttemptDecrypt evaluates a decryption request by requester and
	// reports the outcome. The record is never mutated.
	AttemptDecrypt(ctx context.Context, id, requester string) models.Outcome

	// ListCiphertexts returns all records in insertion order.
	ListCiphertexts(ctx context.Context) []models.Ciphertext

	// ListEvents returns the retained audit events, newest first.
	ListEvents(ctx context.Context) []models.Event
}
