package service

import (
	"context"
	"testing"

	"github.com/snazarov/aclsim/internal/audit"
	"github.com/snazarov/aclsim/internal/engine"
	"github.com/snazarov/aclsim/internal/logger"
	"github.com/snazarov/aclsim/internal/store"
	"github.com/snazarov/aclsim/internal/utils"
	"github.com/snazarov/aclsim/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimulator(t *testing.T, capacity int) Simulator {
	t.Helper()

	auditLog, err := audit.NewLogger("")
	require.NoError(t, err)

	eng := engine.New(utils.NewUUIDGenerator(), engine.SystemClock(), models.IdentityContract)
	return NewSimulatorService(
		eng,
		store.NewCiphertextCollection(),
		store.NewEventLog(capacity),
		auditLog,
		logger.Nop(),
	)
}

// ── end-to-end scenarios ─────────────────────────────────────────────────────

// TestSimulator_OwnerDecryptsOwnValue: creating as alice grants alice and
// the contract, and alice's decryption reveals the payload.
func TestSimulator_OwnerDecryptsOwnValue(t *testing.T) {
	ctx := context.Background()
	sim := newTestSimulator(t, 20)

	id := sim.CreateCiphertext(ctx, "alice", "balance:1000")

	records := sim.ListCiphertexts(ctx)
	require.Len(t, records, 1)
	assert.True(t, records[0].PermanentGrantees.Has("alice"))
	assert.True(t, records[0].PermanentGrantees.Has(models.IdentityContract))

	outcome := sim.AttemptDecrypt(ctx, id, "alice")
	assert.Equal(t, models.OutcomeGranted, outcome)

	events := sim.ListEvents(ctx)
	require.NotEmpty(t, events)
	assert.Equal(t, models.EventDecryptGranted, events[0].Kind)
	assert.Contains(t, events[0].Message, "balance:1000")
}

// TestSimulator_StrangerIsDenied: a fresh record rejects an identity with
// no grant.
func TestSimulator_StrangerIsDenied(t *testing.T) {
	ctx := context.Background()
	sim := newTestSimulator(t, 20)

	id := sim.CreateCiphertext(ctx, models.IdentityOwnerAlice, "v")

	outcome := sim.AttemptDecrypt(ctx, id, models.IdentityUnauthorized)

	assert.Equal(t, models.OutcomeDenied, outcome)
}

// TestSimulator_TransientGrantPersists: a transient grant authorizes the
// gateway and keeps doing so on repeated attempts (no auto-expiry).
func TestSimulator_TransientGrantPersists(t *testing.T) {
	ctx := context.Background()
	sim := newTestSimulator(t, 20)

	id := sim.CreateCiphertext(ctx, models.IdentityOwnerAlice, "v")
	sim.GrantTransient(ctx, id, models.IdentityGateway)

	assert.Equal(t, models.OutcomeGranted, sim.AttemptDecrypt(ctx, id, models.IdentityGateway))
	assert.Equal(t, models.OutcomeGranted, sim.AttemptDecrypt(ctx, id, models.IdentityGateway),
		"transient access persists for the session")
}

// TestSimulator_PublicRecordOpenToAnyone: after make-public any principal,
// even one never granted, may decrypt.
func TestSimulator_PublicRecordOpenToAnyone(t *testing.T) {
	ctx := context.Background()
	sim := newTestSimulator(t, 20)

	id := sim.CreateCiphertext(ctx, models.IdentityOwnerAlice, "v")
	sim.MakePublic(ctx, id)

	assert.Equal(t, models.OutcomeGranted, sim.AttemptDecrypt(ctx, id, "anyone-not-previously-granted"))
}

// ── event log behavior ───────────────────────────────────────────────────────

// TestSimulator_DecryptEventOrdering verifies that the outcome event sits at
// a more recent position than its attempt in the newest-first log.
func TestSimulator_DecryptEventOrdering(t *testing.T) {
	ctx := context.Background()
	sim := newTestSimulator(t, 20)

	id := sim.CreateCiphertext(ctx, models.IdentityOwnerAlice, "v")
	sim.AttemptDecrypt(ctx, id, models.IdentityUnauthorized)

	events := sim.ListEvents(ctx)
	require.GreaterOrEqual(t, len(events), 2)
	assert.Equal(t, models.EventDecryptDenied, events[0].Kind)
	assert.Equal(t, models.EventDecryptAttempt, events[1].Kind)
}

func TestSimulator_CreationEventOrdering(t *testing.T) {
	ctx := context.Background()
	sim := newTestSimulator(t, 20)

	sim.CreateCiphertext(ctx, models.IdentityOwnerAlice, "v")

	events := sim.ListEvents(ctx)
	require.Len(t, events, 2)
	assert.Equal(t, models.EventGrantPermanent, events[0].Kind, "default grants newest")
	assert.Equal(t, models.EventCreate, events[1].Kind, "creation before its default grants")
}

// TestSimulator_EventLogCapping drives more single-event operations than
// the log retains and checks that only the most recent survive.
func TestSimulator_EventLogCapping(t *testing.T) {
	ctx := context.Background()
	sim := newTestSimulator(t, 20)

	id := sim.CreateCiphertext(ctx, models.IdentityOwnerAlice, "v")
	for i := 0; i < 25; i++ {
		sim.GrantPermanent(ctx, id, models.IdentityGenericUser)
	}

	events := sim.ListEvents(ctx)
	require.Len(t, events, 20)
	for _, ev := range events {
		assert.Equal(t, models.EventGrantPermanent, ev.Kind,
			"creation events were evicted by the 25 newer grants")
	}
}

// ── contract violations ──────────────────────────────────────────────────────

func TestSimulator_UnknownID_Panics(t *testing.T) {
	ctx := context.Background()
	sim := newTestSimulator(t, 20)

	assert.Panics(t, func() { sim.GrantPermanent(ctx, "missing", models.IdentityGateway) })
	assert.Panics(t, func() { sim.GrantTransient(ctx, "missing", models.IdentityGateway) })
	assert.Panics(t, func() { sim.MakePublic(ctx, "missing") })
	assert.Panics(t, func() { sim.AttemptDecrypt(ctx, "missing", models.IdentityGateway) })
}

// TestSimulator_AttemptDecrypt_NeverPanicsOnValidRecord exercises every
// roster identity against records in various states.
func TestSimulator_AttemptDecrypt_NeverPanicsOnValidRecord(t *testing.T) {
	ctx := context.Background()
	sim := newTestSimulator(t, 20)

	id := sim.CreateCiphertext(ctx, models.IdentityOwnerAlice, "v")
	sim.GrantTransient(ctx, id, models.IdentityGateway)

	for _, identity := range models.Roster() {
		assert.NotPanics(t, func() { sim.AttemptDecrypt(ctx, id, identity) })
	}
}

// ── listing ──────────────────────────────────────────────────────────────────

func TestSimulator_ListCiphertexts_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	sim := newTestSimulator(t, 20)

	first := sim.CreateCiphertext(ctx, models.IdentityOwnerAlice, "a")
	second := sim.CreateCiphertext(ctx, models.IdentityOwnerAlice, "b")
	third := sim.CreateCiphertext(ctx, models.IdentityOwnerAlice, "c")

	records := sim.ListCiphertexts(ctx)
	require.Len(t, records, 3)
	assert.Equal(t, []string{first, second, third},
		[]string{records[0].ID, records[1].ID, records[2].ID})
}

func TestSimulator_GrantVisibleInListing(t *testing.T) {
	ctx := context.Background()
	sim := newTestSimulator(t, 20)

	id := sim.CreateCiphertext(ctx, models.IdentityOwnerAlice, "v")
	sim.GrantPermanent(ctx, id, models.IdentityGateway)

	records := sim.ListCiphertexts(ctx)
	require.Len(t, records, 1)
	assert.True(t, records[0].PermanentGrantees.Has(models.IdentityGateway))
}
