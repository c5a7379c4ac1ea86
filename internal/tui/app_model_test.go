package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/snazarov/aclsim/internal/audit"
	"github.com/snazarov/aclsim/internal/config"
	"github.com/snazarov/aclsim/internal/engine"
	"github.com/snazarov/aclsim/internal/logger"
	"github.com/snazarov/aclsim/internal/mock"
	"github.com/snazarov/aclsim/internal/scenario"
	"github.com/snazarov/aclsim/internal/service"
	"github.com/snazarov/aclsim/internal/store"
	"github.com/snazarov/aclsim/internal/utils"
	"github.com/snazarov/aclsim/models"
)

func testAppConfig() config.App {
	return config.App{
		Version:          "0.1.0",
		ContractIdentity: models.IdentityContract,
		DefaultOwner:     models.IdentityOwnerAlice,
		DefaultPayload:   "balance:1000",
	}
}

func newRealSimulator(t *testing.T) service.Simulator {
	t.Helper()

	auditLog, err := audit.NewLogger("")
	require.NoError(t, err)

	eng := engine.New(utils.NewUUIDGenerator(), engine.SystemClock(), models.IdentityContract)
	return service.NewSimulatorService(
		eng,
		store.NewCiphertextCollection(),
		store.NewEventLog(20),
		auditLog,
		logger.Nop(),
	)
}

func newTestModel(t *testing.T, sim service.Simulator) appModel {
	t.Helper()
	runner := scenario.NewRunner(scenario.Default(), sim, logger.Nop())
	return newAppModel(context.Background(), sim, runner, testAppConfig())
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m appModel, msg tea.Msg) appModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(appModel)
	require.True(t, ok)
	return out
}

// ── key handling ─────────────────────────────────────────────────────────────

// TestAppModel_EncryptKey_CallsSimulator verifies that pressing n issues a
// create with the configured defaults and refreshes the record list.
func TestAppModel_EncryptKey_CallsSimulator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sim := mock.NewMockSimulator(ctrl)
	sim.EXPECT().ListCiphertexts(gomock.Any()).Return(nil).Times(2)
	sim.EXPECT().
		CreateCiphertext(gomock.Any(), models.IdentityOwnerAlice, "balance:1000").
		Return("ct-1")

	m := newTestModel(t, sim)
	m = update(t, m, keyRunes("n"))

	assert.Contains(t, m.status, "encrypted new value")
}

func TestAppModel_QuitKey(t *testing.T) {
	m := newTestModel(t, newRealSimulator(t))

	next, cmd := m.Update(keyRunes("q"))

	require.NotNil(t, cmd, "quit must produce tea.Quit")
	assert.True(t, next.(appModel).quitting)
}

func TestAppModel_TabCyclesFocus(t *testing.T) {
	m := newTestModel(t, newRealSimulator(t))
	require.Equal(t, panelActions, m.focus)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, panelRoles, m.focus)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, panelRecords, m.focus)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, panelActions, m.focus)
}

// ── actions ──────────────────────────────────────────────────────────────────

func TestAppModel_ActionWithoutRecord_SetsHint(t *testing.T) {
	m := newTestModel(t, newRealSimulator(t))

	// move to "Grant permanent to role" and apply with no records
	m = update(t, m, keyRunes("j"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Contains(t, m.status, "encrypt a value first")
}

// TestAppModel_DecryptAsOwner_Granted drives the full path: encrypt, select
// the decrypt action, apply it as the default role (the owner), and check
// the reported outcome.
func TestAppModel_DecryptAsOwner_Granted(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	m := newTestModel(t, newRealSimulator(t))

	m = update(t, m, keyRunes("n"))
	for i := 0; i < 4; i++ { // move to "Request decryption as role"
		m = update(t, m, keyRunes("j"))
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Contains(t, m.status, "decryption granted to "+models.IdentityOwnerAlice)
}

func TestAppModel_DecryptAsUnauthorized_Denied(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	m := newTestModel(t, newRealSimulator(t))

	m = update(t, m, keyRunes("n"))
	for i := 0; i < 4; i++ {
		m = update(t, m, keyRunes("j"))
	}
	// switch focus to roles and select "unauthorized" (last roster entry)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	for i := 0; i < len(models.Roster()); i++ {
		m = update(t, m, keyRunes("j"))
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Contains(t, m.status, "decryption denied to "+models.IdentityUnauthorized)
}

// ── tutorial ─────────────────────────────────────────────────────────────────

func TestAppModel_TutorialKey_AdvancesWalkthrough(t *testing.T) {
	sim := newRealSimulator(t)
	m := newTestModel(t, sim)

	m = update(t, m, keyRunes("t"))

	applied, _ := m.runner.Progress()
	assert.Equal(t, 1, applied)
	assert.Len(t, sim.ListCiphertexts(context.Background()), 1,
		"the first walkthrough step encrypts a value")
}

func TestAppModel_TutorialKey_PastEnd(t *testing.T) {
	m := newTestModel(t, newRealSimulator(t))

	_, total := m.runner.Progress()
	for i := 0; i < total+1; i++ {
		m = update(t, m, keyRunes("t"))
	}

	assert.Contains(t, m.status, "tutorial finished")
}

// ── view ─────────────────────────────────────────────────────────────────────

func TestAppModel_View_ShowsPanels(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	m := newTestModel(t, newRealSimulator(t))

	out := m.View()

	assert.Contains(t, out, "Ciphertexts")
	assert.Contains(t, out, "Actions")
	assert.Contains(t, out, "Role")
	assert.Contains(t, out, "Event log")
	assert.Contains(t, out, "Tutorial")
}

func TestAppModel_View_ShowsPublicBadge(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	sim := newRealSimulator(t)
	ctx := context.Background()
	id := sim.CreateCiphertext(ctx, models.IdentityOwnerAlice, "v")
	sim.MakePublic(ctx, id)

	m := newTestModel(t, sim)
	out := m.View()

	assert.Contains(t, out, "[public]")
}
