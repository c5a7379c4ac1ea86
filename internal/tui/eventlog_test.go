package tui

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sebdah/goldie/v2"
	"github.com/snazarov/aclsim/models"
	"github.com/stretchr/testify/assert"
)

func at(sec int) time.Time {
	return time.Date(2026, 8, 29, 12, 30, sec, 0, time.UTC)
}

// TestRenderEventLog_Golden pins the rendered panel for a typical session
// tail. Styling is forced off so the fixture is stable across terminals.
func TestRenderEventLog_Golden(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	events := []models.Event{
		{Timestamp: at(5), Kind: models.EventDecryptGranted, SubjectID: "ct-1", Actor: models.ActorAuthService, Message: `access check passed, plaintext released to gateway: "balance:1000"`},
		{Timestamp: at(5), Kind: models.EventDecryptAttempt, SubjectID: "ct-1", Actor: models.IdentityGateway, Message: "decryption requested by gateway"},
		{Timestamp: at(3), Kind: models.EventGrantTransient, SubjectID: "ct-1", Actor: models.IdentityContract, Message: "transient access granted to gateway for the current call"},
		{Timestamp: at(1), Kind: models.EventGrantPermanent, SubjectID: "ct-1", Actor: models.IdentityContract, Message: "default policy: permanent access for contract and owner-alice"},
		{Timestamp: at(1), Kind: models.EventCreate, SubjectID: "ct-1", Actor: models.IdentityOwnerAlice, Message: "owner-alice encrypted a new value"},
	}

	got := renderEventLog(events, 80)

	g := goldie.New(t)
	g.Assert(t, "eventlog", []byte(got))
}

func TestRenderEventLog_Empty(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	got := renderEventLog(nil, 80)

	assert.Contains(t, got, "Event log")
	assert.Contains(t, got, "nothing happened yet")
}

func TestRenderEventLog_TruncatesLongMessages(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	events := []models.Event{
		{Timestamp: at(0), Kind: models.EventCreate, Message: "a very long message that should not survive a narrow column at full length"},
	}

	got := renderEventLog(events, 20)

	assert.NotContains(t, got, "full length")
	assert.Contains(t, got, "…")
}
