package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/snazarov/aclsim/internal/config"
	"github.com/snazarov/aclsim/internal/scenario"
	"github.com/snazarov/aclsim/internal/service"
)

type panel int

const (
	panelRecords panel = iota
	panelActions
	panelRoles
	panelCount
)

type appModel struct {
	ctx    context.Context
	sim    service.Simulator
	runner *scenario.Runner
	cfg    config.App

	focus   panel
	records recordsModel
	actions actionsModel
	roles   rolesModel

	status   string
	width    int
	quitting bool
}

func newAppModel(ctx context.Context, sim service.Simulator, runner *scenario.Runner, cfg config.App) appModel {
	m := appModel{
		ctx:     ctx,
		sim:     sim,
		runner:  runner,
		cfg:     cfg,
		focus:   panelActions,
		records: newRecordsModel(),
		actions: newActionsModel(),
		roles:   newRolesModel(),
	}
	m.records.refresh(sim.ListCiphertexts(ctx))
	return m
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case copiedMsg:
		m.status = "record id copied to clipboard"
		return m, clearStatusLater()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.tab):
		m.focus = (m.focus + 1) % panelCount
		return m, nil

	case key.Matches(msg, keys.backtab):
		m.focus = (m.focus + panelCount - 1) % panelCount
		return m, nil

	case key.Matches(msg, keys.up):
		switch m.focus {
		case panelRecords:
			m.records.moveUp()
		case panelActions:
			m.actions.moveUp()
		case panelRoles:
			m.roles.moveUp()
		}
		return m, nil

	case key.Matches(msg, keys.down):
		switch m.focus {
		case panelRecords:
			m.records.moveDown()
		case panelActions:
			m.actions.moveDown()
		case panelRoles:
			m.roles.moveDown()
		}
		return m, nil

	case key.Matches(msg, keys.newItem):
		m.encrypt()
		return m, nil

	case key.Matches(msg, keys.tutorial):
		m.advanceTutorial()
		return m, nil

	case key.Matches(msg, keys.copyID):
		if ct, ok := m.records.current(); ok {
			return m, copyToClipboard(ct.ID)
		}
		return m, nil

	case key.Matches(msg, keys.enter):
		m.applyAction()
		return m, nil
	}

	return m, nil
}

// encrypt creates a new ciphertext using the configured defaults.
func (m *appModel) encrypt() {
	id := m.sim.CreateCiphertext(m.ctx, m.cfg.DefaultOwner, m.cfg.DefaultPayload)
	m.records.refresh(m.sim.ListCiphertexts(m.ctx))
	m.status = fmt.Sprintf("encrypted new value %s for %s", shortID(id), m.cfg.DefaultOwner)
}

// applyAction performs the selected action on the selected record as the
// selected role.
func (m *appModel) applyAction() {
	action := m.actions.current()

	if action.kind == actionEncrypt {
		m.encrypt()
		return
	}

	ct, ok := m.records.current()
	if !ok {
		m.status = "no ciphertext yet, encrypt a value first"
		return
	}
	role := m.roles.current()

	switch action.kind {
	case actionGrantPermanent:
		m.sim.GrantPermanent(m.ctx, ct.ID, role)
		m.status = fmt.Sprintf("permanent access on %s granted to %s", shortID(ct.ID), role)
	case actionGrantTransient:
		m.sim.GrantTransient(m.ctx, ct.ID, role)
		m.status = fmt.Sprintf("transient access on %s granted to %s", shortID(ct.ID), role)
	case actionMakePublic:
		m.sim.MakePublic(m.ctx, ct.ID)
		m.status = fmt.Sprintf("%s is now public", shortID(ct.ID))
	case actionDecrypt:
		outcome := m.sim.AttemptDecrypt(m.ctx, ct.ID, role)
		if outcome.Granted() {
			m.status = grantedStyle.Render(fmt.Sprintf("decryption granted to %s", role))
		} else {
			m.status = deniedStyle.Render(fmt.Sprintf("decryption denied to %s", role))
		}
	}

	m.records.refresh(m.sim.ListCiphertexts(m.ctx))
}

// advanceTutorial performs the next walkthrough step.
func (m *appModel) advanceTutorial() {
	res, err := m.runner.Advance(m.ctx)
	if err != nil {
		m.status = "tutorial finished"
		return
	}
	m.records.refresh(m.sim.ListCiphertexts(m.ctx))
	if res.Outcome != "" {
		m.status = fmt.Sprintf("%s → %s", res.Step.Title, res.Outcome)
	} else {
		m.status = res.Step.Title
	}
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	header := titleStyle.Render("aclsim — encrypted value access control, simulated")
	if m.cfg.Version != "" {
		header += helpStyle.Render("  v" + m.cfg.Version)
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.panelFrame(panelRecords, m.records.View()),
		lipgloss.JoinHorizontal(lipgloss.Top,
			m.panelFrame(panelActions, m.actions.View()),
			m.panelFrame(panelRoles, m.roles.View()),
		),
	)
	right := panelStyle.Render(renderEventLog(m.sim.ListEvents(m.ctx), 60))

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	footer := tutorialView(m.runner)
	if m.status != "" {
		footer += "\n" + statusStyle.Render(m.status)
	}
	footer += "\n" + helpStyle.Render("tab focus · ↑/↓ select · enter apply · n encrypt · t tutorial · c copy id · q quit")

	return appStyle.Render(header + "\n\n" + body + "\n" + footer)
}

func (m appModel) panelFrame(p panel, content string) string {
	if m.focus == p {
		return focusedStyle.Render(content)
	}
	return panelStyle.Render(content)
}

func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		_ = clipboard.WriteAll(text)
		return copiedMsg{}
	}
}

func clearStatusLater() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
