package tui

import "github.com/snazarov/aclsim/models"

// rolesModel selects the principal the next action acts as (or grants to).
type rolesModel struct {
	roster []string
	idx    int
}

func newRolesModel() rolesModel {
	return rolesModel{roster: models.Roster()}
}

func (m rolesModel) current() string {
	return m.roster[m.idx]
}

func (m *rolesModel) moveUp() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *rolesModel) moveDown() {
	if m.idx < len(m.roster)-1 {
		m.idx++
	}
}

func (m rolesModel) View() string {
	out := titleStyle.Render("Role") + "\n\n"
	for i, role := range m.roster {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + role + "\n"
	}
	return out
}
