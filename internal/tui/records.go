package tui

import (
	"fmt"
	"strings"

	"github.com/snazarov/aclsim/models"
)

// recordsModel is the ciphertext list panel together with the ACL detail of
// the selected record.
type recordsModel struct {
	items []models.Ciphertext
	idx   int
}

func newRecordsModel() recordsModel {
	return recordsModel{}
}

func (m recordsModel) current() (models.Ciphertext, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Ciphertext{}, false
	}
	return m.items[m.idx], true
}

func (m *recordsModel) refresh(items []models.Ciphertext) {
	m.items = items
	if m.idx >= len(items) {
		m.idx = len(items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *recordsModel) moveUp() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *recordsModel) moveDown() {
	if m.idx < len(m.items)-1 {
		m.idx++
	}
}

func (m recordsModel) View() string {
	out := titleStyle.Render("Ciphertexts") + "\n\n"

	if len(m.items) == 0 {
		out += mutedStyle.Render("none yet — press n to encrypt a value") + "\n"
		return out
	}

	for i, ct := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		badge := ""
		if ct.Public {
			badge = " " + publicStyle.Render("[public]")
		}
		out += fmt.Sprintf("%s%s (owner %s)%s\n", cursor, shortID(ct.ID), ct.Owner, badge)
	}

	if ct, ok := m.current(); ok {
		out += "\n" + m.detailView(ct)
	}
	return out
}

// detailView renders the selected record's access lists.
func (m recordsModel) detailView(ct models.Ciphertext) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("ACL") + "\n")
	b.WriteString("permanent: " + joinOrNone(ct.PermanentGrantees.Sorted()) + "\n")
	b.WriteString("transient: " + joinOrNone(ct.TransientGrantees.Sorted()) + "\n")
	if ct.Public {
		b.WriteString("public:    " + publicStyle.Render("yes — everyone may decrypt") + "\n")
	} else {
		b.WriteString("public:    no\n")
	}
	return b.String()
}

func joinOrNone(identities []string) string {
	if len(identities) == 0 {
		return mutedStyle.Render("(none)")
	}
	return strings.Join(identities, ", ")
}
