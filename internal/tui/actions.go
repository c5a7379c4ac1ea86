package tui

type actionKind int

const (
	actionEncrypt actionKind = iota
	actionGrantPermanent
	actionGrantTransient
	actionMakePublic
	actionDecrypt
)

type actionItem struct {
	label string
	kind  actionKind
}

// actionsModel is the operation menu. Grant and decrypt actions apply to
// the selected record on behalf of the selected role.
type actionsModel struct {
	items []actionItem
	idx   int
}

func newActionsModel() actionsModel {
	return actionsModel{
		items: []actionItem{
			{label: "Encrypt new value", kind: actionEncrypt},
			{label: "Grant permanent to role", kind: actionGrantPermanent},
			{label: "Grant transient to role", kind: actionGrantTransient},
			{label: "Make public", kind: actionMakePublic},
			{label: "Request decryption as role", kind: actionDecrypt},
		},
	}
}

func (m actionsModel) current() actionItem {
	return m.items[m.idx]
}

func (m *actionsModel) moveUp() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *actionsModel) moveDown() {
	if m.idx < len(m.items)-1 {
		m.idx++
	}
}

func (m actionsModel) View() string {
	out := titleStyle.Render("Actions") + "\n\n"
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item.label + "\n"
	}
	return out
}
