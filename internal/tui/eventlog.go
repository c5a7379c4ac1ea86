package tui

import (
	"fmt"
	"strings"

	"github.com/snazarov/aclsim/models"
)

// renderEventLog renders the newest-first event log panel. msgWidth bounds
// the message column so long payload reveals do not wrap the layout.
func renderEventLog(events []models.Event, msgWidth int) string {
	out := titleStyle.Render("Event log") + "\n\n"

	if len(events) == 0 {
		out += mutedStyle.Render("nothing happened yet") + "\n"
		return out
	}

	for _, ev := range events {
		line := fmt.Sprintf("%s  %-16s %s", ev.When(), ev.Kind, truncate(ev.Message, msgWidth))
		out += eventStyle(ev.Kind)(line) + "\n"
	}
	return out
}

func eventStyle(kind models.EventKind) func(...string) string {
	switch kind {
	case models.EventDecryptGranted:
		return grantedStyle.Render
	case models.EventDecryptDenied:
		return deniedStyle.Render
	case models.EventDecryptAttempt:
		return mutedStyle.Render
	default:
		return func(strs ...string) string {
			return strings.Join(strs, " ")
		}
	}
}
