package tui

import (
	"fmt"
	"strings"

	"github.com/snazarov/aclsim/internal/scenario"
)

// tutorialView renders the walkthrough footer: the upcoming step with its
// note, or a completion line.
func tutorialView(runner *scenario.Runner) string {
	applied, total := runner.Progress()

	step, ok := runner.Current()
	if !ok {
		return titleStyle.Render(fmt.Sprintf("Tutorial: %s", runner.Name())) + "\n" +
			grantedStyle.Render(fmt.Sprintf("all %d steps done, keep experimenting on your own", total))
	}

	header := titleStyle.Render(
		fmt.Sprintf("Tutorial: %s (%d/%d)", runner.Name(), applied+1, total))
	note := strings.TrimSpace(step.Note)
	return header + "\n" +
		fmt.Sprintf("next: %s", step.Title) + "\n" +
		mutedStyle.Render(note) + "\n" +
		helpStyle.Render("press t to perform this step")
}
