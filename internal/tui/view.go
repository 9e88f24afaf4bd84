package tui

import (
	"fmt"
	"strings"

	"github.com/taxfolio/taxcalc/internal/domain"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	switch m.step {
	case stepJurisdiction:
		b.WriteString(m.jurisdictions.View())
		b.WriteString(helpStyle.Render("enter: select • /: filter • q: quit"))

	case stepStatus:
		b.WriteString(titleStyle.Render("Select filing status"))
		b.WriteString("\n")
		b.WriteString(statusLine(m.statusIndex == 0, domain.FilingSingle.Display()))
		b.WriteString(statusLine(m.statusIndex == 1, domain.FilingJoint.Display()))
		b.WriteString(helpStyle.Render("up/down: choose • enter: select • esc: back • q: quit"))

	case stepIncomePrimary, stepIncomeSecondary:
		title := "Enter your income"
		if m.status == domain.FilingJoint {
			title = "Enter primary income"
			if m.step == stepIncomeSecondary {
				title = "Enter secondary income"
			}
		}
		b.WriteString(titleStyle.Render(title))
		b.WriteString("\n")
		b.WriteString(promptStyle.Render(fmt.Sprintf("%s · %s", m.codeDisplay, m.status.Display())))
		b.WriteString("\n\n")
		b.WriteString(m.incomeInput.View())
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("enter: calculate • esc: back"))

	case stepResult:
		b.WriteString(reportStyle.Render(m.report))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("n: new scenario • q: quit"))
	}

	return b.String()
}

func statusLine(selected bool, label string) string {
	if selected {
		return selectedStyle.Render("> "+label) + "\n"
	}
	return "  " + label + "\n"
}
