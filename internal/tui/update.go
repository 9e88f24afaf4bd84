package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/taxfolio/taxcalc/internal/domain"
	"github.com/taxfolio/taxcalc/internal/output"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.jurisdictions.SetSize(msg.Width-4, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.step {
		case stepJurisdiction:
			return m.updateJurisdiction(msg)
		case stepStatus:
			return m.updateStatus(msg)
		case stepIncomePrimary, stepIncomeSecondary:
			return m.updateIncome(msg)
		case stepResult:
			return m.updateResult(msg)
		}
	}
	return m, nil
}

func (m Model) updateJurisdiction(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the list filter is active, every key belongs to the list.
	if !m.jurisdictions.SettingFilter() {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "enter":
			if item, ok := m.jurisdictions.SelectedItem().(jurisdictionItem); ok {
				m.code = item.option.Code
				m.codeDisplay = item.option.Display
				m.step = stepStatus
				m.err = nil
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.jurisdictions, cmd = m.jurisdictions.Update(msg)
	return m, cmd
}

func (m Model) updateStatus(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.step = stepJurisdiction
	case "up", "k", "down", "j", "tab":
		m.statusIndex = 1 - m.statusIndex
	case "enter":
		if m.statusIndex == 0 {
			m.status = domain.FilingSingle
		} else {
			m.status = domain.FilingJoint
		}
		m.incomeInput.SetValue("")
		m.incomeInput.Focus()
		m.step = stepIncomePrimary
		m.err = nil
	}
	return m, nil
}

func (m Model) updateIncome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.step == stepIncomeSecondary {
			m.step = stepIncomePrimary
		} else {
			m.step = stepStatus
		}
		m.incomeInput.SetValue("")
		m.err = nil
		return m, nil
	case "enter":
		income, err := parseIncome(m.incomeInput.Value())
		if err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		if m.step == stepIncomePrimary && m.status == domain.FilingJoint {
			m.primary = income
			m.incomeInput.SetValue("")
			m.step = stepIncomeSecondary
			return m, nil
		}

		incomes := []decimal.Decimal{income}
		if m.step == stepIncomeSecondary {
			incomes = []decimal.Decimal{m.primary, income}
		}
		result, err := m.engine.Calculate(incomes, m.status, m.code)
		if err != nil {
			m.err = err
			return m, nil
		}
		report, err := output.ConsoleFormatter{}.Format(result)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.report = string(report)
		m.step = stepResult
		return m, nil
	}
	var cmd tea.Cmd
	m.incomeInput, cmd = m.incomeInput.Update(msg)
	return m, cmd
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "n":
		m.step = stepJurisdiction
		m.report = ""
		m.err = nil
		m.statusIndex = 0
		m.incomeInput.SetValue("")
	}
	return m, nil
}

func parseIncome(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	income, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if income.IsNegative() {
		return decimal.Decimal{}, domain.ErrNegativeIncome
	}
	return income, nil
}
