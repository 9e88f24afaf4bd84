package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/taxfolio/taxcalc/internal/calculation"
	"github.com/taxfolio/taxcalc/internal/domain"
)

// step identifies the current screen of the interactive flow.
type step int

const (
	stepJurisdiction step = iota
	stepStatus
	stepIncomePrimary
	stepIncomeSecondary
	stepResult
)

// jurisdictionItem adapts a domain.JurisdictionOption to the bubbles
// list item interfaces.
type jurisdictionItem struct {
	option domain.JurisdictionOption
}

func (i jurisdictionItem) Title() string       { return i.option.Display }
func (i jurisdictionItem) Description() string { return "" }
func (i jurisdictionItem) FilterValue() string { return i.option.Display }

// Model is the interactive calculator flow: pick a jurisdiction, pick a
// filing status, enter income(s), view the report, repeat or quit.
type Model struct {
	engine *calculation.Engine

	step          step
	jurisdictions list.Model
	incomeInput   textinput.Model

	statusIndex int

	code        string
	codeDisplay string
	status      domain.FilingStatus
	primary     decimal.Decimal

	report string
	err    error

	width  int
	height int
}

// NewModel builds the interactive model over a calculation engine.
func NewModel(engine *calculation.Engine) Model {
	options := engine.Data().JurisdictionOptions()
	items := make([]list.Item, 0, len(options))
	for _, option := range options {
		items = append(items, jurisdictionItem{option: option})
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	jurisdictions := list.New(items, delegate, 60, 20)
	jurisdictions.Title = "Select a state or jurisdiction"
	jurisdictions.SetShowStatusBar(false)

	input := textinput.New()
	input.Placeholder = "50000"
	input.Prompt = "$ "
	input.CharLimit = 12
	input.Focus()

	return Model{
		engine:        engine,
		step:          stepJurisdiction,
		jurisdictions: jurisdictions,
		incomeInput:   input,
		width:         80,
		height:        24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}
