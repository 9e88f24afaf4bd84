package domain

import "github.com/shopspring/decimal"

// BracketLine is one row of a marginal-rate breakdown.
type BracketLine struct {
	Range  string          `json:"range"`
	Rate   decimal.Decimal `json:"rate"`
	Income decimal.Decimal `json:"income"`
	Tax    decimal.Decimal `json:"tax"`
}

// BracketResult is the outcome of applying a bracket table to a
// taxable income amount.
type BracketResult struct {
	Total     decimal.Decimal `json:"total"`
	Breakdown []BracketLine   `json:"breakdown"`
}

// EarnerPayroll is the payroll tax detail for a single earner.
type EarnerPayroll struct {
	Income         decimal.Decimal `json:"income"`
	SocialSecurity decimal.Decimal `json:"social_security"`
	Medicare       decimal.Decimal `json:"medicare"`
}

// PayrollResult is the combined payroll tax outcome across all earners.
type PayrollResult struct {
	PerEarner      []EarnerPayroll `json:"per_earner"`
	SocialSecurity decimal.Decimal `json:"social_security"`
	Medicare       decimal.Decimal `json:"medicare"`
}

// Total is the sum of both payroll components.
func (p PayrollResult) Total() decimal.Decimal {
	return p.SocialSecurity.Add(p.Medicare)
}

// FederalResult is the federal portion of a calculation: income tax by
// bracket plus payroll taxes. Produced fresh per call, never mutated.
type FederalResult struct {
	FilingStatus      FilingStatus    `json:"filing_status"`
	GrossIncome       decimal.Decimal `json:"gross_income"`
	StandardDeduction decimal.Decimal `json:"standard_deduction"`
	TaxableIncome     decimal.Decimal `json:"taxable_income"`
	IncomeTax         decimal.Decimal `json:"income_tax"`
	Breakdown         []BracketLine   `json:"bracket_breakdown"`
	Payroll           PayrollResult   `json:"payroll"`
	PayrollTax        decimal.Decimal `json:"payroll_tax"`
	TotalTax          decimal.Decimal `json:"total_tax"`
	EffectiveRate     decimal.Decimal `json:"effective_rate"`
}

// StateResult is the state portion of a calculation. Fields beyond
// Code, Name, Tax and EffectiveRate are populated per rule type.
type StateResult struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Type        StateRuleType   `json:"type"`
	Description string          `json:"description,omitempty"`
	GrossIncome decimal.Decimal `json:"gross_income"`

	// Flat
	Rate decimal.Decimal `json:"rate,omitempty"`

	// Composite
	StateRate    decimal.Decimal `json:"state_rate,omitempty"`
	LocalRate    decimal.Decimal `json:"local_rate,omitempty"`
	CombinedRate decimal.Decimal `json:"combined_rate,omitempty"`
	StatePortion decimal.Decimal `json:"state_portion,omitempty"`
	LocalPortion decimal.Decimal `json:"local_portion,omitempty"`

	// Flat and composite
	FlatFee decimal.Decimal `json:"flat_fee,omitempty"`

	// Bracket
	StandardDeduction decimal.Decimal `json:"standard_deduction,omitempty"`
	TaxableIncome     decimal.Decimal `json:"taxable_income,omitempty"`
	Breakdown         []BracketLine   `json:"bracket_breakdown,omitempty"`

	Tax           decimal.Decimal `json:"tax"`
	EffectiveRate decimal.Decimal `json:"effective_rate"`
}

// CombinedResult is the full outcome of one calculation: federal and
// state portions plus the combined totals.
type CombinedResult struct {
	Incomes       []decimal.Decimal `json:"incomes"`
	Federal       FederalResult     `json:"federal"`
	State         StateResult       `json:"state"`
	TotalIncome   decimal.Decimal   `json:"total_income"`
	TotalTax      decimal.Decimal   `json:"total_tax"`
	TakeHome      decimal.Decimal   `json:"take_home"`
	EffectiveRate decimal.Decimal   `json:"effective_rate"`
}
