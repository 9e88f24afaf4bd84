package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/taxfolio/taxcalc/internal/domain"
)

// Engine computes federal and state tax liabilities from a tax data
// set. The data is immutable after construction, so a single engine is
// safe for concurrent use; every calculation is a pure function of its
// inputs.
type Engine struct {
	data *domain.TaxData
}

// NewEngine creates an engine over the given tax data.
func NewEngine(data *domain.TaxData) *Engine {
	return &Engine{data: data}
}

// Data returns the tax data the engine was built with.
func (e *Engine) Data() *domain.TaxData {
	return e.data
}

// Calculate computes federal income tax, payroll taxes, and state tax
// for the given incomes, then combines them into totals, take-home pay,
// and an overall effective rate.
func (e *Engine) Calculate(incomes []decimal.Decimal, status domain.FilingStatus, jurisdiction string) (*domain.CombinedResult, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidFilingStatus, status)
	}
	if err := checkIncomes(incomes); err != nil {
		return nil, err
	}

	// A single filer has exactly one earner; any extra incomes supplied
	// are dropped, never added into the total.
	incomes = normalizeIncomes(incomes, status)

	federal := e.federalTax(incomes, status)
	state, err := e.StateTax(incomes, status, jurisdiction)
	if err != nil {
		return nil, err
	}

	totalIncome := sumIncomes(incomes)
	totalTax := federal.TotalTax.Add(state.Tax)

	return &domain.CombinedResult{
		Incomes:       incomes,
		Federal:       *federal,
		State:         *state,
		TotalIncome:   totalIncome,
		TotalTax:      totalTax,
		TakeHome:      totalIncome.Sub(totalTax),
		EffectiveRate: effectiveRate(totalTax, totalIncome),
	}, nil
}

// FederalTax computes the federal portion only: bracket income tax on
// income after the standard deduction, plus payroll taxes on gross.
func (e *Engine) FederalTax(incomes []decimal.Decimal, status domain.FilingStatus) (*domain.FederalResult, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidFilingStatus, status)
	}
	if err := checkIncomes(incomes); err != nil {
		return nil, err
	}
	return e.federalTax(normalizeIncomes(incomes, status), status), nil
}

func (e *Engine) federalTax(incomes []decimal.Decimal, status domain.FilingStatus) *domain.FederalResult {
	profile := e.data.Federal.Profiles[status]
	totalIncome := sumIncomes(incomes)

	taxableIncome := totalIncome.Sub(profile.StandardDeduction)
	if taxableIncome.IsNegative() {
		taxableIncome = decimal.Zero
	}

	bracketResult := ApplyBrackets(taxableIncome, profile.Brackets)
	payroll := CalculatePayroll(incomes, e.data.Federal.Payroll)
	totalTax := bracketResult.Total.Add(payroll.Total())

	return &domain.FederalResult{
		FilingStatus:      status,
		GrossIncome:       totalIncome,
		StandardDeduction: profile.StandardDeduction,
		TaxableIncome:     taxableIncome,
		IncomeTax:         bracketResult.Total,
		Breakdown:         bracketResult.Breakdown,
		Payroll:           payroll,
		PayrollTax:        payroll.Total(),
		TotalTax:          totalTax,
		EffectiveRate:     effectiveRate(totalTax, totalIncome),
	}
}

func checkIncomes(incomes []decimal.Decimal) error {
	for i, income := range incomes {
		if income.IsNegative() {
			return fmt.Errorf("%w: earner %d has income %s", domain.ErrNegativeIncome, i+1, income)
		}
	}
	return nil
}

func normalizeIncomes(incomes []decimal.Decimal, status domain.FilingStatus) []decimal.Decimal {
	if status == domain.FilingSingle && len(incomes) > 1 {
		return incomes[:1]
	}
	if len(incomes) == 0 {
		return []decimal.Decimal{decimal.Zero}
	}
	return incomes
}

func sumIncomes(incomes []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, income := range incomes {
		total = total.Add(income)
	}
	return total
}

// effectiveRate is tax over income, defined as zero when income is zero
// to avoid dividing by zero.
func effectiveRate(tax, totalIncome decimal.Decimal) decimal.Decimal {
	if totalIncome.IsZero() {
		return decimal.Zero
	}
	return tax.Div(totalIncome)
}
