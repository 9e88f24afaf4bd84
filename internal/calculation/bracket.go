package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/taxfolio/taxcalc/internal/domain"
)

// ApplyBrackets applies a progressive bracket table to a taxable income
// amount and returns the total tax with a per-bracket breakdown.
//
// Brackets are walked in ascending order; income exactly at an upper
// bound belongs to that bracket, not the next. Amounts are carried
// unrounded; rounding is a display concern.
func ApplyBrackets(taxableIncome decimal.Decimal, table domain.BracketTable) domain.BracketResult {
	result := domain.BracketResult{Total: decimal.Zero}
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return result
	}

	for _, bracket := range table {
		if taxableIncome.LessThanOrEqual(bracket.Lower) {
			break
		}

		top := taxableIncome
		if !bracket.Unbounded {
			top = decimal.Min(taxableIncome, bracket.Upper)
		}
		incomeInBracket := top.Sub(bracket.Lower)
		taxInBracket := incomeInBracket.Mul(bracket.Rate)

		result.Total = result.Total.Add(taxInBracket)
		result.Breakdown = append(result.Breakdown, domain.BracketLine{
			Range:  bracket.Label(),
			Rate:   bracket.Rate,
			Income: incomeInBracket,
			Tax:    taxInBracket,
		})

		// The current bracket fully contains the remaining income.
		if !bracket.Unbounded && taxableIncome.LessThanOrEqual(bracket.Upper) {
			break
		}
	}

	return result
}
