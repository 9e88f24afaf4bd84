package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TaxBracket is one contiguous income range taxed at a single marginal
// rate. The top bracket of a table has Unbounded set and its Upper value
// is ignored.
type TaxBracket struct {
	Lower     decimal.Decimal
	Upper     decimal.Decimal
	Rate      decimal.Decimal
	Unbounded bool
}

// Label renders the bracket range for report breakdowns.
func (b TaxBracket) Label() string {
	if b.Unbounded {
		return fmt.Sprintf("Over $%s", b.Lower.StringFixed(2))
	}
	return fmt.Sprintf("$%s - $%s", b.Lower.StringFixed(2), b.Upper.StringFixed(2))
}

// BracketTable is an ordered set of brackets partitioning [0, inf) with
// no gaps or overlaps.
type BracketTable []TaxBracket

var decimalOne = decimal.NewFromInt(1)

// Validate checks the partition invariants: the first bracket starts at
// zero, each bracket starts where the previous one ends, only the last
// bracket is unbounded, and every rate is in [0, 1).
func (t BracketTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: bracket table is empty", ErrInvalidTaxData)
	}
	if !t[0].Lower.IsZero() {
		return fmt.Errorf("%w: first bracket must start at 0, got %s", ErrInvalidTaxData, t[0].Lower)
	}
	for i, b := range t {
		if b.Rate.IsNegative() || b.Rate.GreaterThanOrEqual(decimalOne) {
			return fmt.Errorf("%w: bracket %d rate %s outside [0,1)", ErrInvalidTaxData, i, b.Rate)
		}
		last := i == len(t)-1
		if b.Unbounded != last {
			if last {
				return fmt.Errorf("%w: last bracket must be unbounded", ErrInvalidTaxData)
			}
			return fmt.Errorf("%w: bracket %d is unbounded but not last", ErrInvalidTaxData, i)
		}
		if !last {
			if b.Upper.LessThanOrEqual(b.Lower) {
				return fmt.Errorf("%w: bracket %d upper bound %s not above lower bound %s",
					ErrInvalidTaxData, i, b.Upper, b.Lower)
			}
			if !t[i+1].Lower.Equal(b.Upper) {
				return fmt.Errorf("%w: bracket %d ends at %s but bracket %d starts at %s",
					ErrInvalidTaxData, i, b.Upper, i+1, t[i+1].Lower)
			}
		}
	}
	return nil
}

// FilingProfile pairs a standard deduction with the bracket table that
// applies to one (jurisdiction, filing status) combination.
type FilingProfile struct {
	StandardDeduction decimal.Decimal
	Brackets          BracketTable
}

// Validate checks the profile's deduction and bracket table.
func (p FilingProfile) Validate() error {
	if p.StandardDeduction.IsNegative() {
		return fmt.Errorf("%w: standard deduction %s is negative", ErrInvalidTaxData, p.StandardDeduction)
	}
	return p.Brackets.Validate()
}
