package calculation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/taxfolio/taxcalc/internal/domain"
)

// StateTax computes the state liability for a jurisdiction code. The
// empty code and the known no-tax states produce a zero result; any
// other unknown code is an unsupported jurisdiction error.
func (e *Engine) StateTax(incomes []decimal.Decimal, status domain.FilingStatus, code string) (*domain.StateResult, error) {
	rule, err := e.data.StateRuleFor(code)
	if err != nil {
		return nil, err
	}

	totalIncome := sumIncomes(incomes)
	normalized := strings.ToLower(strings.TrimSpace(code))

	switch rule.Type {
	case domain.StateRuleNone:
		return stateNone(normalized, rule, totalIncome), nil
	case domain.StateRuleFlat:
		return stateFlat(normalized, rule, totalIncome), nil
	case domain.StateRuleComposite:
		return stateComposite(normalized, rule, totalIncome), nil
	case domain.StateRuleBracket:
		return stateBracket(normalized, rule, status, totalIncome)
	default:
		return nil, fmt.Errorf("%w: unknown state rule type %q for %s", domain.ErrInvalidTaxData, rule.Type, normalized)
	}
}

func stateNone(code string, rule domain.StateRule, totalIncome decimal.Decimal) *domain.StateResult {
	return &domain.StateResult{
		Code:          code,
		Name:          rule.Name,
		Type:          domain.StateRuleNone,
		Description:   rule.Description,
		GrossIncome:   totalIncome,
		Tax:           decimal.Zero,
		EffectiveRate: decimal.Zero,
	}
}

func stateFlat(code string, rule domain.StateRule, totalIncome decimal.Decimal) *domain.StateResult {
	// The flat fee applies unconditionally when the jurisdiction has one.
	tax := totalIncome.Mul(rule.Rate).Add(rule.FlatFee)
	return &domain.StateResult{
		Code:          code,
		Name:          rule.Name,
		Type:          domain.StateRuleFlat,
		Description:   rule.Description,
		GrossIncome:   totalIncome,
		Rate:          rule.Rate,
		FlatFee:       rule.FlatFee,
		Tax:           tax,
		EffectiveRate: effectiveRate(tax, totalIncome),
	}
}

func stateComposite(code string, rule domain.StateRule, totalIncome decimal.Decimal) *domain.StateResult {
	statePortion := totalIncome.Mul(rule.StateRate)
	localPortion := totalIncome.Mul(rule.LocalRate)
	tax := statePortion.Add(localPortion).Add(rule.FlatFee)
	return &domain.StateResult{
		Code:          code,
		Name:          rule.Name,
		Type:          domain.StateRuleComposite,
		Description:   rule.Description,
		GrossIncome:   totalIncome,
		StateRate:     rule.StateRate,
		LocalRate:     rule.LocalRate,
		CombinedRate:  rule.CombinedRate(),
		StatePortion:  statePortion,
		LocalPortion:  localPortion,
		FlatFee:       rule.FlatFee,
		Tax:           tax,
		EffectiveRate: effectiveRate(tax, totalIncome),
	}
}

func stateBracket(code string, rule domain.StateRule, status domain.FilingStatus, totalIncome decimal.Decimal) (*domain.StateResult, error) {
	// Jurisdictions without a profile for the requested status fall back
	// to the rule's fallback profile (single unless configured), silently.
	// A rule missing even the fallback profile would produce a zero-value
	// profile and a silent zero tax, so it is an error instead.
	profile, ok := rule.Profile(status)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no bracket profile for status %q or its fallback", domain.ErrInvalidTaxData, code, status)
	}

	taxableIncome := totalIncome.Sub(profile.StandardDeduction)
	if taxableIncome.IsNegative() {
		taxableIncome = decimal.Zero
	}
	bracketResult := ApplyBrackets(taxableIncome, profile.Brackets)

	return &domain.StateResult{
		Code:              code,
		Name:              rule.Name,
		Type:              domain.StateRuleBracket,
		Description:       rule.Description,
		GrossIncome:       totalIncome,
		StandardDeduction: profile.StandardDeduction,
		TaxableIncome:     taxableIncome,
		Breakdown:         bracketResult.Breakdown,
		Tax:               bracketResult.Total,
		EffectiveRate:     effectiveRate(bracketResult.Total, totalIncome),
	}, nil
}
