package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// StateRuleType enumerates the closed set of jurisdiction tax rule
// variants. Adding a jurisdiction type means adding a constant here and
// a case to every switch over it.
type StateRuleType string

const (
	// StateRuleNone applies to jurisdictions with no income tax.
	StateRuleNone StateRuleType = "none"
	// StateRuleFlat applies a single rate to total income, plus an
	// optional flat fee.
	StateRuleFlat StateRuleType = "flat"
	// StateRuleComposite applies a state rate and a local rate together,
	// plus an optional flat fee.
	StateRuleComposite StateRuleType = "composite"
	// StateRuleBracket applies progressive brackets keyed by filing
	// status, with a standard deduction per profile.
	StateRuleBracket StateRuleType = "bracket"
)

// StateRule describes how one jurisdiction taxes income. Only the
// fields for the active Type are meaningful.
type StateRule struct {
	Type        StateRuleType
	Name        string
	Description string

	// Flat
	Rate decimal.Decimal

	// Composite
	StateRate decimal.Decimal
	LocalRate decimal.Decimal

	// Flat and composite; zero when no fee applies.
	FlatFee decimal.Decimal

	// Bracket
	Profiles map[FilingStatus]FilingProfile
	// FallbackStatus is used when a bracket jurisdiction has no profile
	// for the requested filing status. Defaults to single.
	FallbackStatus FilingStatus
}

// CombinedRate is the total marginal rate of a composite rule.
func (r StateRule) CombinedRate() decimal.Decimal {
	return r.StateRate.Add(r.LocalRate)
}

// Profile resolves the filing profile for a bracket rule, falling back
// to the rule's fallback status when the requested one is absent.
func (r StateRule) Profile(status FilingStatus) (FilingProfile, bool) {
	if p, ok := r.Profiles[status]; ok {
		return p, true
	}
	p, ok := r.Profiles[r.effectiveFallback()]
	return p, ok
}

func (r StateRule) effectiveFallback() FilingStatus {
	if r.FallbackStatus != "" {
		return r.FallbackStatus
	}
	return FilingSingle
}

// Validate checks the fields required by the rule's type.
func (r StateRule) Validate() error {
	switch r.Type {
	case StateRuleNone:
		return nil
	case StateRuleFlat:
		if r.Rate.IsNegative() || r.Rate.GreaterThanOrEqual(decimalOne) {
			return fmt.Errorf("%w: flat rate %s outside [0,1)", ErrInvalidTaxData, r.Rate)
		}
	case StateRuleComposite:
		for _, rate := range []decimal.Decimal{r.StateRate, r.LocalRate} {
			if rate.IsNegative() || rate.GreaterThanOrEqual(decimalOne) {
				return fmt.Errorf("%w: composite rate %s outside [0,1)", ErrInvalidTaxData, rate)
			}
		}
	case StateRuleBracket:
		if len(r.Profiles) == 0 {
			return fmt.Errorf("%w: bracket rule has no filing profiles", ErrInvalidTaxData)
		}
		for status, profile := range r.Profiles {
			if !status.Valid() {
				return fmt.Errorf("%w: bracket rule profile for unknown status %q", ErrInvalidTaxData, status)
			}
			if err := profile.Validate(); err != nil {
				return fmt.Errorf("profile %s: %w", status, err)
			}
		}
		if r.FallbackStatus != "" && !r.FallbackStatus.Valid() {
			return fmt.Errorf("%w: unknown fallback status %q", ErrInvalidTaxData, r.FallbackStatus)
		}
		// Every status must resolve to some profile, so the fallback
		// profile itself has to exist.
		if _, ok := r.Profiles[r.effectiveFallback()]; !ok {
			return fmt.Errorf("%w: bracket rule has no profile for fallback status %q", ErrInvalidTaxData, r.effectiveFallback())
		}
	default:
		return fmt.Errorf("%w: unknown state rule type %q", ErrInvalidTaxData, r.Type)
	}
	if r.FlatFee.IsNegative() {
		return fmt.Errorf("%w: flat fee %s is negative", ErrInvalidTaxData, r.FlatFee)
	}
	return nil
}
