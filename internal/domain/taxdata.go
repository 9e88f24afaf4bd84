package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// PayrollRules holds the FICA parameters. These are federal and apply
// to every earner regardless of jurisdiction.
type PayrollRules struct {
	SSWageCap    decimal.Decimal
	SSRate       decimal.Decimal
	MedicareRate decimal.Decimal
}

// Validate checks the payroll rates and cap.
func (p PayrollRules) Validate() error {
	if p.SSWageCap.IsNegative() {
		return fmt.Errorf("%w: social security wage cap %s is negative", ErrInvalidTaxData, p.SSWageCap)
	}
	for _, rate := range []decimal.Decimal{p.SSRate, p.MedicareRate} {
		if rate.IsNegative() || rate.GreaterThanOrEqual(decimalOne) {
			return fmt.Errorf("%w: payroll rate %s outside [0,1)", ErrInvalidTaxData, rate)
		}
	}
	return nil
}

// FederalRules holds the federal filing profiles and payroll rules.
type FederalRules struct {
	Profiles map[FilingStatus]FilingProfile
	Payroll  PayrollRules
}

// TaxData is the complete rule set for one tax year. It is built once
// at startup (or loaded from a YAML override) and treated as immutable
// afterwards, so a single value may serve concurrent calculations.
type TaxData struct {
	Year        int
	Federal     FederalRules
	NoTaxStates []string
	States      map[string]StateRule
}

// Validate checks every table and rule in the data set.
func (td *TaxData) Validate() error {
	for _, status := range []FilingStatus{FilingSingle, FilingJoint} {
		profile, ok := td.Federal.Profiles[status]
		if !ok {
			return fmt.Errorf("%w: missing federal profile for %s", ErrInvalidTaxData, status)
		}
		if err := profile.Validate(); err != nil {
			return fmt.Errorf("federal %s: %w", status, err)
		}
	}
	if err := td.Federal.Payroll.Validate(); err != nil {
		return fmt.Errorf("payroll: %w", err)
	}
	for code, rule := range td.States {
		if code == "" {
			return fmt.Errorf("%w: empty jurisdiction code", ErrInvalidTaxData)
		}
		if err := rule.Validate(); err != nil {
			return fmt.Errorf("state %s: %w", code, err)
		}
	}
	return nil
}

// IsNoTaxState reports whether the code names a jurisdiction in the
// known no-income-tax set. Matching is case-insensitive.
func (td *TaxData) IsNoTaxState(code string) bool {
	code = strings.ToLower(code)
	for _, s := range td.NoTaxStates {
		if s == code {
			return true
		}
	}
	return false
}

// StateRuleFor resolves a jurisdiction code to its rule. The empty code
// and members of the no-tax set resolve to a none rule; any other
// unknown code is an unsupported jurisdiction.
func (td *TaxData) StateRuleFor(code string) (StateRule, error) {
	normalized := strings.ToLower(strings.TrimSpace(code))
	if normalized == "" {
		return StateRule{Type: StateRuleNone, Name: "No State Tax", Description: "No state income tax"}, nil
	}
	if td.IsNoTaxState(normalized) {
		return StateRule{
			Type:        StateRuleNone,
			Name:        displayName(normalized),
			Description: "No state income tax",
		}, nil
	}
	rule, ok := td.States[normalized]
	if !ok {
		return StateRule{}, fmt.Errorf("%w: %q", ErrUnsupportedJurisdiction, code)
	}
	return rule, nil
}

// JurisdictionOption is one selectable jurisdiction for listings and
// interactive pickers.
type JurisdictionOption struct {
	Code    string
	Display string
}

// JurisdictionOptions returns every selectable jurisdiction, including
// the federal-only empty code and the no-tax states, sorted by display
// name.
func (td *TaxData) JurisdictionOptions() []JurisdictionOption {
	options := []JurisdictionOption{{Code: "", Display: "Federal Only (No State Tax)"}}
	for _, code := range td.NoTaxStates {
		options = append(options, JurisdictionOption{
			Code:    code,
			Display: fmt.Sprintf("%s (No State Tax)", displayName(code)),
		})
	}
	for code, rule := range td.States {
		var rateInfo string
		switch rule.Type {
		case StateRuleFlat:
			rateInfo = fmt.Sprintf("(%s%%)", rule.Rate.Mul(decimalHundred).StringFixed(2))
			if rule.FlatFee.IsPositive() {
				rateInfo = fmt.Sprintf("(%s%% + $%s)", rule.Rate.Mul(decimalHundred).StringFixed(2), rule.FlatFee.StringFixed(0))
			}
		case StateRuleComposite:
			combined := rule.CombinedRate().Mul(decimalHundred).StringFixed(2)
			rateInfo = fmt.Sprintf("(%s%%)", combined)
			if rule.FlatFee.IsPositive() {
				rateInfo = fmt.Sprintf("(%s%% + $%s)", combined, rule.FlatFee.StringFixed(0))
			}
		case StateRuleBracket:
			rateInfo = "(Progressive)"
		default:
			continue
		}
		options = append(options, JurisdictionOption{
			Code:    code,
			Display: fmt.Sprintf("%s %s", rule.Name, rateInfo),
		})
	}
	sort.Slice(options, func(i, j int) bool { return options[i].Display < options[j].Display })
	return options
}

var decimalHundred = decimal.NewFromInt(100)

func displayName(code string) string {
	words := strings.Split(strings.ReplaceAll(code, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
