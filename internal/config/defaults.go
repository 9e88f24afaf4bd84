package config

import (
	"github.com/shopspring/decimal"
	"github.com/taxfolio/taxcalc/internal/domain"
)

// DefaultTaxData returns the built-in 2025 tables: federal brackets and
// deductions for both filing statuses, payroll rules, the no-tax state
// set, and the supported state rules. Callers treat the returned value
// as immutable.
func DefaultTaxData() *domain.TaxData {
	return &domain.TaxData{
		Year: 2025,
		Federal: domain.FederalRules{
			Profiles: map[domain.FilingStatus]domain.FilingProfile{
				domain.FilingSingle: {
					StandardDeduction: decimal.NewFromInt(15000),
					Brackets: domain.BracketTable{
						bracket(0, 11925, 0.10),
						bracket(11925, 48475, 0.12),
						bracket(48475, 103350, 0.22),
						bracket(103350, 197300, 0.24),
						bracket(197300, 250525, 0.32),
						topBracket(250525, 0.35),
					},
				},
				domain.FilingJoint: {
					StandardDeduction: decimal.NewFromInt(30000),
					Brackets: domain.BracketTable{
						bracket(0, 23850, 0.10),
						bracket(23850, 96950, 0.12),
						bracket(96950, 206700, 0.22),
						bracket(206700, 394600, 0.24),
						bracket(394600, 501050, 0.32),
						topBracket(501050, 0.35),
					},
				},
			},
			Payroll: domain.PayrollRules{
				SSWageCap:    decimal.NewFromInt(176100), // 2025 official wage base
				SSRate:       decimal.NewFromFloat(0.062),
				MedicareRate: decimal.NewFromFloat(0.0145),
			},
		},
		NoTaxStates: []string{
			"texas", "florida", "washington", "nevada", "alaska",
			"wyoming", "south_dakota", "tennessee", "new_hampshire",
		},
		States: map[string]domain.StateRule{
			"michigan": {
				Type:        domain.StateRuleFlat,
				Name:        "Michigan",
				Rate:        decimal.NewFromFloat(0.0425),
				Description: "Flat rate of 4.25%",
			},
			"pennsylvania": {
				Type:        domain.StateRuleFlat,
				Name:        "Pennsylvania",
				Rate:        decimal.NewFromFloat(0.0307),
				Description: "Flat rate of 3.07%",
			},
			"pennsylvania-philadelphia": {
				Type:        domain.StateRuleComposite,
				Name:        "Pennsylvania - Philadelphia",
				StateRate:   decimal.NewFromFloat(0.0307),
				LocalRate:   decimal.NewFromFloat(0.0375),
				Description: "PA state tax (3.07%) + Philadelphia local tax (3.75%)",
			},
			"pennsylvania-pittsburgh": {
				Type:        domain.StateRuleComposite,
				Name:        "Pennsylvania - Pittsburgh",
				StateRate:   decimal.NewFromFloat(0.0307),
				LocalRate:   decimal.NewFromFloat(0.03),
				FlatFee:     decimal.NewFromInt(52), // local services tax
				Description: "PA state tax (3.07%) + Pittsburgh local tax (3%) + $52 fee",
			},
			"minnesota": {
				Type:        domain.StateRuleBracket,
				Name:        "Minnesota",
				Description: "Progressive tax with brackets based on filing status",
				Profiles: map[domain.FilingStatus]domain.FilingProfile{
					domain.FilingSingle: {
						StandardDeduction: decimal.NewFromInt(14950),
						Brackets: domain.BracketTable{
							bracket(0, 32570, 0.0535),
							bracket(32570, 106990, 0.068),
							bracket(106990, 198630, 0.0785),
							topBracket(198630, 0.0985),
						},
					},
					domain.FilingJoint: {
						StandardDeduction: decimal.NewFromInt(29900),
						Brackets: domain.BracketTable{
							bracket(0, 47620, 0.0535),
							bracket(47620, 189180, 0.068),
							bracket(189180, 330410, 0.0785),
							topBracket(330410, 0.0985),
						},
					},
				},
			},
		},
	}
}

func bracket(lower, upper int64, rate float64) domain.TaxBracket {
	return domain.TaxBracket{
		Lower: decimal.NewFromInt(lower),
		Upper: decimal.NewFromInt(upper),
		Rate:  decimal.NewFromFloat(rate),
	}
}

func topBracket(lower int64, rate float64) domain.TaxBracket {
	return domain.TaxBracket{
		Lower:     decimal.NewFromInt(lower),
		Rate:      decimal.NewFromFloat(rate),
		Unbounded: true,
	}
}
