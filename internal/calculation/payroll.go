package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/taxfolio/taxcalc/internal/domain"
)

// CalculatePayroll computes Social Security and Medicare taxes across
// all earners. The Social Security wage cap applies to each earner
// independently and the results are summed; the cap is never applied to
// the combined household total. Medicare has no cap. Payroll tax is
// always computed on gross income, before any standard deduction.
func CalculatePayroll(incomes []decimal.Decimal, rules domain.PayrollRules) domain.PayrollResult {
	result := domain.PayrollResult{
		SocialSecurity: decimal.Zero,
		Medicare:       decimal.Zero,
	}

	for _, income := range incomes {
		earner := domain.EarnerPayroll{
			Income:         income,
			SocialSecurity: decimal.Zero,
			Medicare:       decimal.Zero,
		}
		if income.IsPositive() {
			earner.SocialSecurity = decimal.Min(income, rules.SSWageCap).Mul(rules.SSRate)
			earner.Medicare = income.Mul(rules.MedicareRate)
		}
		result.PerEarner = append(result.PerEarner, earner)
		result.SocialSecurity = result.SocialSecurity.Add(earner.SocialSecurity)
		result.Medicare = result.Medicare.Add(earner.Medicare)
	}

	return result
}
