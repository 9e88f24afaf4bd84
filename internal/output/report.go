package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/taxfolio/taxcalc/internal/domain"
)

const reportWidth = 80

// ConsoleFormatter renders the full calculation report the way the
// interactive shell prints it: income summary, federal bracket
// breakdown, payroll detail, state section per rule type, and the
// combined summary.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(result *domain.CombinedResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	federal := result.Federal
	state := result.State

	rule := strings.Repeat("=", reportWidth)
	thinRule := strings.Repeat("-", reportWidth)

	fmt.Fprintln(buf, rule)
	fmt.Fprintln(buf, center("TAX CALCULATION REPORT"))
	fmt.Fprintln(buf, rule)

	fmt.Fprintf(buf, "Filing Status: %s\n", federal.FilingStatus.Display())
	fmt.Fprintf(buf, "State: %s\n", state.Name)
	fmt.Fprintln(buf, thinRule)

	if federal.FilingStatus == domain.FilingJoint && len(federal.Payroll.PerEarner) > 1 {
		fmt.Fprintf(buf, "Primary Income: %s\n", FormatCurrency(federal.Payroll.PerEarner[0].Income))
		fmt.Fprintf(buf, "Secondary Income: %s\n", FormatCurrency(federal.Payroll.PerEarner[1].Income))
	}
	fmt.Fprintf(buf, "Total Income: %s\n\n", FormatCurrency(federal.GrossIncome))

	fmt.Fprintln(buf, center("FEDERAL TAX CALCULATION"))
	fmt.Fprintln(buf, rule)

	fmt.Fprintln(buf, "INCOME TAX:")
	fmt.Fprintf(buf, "Gross Income: %s\n", FormatCurrency(federal.GrossIncome))
	fmt.Fprintf(buf, "Standard Deduction: -%s\n", FormatCurrency(federal.StandardDeduction))
	fmt.Fprintf(buf, "Taxable Income: %s\n\n", FormatCurrency(federal.TaxableIncome))

	writeBreakdown(buf, "TAX BRACKET BREAKDOWN:", federal.Breakdown)
	fmt.Fprintf(buf, "Total Federal Income Tax: %s\n\n", FormatCurrency(federal.IncomeTax))

	fmt.Fprintln(buf, "PAYROLL TAXES:")
	fmt.Fprintf(buf, "Note: Social Security tax applies per person, up to the annual wage cap\n")
	fmt.Fprintln(buf, thinRule)
	for i, earner := range federal.Payroll.PerEarner {
		if len(federal.Payroll.PerEarner) > 1 {
			label := "Primary"
			if i > 0 {
				label = "Secondary"
			}
			fmt.Fprintf(buf, "%s Income: %s\n", label, FormatCurrency(earner.Income))
			fmt.Fprintf(buf, "  Social Security: %s\n", FormatCurrency(earner.SocialSecurity))
			fmt.Fprintf(buf, "  Medicare: %s\n", FormatCurrency(earner.Medicare))
		} else {
			fmt.Fprintf(buf, "Social Security: %s\n", FormatCurrency(earner.SocialSecurity))
			fmt.Fprintf(buf, "Medicare: %s\n", FormatCurrency(earner.Medicare))
		}
	}
	fmt.Fprintln(buf, thinRule)
	fmt.Fprintf(buf, "Total Payroll Tax: %s\n\n", FormatCurrency(federal.PayrollTax))

	fmt.Fprintln(buf, "FEDERAL TAX SUMMARY:")
	fmt.Fprintf(buf, "Federal Income Tax: %s\n", FormatCurrency(federal.IncomeTax))
	fmt.Fprintf(buf, "Federal Payroll Tax: %s\n", FormatCurrency(federal.PayrollTax))
	fmt.Fprintf(buf, "Total Federal Tax: %s\n", FormatCurrency(federal.TotalTax))
	fmt.Fprintf(buf, "Federal Effective Tax Rate: %s\n\n", FormatPercent(federal.EffectiveRate))

	fmt.Fprintln(buf, center("STATE TAX CALCULATION"))
	fmt.Fprintln(buf, rule)
	writeStateSection(buf, &state, thinRule)
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, center("COMBINED TAX SUMMARY"))
	fmt.Fprintln(buf, rule)
	fmt.Fprintf(buf, "Gross Income: %s\n", FormatCurrency(result.TotalIncome))
	fmt.Fprintf(buf, "Federal Tax: %s\n", FormatCurrency(federal.TotalTax))
	fmt.Fprintf(buf, "State Tax: %s\n", FormatCurrency(state.Tax))
	fmt.Fprintf(buf, "Total Tax: %s\n", FormatCurrency(result.TotalTax))
	fmt.Fprintf(buf, "Take Home Pay: %s\n", FormatCurrency(result.TakeHome))
	fmt.Fprintf(buf, "Combined Effective Tax Rate: %s\n", FormatPercent(result.EffectiveRate))
	fmt.Fprintln(buf, rule)

	return buf.Bytes(), nil
}

func writeStateSection(buf *bytes.Buffer, state *domain.StateResult, thinRule string) {
	if state.Type == domain.StateRuleNone {
		fmt.Fprintln(buf, "No state income tax applies.")
		return
	}

	fmt.Fprintf(buf, "State: %s\n", state.Name)
	switch state.Type {
	case domain.StateRuleFlat:
		fmt.Fprintln(buf, "Tax Type: Flat Rate")
		fmt.Fprintf(buf, "Flat Tax Rate: %s\n", FormatPercent(state.Rate))
		fmt.Fprintf(buf, "Gross Income: %s\n", FormatCurrency(state.GrossIncome))
		if state.FlatFee.IsPositive() {
			fmt.Fprintf(buf, "Additional Fee: %s\n", FormatCurrency(state.FlatFee))
		}
		fmt.Fprintf(buf, "Total State Tax: %s\n", FormatCurrency(state.Tax))

	case domain.StateRuleComposite:
		fmt.Fprintln(buf, "Tax Type: Composite (State + Local)")
		fmt.Fprintf(buf, "Gross Income: %s\n\n", FormatCurrency(state.GrossIncome))
		fmt.Fprintf(buf, "State Tax Rate: %s\n", FormatPercent(state.StateRate))
		fmt.Fprintf(buf, "State Tax Portion: %s\n\n", FormatCurrency(state.StatePortion))
		fmt.Fprintf(buf, "Local Tax Rate: %s\n", FormatPercent(state.LocalRate))
		fmt.Fprintf(buf, "Local Tax Portion: %s\n", FormatCurrency(state.LocalPortion))
		if state.FlatFee.IsPositive() {
			fmt.Fprintf(buf, "Additional Fee: %s\n", FormatCurrency(state.FlatFee))
		}
		fmt.Fprintln(buf, thinRule)
		fmt.Fprintf(buf, "Combined Tax Rate: %s\n", FormatPercent(state.CombinedRate))
		fmt.Fprintf(buf, "Total State Tax: %s\n", FormatCurrency(state.Tax))

	case domain.StateRuleBracket:
		fmt.Fprintln(buf, "Tax Type: Progressive Brackets")
		fmt.Fprintf(buf, "Gross Income: %s\n", FormatCurrency(state.GrossIncome))
		fmt.Fprintf(buf, "Standard Deduction: -%s\n", FormatCurrency(state.StandardDeduction))
		fmt.Fprintf(buf, "Taxable Income: %s\n\n", FormatCurrency(state.TaxableIncome))
		writeBreakdown(buf, "STATE TAX BRACKET BREAKDOWN:", state.Breakdown)
		fmt.Fprintf(buf, "Total State Tax: %s\n", FormatCurrency(state.Tax))
	}
	fmt.Fprintf(buf, "State Effective Tax Rate: %s\n", FormatPercent(state.EffectiveRate))
}

func writeBreakdown(buf *bytes.Buffer, title string, breakdown []domain.BracketLine) {
	thinRule := strings.Repeat("-", reportWidth)
	fmt.Fprintln(buf, title)
	fmt.Fprintln(buf, thinRule)
	fmt.Fprintf(buf, "%-30s %-10s %-20s %-15s\n", "Bracket", "Rate", "Income in Bracket", "Tax")
	fmt.Fprintln(buf, thinRule)
	for _, line := range breakdown {
		fmt.Fprintf(buf, "%-30s %-10s %-20s %-15s\n",
			line.Range, FormatPercent(line.Rate), FormatCurrency(line.Income), FormatCurrency(line.Tax))
	}
	fmt.Fprintln(buf, thinRule)
}

func center(s string) string {
	if len(s) >= reportWidth {
		return s
	}
	pad := (reportWidth - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}
