package output

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxfolio/taxcalc/internal/calculation"
	"github.com/taxfolio/taxcalc/internal/config"
	"github.com/taxfolio/taxcalc/internal/domain"
)

func sampleResult(t *testing.T, incomes []decimal.Decimal, status domain.FilingStatus, code string) *domain.CombinedResult {
	t.Helper()
	engine := calculation.NewEngine(config.DefaultTaxData())
	result, err := engine.Calculate(incomes, status, code)
	require.NoError(t, err)
	return result
}

func TestGetFormatterByName(t *testing.T) {
	assert.Equal(t, "console", GetFormatterByName("console").Name())
	assert.Equal(t, "console", GetFormatterByName("").Name())
	assert.Equal(t, "json", GetFormatterByName("json").Name())
	assert.Equal(t, "csv", GetFormatterByName("csv").Name())
	assert.Nil(t, GetFormatterByName("html"))
}

func TestConsoleFormatterSingleFiler(t *testing.T) {
	result := sampleResult(t, []decimal.Decimal{decimal.NewFromInt(50000)}, domain.FilingSingle, "")

	rendered, err := ConsoleFormatter{}.Format(result)
	require.NoError(t, err)
	report := string(rendered)

	assert.Contains(t, report, "TAX CALCULATION REPORT")
	assert.Contains(t, report, "Filing Status: Single")
	assert.Contains(t, report, "Taxable Income: $35000.00")
	assert.Contains(t, report, "Total Federal Income Tax: $3961.50")
	assert.Contains(t, report, "Social Security: $3100.00")
	assert.Contains(t, report, "Medicare: $725.00")
	assert.Contains(t, report, "No state income tax applies.")
	assert.Contains(t, report, "Take Home Pay: $42213.50")
	// Single filers get no per-earner income lines.
	assert.NotContains(t, report, "Secondary Income")
}

func TestConsoleFormatterJointComposite(t *testing.T) {
	incomes := []decimal.Decimal{decimal.NewFromInt(100000), decimal.NewFromInt(60000)}
	result := sampleResult(t, incomes, domain.FilingJoint, "pennsylvania-pittsburgh")

	rendered, err := ConsoleFormatter{}.Format(result)
	require.NoError(t, err)
	report := string(rendered)

	assert.Contains(t, report, "Filing Status: Married Filing Jointly")
	assert.Contains(t, report, "Primary Income: $100000.00")
	assert.Contains(t, report, "Secondary Income: $60000.00")
	assert.Contains(t, report, "Tax Type: Composite (State + Local)")
	assert.Contains(t, report, "State Tax Portion: $4912.00")
	assert.Contains(t, report, "Local Tax Portion: $4800.00")
	assert.Contains(t, report, "Additional Fee: $52.00")
	assert.Contains(t, report, "Combined Tax Rate: 6.07%")
}

func TestConsoleFormatterBracketState(t *testing.T) {
	incomes := []decimal.Decimal{decimal.NewFromInt(100000), decimal.NewFromInt(60000)}
	result := sampleResult(t, incomes, domain.FilingJoint, "minnesota")

	rendered, err := ConsoleFormatter{}.Format(result)
	require.NoError(t, err)
	report := string(rendered)

	assert.Contains(t, report, "Tax Type: Progressive Brackets")
	assert.Contains(t, report, "STATE TAX BRACKET BREAKDOWN:")
	assert.Contains(t, report, "Total State Tax: $8156.31")
}

func TestJSONFormatter(t *testing.T) {
	result := sampleResult(t, []decimal.Decimal{decimal.NewFromInt(50000)}, domain.FilingSingle, "michigan")

	rendered, err := JSONFormatter{Pretty: true}.Format(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rendered, &decoded))
	assert.Contains(t, decoded, "federal")
	assert.Contains(t, decoded, "state")
	assert.Contains(t, decoded, "take_home")

	state, ok := decoded["state"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Michigan", state["name"])
}

func TestCSVFormatter(t *testing.T) {
	result := sampleResult(t, []decimal.Decimal{decimal.NewFromInt(50000)}, domain.FilingSingle, "")

	rendered, err := CSVFormatter{}.Format(result)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(rendered))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 10)
	assert.Equal(t, []string{"Component", "Amount"}, records[0])
	assert.Equal(t, []string{"GrossIncome", "50000.00"}, records[1])
	assert.Equal(t, []string{"TakeHome", "42213.50"}, records[8])
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "$1234.50", FormatCurrency(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "4.25%", FormatPercent(decimal.NewFromFloat(0.0425)))
	assert.Equal(t, "0.00%", FormatPercent(decimal.Zero))
}
