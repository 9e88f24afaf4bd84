package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxfolio/taxcalc/internal/domain"
)

func TestCalculateSingleFilerFederalOnly(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.Calculate([]decimal.Decimal{decimal.NewFromInt(50000)}, domain.FilingSingle, "")
	require.NoError(t, err)

	federal := result.Federal
	assert.True(t, federal.TaxableIncome.Equal(decimal.NewFromInt(35000)))
	// 11925*0.10 + (35000-11925)*0.12
	assert.True(t, federal.IncomeTax.Equal(decimal.NewFromFloat(3961.50)),
		"expected 3961.50, got %s", federal.IncomeTax)
	assert.True(t, federal.Payroll.SocialSecurity.Equal(decimal.NewFromInt(3100)))
	assert.True(t, federal.Payroll.Medicare.Equal(decimal.NewFromInt(725)))
	assert.True(t, result.State.Tax.IsZero())
	assert.True(t, result.TotalTax.Equal(decimal.NewFromFloat(7786.50)))
	assert.True(t, result.TakeHome.Equal(decimal.NewFromFloat(42213.50)))
}

func TestCalculateJointFilersWithFlatState(t *testing.T) {
	engine := newTestEngine()

	incomes := []decimal.Decimal{decimal.NewFromInt(100000), decimal.NewFromInt(60000)}
	result, err := engine.Calculate(incomes, domain.FilingJoint, "michigan")
	require.NoError(t, err)

	assert.True(t, result.TotalIncome.Equal(decimal.NewFromInt(160000)))
	assert.True(t, result.Federal.TaxableIncome.Equal(decimal.NewFromInt(130000)))
	assert.True(t, result.State.Tax.Equal(decimal.NewFromInt(6800)))
}

func TestCalculateCompositeJurisdiction(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.Calculate([]decimal.Decimal{decimal.NewFromInt(80000)}, domain.FilingSingle, "pennsylvania-pittsburgh")
	require.NoError(t, err)
	assert.True(t, result.State.Tax.Equal(decimal.NewFromInt(4908)))
}

func TestCalculateSocialSecurityCap(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.Calculate([]decimal.Decimal{decimal.NewFromInt(200000)}, domain.FilingSingle, "")
	require.NoError(t, err)

	payroll := result.Federal.Payroll
	assert.True(t, payroll.SocialSecurity.Equal(decimal.NewFromFloat(10918.20)),
		"expected 10918.20, got %s", payroll.SocialSecurity)
	assert.True(t, payroll.Medicare.Equal(decimal.NewFromInt(2900)))
}

func TestCalculateUnsupportedJurisdiction(t *testing.T) {
	engine := newTestEngine()

	_, err := engine.Calculate([]decimal.Decimal{decimal.NewFromInt(50000)}, domain.FilingSingle, "foo")
	assert.ErrorIs(t, err, domain.ErrUnsupportedJurisdiction)
}

func TestCalculateInvalidFilingStatus(t *testing.T) {
	engine := newTestEngine()

	_, err := engine.Calculate([]decimal.Decimal{decimal.NewFromInt(50000)}, domain.FilingStatus("household"), "")
	assert.ErrorIs(t, err, domain.ErrInvalidFilingStatus)
}

func TestCalculateNegativeIncomeRejected(t *testing.T) {
	engine := newTestEngine()

	_, err := engine.Calculate([]decimal.Decimal{decimal.NewFromInt(-1)}, domain.FilingSingle, "")
	assert.ErrorIs(t, err, domain.ErrNegativeIncome)

	incomes := []decimal.Decimal{decimal.NewFromInt(50000), decimal.NewFromInt(-500)}
	_, err = engine.Calculate(incomes, domain.FilingJoint, "")
	assert.ErrorIs(t, err, domain.ErrNegativeIncome)
}

func TestCalculateSingleFilerIgnoresSecondIncome(t *testing.T) {
	engine := newTestEngine()

	incomes := []decimal.Decimal{decimal.NewFromInt(50000), decimal.NewFromInt(60000)}
	result, err := engine.Calculate(incomes, domain.FilingSingle, "")
	require.NoError(t, err)

	// The second income is dropped, never added into the total.
	assert.True(t, result.TotalIncome.Equal(decimal.NewFromInt(50000)))
	assert.Len(t, result.Federal.Payroll.PerEarner, 1)
}

func TestCalculateZeroIncome(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.Calculate([]decimal.Decimal{decimal.Zero}, domain.FilingSingle, "")
	require.NoError(t, err)
	assert.True(t, result.TotalTax.IsZero())
	assert.True(t, result.EffectiveRate.IsZero())
	assert.Empty(t, result.Federal.Breakdown)
}

func TestCalculateIsIdempotent(t *testing.T) {
	engine := newTestEngine()
	incomes := []decimal.Decimal{decimal.NewFromInt(100000), decimal.NewFromInt(60000)}

	first, err := engine.Calculate(incomes, domain.FilingJoint, "minnesota")
	require.NoError(t, err)
	second, err := engine.Calculate(incomes, domain.FilingJoint, "minnesota")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFederalTaxEffectiveRate(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.FederalTax([]decimal.Decimal{decimal.NewFromInt(50000)}, domain.FilingSingle)
	require.NoError(t, err)

	expected := decimal.NewFromFloat(7786.50).Div(decimal.NewFromInt(50000))
	assert.True(t, result.EffectiveRate.Equal(expected),
		"expected %s, got %s", expected, result.EffectiveRate)
}
