package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxfolio/taxcalc/internal/config"
)

func TestCalculatePayroll(t *testing.T) {
	rules := config.DefaultTaxData().Federal.Payroll

	tests := []struct {
		name             string
		incomes          []decimal.Decimal
		expectedSS       decimal.Decimal
		expectedMedicare decimal.Decimal
	}{
		{
			name:             "single earner below cap",
			incomes:          []decimal.Decimal{decimal.NewFromInt(50000)},
			expectedSS:       decimal.NewFromInt(3100),
			expectedMedicare: decimal.NewFromInt(725),
		},
		{
			name:    "single earner above cap",
			incomes: []decimal.Decimal{decimal.NewFromInt(200000)},
			// SS capped at the wage base; Medicare uncapped.
			expectedSS:       decimal.NewFromFloat(10918.20),
			expectedMedicare: decimal.NewFromInt(2900),
		},
		{
			name: "two earners both below cap",
			incomes: []decimal.Decimal{
				decimal.NewFromInt(100000),
				decimal.NewFromInt(60000),
			},
			expectedSS:       decimal.NewFromInt(9920),
			expectedMedicare: decimal.NewFromInt(2320),
		},
		{
			name: "caps apply per earner not combined",
			incomes: []decimal.Decimal{
				decimal.NewFromInt(100000),
				decimal.NewFromInt(100000),
			},
			// Combined income exceeds the wage base but neither earner
			// does, so no capping occurs.
			expectedSS:       decimal.NewFromInt(12400),
			expectedMedicare: decimal.NewFromInt(2900),
		},
		{
			name: "one earner above cap one below",
			incomes: []decimal.Decimal{
				decimal.NewFromInt(200000),
				decimal.NewFromInt(60000),
			},
			expectedSS:       decimal.NewFromFloat(14638.20),
			expectedMedicare: decimal.NewFromInt(3770),
		},
		{
			name: "non-positive earner contributes nothing",
			incomes: []decimal.Decimal{
				decimal.NewFromInt(50000),
				decimal.Zero,
			},
			expectedSS:       decimal.NewFromInt(3100),
			expectedMedicare: decimal.NewFromInt(725),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculatePayroll(tt.incomes, rules)
			assert.True(t, result.SocialSecurity.Equal(tt.expectedSS),
				"SS: expected %s, got %s", tt.expectedSS, result.SocialSecurity)
			assert.True(t, result.Medicare.Equal(tt.expectedMedicare),
				"Medicare: expected %s, got %s", tt.expectedMedicare, result.Medicare)
			assert.Len(t, result.PerEarner, len(tt.incomes))
		})
	}
}

func TestCalculatePayrollPerEarnerDetail(t *testing.T) {
	rules := config.DefaultTaxData().Federal.Payroll

	result := CalculatePayroll([]decimal.Decimal{
		decimal.NewFromInt(200000),
		decimal.NewFromInt(60000),
	}, rules)

	require.Len(t, result.PerEarner, 2)
	assert.True(t, result.PerEarner[0].SocialSecurity.Equal(decimal.NewFromFloat(10918.20)))
	assert.True(t, result.PerEarner[1].SocialSecurity.Equal(decimal.NewFromInt(3720)))
	assert.True(t, result.Total().Equal(result.SocialSecurity.Add(result.Medicare)))
}
