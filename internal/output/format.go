package output

import (
	"github.com/shopspring/decimal"
	"github.com/taxfolio/taxcalc/internal/domain"
)

// Formatter renders a combined tax result in one output format.
type Formatter interface {
	Name() string
	Format(result *domain.CombinedResult) ([]byte, error)
}

// GetFormatterByName returns the formatter registered under the given
// name, or nil when the name is unknown. "console" is the default.
func GetFormatterByName(name string) Formatter {
	switch name {
	case "console", "":
		return ConsoleFormatter{}
	case "json":
		return JSONFormatter{Pretty: true}
	case "csv":
		return CSVFormatter{}
	default:
		return nil
	}
}

var decimalHundred = decimal.NewFromInt(100)

// FormatCurrency formats a decimal as a dollar amount.
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatPercent formats a decimal fraction as a percentage.
func FormatPercent(rate decimal.Decimal) string {
	return rate.Mul(decimalHundred).StringFixed(2) + "%"
}
