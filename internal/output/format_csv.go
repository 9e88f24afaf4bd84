package output

import (
	"bytes"
	"encoding/csv"

	"github.com/taxfolio/taxcalc/internal/domain"
)

// CSVFormatter implements the summary CSV output (one row per tax
// component).
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(result *domain.CombinedResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Component", "Amount"}); err != nil {
		return nil, err
	}
	rows := [][]string{
		{"GrossIncome", result.TotalIncome.StringFixed(2)},
		{"FederalIncomeTax", result.Federal.IncomeTax.StringFixed(2)},
		{"SocialSecurity", result.Federal.Payroll.SocialSecurity.StringFixed(2)},
		{"Medicare", result.Federal.Payroll.Medicare.StringFixed(2)},
		{"FederalTotal", result.Federal.TotalTax.StringFixed(2)},
		{"StateTax", result.State.Tax.StringFixed(2)},
		{"TotalTax", result.TotalTax.StringFixed(2)},
		{"TakeHome", result.TakeHome.StringFixed(2)},
		{"EffectiveRate", result.EffectiveRate.StringFixed(4)},
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
