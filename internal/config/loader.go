package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/taxfolio/taxcalc/internal/domain"
	"gopkg.in/yaml.v3"
)

// TaxDataParser handles parsing of tax data override files.
type TaxDataParser struct{}

// NewTaxDataParser creates a new tax data parser.
func NewTaxDataParser() *TaxDataParser {
	return &TaxDataParser{}
}

// LoadFromFile loads a tax data set from a YAML file and validates all
// table invariants before returning it.
func (p *TaxDataParser) LoadFromFile(filename string) (*domain.TaxData, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var file fileTaxData
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	data, err := file.toDomain()
	if err != nil {
		return nil, fmt.Errorf("tax data conversion failed: %w", err)
	}
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("tax data validation failed: %w", err)
	}
	return data, nil
}

// File-facing structs keep numbers as YAML scalars and convert to
// decimal explicitly, so rates survive the trip without float drift.

type fileTaxData struct {
	Year        int                      `yaml:"year"`
	Federal     fileFederal              `yaml:"federal"`
	NoTaxStates []string                 `yaml:"no_tax_states"`
	States      map[string]fileStateRule `yaml:"states"`
}

type fileFederal struct {
	Single  fileProfile `yaml:"single"`
	Joint   fileProfile `yaml:"joint"`
	Payroll filePayroll `yaml:"payroll"`
}

type filePayroll struct {
	SSCap        string `yaml:"ss_cap"`
	SSRate       string `yaml:"ss_rate"`
	MedicareRate string `yaml:"medicare_rate"`
}

type fileProfile struct {
	StandardDeduction string        `yaml:"standard_deduction"`
	Brackets          []fileBracket `yaml:"brackets"`
}

type fileBracket struct {
	Lower string `yaml:"lower"`
	Upper string `yaml:"upper"` // omitted on the top bracket
	Rate  string `yaml:"rate"`
}

type fileStateRule struct {
	Type           string       `yaml:"type"`
	Name           string       `yaml:"name"`
	Description    string       `yaml:"description"`
	Rate           string       `yaml:"rate"`
	StateRate      string       `yaml:"state_rate"`
	LocalRate      string       `yaml:"local_rate"`
	FlatFee        string       `yaml:"flat_fee"`
	Single         *fileProfile `yaml:"single"`
	Joint          *fileProfile `yaml:"joint"`
	FallbackStatus string       `yaml:"fallback_status"`
}

func (f fileTaxData) toDomain() (*domain.TaxData, error) {
	single, err := f.Federal.Single.toDomain()
	if err != nil {
		return nil, fmt.Errorf("federal single: %w", err)
	}
	joint, err := f.Federal.Joint.toDomain()
	if err != nil {
		return nil, fmt.Errorf("federal joint: %w", err)
	}
	payroll, err := f.Federal.Payroll.toDomain()
	if err != nil {
		return nil, fmt.Errorf("payroll: %w", err)
	}

	states := make(map[string]domain.StateRule, len(f.States))
	for code, rule := range f.States {
		converted, err := rule.toDomain()
		if err != nil {
			return nil, fmt.Errorf("state %s: %w", code, err)
		}
		states[code] = converted
	}

	return &domain.TaxData{
		Year: f.Year,
		Federal: domain.FederalRules{
			Profiles: map[domain.FilingStatus]domain.FilingProfile{
				domain.FilingSingle: single,
				domain.FilingJoint:  joint,
			},
			Payroll: payroll,
		},
		NoTaxStates: f.NoTaxStates,
		States:      states,
	}, nil
}

func (f fileProfile) toDomain() (domain.FilingProfile, error) {
	deduction, err := parseAmount(f.StandardDeduction, "standard_deduction")
	if err != nil {
		return domain.FilingProfile{}, err
	}
	table := make(domain.BracketTable, 0, len(f.Brackets))
	for i, b := range f.Brackets {
		lower, err := parseAmount(b.Lower, fmt.Sprintf("bracket %d lower", i))
		if err != nil {
			return domain.FilingProfile{}, err
		}
		rate, err := parseAmount(b.Rate, fmt.Sprintf("bracket %d rate", i))
		if err != nil {
			return domain.FilingProfile{}, err
		}
		entry := domain.TaxBracket{Lower: lower, Rate: rate, Unbounded: b.Upper == ""}
		if !entry.Unbounded {
			upper, err := parseAmount(b.Upper, fmt.Sprintf("bracket %d upper", i))
			if err != nil {
				return domain.FilingProfile{}, err
			}
			entry.Upper = upper
		}
		table = append(table, entry)
	}
	return domain.FilingProfile{StandardDeduction: deduction, Brackets: table}, nil
}

func (f filePayroll) toDomain() (domain.PayrollRules, error) {
	wageCap, err := parseAmount(f.SSCap, "ss_cap")
	if err != nil {
		return domain.PayrollRules{}, err
	}
	ssRate, err := parseAmount(f.SSRate, "ss_rate")
	if err != nil {
		return domain.PayrollRules{}, err
	}
	medicareRate, err := parseAmount(f.MedicareRate, "medicare_rate")
	if err != nil {
		return domain.PayrollRules{}, err
	}
	return domain.PayrollRules{SSWageCap: wageCap, SSRate: ssRate, MedicareRate: medicareRate}, nil
}

func (f fileStateRule) toDomain() (domain.StateRule, error) {
	rule := domain.StateRule{
		Type:        domain.StateRuleType(f.Type),
		Name:        f.Name,
		Description: f.Description,
	}
	var err error

	if f.Rate != "" {
		if rule.Rate, err = parseAmount(f.Rate, "rate"); err != nil {
			return domain.StateRule{}, err
		}
	}
	if f.StateRate != "" {
		if rule.StateRate, err = parseAmount(f.StateRate, "state_rate"); err != nil {
			return domain.StateRule{}, err
		}
	}
	if f.LocalRate != "" {
		if rule.LocalRate, err = parseAmount(f.LocalRate, "local_rate"); err != nil {
			return domain.StateRule{}, err
		}
	}
	if f.FlatFee != "" {
		if rule.FlatFee, err = parseAmount(f.FlatFee, "flat_fee"); err != nil {
			return domain.StateRule{}, err
		}
	}

	if f.Single != nil || f.Joint != nil {
		rule.Profiles = make(map[domain.FilingStatus]domain.FilingProfile)
		if f.Single != nil {
			profile, err := f.Single.toDomain()
			if err != nil {
				return domain.StateRule{}, fmt.Errorf("single profile: %w", err)
			}
			rule.Profiles[domain.FilingSingle] = profile
		}
		if f.Joint != nil {
			profile, err := f.Joint.toDomain()
			if err != nil {
				return domain.StateRule{}, fmt.Errorf("joint profile: %w", err)
			}
			rule.Profiles[domain.FilingJoint] = profile
		}
	}

	if f.FallbackStatus != "" {
		status, err := domain.ParseFilingStatus(f.FallbackStatus)
		if err != nil {
			return domain.StateRule{}, fmt.Errorf("fallback_status: %w", err)
		}
		rule.FallbackStatus = status
	}

	return rule, nil
}

func parseAmount(s, field string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: %s is required", domain.ErrInvalidTaxData, field)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s: %v", domain.ErrInvalidTaxData, field, err)
	}
	return d, nil
}
