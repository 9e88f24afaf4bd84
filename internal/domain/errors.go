package domain

import "errors"

// Validation errors surfaced by the calculation engine. All of them are
// caller-correctable input problems; the engine has no fatal error class.
var (
	ErrInvalidFilingStatus     = errors.New("invalid filing status")
	ErrUnsupportedJurisdiction = errors.New("unsupported jurisdiction")
	ErrNegativeIncome          = errors.New("income cannot be negative")
	ErrInvalidTaxData          = errors.New("invalid tax data")
)
