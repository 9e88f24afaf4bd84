package domain

import (
	"fmt"
	"strings"
)

// FilingStatus identifies the filing status used for standard deduction
// and bracket table lookups.
type FilingStatus string

const (
	FilingSingle FilingStatus = "single"
	FilingJoint  FilingStatus = "joint"
)

// ParseFilingStatus normalizes a user-supplied filing status string.
// Accepts the common aliases for married filing jointly.
func ParseFilingStatus(s string) (FilingStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return FilingSingle, nil
	case "joint", "married", "mfj":
		return FilingJoint, nil
	default:
		return "", fmt.Errorf("%w: %q (expected single or joint)", ErrInvalidFilingStatus, s)
	}
}

// Valid reports whether the status is one of the two supported values.
func (fs FilingStatus) Valid() bool {
	return fs == FilingSingle || fs == FilingJoint
}

// Display returns the long-form label used in reports.
func (fs FilingStatus) Display() string {
	if fs == FilingJoint {
		return "Married Filing Jointly"
	}
	return "Single"
}
