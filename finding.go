package orsf

import (
	"fmt"
	"strings"
)

// Severity grades a validation finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// FindingCode classifies what kind of problem a finding reports.
type FindingCode string

const (
	FindingRequired      FindingCode = "required"
	FindingOutOfRange    FindingCode = "out_of_range"
	FindingInvalidFormat FindingCode = "invalid_format"
	FindingIncompatible  FindingCode = "incompatible"
	FindingDeprecated    FindingCode = "deprecated"
	FindingSchemaInvalid FindingCode = "schema_invalid"
)

// Finding is one validation result. Expected and Actual are free-form
// renderings of the acceptable range or set and the value seen; both
// are optional.
type Finding struct {
	Severity Severity    `json:"severity"`
	Code     FindingCode `json:"code"`
	Field    string      `json:"field"`
	Message  string      `json:"message"`
	Expected string      `json:"expected,omitempty"`
	Actual   string      `json:"actual,omitempty"`
}

// String renders the finding as a single report line, for example:
//
//	[WARN]  context.ambient_temp_c: value outside plausible range (expected: -50 to 70, actual: 93)
func (f Finding) String() string {
	var b strings.Builder

	switch f.Severity {
	case SeverityError:
		b.WriteString("[ERROR] ")
	case SeverityWarning:
		b.WriteString("[WARN]  ")
	default:
		b.WriteString("[INFO]  ")
	}

	b.WriteString(f.Field)
	b.WriteString(": ")
	b.WriteString(f.Message)

	if f.Expected != "" {
		b.WriteString(" (expected: ")
		b.WriteString(f.Expected)
		if f.Actual != "" {
			b.WriteString(", actual: ")
			b.WriteString(f.Actual)
		}
		b.WriteString(")")
	}

	return b.String()
}

// HasErrors reports whether any finding carries error severity.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// CountBySeverity tallies findings per severity.
func CountBySeverity(findings []Finding) map[Severity]int {
	counts := make(map[Severity]int)
	for _, f := range findings {
		counts[f.Severity]++
	}
	return counts
}

// formatNum renders a number the way findings expect, trimming
// insignificant trailing zeros.
func formatNum(v float64) string {
	return fmt.Sprintf("%g", v)
}
