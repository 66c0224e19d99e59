// Package timex holds the ISO 8601 timestamp conventions used by
// document metadata: UTC, second precision, trailing Z.
package timex

import (
	"regexp"
	"time"
)

// Layout is the canonical timestamp layout.
const Layout = "2006-01-02T15:04:05Z"

// iso8601 accepts the canonical layout plus optional milliseconds and
// an optional numeric offset in place of Z.
var iso8601 = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d{3})?(Z|[+-]\d{2}:\d{2})?$`)

// Now returns the current UTC time in the canonical layout.
func Now() string {
	return time.Now().UTC().Format(Layout)
}

// Valid reports whether s has an acceptable ISO 8601 shape. It checks
// the lexical form only, not calendar validity.
func Valid(s string) bool {
	return iso8601.MatchString(s)
}

// Parse converts an ISO 8601 timestamp with an explicit zone to a
// time.Time.
func Parse(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// Format renders t in the canonical layout.
func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}
