// Package domain contains the core mutation-generation logic.
package domain

import (
	m "mutavec.dev/pkg/mutavec/internal/model"
)

// BuildInjection computes the injected parameter value for one payload under
// a format combination.
//
// FormatStraight wins over every other bit set in the same combination; this
// short-circuit is deliberate. Bits outside the known flag set are ignored,
// so the function is total over any combination. No side effects.
func BuildInjection(payload, defaultValue string, format m.Format) string {
	if format.Has(m.FormatStraight) {
		return payload
	}

	var prefix, appended, suffix string

	if format.Has(m.FormatSemicolonPrefix) {
		prefix = ";"
	}

	if format.Has(m.FormatAppend) {
		appended = defaultValue
	}

	if format.Has(m.FormatNullTerminate) {
		suffix = "\x00"
	}

	return prefix + appended + payload + suffix
}
