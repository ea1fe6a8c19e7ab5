package model

import (
	"fmt"
	"strings"
)

// Format is a bit-flag combination selecting how a payload is wrapped before
// it is injected into a parameter value.
type Format uint8

const (
	// FormatStraight injects the payload verbatim, overriding every other
	// flag set in the same combination.
	FormatStraight Format = 1 << iota
	// FormatAppend prepends the parameter's filled default value.
	FormatAppend
	// FormatNullTerminate appends a NUL byte.
	FormatNullTerminate
	// FormatSemicolonPrefix prepends a semicolon.
	FormatSemicolonPrefix
)

// knownFormats masks the flag bits this package defines. Bits outside the
// mask are ignored when formatting.
const knownFormats = FormatStraight | FormatAppend | FormatNullTerminate | FormatSemicolonPrefix

// DefaultFormats is the combination list tried per parameter when the caller
// does not supply one.
var DefaultFormats = []Format{
	FormatStraight,
	FormatAppend,
	FormatNullTerminate,
	FormatAppend | FormatNullTerminate,
}

var formatNames = []struct {
	flag Format
	name string
}{
	{FormatStraight, "straight"},
	{FormatAppend, "append"},
	{FormatNullTerminate, "null"},
	{FormatSemicolonPrefix, "semicolon"},
}

// Has reports whether every bit of flag is set in f.
func (f Format) Has(flag Format) bool {
	return f&flag == flag
}

// String renders the combination as flag names joined with "+", e.g.
// "append+null". Unknown bits are omitted; a combination with no known bits
// renders as "none".
func (f Format) String() string {
	parts := make([]string, 0, len(formatNames))

	for _, entry := range formatNames {
		if f.Has(entry.flag) {
			parts = append(parts, entry.name)
		}
	}

	if len(parts) == 0 {
		return "none"
	}

	return strings.Join(parts, "+")
}

// ParseFormat parses a combination such as "straight" or "append+null".
// Unknown flag names are a configuration error.
func ParseFormat(s string) (Format, error) {
	var combined Format

	for _, part := range strings.Split(s, "+") {
		name := strings.ToLower(strings.TrimSpace(part))

		flag, ok := formatByName(name)
		if !ok {
			return 0, fmt.Errorf("unknown format flag: %q", name)
		}

		combined |= flag
	}

	return combined, nil
}

func formatByName(name string) (Format, bool) {
	for _, entry := range formatNames {
		if entry.name == name {
			return entry.flag, true
		}
	}

	return 0, false
}
