package adapter

import (
	"strings"

	m "mutavec.dev/pkg/mutavec/internal/model"
)

// DefaultFiller produces a complete parameter mapping covering every name in
// the input. The engine uses the result as the append source and as the base
// mapping of each candidate.
type DefaultFiller interface {
	Fill(params *m.Params) *m.Params
}

// SmartFiller keeps non-empty live values and fills empty parameters with a
// plausible sample guessed from the parameter name. Deterministic: the same
// input always yields the same mapping.
type SmartFiller struct{}

// NewSmartFiller creates a SmartFiller.
func NewSmartFiller() *SmartFiller {
	return &SmartFiller{}
}

// fillSamples maps name fragments to sample values. First match wins, in
// this order.
var fillSamples = []struct {
	fragment string
	sample   string
}{
	{"mail", "fuzz@example.com"},
	{"pass", "Str0ng.Pass"},
	{"user", "john1234"},
	{"login", "john1234"},
	{"phone", "5551234567"},
	{"tel", "5551234567"},
	{"zip", "90210"},
	{"date", "01/01/2024"},
	{"day", "01/01/2024"},
	{"year", "2024"},
	{"url", "https://example.com/"},
	{"link", "https://example.com/"},
	{"id", "1"},
	{"num", "1"},
	{"count", "1"},
	{"age", "32"},
}

const genericSample = "56"

// Fill returns a new mapping; the input is never modified.
func (f *SmartFiller) Fill(params *m.Params) *m.Params {
	out := m.NewParams()

	for _, name := range params.Keys() {
		value := params.Value(name)
		if value == "" {
			value = sampleFor(name)
		}

		out.Set(name, value)
	}

	return out
}

func sampleFor(name string) string {
	lower := strings.ToLower(name)

	for _, entry := range fillSamples {
		if strings.Contains(lower, entry.fragment) {
			return entry.sample
		}
	}

	return genericSample
}
