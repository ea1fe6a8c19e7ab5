package domain

import (
	"log/slog"

	m "mutavec.dev/pkg/mutavec/internal/model"
)

// Observer receives diagnostic callbacks from the engine. Implementations
// must not influence control flow; the emitted set is identical whatever the
// observer does.
type Observer interface {
	// Candidate is called for every vector the engine emits.
	Candidate(v m.Vector)
	// FormattingSummary is called once per generation call with the
	// effective options.
	FormattingSummary(opts m.Options)
}

// NopObserver discards all callbacks.
type NopObserver struct{}

// Candidate implements Observer.
func (NopObserver) Candidate(m.Vector) {}

// FormattingSummary implements Observer.
func (NopObserver) FormattingSummary(m.Options) {}

// LogObserver writes debug lines for each callback via slog.
type LogObserver struct{}

// Candidate implements Observer.
func (LogObserver) Candidate(v m.Vector) {
	slog.Debug("candidate emitted",
		"affected", v.AffectedInput(),
		"method", v.Method(),
		"format", v.Format().String(),
		"target", v.Target(),
	)
}

// FormattingSummary implements Observer.
func (LogObserver) FormattingSummary(opts m.Options) {
	formats := make([]string, 0, len(opts.Formats))
	for _, format := range opts.Formats {
		formats = append(formats, format.String())
	}

	slog.Debug("formatting summary",
		"formats", formats,
		"param_flip", opts.ParamFlip,
		"respect_method_set", opts.RespectMethod != nil,
	)
}
