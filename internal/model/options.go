package model

// Options configures one generation call.
type Options struct {
	// Formats lists the flag combinations tried per parameter, in order.
	Formats []Format

	// ParamFlip also emits the parameter-introducing flip mutation.
	ParamFlip bool

	// RespectMethod suppresses the method-switched counterpart of each
	// mutation when true. When nil, the effective value is derived from the
	// process-wide audit policy.
	RespectMethod *bool

	// Skip lists parameter names for concrete vector kinds to filter out.
	// The engine itself does not read it.
	Skip []string

	// SkipOriginal tells concrete vector kinds not to re-send the original
	// value. The engine itself does not read it.
	SkipOriginal bool
}

// DefaultOptions returns Options with the default format list and no flip.
func DefaultOptions() Options {
	formats := make([]Format, len(DefaultFormats))
	copy(formats, DefaultFormats)

	return Options{Formats: formats}
}

// BoolPtr is a convenience for setting Options.RespectMethod explicitly.
func BoolPtr(v bool) *bool {
	return &v
}
