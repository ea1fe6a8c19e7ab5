package adapter

import (
	m "mutavec.dev/pkg/mutavec/internal/model"
)

// FormVector carries its parameters in the request body, as a submitted
// HTML form does.
type FormVector struct {
	vectorCore
}

// NewFormVector creates a form vector for the given target and parameters.
func NewFormVector(target string, params *m.Params) *FormVector {
	return &FormVector{vectorCore: newVectorCore("form", target, m.MethodPost, params)}
}

// QueryBased reports that form parameters do not ride the query component.
func (v *FormVector) QueryBased() bool {
	return false
}

// Clone returns a deep, independent copy.
func (v *FormVector) Clone() m.Vector {
	return &FormVector{vectorCore: v.cloneCore()}
}
