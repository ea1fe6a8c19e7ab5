package adapter

import (
	m "mutavec.dev/pkg/mutavec/internal/model"
)

// QueryVector is a link-style vector: its parameters are transmitted solely
// via the target URI's query component.
type QueryVector struct {
	vectorCore
}

// NewQueryVector creates a query vector for the given target and parameters.
func NewQueryVector(target string, params *m.Params) *QueryVector {
	return &QueryVector{vectorCore: newVectorCore("query", target, m.MethodGet, params)}
}

// QueryBased reports that this kind rides the target's query component.
func (v *QueryVector) QueryBased() bool {
	return true
}

// Clone returns a deep, independent copy.
func (v *QueryVector) Clone() m.Vector {
	return &QueryVector{vectorCore: v.cloneCore()}
}
