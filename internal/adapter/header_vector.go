package adapter

import (
	m "mutavec.dev/pkg/mutavec/internal/model"
)

// HeaderVector carries its parameters as request headers. Like CookieVector
// it rejects values that would break header framing.
type HeaderVector struct {
	vectorCore
}

// NewHeaderVector creates a header vector for the given target and parameters.
func NewHeaderVector(target string, params *m.Params) *HeaderVector {
	return &HeaderVector{vectorCore: newVectorCore("header", target, m.MethodGet, params)}
}

// QueryBased reports that header parameters do not ride the query component.
func (v *HeaderVector) QueryBased() bool {
	return false
}

// SetParams replaces the whole mapping, rejecting unframable values.
func (v *HeaderVector) SetParams(p *m.Params) error {
	if p == nil {
		p = m.NewParams()
	}

	for _, name := range p.Keys() {
		if err := validateTokenValue("header", name, p.Value(name)); err != nil {
			return err
		}
	}

	return v.vectorCore.SetParams(p)
}

// SetParam inserts or updates a single parameter, rejecting unframable values.
func (v *HeaderVector) SetParam(name, value string) error {
	if err := validateTokenValue("header", name, value); err != nil {
		return err
	}

	return v.vectorCore.SetParam(name, value)
}

// Clone returns a deep, independent copy.
func (v *HeaderVector) Clone() m.Vector {
	return &HeaderVector{vectorCore: v.cloneCore()}
}
