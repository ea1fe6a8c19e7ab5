package adapter

import (
	m "mutavec.dev/pkg/mutavec/internal/model"
)

// CookieVector carries its parameters in the Cookie request header. Values
// holding CR, LF, or NUL would break header framing, so assignment rejects
// them; the engine drops such candidates and keeps going.
type CookieVector struct {
	vectorCore
}

// NewCookieVector creates a cookie vector for the given target and parameters.
func NewCookieVector(target string, params *m.Params) *CookieVector {
	return &CookieVector{vectorCore: newVectorCore("cookie", target, m.MethodGet, params)}
}

// QueryBased reports that cookie parameters do not ride the query component.
func (v *CookieVector) QueryBased() bool {
	return false
}

// SetParams replaces the whole mapping, rejecting unframable values.
func (v *CookieVector) SetParams(p *m.Params) error {
	if p == nil {
		p = m.NewParams()
	}

	for _, name := range p.Keys() {
		if err := validateTokenValue("cookie", name, p.Value(name)); err != nil {
			return err
		}
	}

	return v.vectorCore.SetParams(p)
}

// SetParam inserts or updates a single parameter, rejecting unframable values.
func (v *CookieVector) SetParam(name, value string) error {
	if err := validateTokenValue("cookie", name, value); err != nil {
		return err
	}

	return v.vectorCore.SetParam(name, value)
}

// Clone returns a deep, independent copy.
func (v *CookieVector) Clone() m.Vector {
	return &CookieVector{vectorCore: v.cloneCore()}
}
