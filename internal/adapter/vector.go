// Package adapter provides the concrete input-vector kinds and the external
// collaborators the mutation engine consumes.
package adapter

import (
	"fmt"
	"strings"

	m "mutavec.dev/pkg/mutavec/internal/model"
	"mutavec.dev/pkg/mutavec/pkg"
)

// vectorCore implements the parts of model.Vector shared by every kind.
// Concrete kinds embed it and add kind-specific cloning and value policy.
type vectorCore struct {
	kind       string
	target     string
	method     m.Method
	params     *m.Params
	immutables *pkg.Set[string]

	// Mutation bookkeeping; all three are set together via MarkMutation or
	// MarkFlip and absent on unmutated vectors.
	affected string
	seed     string
	format   m.Format
}

func newVectorCore(kind, target string, method m.Method, params *m.Params) vectorCore {
	if params == nil {
		params = m.NewParams()
	}

	return vectorCore{
		kind:   kind,
		target: target,
		method: method,
		params: params,
	}
}

func (v *vectorCore) Params() *m.Params {
	return v.params
}

func (v *vectorCore) SetParams(p *m.Params) error {
	if p == nil {
		p = m.NewParams()
	}

	v.params = p

	return nil
}

func (v *vectorCore) SetParam(name, value string) error {
	v.params.Set(name, value)
	return nil
}

func (v *vectorCore) Target() string            { return v.target }
func (v *vectorCore) SetTarget(target string)   { v.target = target }
func (v *vectorCore) Method() m.Method          { return v.method }
func (v *vectorCore) SetMethod(method m.Method) { v.method = method }

func (v *vectorCore) Immutables() *pkg.Set[string] {
	if v.immutables == nil {
		v.immutables = pkg.NewSet[string]()
	}

	return v.immutables
}

func (v *vectorCore) Key() string {
	return m.CanonicalKey(v.target, v.method, v.params)
}

func (v *vectorCore) Mutated() bool         { return v.affected != "" }
func (v *vectorCore) Seed() string          { return v.seed }
func (v *vectorCore) AffectedInput() string { return v.affected }
func (v *vectorCore) Format() m.Format      { return v.format }

func (v *vectorCore) MarkMutation(affected, seed string, format m.Format) {
	v.affected = affected
	v.seed = seed
	v.format = format
}

func (v *vectorCore) MarkFlip(seed string) {
	v.affected = m.AffectedFlip
	v.seed = seed
	v.format = 0
}

func (v *vectorCore) Describe() map[string]string {
	out := map[string]string{
		"kind":   v.kind,
		"target": v.target,
		"method": string(v.method),
		"params": encodeParams(v.params),
	}

	if v.Mutated() {
		out["affected_input"] = v.affected
		out["affected_value"] = v.params.Value(v.affected)
		out["seed"] = v.seed
	}

	return out
}

// cloneCore deep-copies the shared state for a concrete kind's Clone.
func (v *vectorCore) cloneCore() vectorCore {
	out := *v
	out.params = v.params.Clone()

	if v.immutables != nil {
		out.immutables = v.immutables.Clone()
	}

	return out
}

func encodeParams(params *m.Params) string {
	var b strings.Builder

	for i, name := range params.Keys() {
		if i > 0 {
			b.WriteByte('&')
		}

		fmt.Fprintf(&b, "%s=%s", name, params.Value(name))
	}

	return b.String()
}

// validateTokenValue rejects values that cannot ride inside a cookie or
// header without corrupting the framing of the request.
func validateTokenValue(kind, name, value string) error {
	if strings.ContainsAny(value, "\r\n\x00") {
		return fmt.Errorf("%s parameter %q: value contains control characters", kind, name)
	}

	return nil
}
