// Package model defines the data structures for input-vector mutation.
package model

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"

	"mutavec.dev/pkg/mutavec/pkg"
)

// Method is the transmission method of an input vector.
type Method string

// Supported transmission methods.
const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

// AffectedFlip is the sentinel affected-input name carried by parameter-flip
// mutations. It is not a real parameter name.
const AffectedFlip = "Parameter flip"

// Vector is the capability contract every concrete input-vector kind
// (query/link, form, cookie, header) implements. The mutation engine depends
// only on this interface.
//
// A Vector owns its parameter mapping exclusively; Clone returns a deep,
// independent copy with no aliasing of parameters, immutables, or mutation
// bookkeeping. Setters that accept parameter values may reject them (a
// cookie kind refusing control characters, for example); the engine treats
// such an error as grounds to drop the candidate, never to abort the run.
type Vector interface {
	// Params returns the live parameter mapping. Callers must not mutate it
	// directly; use SetParams or SetParam.
	Params() *Params
	// SetParams replaces the whole mapping. The vector takes ownership.
	SetParams(p *Params) error
	// SetParam inserts or updates a single parameter.
	SetParam(name, value string) error

	Target() string
	SetTarget(target string)
	Method() Method
	SetMethod(method Method)

	// Immutables is the per-instance set of parameter names that are never
	// selected as mutation targets. Lazily created, never nil.
	Immutables() *pkg.Set[string]

	// Clone returns a deep, independent copy.
	Clone() Vector

	// Key is the canonical transmitted-state identity: target, method, and
	// the parameter mapping. Mutation bookkeeping is excluded, so two
	// mutations producing the same transmitted state share a key.
	Key() string

	// QueryBased reports whether this kind transmits solely via the target's
	// query component (a link-style vector).
	QueryBased() bool

	// Mutated reports whether this vector was produced by the engine.
	Mutated() bool
	Seed() string
	AffectedInput() string
	Format() Format

	// MarkMutation attaches the mutation bookkeeping in one step so the
	// three fields stay consistent.
	MarkMutation(affected, seed string, format Format)
	// MarkFlip tags the vector as a parameter-flip mutation of seed.
	MarkFlip(seed string)

	// Describe returns a descriptive mapping for reporting. The
	// affected_input, affected_value, and seed entries are present only when
	// Mutated is true.
	Describe() map[string]string
}

// CanonicalKey derives the transmitted-state identity used by Vector.Key.
// Parameters are folded in sorted name order so the key depends on the
// mapping, not on insertion order.
func CanonicalKey(target string, method Method, params *Params) string {
	h := sha256.New()

	h.Write([]byte(target))
	h.Write([]byte{0})
	h.Write([]byte(method))
	h.Write([]byte{0})

	names := params.Keys()
	sort.Strings(names)

	for _, name := range names {
		h.Write([]byte(name))
		h.Write([]byte{0})
		h.Write([]byte(params.Value(name)))
		h.Write([]byte{0})
	}

	return hex.EncodeToString(h.Sum(nil))
}
