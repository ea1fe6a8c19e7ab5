package model

// Params is an ordered mapping from parameter name to value.
//
// Iteration order is insertion order, which the mutation engine relies on for
// deterministic output. Names are unique; setting an existing name updates
// the value in place without moving it.
type Params struct {
	keys   []string
	values map[string]string
}

// NewParams creates an empty Params.
func NewParams() *Params {
	return &Params{values: make(map[string]string)}
}

// Pair is a single name/value entry, used to build Params literals.
type Pair struct {
	Name  string
	Value string
}

// ParamsOf builds Params from pairs, preserving the given order.
func ParamsOf(pairs ...Pair) *Params {
	p := NewParams()
	for _, pair := range pairs {
		p.Set(pair.Name, pair.Value)
	}

	return p
}

// Set inserts or updates a parameter. New names append to the iteration
// order; existing names keep their position.
func (p *Params) Set(name, value string) {
	if _, ok := p.values[name]; !ok {
		p.keys = append(p.keys, name)
	}

	p.values[name] = value
}

// Get returns the value for name and whether it is present.
func (p *Params) Get(name string) (string, bool) {
	value, ok := p.values[name]
	return value, ok
}

// Value returns the value for name, or "" if absent.
func (p *Params) Value(name string) string {
	return p.values[name]
}

// Has reports whether name is present.
func (p *Params) Has(name string) bool {
	_, ok := p.values[name]
	return ok
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	return len(p.keys)
}

// Keys returns the parameter names in insertion order. The returned slice is
// a copy.
func (p *Params) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)

	return out
}

// Clone returns an independent deep copy preserving order.
func (p *Params) Clone() *Params {
	out := NewParams()
	for _, key := range p.keys {
		out.Set(key, p.values[key])
	}

	return out
}

// Equal reports whether both mappings hold the same name/value pairs,
// regardless of insertion order.
func (p *Params) Equal(other *Params) bool {
	if other == nil || len(p.keys) != len(other.keys) {
		return false
	}

	for name, value := range p.values {
		otherValue, ok := other.values[name]
		if !ok || otherValue != value {
			return false
		}
	}

	return true
}
