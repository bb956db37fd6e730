package types

// Parameter is a single bound value keyed by its placeholder name.
type Parameter struct {
	Name  string
	Value any
}

// Parameters is an immutable, insertion-ordered mapping of parameter names
// to bound values. The zero value is an empty mapping.
type Parameters struct {
	index map[string]int
	items []Parameter
}

// NewParameters builds a mapping from the given parameters in order.
// It reports false if a name appears more than once.
func NewParameters(params ...Parameter) (Parameters, bool) {
	b := NewParameterBuilder()
	for _, p := range params {
		if !b.Put(p.Name, p.Value) {
			return Parameters{}, false
		}
	}
	return b.Build(), true
}

// Len returns the number of parameters.
func (p Parameters) Len() int {
	return len(p.items)
}

// Get returns the value bound to name.
func (p Parameters) Get(name string) (any, bool) {
	i, ok := p.index[name]
	if !ok {
		return nil, false
	}
	return p.items[i].Value, true
}

// Has reports whether name is bound.
func (p Parameters) Has(name string) bool {
	_, ok := p.index[name]
	return ok
}

// Names returns the parameter names in insertion order.
func (p Parameters) Names() []string {
	names := make([]string, len(p.items))
	for i, item := range p.items {
		names[i] = item.Name
	}
	return names
}

// Values returns the bound values in insertion order.
func (p Parameters) Values() []any {
	values := make([]any, len(p.items))
	for i, item := range p.items {
		values[i] = item.Value
	}
	return values
}

// All returns a copy of the parameters in insertion order.
func (p Parameters) All() []Parameter {
	out := make([]Parameter, len(p.items))
	copy(out, p.items)
	return out
}

// Map returns the parameters as an unordered map.
func (p Parameters) Map() map[string]any {
	m := make(map[string]any, len(p.items))
	for _, item := range p.items {
		m[item.Name] = item.Value
	}
	return m
}

// ParameterBuilder accumulates parameters for a single render pass.
type ParameterBuilder struct {
	index map[string]int
	items []Parameter
}

// NewParameterBuilder creates an empty builder.
func NewParameterBuilder() *ParameterBuilder {
	return &ParameterBuilder{index: make(map[string]int)}
}

// Put appends a parameter. An existing name is never overwritten; Put
// reports false instead.
func (b *ParameterBuilder) Put(name string, value any) bool {
	if _, exists := b.index[name]; exists {
		return false
	}
	b.index[name] = len(b.items)
	b.items = append(b.items, Parameter{Name: name, Value: value})
	return true
}

// Has reports whether name was already put.
func (b *ParameterBuilder) Has(name string) bool {
	_, ok := b.index[name]
	return ok
}

// Build returns the accumulated parameters. The builder may keep being used;
// later puts do not affect the returned value.
func (b *ParameterBuilder) Build() Parameters {
	items := make([]Parameter, len(b.items))
	copy(items, b.items)
	index := make(map[string]int, len(items))
	for i, item := range items {
		index[item.Name] = i
	}
	return Parameters{index: index, items: items}
}
