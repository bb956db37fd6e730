package types

// FragmentAndParameters is the rendering of one mapping or clause: a piece of
// SQL text and the parameters its placeholders refer to.
type FragmentAndParameters struct {
	Fragment   string
	Parameters Parameters
}

// Fragment returns a FragmentAndParameters with no parameters.
func Fragment(text string) FragmentAndParameters {
	return FragmentAndParameters{Fragment: text}
}

// FragmentWith returns a FragmentAndParameters binding a single parameter.
func FragmentWith(text, name string, value any) FragmentAndParameters {
	params, _ := NewParameters(Parameter{Name: name, Value: value})
	return FragmentAndParameters{Fragment: text, Parameters: params}
}

// WithFragment returns a copy carrying a different fragment and the same parameters.
func (f FragmentAndParameters) WithFragment(text string) FragmentAndParameters {
	return FragmentAndParameters{Fragment: text, Parameters: f.Parameters}
}
