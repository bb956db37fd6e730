package render

import (
	"strings"

	"github.com/zoobzio/dynsql/internal/types"
)

// Collector merges the renderings of many mappings into one ordered list of
// fragments and one parameter mapping. A Collector serves a single render.
type Collector struct {
	statement string
	fragments []string
	params    *types.ParameterBuilder
}

// NewCollector creates an empty collector. The statement name is carried
// into any error the collector reports.
func NewCollector(statement string) *Collector {
	return &Collector{
		statement: statement,
		params:    types.NewParameterBuilder(),
	}
}

// Add appends the fragment and merges its parameters. A name that is already
// present is an internal error; the existing value is kept.
func (c *Collector) Add(fp types.FragmentAndParameters) error {
	if err := c.AddParameters(fp.Parameters); err != nil {
		return err
	}
	c.fragments = append(c.fragments, fp.Fragment)
	return nil
}

// AddParameters merges parameters without contributing a fragment.
func (c *Collector) AddParameters(params types.Parameters) error {
	for _, name := range params.Names() {
		if c.params.Has(name) {
			return NewDuplicateParameterError(c.statement, name)
		}
	}
	for _, p := range params.All() {
		c.params.Put(p.Name, p.Value)
	}
	return nil
}

// Len returns the number of collected fragments.
func (c *Collector) Len() int {
	return len(c.fragments)
}

// Parameters returns the merged parameters.
func (c *Collector) Parameters() types.Parameters {
	return c.params.Build()
}

// Join returns prefix followed by the fragments separated by sep.
func (c *Collector) Join(prefix, sep string) string {
	return prefix + strings.Join(c.fragments, sep)
}

// Collect reduces fps, in order, into a new collector.
func Collect(statement string, fps ...types.FragmentAndParameters) (*Collector, error) {
	c := NewCollector(statement)
	for _, fp := range fps {
		if err := c.Add(fp); err != nil {
			return nil, err
		}
	}
	return c, nil
}
