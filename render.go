package dynsql

import (
	"fmt"
	"strings"

	"github.com/zoobzio/dynsql/internal/render"
	"github.com/zoobzio/dynsql/internal/types"
)

// renderContext carries the state shared by every part of one render: the
// strategy and the sequence generated parameter names are drawn from.
// Nested selects and where clauses receive the same sequence.
type renderContext struct {
	kind     render.StatementKind
	strategy Strategy
	seq      *Sequence
}

// newRenderContext starts a render with a fresh sequence.
func newRenderContext(kind render.StatementKind, strategy Strategy) *renderContext {
	return &renderContext{
		kind:     kind,
		strategy: strategy,
		seq:      types.NewSequence(),
	}
}

// bind allocates the next parameter name and returns the column placeholder
// with the parameter it refers to.
func (ctx *renderContext) bind(column Column, value any) FragmentAndParameters {
	name := ctx.strategy.NextParameterName(ctx.seq)
	placeholder := ctx.strategy.PlaceholderForColumn(column, DefaultParameterPrefix, name)
	return types.FragmentWith(placeholder, name, value)
}

// appendWhere renders where, if any, after a space and merges its
// parameters into c.
func appendWhere(sb *strings.Builder, c *render.Collector, where WhereModel, strategy Strategy, seq *Sequence) error {
	if where == nil {
		return nil
	}
	fp, err := where.RenderWhere(strategy, seq)
	if err != nil {
		return fmt.Errorf("failed to render where clause: %w", err)
	}
	if fp.Fragment == "" {
		return nil
	}
	if err := c.AddParameters(fp.Parameters); err != nil {
		return err
	}
	sb.WriteString(" ")
	sb.WriteString(fp.Fragment)
	return nil
}
