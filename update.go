package dynsql

import (
	"strings"

	"github.com/zoobzio/dynsql/internal/render"
)

// UpdateConfig supplies an UpdateRenderer. Both fields are required.
type UpdateConfig struct {
	Model    *UpdateModel
	Strategy Strategy
}

// UpdateRenderer renders an update model.
type UpdateRenderer struct {
	model    *UpdateModel
	strategy Strategy
}

// NewUpdateRenderer validates cfg and creates a renderer.
func NewUpdateRenderer(cfg UpdateConfig) (*UpdateRenderer, error) {
	if cfg.Model == nil {
		return nil, render.NewConfigurationError("update renderer", "model")
	}
	if cfg.Strategy == nil {
		return nil, render.NewConfigurationError("update renderer", "strategy")
	}
	return &UpdateRenderer{model: cfg.Model, strategy: cfg.Strategy}, nil
}

// Render renders "update <table> set a = ..., b = ...[ where ...]". Set
// phrases appear in mapping order with dropped conditional mappings
// left out; the where clause continues the same parameter numbering.
func (r *UpdateRenderer) Render() (*UpdateStatement, error) {
	ctx := newRenderContext(render.KindUpdate, r.strategy)

	phrases, err := ctx.collectSetPhrases(r.model.mappings, r.model.row)
	if err != nil {
		return nil, err
	}

	fps := make([]FragmentAndParameters, len(phrases))
	for i, p := range phrases {
		fps[i] = p.value.WithFragment(p.column.QualifiedName() + " = " + p.value.Fragment)
	}
	c, err := render.Collect(string(render.KindUpdate), fps...)
	if err != nil {
		return nil, err
	}
	if c.Len() == 0 {
		return nil, render.NewInvalidSQLError("update has no set phrases")
	}

	var sb strings.Builder
	sb.WriteString("update ")
	sb.WriteString(r.model.table.Reference())
	sb.WriteString(" ")
	sb.WriteString(c.Join("set ", ", "))
	if err := appendWhere(&sb, c, r.model.where, ctx.strategy, ctx.seq); err != nil {
		return nil, err
	}

	return &UpdateStatement{sql: sb.String(), params: c.Parameters()}, nil
}
