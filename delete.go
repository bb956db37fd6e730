package dynsql

import (
	"strings"

	"github.com/zoobzio/dynsql/internal/render"
	"github.com/zoobzio/dynsql/internal/types"
)

// DeleteConfig supplies a DeleteRenderer. Both fields are required.
type DeleteConfig struct {
	Model    *DeleteModel
	Strategy Strategy
}

// DeleteRenderer renders a delete model.
type DeleteRenderer struct {
	model    *DeleteModel
	strategy Strategy
}

// NewDeleteRenderer validates cfg and creates a renderer.
func NewDeleteRenderer(cfg DeleteConfig) (*DeleteRenderer, error) {
	if cfg.Model == nil {
		return nil, render.NewConfigurationError("delete renderer", "model")
	}
	if cfg.Strategy == nil {
		return nil, render.NewConfigurationError("delete renderer", "strategy")
	}
	return &DeleteRenderer{model: cfg.Model, strategy: cfg.Strategy}, nil
}

// Render renders "delete from <table>[ where ...]".
func (r *DeleteRenderer) Render() (*DeleteStatement, error) {
	seq := types.NewSequence()
	c := render.NewCollector("delete")

	var sb strings.Builder
	sb.WriteString("delete from ")
	sb.WriteString(r.model.table.Reference())
	if err := appendWhere(&sb, c, r.model.where, r.strategy, seq); err != nil {
		return nil, err
	}
	return &DeleteStatement{sql: sb.String(), params: c.Parameters()}, nil
}
