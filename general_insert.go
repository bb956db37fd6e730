package dynsql

import "github.com/zoobzio/dynsql/internal/render"

// GeneralInsertConfig supplies a GeneralInsertRenderer. Both fields are
// required.
type GeneralInsertConfig struct {
	Model    *GeneralInsertModel
	Strategy Strategy
}

// GeneralInsertRenderer renders a general insert model.
type GeneralInsertRenderer struct {
	model    *GeneralInsertModel
	strategy Strategy
}

// NewGeneralInsertRenderer validates cfg and creates a renderer.
func NewGeneralInsertRenderer(cfg GeneralInsertConfig) (*GeneralInsertRenderer, error) {
	if cfg.Model == nil {
		return nil, render.NewConfigurationError("general insert renderer", "model")
	}
	if cfg.Strategy == nil {
		return nil, render.NewConfigurationError("general insert renderer", "strategy")
	}
	return &GeneralInsertRenderer{model: cfg.Model, strategy: cfg.Strategy}, nil
}

// Render renders "insert into <table> (a, b) values (..., ...)".
func (r *GeneralInsertRenderer) Render() (*GeneralInsertStatement, error) {
	ctx := newRenderContext(render.KindGeneralInsert, r.strategy)

	phrases, err := ctx.collectSetPhrases(r.model.mappings, r.model.row)
	if err != nil {
		return nil, err
	}

	columns := make([]string, len(phrases))
	values := make([]FragmentAndParameters, len(phrases))
	for i, p := range phrases {
		columns[i] = p.column.Name
		values[i] = p.value
	}
	c, err := render.Collect(string(render.KindGeneralInsert), values...)
	if err != nil {
		return nil, err
	}
	if c.Len() == 0 {
		return nil, render.NewInvalidSQLError("insert has no columns")
	}

	return &GeneralInsertStatement{
		sql:    insertSQL(r.model.table, columns, c.Join("(", ", ")+")"),
		params: c.Parameters(),
	}, nil
}
