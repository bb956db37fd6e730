package dynsql

import (
	"strings"

	"github.com/zoobzio/dynsql/internal/render"
)

// InsertConfig supplies an InsertRenderer. Both fields are required.
type InsertConfig struct {
	Model    *InsertModel
	Strategy Strategy
}

// InsertRenderer renders a single-record insert.
type InsertRenderer struct {
	model    *InsertModel
	strategy Strategy
}

// NewInsertRenderer validates cfg and creates a renderer.
func NewInsertRenderer(cfg InsertConfig) (*InsertRenderer, error) {
	if cfg.Model == nil {
		return nil, render.NewConfigurationError("insert renderer", "model")
	}
	if cfg.Strategy == nil {
		return nil, render.NewConfigurationError("insert renderer", "strategy")
	}
	return &InsertRenderer{model: cfg.Model, strategy: cfg.Strategy}, nil
}

// Render renders "insert into <table> (a, b) values (..., ...)" with
// placeholders addressing properties of "row".
func (r *InsertRenderer) Render() (*InsertStatement, error) {
	ctx := newRenderContext(render.KindInsert, r.strategy)

	columns, values, err := ctx.recordValues(r.model.mappings, rowLocator, r.model.row)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, render.NewInvalidSQLError("insert has no columns")
	}
	return &InsertStatement{sql: insertSQL(r.model.table, columns, values), row: r.model.row}, nil
}

// BatchInsertConfig supplies a BatchInsertRenderer. Both fields are required.
type BatchInsertConfig struct {
	Model    *BatchInsertModel
	Strategy Strategy
}

// BatchInsertRenderer renders a batch insert.
type BatchInsertRenderer struct {
	model    *BatchInsertModel
	strategy Strategy
}

// NewBatchInsertRenderer validates cfg and creates a renderer.
func NewBatchInsertRenderer(cfg BatchInsertConfig) (*BatchInsertRenderer, error) {
	if cfg.Model == nil {
		return nil, render.NewConfigurationError("batch insert renderer", "model")
	}
	if cfg.Strategy == nil {
		return nil, render.NewConfigurationError("batch insert renderer", "strategy")
	}
	return &BatchInsertRenderer{model: cfg.Model, strategy: cfg.Strategy}, nil
}

// Render renders one insert whose placeholders address "row"; the caller
// executes it once per record.
func (r *BatchInsertRenderer) Render() (*BatchInsert, error) {
	if len(r.model.records) == 0 {
		return nil, render.NewInvalidSQLError("batch insert has no records")
	}
	ctx := newRenderContext(render.KindBatchInsert, r.strategy)

	columns, values, err := ctx.recordValues(r.model.mappings, rowLocator, nil)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, render.NewInvalidSQLError("batch insert has no columns")
	}
	return &BatchInsert{sql: insertSQL(r.model.table, columns, values), records: copyRecords(r.model.records)}, nil
}

// MultiRowInsertConfig supplies a MultiRowInsertRenderer. Both fields are
// required.
type MultiRowInsertConfig struct {
	Model    *MultiRowInsertModel
	Strategy Strategy
}

// MultiRowInsertRenderer renders a multi-row insert.
type MultiRowInsertRenderer struct {
	model    *MultiRowInsertModel
	strategy Strategy
}

// NewMultiRowInsertRenderer validates cfg and creates a renderer.
func NewMultiRowInsertRenderer(cfg MultiRowInsertConfig) (*MultiRowInsertRenderer, error) {
	if cfg.Model == nil {
		return nil, render.NewConfigurationError("multi-row insert renderer", "model")
	}
	if cfg.Strategy == nil {
		return nil, render.NewConfigurationError("multi-row insert renderer", "strategy")
	}
	return &MultiRowInsertRenderer{model: cfg.Model, strategy: cfg.Strategy}, nil
}

// Render renders one values group per record, the i-th addressing
// "records[i]".
func (r *MultiRowInsertRenderer) Render() (*MultiRowInsertStatement, error) {
	if len(r.model.records) == 0 {
		return nil, render.NewInvalidSQLError("multi-row insert has no records")
	}
	ctx := newRenderContext(render.KindMultiRowInsert, r.strategy)

	var columns []string
	groups := make([]string, len(r.model.records))
	for i, record := range r.model.records {
		cols, values, err := ctx.recordValues(r.model.mappings, recordLocator(i), record)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			columns = cols
		}
		groups[i] = values
	}
	if len(columns) == 0 {
		return nil, render.NewInvalidSQLError("multi-row insert has no columns")
	}

	return &MultiRowInsertStatement{
		sql:     insertSQL(r.model.table, columns, strings.Join(groups, ", ")),
		records: copyRecords(r.model.records),
	}, nil
}

func insertSQL(table Table, columns []string, values string) string {
	return "insert into " + table.Name + " (" + strings.Join(columns, ", ") + ") values " + values
}
