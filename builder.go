package dynsql

import (
	"fmt"
)

// UpdateModel describes an update statement. Models are never modified in
// place; the With methods return copies.
type UpdateModel struct {
	table    Table
	mappings []Mapping
	where    WhereModel
	row      any
}

// Update creates an update of table setting one column per mapping, in
// mapping order.
func Update(table Table, mappings ...Mapping) (*UpdateModel, error) {
	if err := checkModel(table, mappings); err != nil {
		return nil, fmt.Errorf("invalid update: %w", err)
	}
	return &UpdateModel{table: table, mappings: copyMappings(mappings)}, nil
}

// WithWhere returns a copy restricted by where.
func (m *UpdateModel) WithWhere(where WhereModel) *UpdateModel {
	c := *m
	c.where = where
	return &c
}

// WithRow returns a copy whose property mappings read from row.
func (m *UpdateModel) WithRow(row any) *UpdateModel {
	c := *m
	c.row = row
	return &c
}

// Table returns the target table.
func (m *UpdateModel) Table() Table { return m.table }

// Mappings returns the mappings in rendering order.
func (m *UpdateModel) Mappings() []Mapping { return copyMappings(m.mappings) }

// Where returns the where clause, or nil.
func (m *UpdateModel) Where() WhereModel { return m.where }

// Row returns the row property mappings read from.
func (m *UpdateModel) Row() any { return m.row }

// Render renders the model with strategy.
func (m *UpdateModel) Render(strategy Strategy) (*UpdateStatement, error) {
	r, err := NewUpdateRenderer(UpdateConfig{Model: m, Strategy: strategy})
	if err != nil {
		return nil, err
	}
	return r.Render()
}

// DeleteModel describes a delete statement.
type DeleteModel struct {
	table Table
	where WhereModel
}

// DeleteFrom creates a delete from table. Without a where clause every row
// is deleted.
func DeleteFrom(table Table) (*DeleteModel, error) {
	if table.Name == "" {
		return nil, fmt.Errorf("invalid delete: table is required")
	}
	return &DeleteModel{table: table}, nil
}

// WithWhere returns a copy restricted by where.
func (m *DeleteModel) WithWhere(where WhereModel) *DeleteModel {
	c := *m
	c.where = where
	return &c
}

// Table returns the target table.
func (m *DeleteModel) Table() Table { return m.table }

// Where returns the where clause, or nil.
func (m *DeleteModel) Where() WhereModel { return m.where }

// Render renders the model with strategy.
func (m *DeleteModel) Render(strategy Strategy) (*DeleteStatement, error) {
	r, err := NewDeleteRenderer(DeleteConfig{Model: m, Strategy: strategy})
	if err != nil {
		return nil, err
	}
	return r.Render()
}

// GeneralInsertModel describes an insert of one row whose values are bound
// as flat parameters.
type GeneralInsertModel struct {
	table    Table
	mappings []Mapping
	row      any
}

// GeneralInsertInto creates a general insert into table.
func GeneralInsertInto(table Table, mappings ...Mapping) (*GeneralInsertModel, error) {
	if err := checkModel(table, mappings); err != nil {
		return nil, fmt.Errorf("invalid general insert: %w", err)
	}
	return &GeneralInsertModel{table: table, mappings: copyMappings(mappings)}, nil
}

// WithRow returns a copy whose property mappings read from row.
func (m *GeneralInsertModel) WithRow(row any) *GeneralInsertModel {
	c := *m
	c.row = row
	return &c
}

// Table returns the target table.
func (m *GeneralInsertModel) Table() Table { return m.table }

// Mappings returns the mappings in rendering order.
func (m *GeneralInsertModel) Mappings() []Mapping { return copyMappings(m.mappings) }

// Row returns the row property mappings read from.
func (m *GeneralInsertModel) Row() any { return m.row }

// Render renders the model with strategy.
func (m *GeneralInsertModel) Render(strategy Strategy) (*GeneralInsertStatement, error) {
	r, err := NewGeneralInsertRenderer(GeneralInsertConfig{Model: m, Strategy: strategy})
	if err != nil {
		return nil, err
	}
	return r.Render()
}

// InsertModel describes an insert of one record addressed as "row".
type InsertModel struct {
	table    Table
	mappings []Mapping
	row      any
}

// InsertInto creates an insert of row into table.
func InsertInto(table Table, row any, mappings ...Mapping) (*InsertModel, error) {
	if err := checkModel(table, mappings); err != nil {
		return nil, fmt.Errorf("invalid insert: %w", err)
	}
	return &InsertModel{table: table, mappings: copyMappings(mappings), row: row}, nil
}

// WithRow returns a copy inserting row.
func (m *InsertModel) WithRow(row any) *InsertModel {
	c := *m
	c.row = row
	return &c
}

// Table returns the target table.
func (m *InsertModel) Table() Table { return m.table }

// Mappings returns the mappings in rendering order.
func (m *InsertModel) Mappings() []Mapping { return copyMappings(m.mappings) }

// Row returns the record being inserted.
func (m *InsertModel) Row() any { return m.row }

// Render renders the model with strategy.
func (m *InsertModel) Render(strategy Strategy) (*InsertStatement, error) {
	r, err := NewInsertRenderer(InsertConfig{Model: m, Strategy: strategy})
	if err != nil {
		return nil, err
	}
	return r.Render()
}

// BatchInsertModel describes one insert statement executed once per record.
type BatchInsertModel struct {
	table    Table
	mappings []Mapping
	records  []any
}

// InsertBatch creates a batch insert of records into table.
func InsertBatch(table Table, records []any, mappings ...Mapping) (*BatchInsertModel, error) {
	if err := checkModel(table, mappings); err != nil {
		return nil, fmt.Errorf("invalid batch insert: %w", err)
	}
	return &BatchInsertModel{table: table, mappings: copyMappings(mappings), records: copyRecords(records)}, nil
}

// Table returns the target table.
func (m *BatchInsertModel) Table() Table { return m.table }

// Mappings returns the mappings in rendering order.
func (m *BatchInsertModel) Mappings() []Mapping { return copyMappings(m.mappings) }

// Records returns the records to insert.
func (m *BatchInsertModel) Records() []any { return copyRecords(m.records) }

// Render renders the model with strategy.
func (m *BatchInsertModel) Render(strategy Strategy) (*BatchInsert, error) {
	r, err := NewBatchInsertRenderer(BatchInsertConfig{Model: m, Strategy: strategy})
	if err != nil {
		return nil, err
	}
	return r.Render()
}

// MultiRowInsertModel describes a single insert with one values group per
// record.
type MultiRowInsertModel struct {
	table    Table
	mappings []Mapping
	records  []any
}

// InsertMultiple creates a multi-row insert of records into table.
func InsertMultiple(table Table, records []any, mappings ...Mapping) (*MultiRowInsertModel, error) {
	if err := checkModel(table, mappings); err != nil {
		return nil, fmt.Errorf("invalid multi-row insert: %w", err)
	}
	return &MultiRowInsertModel{table: table, mappings: copyMappings(mappings), records: copyRecords(records)}, nil
}

// Table returns the target table.
func (m *MultiRowInsertModel) Table() Table { return m.table }

// Mappings returns the mappings in rendering order.
func (m *MultiRowInsertModel) Mappings() []Mapping { return copyMappings(m.mappings) }

// Records returns the records to insert.
func (m *MultiRowInsertModel) Records() []any { return copyRecords(m.records) }

// Render renders the model with strategy.
func (m *MultiRowInsertModel) Render(strategy Strategy) (*MultiRowInsertStatement, error) {
	r, err := NewMultiRowInsertRenderer(MultiRowInsertConfig{Model: m, Strategy: strategy})
	if err != nil {
		return nil, err
	}
	return r.Render()
}

// Records converts a typed slice to the record list taken by InsertBatch and
// InsertMultiple.
func Records[T any](rows []T) []any {
	out := make([]any, len(rows))
	for i, r := range rows {
		out[i] = r
	}
	return out
}

func checkModel(table Table, mappings []Mapping) error {
	if table.Name == "" {
		return fmt.Errorf("table is required")
	}
	return checkMappings(mappings)
}

func copyRecords(records []any) []any {
	if records == nil {
		return nil
	}
	out := make([]any, len(records))
	copy(out, records)
	return out
}
