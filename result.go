package dynsql

// UpdateStatement is a rendered update.
type UpdateStatement struct {
	sql    string
	params Parameters
}

// SQL returns the statement text.
func (s *UpdateStatement) SQL() string { return s.sql }

// Params returns the parameters referenced by the statement's placeholders.
func (s *UpdateStatement) Params() Parameters { return s.params }

// DeleteStatement is a rendered delete.
type DeleteStatement struct {
	sql    string
	params Parameters
}

// SQL returns the statement text.
func (s *DeleteStatement) SQL() string { return s.sql }

// Params returns the parameters referenced by the statement's placeholders.
func (s *DeleteStatement) Params() Parameters { return s.params }

// GeneralInsertStatement is a rendered insert with flat parameters.
type GeneralInsertStatement struct {
	sql    string
	params Parameters
}

// SQL returns the statement text.
func (s *GeneralInsertStatement) SQL() string { return s.sql }

// Params returns the parameters referenced by the statement's placeholders.
func (s *GeneralInsertStatement) Params() Parameters { return s.params }

// InsertStatement is a rendered single-record insert. Its placeholders
// address properties of Row.
type InsertStatement struct {
	sql string
	row any
}

// SQL returns the statement text.
func (s *InsertStatement) SQL() string { return s.sql }

// Row returns the record the placeholders address.
func (s *InsertStatement) Row() any { return s.row }

// BatchInsert is one insert statement to be executed once per record, each
// record bound as "row".
type BatchInsert struct {
	sql     string
	records []any
}

// SQL returns the statement text.
func (s *BatchInsert) SQL() string { return s.sql }

// Records returns the records in order.
func (s *BatchInsert) Records() []any { return copyRecords(s.records) }

// MultiRowInsertStatement is a rendered insert with one values group per
// record, addressed as "records[i]".
type MultiRowInsertStatement struct {
	sql     string
	records []any
}

// SQL returns the statement text.
func (s *MultiRowInsertStatement) SQL() string { return s.sql }

// Records returns the records in order.
func (s *MultiRowInsertStatement) Records() []any { return copyRecords(s.records) }

var (
	_ Statement = (*UpdateStatement)(nil)
	_ Statement = (*DeleteStatement)(nil)
	_ Statement = (*GeneralInsertStatement)(nil)
)
