package types

// Table is a table reference with an optional alias.
type Table struct {
	Name  string
	Alias string
}

// Reference renders the table as it appears after from, update or delete
// from: the name followed by the alias when one is set.
func (t Table) Reference() string {
	if t.Alias != "" {
		return t.Name + " " + t.Alias
	}
	return t.Name
}

// Qualifier returns the prefix used when columns of this table are rendered
// with a qualified name: the alias when present, otherwise nothing.
func (t Table) Qualifier() string {
	return t.Alias
}
