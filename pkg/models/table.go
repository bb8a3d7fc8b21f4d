package models

// Schema describes the columns of a table beyond their names.
type Schema struct {
	// DateColumn names the column the operation date was read from.
	DateColumn string
	// Numeric lists the columns whose cells hold numbers.
	Numeric []string
}

// Table is the loaded set of operations for one run. It is never mutated after
// NewTable; readers get copies.
type Table struct {
	header     []string
	dateColumn string
	numeric    map[string]bool
	rows       []Transaction
}

// NewTable builds a table from the spreadsheet header, its schema and the
// parsed rows.
func NewTable(header []string, schema Schema, rows []Transaction) *Table {
	t := &Table{
		header:     append([]string(nil), header...),
		dateColumn: schema.DateColumn,
		numeric:    make(map[string]bool, len(schema.Numeric)),
		rows:       make([]Transaction, len(rows)),
	}
	for _, name := range schema.Numeric {
		t.numeric[name] = true
	}
	for i, r := range rows {
		t.rows[i] = r.clone()
	}
	return t
}

// Header returns the column names in spreadsheet order.
func (t *Table) Header() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.header...)
}

// DateColumn names the column the operation date was read from.
func (t *Table) DateColumn() string {
	if t == nil {
		return ""
	}
	return t.dateColumn
}

// IsNumeric reports whether column name holds numbers.
func (t *Table) IsNumeric(name string) bool {
	if t == nil {
		return false
	}
	return t.numeric[name]
}

// Rows returns a copy of every transaction in load order.
func (t *Table) Rows() []Transaction {
	if t == nil {
		return nil
	}
	out := make([]Transaction, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.clone()
	}
	return out
}

// Len returns the number of transactions.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// WithCashback returns the rows that carry a cashback value.
func (t *Table) WithCashback() []Transaction {
	var out []Transaction
	for _, r := range t.Rows() {
		if r.Cashback != nil {
			out = append(out, r)
		}
	}
	return out
}
