// Copyright 2026 The Cobblesql Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sql

import "fmt"

// TableIndex is the opaque handle the VM uses to key its table arena (spec
// §3 "Handles & ownership", design notes §9 "Arena of tables"). Schemas and
// VM registers hold TableIndex values, never the Table storage itself.
type TableIndex uint32

// String renders the handle the way register/table dumps refer to it.
func (i TableIndex) String() string { return fmt.Sprintf("#%d", uint32(i)) }

// Table is a named container: an ordered Columns definition, the rows
// inserted so far in insertion order (raw_data), and a flag distinguishing
// a user table from a VM-owned anonymous temporary.
type Table struct {
	name    string
	columns Columns
	rows    []Row
	temp    bool
}

// NewTable constructs a named, non-temporary table with the given columns.
func NewTable(name string, columns Columns) *Table {
	return &Table{name: BoundedString(name), columns: append(Columns(nil), columns...)}
}

// NewTempTable constructs an anonymous temporary table whose name is
// synthesized from its VM handle index (spec §3: "A temporary table has a
// name synthesized from its handle index").
func NewTempTable(index TableIndex) *Table {
	return &Table{name: fmt.Sprintf("$temp%d", uint32(index)), temp: true}
}

// Name returns the table's current name.
func (t *Table) Name() string { return t.name }

// Rename attaches a permanent name to a temporary table, the effect of a
// NewTable instruction (spec §4.2): the table stops being temporary.
func (t *Table) Rename(name string) {
	t.name = BoundedString(name)
	t.temp = false
}

// IsTemp reports whether this table still has a synthesized name.
func (t *Table) IsTemp() bool { return t.temp }

// Columns returns the table's column definitions.
func (t *Table) Columns() Columns { return t.columns }

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int { return len(t.columns) }

// Rows returns the table's rows in insertion order. Callers that mutate the
// returned slice's contents, not just read it, should go through SetRows.
func (t *Table) Rows() []Row { return t.rows }

// SetRows replaces the table's row list wholesale; used by Filter, Order,
// and Limit, which all mutate a table in place (spec §4.2).
func (t *Table) SetRows(rows []Row) { t.rows = rows }

// AddColumn appends col to the table's schema. Column names within one
// table must be unique (spec §3).
func (t *Table) AddColumn(col Column) error {
	if t.columns.IndexOf(col.Name) >= 0 {
		return ErrDuplicateColumnName.New(col.Name)
	}
	t.columns = append(t.columns, col)
	return nil
}

// AppendRow appends row to the table's data, after checking arity.
func (t *Table) AppendRow(row Row) error {
	if len(row) != len(t.columns) {
		return ErrRowArityMismatch.New(len(row), t.name, len(t.columns))
	}
	t.rows = append(t.rows, row)
	return nil
}

// SentinelRow always succeeds, returning a row of the table's current
// arity whose values are all Null, for probing expression types before
// any data has been inserted (spec §3, design notes §9). The nulls carry
// no column type: each one reports DataType NullType (see Zero).
func (t *Table) SentinelRow() Row {
	row := make(Row, len(t.columns))
	for i, c := range t.columns {
		row[i] = Zero(c.Type)
	}
	return row
}

// Clone returns a standalone, independent copy of the table: its own
// Columns slice and its own Row slice, so a caller holding the clone is
// unaffected by further mutation of the original (spec §6: "Tables returned
// are standalone snapshots").
func (t *Table) Clone() *Table {
	clone := &Table{
		name:    t.name,
		columns: append(Columns(nil), t.columns...),
		temp:    t.temp,
	}
	clone.rows = make([]Row, len(t.rows))
	for i, r := range t.rows {
		clone.rows[i] = r.Copy()
	}
	return clone
}

// String renders the table name, matching memory.Table's own String()
// method in the teacher's test corpus (memory/table_test.go
// TestTableString).
func (t *Table) String() string { return t.name }
