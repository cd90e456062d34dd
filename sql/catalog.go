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

// DefaultSchemaName is the name every Database carries its permanent
// default schema under (spec §4.4). NewDatabase always uses this name; the
// database name does not change it.
const DefaultSchemaName = "default"

// Schema is a named set of table handles (spec §3). It owns references to
// tables, not their storage — the VM owns all Table values, keyed by
// TableIndex.
type Schema struct {
	name   string
	tables []TableIndex
}

// NewSchema constructs an empty, named Schema.
func NewSchema(name string) *Schema {
	return &Schema{name: BoundedString(name)}
}

// Name returns the schema's name.
func (s *Schema) Name() string { return s.name }

// Tables returns the table handles registered in this schema, in the order
// they were added.
func (s *Schema) Tables() []TableIndex { return s.tables }

// AddTable registers a table handle under this schema. Callers (the VM) are
// responsible for checking name uniqueness before calling this, since the
// Schema only holds handles, not table names (spec §4.4 interface list).
func (s *Schema) AddTable(idx TableIndex) {
	s.tables = append(s.tables, idx)
}

// RemoveTable drops idx from this schema's handle list, if present.
func (s *Schema) RemoveTable(idx TableIndex) {
	for i, t := range s.tables {
		if t == idx {
			s.tables = append(s.tables[:i], s.tables[i+1:]...)
			return
		}
	}
}

// String renders the schema's name.
func (s *Schema) String() string { return s.name }

// Database is a named collection of Schemas, with one designated "default"
// schema always present (spec §3, §4.4).
type Database struct {
	name    string
	schemas map[string]*Schema
	order   []string
}

// NewDatabase constructs a Database with its permanent default schema
// already created.
func NewDatabase(name string) *Database {
	d := &Database{
		name:    BoundedString(name),
		schemas: make(map[string]*Schema),
	}
	d.addSchemaUnchecked(NewSchema(DefaultSchemaName))
	return d
}

// Name returns the database's name.
func (d *Database) Name() string { return d.name }

// DefaultSchema returns the database's permanent default schema. It is
// always non-nil (spec §8 invariant: "default_schema() is non-null for
// every Database").
func (d *Database) DefaultSchema() *Schema {
	return d.schemas[DefaultSchemaName]
}

// SchemaByName looks up a schema by exact, case-sensitive name (spec
// §4.4). It returns nil if no such schema exists.
func (d *Database) SchemaByName(name string) *Schema {
	return d.schemas[name]
}

// AddSchema registers a new schema. Schema names within a database are
// unique (spec §3); adding a duplicate name is a caller error surfaced as
// ErrSchemaExists.
func (d *Database) AddSchema(s *Schema) error {
	if _, ok := d.schemas[s.Name()]; ok {
		return ErrSchemaExists.New(s.Name())
	}
	d.addSchemaUnchecked(s)
	return nil
}

func (d *Database) addSchemaUnchecked(s *Schema) {
	d.schemas[s.Name()] = s
	d.order = append(d.order, s.Name())
}

// Schemas returns every schema in the database, in the order they were
// added.
func (d *Database) Schemas() []*Schema {
	out := make([]*Schema, len(d.order))
	for i, name := range d.order {
		out[i] = d.schemas[name]
	}
	return out
}

// String renders the database's name.
func (d *Database) String() string { return d.name }
