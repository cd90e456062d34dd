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

// Row is an ordered tuple of Values. It carries no identity beyond its
// position in a Table's row list (spec §3).
type Row []Value

// NewRow builds a Row from already-constructed Values, the canonical
// constructor used throughout tests and call sites (mirrors the teacher's
// own sql.NewRow(vals...) convention).
func NewRow(vals ...Value) Row {
	r := make(Row, len(vals))
	copy(r, vals)
	return r
}

// Copy returns an independent copy of the row.
func (r Row) Copy() Row {
	out := make(Row, len(r))
	copy(out, r)
	return out
}
