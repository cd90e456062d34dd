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

// Package ic defines the IntermediateCode instruction set (spec §4.2): the
// linear, unconditional program the parser/lowerer produces and the
// VirtualMachine runs. It depends only on sql and sql/expression so both
// the codegen package (which builds programs) and the root cobblesql
// package (whose VirtualMachine runs them) can depend on it without a
// cycle.
package ic

import (
	"fmt"

	"github.com/cobblesql/cobblesql/sql"
	"github.com/cobblesql/cobblesql/sql/expression"
)

// RegisterIndex addresses a VM register. Indexes are dense, non-negative,
// and chosen entirely by the lowerer; the VM never invents one (spec §3).
type RegisterIndex uint32

func (i RegisterIndex) String() string { return fmt.Sprintf("%%%d", uint32(i)) }

// TableRef names a table the lowerer wants resolved against the catalog,
// optionally schema-qualified.
type TableRef struct {
	SchemaName string // empty means "use the default schema"
	TableName  string
}

func (r TableRef) String() string {
	if r.SchemaName == "" {
		return r.TableName
	}
	return r.SchemaName + "." + r.TableName
}

// IntermediateCode is the ordered, unconditional instruction sequence the
// VM runs for one statement (spec §4.2): no branches, no loops, no labels.
type IntermediateCode struct {
	Instrs []Instruction
}

// Instruction is one step of an IntermediateCode program.
type Instruction interface {
	// instr is unexported so Instruction is a closed set: every variant
	// must live in this package.
	instr()
}

// Value stores a literal in a register.
type ValueInstr struct {
	Idx RegisterIndex
	Val sql.Value
}

// Expr stores an expression in a register.
type ExprInstr struct {
	Idx  RegisterIndex
	Expr expression.Expr
}

// Source resolves a table reference and stores its handle in a register.
type SourceInstr struct {
	Idx RegisterIndex
	Ref TableRef
}

// Empty creates a fresh temporary table and stores its handle.
type EmptyInstr struct {
	Idx RegisterIndex
}

// Return terminates the statement, producing a result table derived from
// the register at Idx.
type ReturnInstr struct {
	Idx RegisterIndex
}

// Filter in-place filters the table at Idx by a predicate.
type FilterInstr struct {
	Idx  RegisterIndex
	Expr expression.Expr
}

// Project appends a projected column to the Out table, reading from In.
type ProjectInstr struct {
	In    RegisterIndex
	Out   RegisterIndex
	Expr  expression.Expr
	Alias string
}

// Order sorts the table at Idx by an expression, descending if Asc is
// false.
type OrderInstr struct {
	Idx  RegisterIndex
	Expr expression.Expr
	Asc  bool
}

// Limit truncates the table at Idx to at most N rows.
type LimitInstr struct {
	Idx RegisterIndex
	N   uint64
}

// NewSchema creates a schema, honoring ExistsOk for duplicate handling.
type NewSchemaInstr struct {
	Name     string
	ExistsOk bool
}

// ColumnDef builds a Column value in a register.
type ColumnDefInstr struct {
	Idx      RegisterIndex
	Name     string
	DataType sql.DataType
}

// AddColumnOption appends an option to the column in a register.
type AddColumnOptionInstr struct {
	Idx RegisterIndex
	Opt sql.ColumnOption
}

// AddColumn appends a column definition to a table.
type AddColumnInstr struct {
	TableIdx RegisterIndex
	ColIdx   RegisterIndex
}

// NewTable names the temporary table at Idx and registers it under Name in
// the target schema (empty SchemaName means the default schema).
type NewTableInstr struct {
	Idx        RegisterIndex
	Name       string
	SchemaName string
	ExistsOk   bool
}

// InsertDef begins an insert targeting the table referenced at TableIdx,
// storing the new insert-definition register at Idx.
type InsertDefInstr struct {
	TableIdx RegisterIndex
	Idx      RegisterIndex
}

// ColumnInsertDef declares a target column for the insert at InsertIdx,
// reading the column definition from ColIdx.
type ColumnInsertDefInstr struct {
	InsertIdx RegisterIndex
	ColIdx    RegisterIndex
}

// RowDef begins a new row within the insert at InsertIdx, storing the new
// insert-row register at RowIdx.
type RowDefInstr struct {
	InsertIdx RegisterIndex
	RowIdx    RegisterIndex
}

// AddValue evaluates Expr against the target table's sentinel row and
// appends the result to the row at RowIdx.
type AddValueInstr struct {
	RowIdx RegisterIndex
	Expr   expression.Expr
}

// Insert finalizes the insert at Idx, appending all its rows to the
// target table.
type InsertInstr struct {
	Idx RegisterIndex
}

func (ValueInstr) instr()            {}
func (ExprInstr) instr()             {}
func (SourceInstr) instr()           {}
func (EmptyInstr) instr()            {}
func (ReturnInstr) instr()           {}
func (FilterInstr) instr()           {}
func (ProjectInstr) instr()          {}
func (OrderInstr) instr()            {}
func (LimitInstr) instr()            {}
func (NewSchemaInstr) instr()        {}
func (ColumnDefInstr) instr()        {}
func (AddColumnOptionInstr) instr()  {}
func (AddColumnInstr) instr()        {}
func (NewTableInstr) instr()         {}
func (InsertDefInstr) instr()        {}
func (ColumnInsertDefInstr) instr()  {}
func (RowDefInstr) instr()           {}
func (AddValueInstr) instr()         {}
func (InsertInstr) instr()           {}
func (GroupByInstr) instr()          {}
func (UpdateInstr) instr()           {}
func (DropTableInstr) instr()        {}
func (RemoveColumnInstr) instr()     {}
func (RenameColumnInstr) instr()     {}
func (UnionInstr) instr()            {}
func (CrossJoinInstr) instr()        {}
func (NaturalJoinInstr) instr()      {}

// Reserved instructions (spec §4.2): decodable, but execution always
// returns a typed Unsupported failure. Their runtime semantics are
// intentionally unspecified (design notes §9 Open Questions).
type (
	GroupByInstr      struct{ Idx RegisterIndex }
	UpdateInstr       struct{ TableIdx RegisterIndex }
	DropTableInstr    struct{ Ref TableRef }
	RemoveColumnInstr struct{ TableIdx RegisterIndex }
	RenameColumnInstr struct{ TableIdx RegisterIndex }
	UnionInstr        struct{ Left, Right RegisterIndex }
	CrossJoinInstr    struct{ Left, Right RegisterIndex }
	NaturalJoinInstr  struct{ Left, Right RegisterIndex }
)

// InstructionName returns the human-readable instruction-kind name used in
// Unsupported error messages.
func InstructionName(i Instruction) string {
	switch i.(type) {
	case GroupByInstr:
		return "GROUP BY"
	case UpdateInstr:
		return "UPDATE"
	case DropTableInstr:
		return "DROP TABLE"
	case RemoveColumnInstr:
		return "RemoveColumn"
	case RenameColumnInstr:
		return "RenameColumn"
	case UnionInstr:
		return "UNION"
	case CrossJoinInstr:
		return "CROSS JOIN"
	case NaturalJoinInstr:
		return "NATURAL JOIN"
	default:
		return fmt.Sprintf("%T", i)
	}
}
