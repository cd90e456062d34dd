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

// Package codegen lowers parsed statements into IntermediateCode programs
// (spec §4.2, §4.3). Lowering never touches the catalog itself; it only
// decides which instructions to emit. Catalog mutation happens entirely
// inside the VM at execution time.
package codegen

import (
	"strings"

	"github.com/cobblesql/cobblesql/ic"
	"github.com/cobblesql/cobblesql/sql"
	"github.com/cobblesql/cobblesql/sql/parse"
)

// builder accumulates instructions and hands out fresh register indexes, in
// allocation order, exactly the way original_source/src/vm.rs's own
// next_index() counter works.
type builder struct {
	instrs []ic.Instruction
	next   ic.RegisterIndex
}

func (b *builder) alloc() ic.RegisterIndex {
	r := b.next
	b.next++
	return r
}

func (b *builder) emit(instr ic.Instruction) {
	b.instrs = append(b.instrs, instr)
}

// Lower turns one parsed statement into an IntermediateCode program.
func Lower(stmt parse.Stmt) (*ic.IntermediateCode, error) {
	b := &builder{}
	var err error
	switch s := stmt.(type) {
	case parse.SelectStmt:
		err = lowerSelect(b, s)
	case parse.CreateSchemaStmt:
		err = lowerCreateSchema(b, s)
	case parse.CreateTableStmt:
		err = lowerCreateTable(b, s)
	case parse.InsertStmt:
		err = lowerInsert(b, s)
	default:
		return nil, ErrUnknownStatement.New(stmt)
	}
	if err != nil {
		return nil, err
	}
	return &ic.IntermediateCode{Instrs: b.instrs}, nil
}

func lowerCreateSchema(b *builder, s parse.CreateSchemaStmt) error {
	b.emit(ic.NewSchemaInstr{Name: s.Name, ExistsOk: s.ExistsOk})
	return nil
}

func lowerCreateTable(b *builder, s parse.CreateTableStmt) error {
	tableReg := b.alloc()
	b.emit(ic.EmptyInstr{Idx: tableReg})

	for _, col := range s.Columns {
		dt, err := dataTypeFromName(col.Type)
		if err != nil {
			return err
		}
		colReg := b.alloc()
		b.emit(ic.ColumnDefInstr{Idx: colReg, Name: col.Name, DataType: dt})

		if col.NotNull {
			b.emit(ic.AddColumnOptionInstr{Idx: colReg, Opt: sql.ColumnOption{Kind: sql.NotNull}})
		}
		if col.Unique {
			b.emit(ic.AddColumnOptionInstr{Idx: colReg, Opt: sql.ColumnOption{Kind: sql.Unique}})
		}
		if col.PK {
			b.emit(ic.AddColumnOptionInstr{Idx: colReg, Opt: sql.ColumnOption{Kind: sql.PrimaryKey}})
		}
		if col.Default != nil {
			b.emit(ic.AddColumnOptionInstr{Idx: colReg, Opt: sql.ColumnOption{Kind: sql.Default, Expr: col.Default}})
		}

		b.emit(ic.AddColumnInstr{TableIdx: tableReg, ColIdx: colReg})
	}

	b.emit(ic.NewTableInstr{
		Idx:        tableReg,
		Name:       s.Table.Table,
		SchemaName: s.Table.Schema,
		ExistsOk:   s.ExistsOk,
	})
	return nil
}

func lowerInsert(b *builder, s parse.InsertStmt) error {
	srcReg := b.alloc()
	b.emit(ic.SourceInstr{Idx: srcReg, Ref: ic.TableRef{SchemaName: s.Table.Schema, TableName: s.Table.Table}})

	insReg := b.alloc()
	b.emit(ic.InsertDefInstr{TableIdx: srcReg, Idx: insReg})

	for _, name := range s.Columns {
		colReg := b.alloc()
		b.emit(ic.ColumnDefInstr{Idx: colReg, Name: name, DataType: sql.NullType})
		b.emit(ic.ColumnInsertDefInstr{InsertIdx: insReg, ColIdx: colReg})
	}

	for _, row := range s.Rows {
		if len(s.Columns) != 0 && len(row) != len(s.Columns) {
			return ErrColumnCountMismatch.New(len(row), len(s.Columns))
		}
		rowReg := b.alloc()
		b.emit(ic.RowDefInstr{InsertIdx: insReg, RowIdx: rowReg})
		for _, valExpr := range row {
			b.emit(ic.AddValueInstr{RowIdx: rowReg, Expr: valExpr})
		}
	}

	b.emit(ic.InsertInstr{Idx: insReg})
	return nil
}

func lowerSelect(b *builder, s parse.SelectStmt) error {
	srcReg := b.alloc()
	if s.HasFrom {
		b.emit(ic.SourceInstr{Idx: srcReg, Ref: ic.TableRef{SchemaName: s.From.Schema, TableName: s.From.Table}})
	} else {
		// No FROM clause: build the one-row, zero-column "unit" relation
		// that constant-only projections run against, the way a SELECT
		// with no table source implicitly selects from a single row.
		b.emit(ic.EmptyInstr{Idx: srcReg})
		unitIns := b.alloc()
		b.emit(ic.InsertDefInstr{TableIdx: srcReg, Idx: unitIns})
		unitRow := b.alloc()
		b.emit(ic.RowDefInstr{InsertIdx: unitIns, RowIdx: unitRow})
		b.emit(ic.InsertInstr{Idx: unitIns})
	}

	if s.Where != nil {
		b.emit(ic.FilterInstr{Idx: srcReg, Expr: s.Where})
	}

	outReg := b.alloc()
	b.emit(ic.EmptyInstr{Idx: outReg})
	for _, item := range s.Items {
		b.emit(ic.ProjectInstr{In: srcReg, Out: outReg, Expr: item.Expr, Alias: item.Alias})
	}

	if s.OrderBy != nil {
		b.emit(ic.OrderInstr{Idx: outReg, Expr: s.OrderBy.Expr, Asc: s.OrderBy.Asc})
	}
	if s.Limit != nil {
		b.emit(ic.LimitInstr{Idx: outReg, N: *s.Limit})
	}

	b.emit(ic.ReturnInstr{Idx: outReg})
	return nil
}

// dataTypeFromName maps a CREATE TABLE column type name to a DataType,
// accepting the common SQL aliases alongside the canonical names DataType
// itself renders in String().
func dataTypeFromName(name string) (sql.DataType, error) {
	switch strings.ToUpper(name) {
	case "BOOLEAN", "BOOL":
		return sql.Boolean, nil
	case "TINYINT", "INT8":
		return sql.Int8, nil
	case "SMALLINT", "INT16":
		return sql.Int16, nil
	case "INT", "INTEGER", "INT32":
		return sql.Int32, nil
	case "BIGINT", "INT64":
		return sql.Int64, nil
	case "FLOAT", "FLOAT32", "REAL":
		return sql.Float32, nil
	case "DOUBLE", "FLOAT64":
		return sql.Float64, nil
	case "TEXT", "VARCHAR", "CHAR", "STRING":
		return sql.Text, nil
	case "TIMESTAMP", "DATETIME":
		return sql.Timestamp, nil
	default:
		return 0, ErrUnknownType.New(name)
	}
}
