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

// Package parse turns SQL text into statement trees the codegen package
// lowers into IntermediateCode. Expressions are built directly as
// sql/expression.Expr values rather than a separate parser-only AST: the
// parser and the VM agree on one expression representation throughout.
package parse

import "github.com/cobblesql/cobblesql/sql/expression"

// Stmt is one parsed statement.
type Stmt interface {
	stmt()
}

// TableName optionally qualifies a table by schema.
type TableName struct {
	Schema string
	Table  string
}

// SelectItem is one entry of a SELECT list: an expression, plus an
// optional AS alias. Expr is a *expression.Wildcard for a bare `*`.
type SelectItem struct {
	Expr  expression.Expr
	Alias string
}

// OrderByClause names the sort expression and direction of an ORDER BY.
type OrderByClause struct {
	Expr expression.Expr
	Asc  bool
}

// SelectStmt is a SELECT statement. From is the zero value (empty Table
// name) when there is no FROM clause.
type SelectStmt struct {
	Items   []SelectItem
	From    TableName
	HasFrom bool
	Where   expression.Expr // nil if no WHERE clause
	OrderBy *OrderByClause  // nil if no ORDER BY clause
	Limit   *uint64         // nil if no LIMIT clause
}

// ColumnDef is one column of a CREATE TABLE column list.
type ColumnDef struct {
	Name    string
	Type    string
	NotNull bool
	Unique  bool
	PK      bool
	Default expression.Expr // nil if no DEFAULT
}

// CreateSchemaStmt is a CREATE SCHEMA statement.
type CreateSchemaStmt struct {
	Name     string
	ExistsOk bool
}

// CreateTableStmt is a CREATE TABLE statement.
type CreateTableStmt struct {
	Table    TableName
	Columns  []ColumnDef
	ExistsOk bool
}

// InsertStmt is an INSERT INTO statement. Columns is nil when no explicit
// column list was given.
type InsertStmt struct {
	Table   TableName
	Columns []string
	Rows    [][]expression.Expr
}

func (SelectStmt) stmt()       {}
func (CreateSchemaStmt) stmt() {}
func (CreateTableStmt) stmt()  {}
func (InsertStmt) stmt()       {}
