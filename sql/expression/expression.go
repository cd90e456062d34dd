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

// Package expression implements the expression tree and its evaluation
// contract (spec §4.1): a pure function from (expression, row-context) to
// sql.Value. No variant here mutates anything or performs I/O.
package expression

import (
	"fmt"

	"github.com/cobblesql/cobblesql/sql"
)

// Context carries the row-context an expression evaluates against: the
// table whose columns ColumnRef resolves names from, and the specific row
// supplying values. Both are required for any expression that is not a
// pure literal.
type Context struct {
	Table *sql.Table
	Row   sql.Row
}

// NewContext builds an evaluation Context for a single row of table.
func NewContext(table *sql.Table, row sql.Row) *Context {
	return &Context{Table: table, Row: row}
}

// Expr is the evaluation contract every expression tree node implements.
type Expr interface {
	// Eval computes this expression's value against ctx. It is purely
	// functional: no mutation, no I/O (spec §4.1).
	Eval(ctx *Context) (sql.Value, error)
	// String renders the expression the way it would appear in an error
	// message or EXPLAIN-style dump.
	String() string
}

// Literal is a Value embedded directly in the expression tree.
type Literal struct {
	Val sql.Value
}

// NewLiteral wraps v as a literal expression.
func NewLiteral(v sql.Value) *Literal { return &Literal{Val: v} }

func (l *Literal) Eval(*Context) (sql.Value, error) { return l.Val, nil }
func (l *Literal) String() string                   { return l.Val.String() }

// ColumnRef names a column, one- or two-part qualified (spec §4.1). This
// engine only ever resolves single-table row-contexts, so a qualifying
// table/schema prefix is accepted syntactically but matched only against
// the unqualified column name.
type ColumnRef struct {
	Qualifier string
	Name      string
}

// NewColumnRef builds an unqualified column reference.
func NewColumnRef(name string) *ColumnRef { return &ColumnRef{Name: name} }

// NewQualifiedColumnRef builds a two-part qualified column reference.
func NewQualifiedColumnRef(qualifier, name string) *ColumnRef {
	return &ColumnRef{Qualifier: qualifier, Name: name}
}

func (c *ColumnRef) Eval(ctx *Context) (sql.Value, error) {
	if ctx.Table == nil {
		return sql.Value{}, ErrColumnNotFound.New(c.String())
	}
	idx := ctx.Table.Columns().IndexOf(c.Name)
	if idx < 0 || idx >= len(ctx.Row) {
		return sql.Value{}, ErrColumnNotFound.New(c.String())
	}
	return ctx.Row[idx], nil
}

func (c *ColumnRef) String() string {
	if c.Qualifier == "" {
		return c.Name
	}
	return fmt.Sprintf("%s.%s", c.Qualifier, c.Name)
}

// Wildcard stands for "all columns of the input". It is only legal as the
// sole argument of an aggregate function or as a Project expression; Eval
// always fails because standalone evaluation is never legal (spec §4.1).
type Wildcard struct{}

// NewWildcard builds a Wildcard expression.
func NewWildcard() *Wildcard { return &Wildcard{} }

func (w *Wildcard) Eval(*Context) (sql.Value, error) {
	return sql.Value{}, ErrWildcardStandalone.New()
}

func (w *Wildcard) String() string { return "*" }

// IsWildcard reports whether e is the Wildcard expression, the check the
// VM's Project instruction (spec §4.2) needs to pick its "copy all
// columns" path.
func IsWildcard(e Expr) bool {
	_, ok := e.(*Wildcard)
	return ok
}
