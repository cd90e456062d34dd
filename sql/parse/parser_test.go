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

package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobblesql/cobblesql/sql/expression"
)

func TestParseSelectConstant(t *testing.T) {
	stmts, err := Parse("SELECT 1;")
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	sel := stmts[0].(SelectStmt)
	assert.False(t, sel.HasFrom)
	require.Len(t, sel.Items, 1)
	assert.Equal(t, "1", sel.Items[0].Expr.String())
}

func TestParseSelectFromWhereOrderLimit(t *testing.T) {
	stmts, err := Parse("SELECT * FROM widgets WHERE id > 1 ORDER BY id DESC LIMIT 1;")
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	sel := stmts[0].(SelectStmt)
	assert.True(t, sel.HasFrom)
	assert.Equal(t, "widgets", sel.From.Table)
	require.Len(t, sel.Items, 1)
	assert.True(t, expression.IsWildcard(sel.Items[0].Expr))
	require.NotNil(t, sel.Where)
	require.NotNil(t, sel.OrderBy)
	assert.False(t, sel.OrderBy.Asc)
	require.NotNil(t, sel.Limit)
	assert.Equal(t, uint64(1), *sel.Limit)
}

func TestParseSelectQualifiedTable(t *testing.T) {
	stmts, err := Parse("SELECT * FROM reporting.widgets;")
	require.NoError(t, err)
	sel := stmts[0].(SelectStmt)
	assert.Equal(t, "reporting", sel.From.Schema)
	assert.Equal(t, "widgets", sel.From.Table)
}

func TestParseSelectItemAlias(t *testing.T) {
	stmts, err := Parse("SELECT 1 AS x, 2 y;")
	require.NoError(t, err)
	sel := stmts[0].(SelectStmt)
	require.Len(t, sel.Items, 2)
	assert.Equal(t, "x", sel.Items[0].Alias)
	assert.Equal(t, "y", sel.Items[1].Alias)
}

func TestParseSelectBetween(t *testing.T) {
	stmts, err := Parse("SELECT * FROM t WHERE x BETWEEN 1 AND 10;")
	require.NoError(t, err)
	sel := stmts[0].(SelectStmt)
	require.NotNil(t, sel.Where)
	assert.Contains(t, sel.Where.String(), "AND")
}

func TestParseSelectNotBetween(t *testing.T) {
	stmts, err := Parse("SELECT * FROM t WHERE x NOT BETWEEN 1 AND 10;")
	require.NoError(t, err)
	sel := stmts[0].(SelectStmt)
	require.NotNil(t, sel.Where)
	assert.Contains(t, sel.Where.String(), "NOT")
}

func TestParseSelectIsNull(t *testing.T) {
	stmts, err := Parse("SELECT * FROM t WHERE x IS NOT NULL;")
	require.NoError(t, err)
	sel := stmts[0].(SelectStmt)
	assert.Equal(t, "x IS NOT NULL", sel.Where.String())
}

func TestParseCreateSchema(t *testing.T) {
	stmts, err := Parse("CREATE SCHEMA IF NOT EXISTS reporting;")
	require.NoError(t, err)
	cs := stmts[0].(CreateSchemaStmt)
	assert.Equal(t, "reporting", cs.Name)
	assert.True(t, cs.ExistsOk)
}

func TestParseCreateTable(t *testing.T) {
	stmts, err := Parse(`CREATE TABLE widgets (
		id INT PRIMARY KEY,
		name TEXT NOT NULL,
		qty INT DEFAULT 0
	);`)
	require.NoError(t, err)
	ct := stmts[0].(CreateTableStmt)
	assert.Equal(t, "widgets", ct.Table.Table)
	require.Len(t, ct.Columns, 3)
	assert.True(t, ct.Columns[0].PK)
	assert.True(t, ct.Columns[1].NotNull)
	require.NotNil(t, ct.Columns[2].Default)
}

func TestParseInsertMultipleRows(t *testing.T) {
	stmts, err := Parse("INSERT INTO widgets VALUES (1, 'a'), (2, 'b');")
	require.NoError(t, err)
	ins := stmts[0].(InsertStmt)
	assert.Equal(t, "widgets", ins.Table.Table)
	assert.Len(t, ins.Rows, 2)
	assert.Len(t, ins.Rows[0], 2)
}

func TestParseInsertWithColumnList(t *testing.T) {
	stmts, err := Parse("INSERT INTO widgets (id, name) VALUES (1, 'a');")
	require.NoError(t, err)
	ins := stmts[0].(InsertStmt)
	assert.Equal(t, []string{"id", "name"}, ins.Columns)
}

func TestParseMultipleStatements(t *testing.T) {
	stmts, err := Parse("SELECT 1; SELECT 2;")
	require.NoError(t, err)
	assert.Len(t, stmts, 2)
}

func TestParseUnknownStatementFails(t *testing.T) {
	_, err := Parse("DELETE FROM widgets;")
	require.Error(t, err)
	assert.True(t, ErrUnknownStatement.Is(err))
}

func TestParseUnexpectedTokenFails(t *testing.T) {
	_, err := Parse("SELECT * FROM;")
	require.Error(t, err)
	assert.True(t, ErrUnexpectedToken.Is(err))
}
