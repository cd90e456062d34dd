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

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobblesql/cobblesql"
	"github.com/cobblesql/cobblesql/sql"
)

func TestExecuteSelectConstant(t *testing.T) {
	e := Default()
	result, err := e.Execute("SELECT 1;")
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.Rows(), 1)
	assert.Equal(t, int64(1), result.Rows()[0][0].Int())
}

func TestExecuteCreateInsertSelectWhere(t *testing.T) {
	e := Default()

	_, err := e.Execute(`CREATE TABLE widgets (id INT, name TEXT);`)
	require.NoError(t, err)

	_, err = e.Execute(`INSERT INTO widgets VALUES (1, 'nut'), (2, 'bolt'), (3, 'screw');`)
	require.NoError(t, err)

	result, err := e.Execute(`SELECT * FROM widgets WHERE id > 1;`)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Len(t, result.Rows(), 2)
}

func TestExecuteOrderByDescLimit(t *testing.T) {
	e := Default()

	_, err := e.Execute(`CREATE TABLE widgets (id INT, name TEXT);`)
	require.NoError(t, err)
	_, err = e.Execute(`INSERT INTO widgets VALUES (1, 'nut'), (2, 'bolt'), (3, 'screw');`)
	require.NoError(t, err)

	result, err := e.Execute(`SELECT * FROM widgets ORDER BY id DESC LIMIT 1;`)
	require.NoError(t, err)
	require.Len(t, result.Rows(), 1)
	assert.Equal(t, int64(3), result.Rows()[0][0].Int())
}

func TestExecuteSelectStarColumnOrder(t *testing.T) {
	e := Default()

	_, err := e.Execute(`CREATE TABLE widgets (id INT, name TEXT);`)
	require.NoError(t, err)
	_, err = e.Execute(`INSERT INTO widgets VALUES (1, 'nut');`)
	require.NoError(t, err)

	result, err := e.Execute(`SELECT * FROM widgets;`)
	require.NoError(t, err)
	cols := result.Columns()
	require.Len(t, cols, 2)
	assert.Equal(t, "id", cols[0].Name)
	assert.Equal(t, "name", cols[1].Name)
}

func TestExecuteBetween(t *testing.T) {
	e := Default()

	_, err := e.Execute(`CREATE TABLE widgets (id INT, name TEXT);`)
	require.NoError(t, err)
	_, err = e.Execute(`INSERT INTO widgets VALUES (1, 'nut'), (2, 'bolt'), (3, 'screw');`)
	require.NoError(t, err)

	result, err := e.Execute(`SELECT * FROM widgets WHERE id BETWEEN 2 AND 3;`)
	require.NoError(t, err)
	assert.Len(t, result.Rows(), 2)
}

func TestExecuteDivisionByZeroIsRuntimeStage(t *testing.T) {
	e := Default()
	_, err := e.Execute(`SELECT 1 / 0;`)
	require.Error(t, err)

	assert.Equal(t, "runtime", cobblesql.Stage(err))
	// The wrapped stage error must still satisfy Kind.Is checks against the
	// original failure, not just its own Kind: a host catching
	// sql.ErrDivisionByZero straight off an Execute() result depends on
	// this staying true across the stage-wrapping boundary.
	assert.True(t, sql.ErrDivisionByZero.Is(err))
}

func TestExecuteParseErrorIsParseStage(t *testing.T) {
	e := Default()
	_, err := e.Execute(`SELECT * FROM;`)
	require.Error(t, err)

	assert.Equal(t, "parse", cobblesql.Stage(err))
}

func TestExecuteCodegenErrorIsCodegenStage(t *testing.T) {
	e := Default()
	_, err := e.Execute(`CREATE TABLE widgets (id NOSUCHTYPE);`)
	require.Error(t, err)

	assert.Equal(t, "codegen", cobblesql.Stage(err))
}

func TestExecuteInsertWithColumnListIsUnimplemented(t *testing.T) {
	e := Default()
	_, err := e.Execute(`CREATE TABLE widgets (id INT, name TEXT);`)
	require.NoError(t, err)

	_, err = e.Execute(`INSERT INTO widgets (id, name) VALUES (1, 'nut');`)
	require.Error(t, err)
	assert.Equal(t, "runtime", cobblesql.Stage(err))
	assert.True(t, cobblesql.ErrColumnListInsertUnimplemented.Is(err))
}

func TestExecuteMultipleStatementsReturnsLastResult(t *testing.T) {
	e := Default()
	result, err := e.Execute(`CREATE TABLE widgets (id INT); INSERT INTO widgets VALUES (1); SELECT * FROM widgets;`)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Len(t, result.Rows(), 1)
}

func TestDefaultDatabaseName(t *testing.T) {
	e := Default()
	assert.Equal(t, cobblesql.DefaultDatabaseName, e.Database().Name())
}

func TestNewWithCustomDatabaseName(t *testing.T) {
	e := New(Config{DatabaseName: "reporting"})
	assert.Equal(t, "reporting", e.Database().Name())
}
