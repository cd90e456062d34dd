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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTempTableHasNoColumnsOrRows(t *testing.T) {
	tbl := NewTempTable(TableIndex(3))
	assert.Equal(t, 0, tbl.ColumnCount())
	assert.Empty(t, tbl.Rows())
	assert.True(t, tbl.IsTemp())
	assert.Equal(t, "$temp3", tbl.Name())
}

func TestTableRenameClearsTemp(t *testing.T) {
	tbl := NewTempTable(TableIndex(1))
	tbl.Rename("widgets")
	assert.Equal(t, "widgets", tbl.Name())
	assert.False(t, tbl.IsTemp())
}

func TestAddColumnRejectsDuplicateName(t *testing.T) {
	tbl := NewTable("t", Columns{NewColumn("a", Int64)})
	err := tbl.AddColumn(NewColumn("a", Text))
	require.Error(t, err)
	assert.True(t, ErrDuplicateColumnName.Is(err))
}

func TestAppendRowChecksArity(t *testing.T) {
	tbl := NewTable("t", Columns{NewColumn("a", Int64), NewColumn("b", Text)})
	err := tbl.AppendRow(NewRow(NewInt64(1)))
	require.Error(t, err)
	assert.True(t, ErrRowArityMismatch.Is(err))

	require.NoError(t, tbl.AppendRow(NewRow(NewInt64(1), NewText("x"))))
	assert.Len(t, tbl.Rows(), 1)
}

func TestAppendRowZeroArityIntoZeroColumnTable(t *testing.T) {
	tbl := NewTempTable(TableIndex(1))
	require.NoError(t, tbl.AppendRow(NewRow()))
	assert.Len(t, tbl.Rows(), 1)
	assert.Empty(t, tbl.Rows()[0])
}

func TestSentinelRowIsAllNulls(t *testing.T) {
	tbl := NewTable("t", Columns{NewColumn("a", Int64), NewColumn("b", Text)})
	row := tbl.SentinelRow()
	require.Len(t, row, 2)
	assert.True(t, row[0].IsNull())
	assert.True(t, row[1].IsNull())
}

func TestCloneIsIndependent(t *testing.T) {
	tbl := NewTable("t", Columns{NewColumn("a", Int64)})
	require.NoError(t, tbl.AppendRow(NewRow(NewInt64(1))))

	clone := tbl.Clone()
	require.NoError(t, tbl.AppendRow(NewRow(NewInt64(2))))

	assert.Len(t, clone.Rows(), 1)
	assert.Len(t, tbl.Rows(), 2)
}
