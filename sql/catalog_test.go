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

func TestNewDatabaseHasDefaultSchema(t *testing.T) {
	db := NewDatabase("mydb")
	require.NotNil(t, db.DefaultSchema())
	assert.Equal(t, DefaultSchemaName, db.DefaultSchema().Name())
}

func TestAddSchemaRejectsDuplicate(t *testing.T) {
	db := NewDatabase("mydb")
	err := db.AddSchema(NewSchema(DefaultSchemaName))
	require.Error(t, err)
	assert.True(t, ErrSchemaExists.Is(err))
}

func TestSchemaByNameMissingIsNil(t *testing.T) {
	db := NewDatabase("mydb")
	assert.Nil(t, db.SchemaByName("nope"))
}

func TestAddSchemaThenLookup(t *testing.T) {
	db := NewDatabase("mydb")
	require.NoError(t, db.AddSchema(NewSchema("reporting")))
	s := db.SchemaByName("reporting")
	require.NotNil(t, s)
	assert.Equal(t, "reporting", s.Name())
}

func TestSchemaAddAndRemoveTable(t *testing.T) {
	s := NewSchema("s")
	s.AddTable(TableIndex(1))
	s.AddTable(TableIndex(2))
	assert.Equal(t, []TableIndex{1, 2}, s.Tables())

	s.RemoveTable(TableIndex(1))
	assert.Equal(t, []TableIndex{2}, s.Tables())
}

func TestSchemasAreOrdered(t *testing.T) {
	db := NewDatabase("mydb")
	require.NoError(t, db.AddSchema(NewSchema("b")))
	require.NoError(t, db.AddSchema(NewSchema("a")))

	names := make([]string, 0)
	for _, s := range db.Schemas() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{DefaultSchemaName, "b", "a"}, names)
}
