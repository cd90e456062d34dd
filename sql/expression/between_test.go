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

package expression

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cobblesql/cobblesql/sql"
)

func TestBetweenInRange(t *testing.T) {
	e := NewBetween(NewLiteral(sql.NewInt64(5)), NewLiteral(sql.NewInt64(1)), NewLiteral(sql.NewInt64(10)), false)
	v := evalLit(t, e)
	assert.True(t, v.Bool())
}

func TestBetweenOutOfRange(t *testing.T) {
	e := NewBetween(NewLiteral(sql.NewInt64(20)), NewLiteral(sql.NewInt64(1)), NewLiteral(sql.NewInt64(10)), false)
	v := evalLit(t, e)
	assert.False(t, v.Bool())
}

func TestNotBetween(t *testing.T) {
	e := NewBetween(NewLiteral(sql.NewInt64(20)), NewLiteral(sql.NewInt64(1)), NewLiteral(sql.NewInt64(10)), true)
	v := evalLit(t, e)
	assert.True(t, v.Bool())
}

func TestBetweenBoundsAreInclusive(t *testing.T) {
	e := NewBetween(NewLiteral(sql.NewInt64(1)), NewLiteral(sql.NewInt64(1)), NewLiteral(sql.NewInt64(10)), false)
	v := evalLit(t, e)
	assert.True(t, v.Bool())

	e = NewBetween(NewLiteral(sql.NewInt64(10)), NewLiteral(sql.NewInt64(1)), NewLiteral(sql.NewInt64(10)), false)
	v = evalLit(t, e)
	assert.True(t, v.Bool())
}
