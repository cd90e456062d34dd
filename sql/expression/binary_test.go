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
	"github.com/stretchr/testify/require"

	"github.com/cobblesql/cobblesql/sql"
)

func evalLit(t *testing.T, e Expr) sql.Value {
	t.Helper()
	v, err := e.Eval(NewContext(nil, nil))
	require.NoError(t, err)
	return v
}

func TestBinaryArithmetic(t *testing.T) {
	e := NewBinary(NewLiteral(sql.NewInt64(2)), Plus, NewLiteral(sql.NewInt64(3)))
	v := evalLit(t, e)
	assert.Equal(t, int64(5), v.Int())
}

func TestBinaryComparisonNullPropagates(t *testing.T) {
	e := NewBinary(NewLiteral(sql.NewNull()), Equal, NewLiteral(sql.NewInt64(1)))
	v := evalLit(t, e)
	assert.True(t, v.IsNull())
}

func TestBinaryEqual(t *testing.T) {
	e := NewBinary(NewLiteral(sql.NewInt64(4)), Equal, NewLiteral(sql.NewInt64(4)))
	v := evalLit(t, e)
	assert.True(t, v.Bool())
}

// Kleene truth table spot-checks (spec §4.1): Null AND false = false, Null
// OR true = true, Null AND true = Null, Null OR false = Null.
func TestAndOrKleeneLogic(t *testing.T) {
	tr := sql.NewBool(true)
	fa := sql.NewBool(false)
	nl := sql.NewNull()

	cases := []struct {
		op       BinOp
		l, r     sql.Value
		expNull  bool
		expValue bool
	}{
		{And, nl, fa, false, false},
		{Or, nl, tr, false, true},
		{And, nl, tr, true, false},
		{Or, nl, fa, true, false},
	}
	for _, c := range cases {
		e := NewBinary(NewLiteral(c.l), c.op, NewLiteral(c.r))
		v := evalLit(t, e)
		if c.expNull {
			assert.True(t, v.IsNull())
		} else {
			require.False(t, v.IsNull())
			assert.Equal(t, c.expValue, v.Bool())
		}
	}
}

func TestAndOrRejectsNonBoolean(t *testing.T) {
	e := NewBinary(NewLiteral(sql.NewInt64(1)), And, NewLiteral(sql.NewBool(true)))
	_, err := e.Eval(NewContext(nil, nil))
	require.Error(t, err)
	assert.True(t, ErrNotBoolean.Is(err))
}

func TestLikeMatchWildcards(t *testing.T) {
	e := NewBinary(NewLiteral(sql.NewText("hello")), Like, NewLiteral(sql.NewText("h%o")))
	v := evalLit(t, e)
	assert.True(t, v.Bool())

	e = NewBinary(NewLiteral(sql.NewText("hello")), Like, NewLiteral(sql.NewText("h_llo")))
	v = evalLit(t, e)
	assert.True(t, v.Bool())

	e = NewBinary(NewLiteral(sql.NewText("hello")), Like, NewLiteral(sql.NewText("world")))
	v = evalLit(t, e)
	assert.False(t, v.Bool())
}

func TestILikeCaseInsensitive(t *testing.T) {
	e := NewBinary(NewLiteral(sql.NewText("HELLO")), ILike, NewLiteral(sql.NewText("hello")))
	v := evalLit(t, e)
	assert.True(t, v.Bool())
}

func TestDivisionByZeroPropagatesAsError(t *testing.T) {
	e := NewBinary(NewLiteral(sql.NewInt64(1)), Divide, NewLiteral(sql.NewInt64(0)))
	_, err := e.Eval(NewContext(nil, nil))
	require.Error(t, err)
	assert.True(t, sql.ErrDivisionByZero.Is(err))
}

func TestBinaryString(t *testing.T) {
	e := NewBinary(NewLiteral(sql.NewInt64(1)), Plus, NewLiteral(sql.NewInt64(2)))
	assert.Equal(t, "(1 + 2)", e.String())
}
