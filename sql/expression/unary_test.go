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

func TestUnaryIsNullIsNotNull(t *testing.T) {
	v := evalLit(t, NewUnary(IsNull, NewLiteral(sql.NewNull())))
	assert.True(t, v.Bool())

	v = evalLit(t, NewUnary(IsNotNull, NewLiteral(sql.NewInt64(1))))
	assert.True(t, v.Bool())
}

func TestUnaryIsTrueIsFalseOnNull(t *testing.T) {
	v := evalLit(t, NewUnary(IsTrue, NewLiteral(sql.NewNull())))
	assert.False(t, v.Bool())

	v = evalLit(t, NewUnary(IsFalse, NewLiteral(sql.NewNull())))
	assert.False(t, v.Bool())
}

func TestUnaryNotOnNullIsNull(t *testing.T) {
	v := evalLit(t, NewUnary(Not, NewLiteral(sql.NewNull())))
	assert.True(t, v.IsNull())
}

func TestUnaryNotFlipsBool(t *testing.T) {
	v := evalLit(t, NewUnary(Not, NewLiteral(sql.NewBool(true))))
	assert.False(t, v.Bool())
}

func TestUnaryMinus(t *testing.T) {
	v := evalLit(t, NewUnary(UnaryMinus, NewLiteral(sql.NewInt64(5))))
	assert.Equal(t, int64(-5), v.Int())
}

func TestUnaryMinusOnNullIsNull(t *testing.T) {
	v := evalLit(t, NewUnary(UnaryMinus, NewLiteral(sql.NewNull())))
	assert.True(t, v.IsNull())
}

func TestUnaryNotRejectsNonBoolean(t *testing.T) {
	_, err := NewUnary(Not, NewLiteral(sql.NewInt64(1))).Eval(NewContext(nil, nil))
	require.Error(t, err)
	assert.True(t, ErrNotBoolean.Is(err))
}
