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
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueAddNullPropagates(t *testing.T) {
	v, err := NewNull().Add(NewInt64(3))
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}

func TestValueAddIntOverflow(t *testing.T) {
	_, err := NewInt64(math.MaxInt64).Add(NewInt64(1))
	require.Error(t, err)
	assert.True(t, ErrOverflow.Is(err))
}

func TestValueAddPromotesToFloat(t *testing.T) {
	v, err := NewInt64(2).Add(NewFloat64(1.5))
	require.NoError(t, err)
	assert.Equal(t, Float64, v.DataType())
	assert.InDelta(t, 3.5, v.Float(), 1e-9)
}

func TestValueDivByZero(t *testing.T) {
	_, err := NewInt64(1).Div(NewInt64(0))
	require.Error(t, err)
	assert.True(t, ErrDivisionByZero.Is(err))
}

func TestValueDivNullPropagates(t *testing.T) {
	v, err := NewInt64(1).Div(NewNull())
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}

func TestValueModByZero(t *testing.T) {
	_, err := NewInt64(7).Mod(NewInt64(0))
	require.Error(t, err)
	assert.True(t, ErrDivisionByZero.Is(err))
}

func TestValueCompareNullSortsLow(t *testing.T) {
	c, err := NewNull().Compare(NewInt64(0))
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	c, err = NewInt64(0).Compare(NewNull())
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	c, err = NewNull().Compare(NewNull())
	require.NoError(t, err)
	assert.Equal(t, 0, c)
}

func TestValueCompareNumericCrossType(t *testing.T) {
	c, err := NewInt64(2).Compare(NewFloat64(2.5))
	require.NoError(t, err)
	assert.Equal(t, -1, c)
}

func TestValueCompareIncomparableTypes(t *testing.T) {
	_, err := NewText("x").Compare(NewTimestamp(time.Time{}))
	require.Error(t, err)
	assert.True(t, ErrIncomparableTypes.Is(err))
}

func TestValueEqual(t *testing.T) {
	assert.True(t, NewInt64(3).Equal(NewInt64(3)))
	assert.False(t, NewInt64(3).Equal(NewInt64(4)))
}

func TestValueStringRendering(t *testing.T) {
	assert.Equal(t, "NULL", NewNull().String())
	assert.Equal(t, "true", NewBool(true).String())
	assert.Equal(t, "3", NewInt64(3).String())
	assert.Equal(t, "hi", NewText("hi").String())
}

func TestValueInvalidCoercion(t *testing.T) {
	_, err := NewText("not a number").Add(NewInt64(1))
	require.Error(t, err)
	assert.True(t, ErrInvalidCoercion.Is(err))
}

func TestValueTextArithmeticAgreesWithCompareOnNumericLookingText(t *testing.T) {
	// A numeric-looking Text value must be rejected the same way by both
	// arithmetic and Compare, not coerced by one and rejected by the other.
	_, addErr := NewText("5").Add(NewInt64(3))
	require.Error(t, addErr)
	assert.True(t, ErrInvalidCoercion.Is(addErr))

	_, cmpErr := NewText("5").Compare(NewInt64(3))
	require.Error(t, cmpErr)
	assert.True(t, ErrIncomparableTypes.Is(cmpErr))
}
