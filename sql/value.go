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
	"fmt"
	"math"
	"strings"
	"time"
)

// Value is a tagged scalar: the unit of data the engine moves around. Every
// Value reports its own DataType; arithmetic and comparison are methods on
// Value rather than free functions, matching how the engine's expression
// evaluator treats values as self-describing.
type Value struct {
	typ DataType
	b   bool
	i   int64
	f   float64
	s   string
	t   time.Time
}

// NewNull returns the Null value.
func NewNull() Value { return Value{typ: NullType} }

// NewBool wraps a bool.
func NewBool(b bool) Value { return Value{typ: Boolean, b: b} }

// NewInt constructs an integer Value of the given width (8/16/32/64); any
// other width is treated as 64.
func NewInt(width int, v int64) Value {
	switch width {
	case 8:
		return Value{typ: Int8, i: v}
	case 16:
		return Value{typ: Int16, i: v}
	case 32:
		return Value{typ: Int32, i: v}
	default:
		return Value{typ: Int64, i: v}
	}
}

// NewInt64 is shorthand for NewInt(64, v).
func NewInt64(v int64) Value { return Value{typ: Int64, i: v} }

// NewFloat32 wraps a float32.
func NewFloat32(v float32) Value { return Value{typ: Float32, f: float64(v)} }

// NewFloat64 wraps a float64.
func NewFloat64(v float64) Value { return Value{typ: Float64, f: v} }

// NewText wraps a string.
func NewText(s string) Value { return Value{typ: Text, s: s} }

// NewTimestamp wraps a time.Time.
func NewTimestamp(t time.Time) Value { return Value{typ: Timestamp, t: t} }

// DataType reports the kind this Value carries.
func (v Value) DataType() DataType { return v.typ }

// IsNull reports whether this is the Null value.
func (v Value) IsNull() bool { return v.typ == NullType }

// Bool returns the underlying bool. Only meaningful when DataType() ==
// Boolean; callers that control the DataType via the expression evaluator
// never call this on another kind.
func (v Value) Bool() bool { return v.b }

// Int returns the underlying integer as int64, regardless of width.
func (v Value) Int() int64 { return v.i }

// Float returns the underlying float as float64, regardless of width.
func (v Value) Float() float64 { return v.f }

// Text returns the underlying string.
func (v Value) Text() string { return v.s }

// Time returns the underlying time.Time.
func (v Value) Time() time.Time { return v.t }

// String renders the value for display purposes (error messages, table
// dumps); it is not a SQL cast to text.
func (v Value) String() string {
	switch v.typ {
	case NullType:
		return "NULL"
	case Boolean:
		if v.b {
			return "true"
		}
		return "false"
	case Int8, Int16, Int32, Int64:
		return fmt.Sprintf("%d", v.i)
	case Float32, Float64:
		return fmt.Sprintf("%v", v.f)
	case Text:
		return v.s
	case Timestamp:
		return v.t.Format(time.RFC3339Nano)
	default:
		return "?"
	}
}

// numeric reports whether this value can participate in arithmetic/numeric
// comparison, and its float64 projection. Only the integer and floating
// DataTypes qualify; Text is never silently coerced here, so arithmetic and
// Compare agree on every type pair: '5' + 3 fails with ErrInvalidCoercion
// the same way '5' > 3 fails with ErrIncomparableTypes, rather than one
// path coercing a numeric-looking string and the other rejecting it.
func (v Value) numeric() (float64, bool) {
	switch {
	case v.typ.IsInteger():
		return float64(v.i), true
	case v.typ.IsFloat():
		return v.f, true
	default:
		return 0, false
	}
}

// isFloaty reports whether this value's native kind is floating-point, used
// to decide whether an arithmetic result should promote to float.
func (v Value) isFloaty() bool { return v.typ.IsFloat() }

// Add implements Value + Value per spec §3/§4.1: Null propagates, int/int
// stays integer with overflow rejected, int/float promotes to float.
func (v Value) Add(other Value) (Value, error) {
	return v.arith(other, "+", func(a, b int64) (int64, bool) {
		sum := a + b
		if (b > 0 && sum < a) || (b < 0 && sum > a) {
			return 0, false
		}
		return sum, true
	}, func(a, b float64) float64 { return a + b })
}

// Sub implements Value - Value.
func (v Value) Sub(other Value) (Value, error) {
	return v.arith(other, "-", func(a, b int64) (int64, bool) {
		diff := a - b
		if (b < 0 && diff < a) || (b > 0 && diff > a) {
			return 0, false
		}
		return diff, true
	}, func(a, b float64) float64 { return a - b })
}

// Mul implements Value * Value.
func (v Value) Mul(other Value) (Value, error) {
	return v.arith(other, "*", func(a, b int64) (int64, bool) {
		if a == 0 || b == 0 {
			return 0, true
		}
		p := a * b
		if p/b != a {
			return 0, false
		}
		return p, true
	}, func(a, b float64) float64 { return a * b })
}

// Div implements Value / Value. Division by zero is a typed error rather
// than Inf/NaN, for both integer and floating operands.
func (v Value) Div(other Value) (Value, error) {
	if v.IsNull() || other.IsNull() {
		return NewNull(), nil
	}
	af, aok := v.numeric()
	bf, bok := other.numeric()
	if !aok || !bok {
		return Value{}, errIncoercible(v, other)
	}
	if bf == 0 {
		return Value{}, ErrDivisionByZero.New()
	}
	if v.typ.IsInteger() && other.typ.IsInteger() {
		return NewInt64(v.i / other.i), nil
	}
	return NewFloat64(af / bf), nil
}

// Mod implements Value % Value. Modulo by zero is a typed error.
func (v Value) Mod(other Value) (Value, error) {
	if v.IsNull() || other.IsNull() {
		return NewNull(), nil
	}
	af, aok := v.numeric()
	bf, bok := other.numeric()
	if !aok || !bok {
		return Value{}, errIncoercible(v, other)
	}
	if bf == 0 {
		return Value{}, ErrDivisionByZero.New()
	}
	if v.typ.IsInteger() && other.typ.IsInteger() {
		return NewInt64(v.i % other.i), nil
	}
	return NewFloat64(math.Mod(af, bf)), nil
}

func (v Value) arith(other Value, op string, intOp func(a, b int64) (int64, bool), floatOp func(a, b float64) float64) (Value, error) {
	if v.IsNull() || other.IsNull() {
		return NewNull(), nil
	}
	af, aok := v.numeric()
	bf, bok := other.numeric()
	if !aok || !bok {
		return Value{}, errIncoercible(v, other)
	}
	if v.typ.IsInteger() && other.typ.IsInteger() {
		sum, ok := intOp(v.i, other.i)
		if !ok {
			return Value{}, ErrOverflow.New(v.String(), op, other.String())
		}
		return NewInt64(sum), nil
	}
	return NewFloat64(floatOp(af, bf)), nil
}

func errIncoercible(a, b Value) error {
	return ErrInvalidCoercion.New(b.String(), b.typ, a.typ)
}

// Compare defines the total order within/across types used by ORDER BY.
// Null sorts below every non-null value (spec §4.2 Order semantics); two
// nulls are equal; numeric kinds compare numerically; text compares
// byte-wise; timestamps compare chronologically. Incomparable non-null
// cross-type pairs (e.g. text vs timestamp) are a typed error.
func (v Value) Compare(other Value) (int, error) {
	if v.IsNull() && other.IsNull() {
		return 0, nil
	}
	if v.IsNull() {
		return -1, nil
	}
	if other.IsNull() {
		return 1, nil
	}
	if v.typ.IsNumeric() && other.typ.IsNumeric() {
		af, _ := v.numeric()
		bf, _ := other.numeric()
		switch {
		case af < bf:
			return -1, nil
		case af > bf:
			return 1, nil
		default:
			return 0, nil
		}
	}
	if v.typ == Boolean && other.typ == Boolean {
		if v.b == other.b {
			return 0, nil
		}
		if !v.b {
			return -1, nil
		}
		return 1, nil
	}
	if v.typ == Text && other.typ == Text {
		return strings.Compare(v.s, other.s), nil
	}
	if v.typ == Timestamp && other.typ == Timestamp {
		switch {
		case v.t.Before(other.t):
			return -1, nil
		case v.t.After(other.t):
			return 1, nil
		default:
			return 0, nil
		}
	}
	return 0, ErrIncomparableTypes.New(v.typ, other.typ)
}

// Equal is Compare reduced to equality, for callers that don't want to
// propagate an ordering error for mismatched types: an incomparable pair
// reports false.
func (v Value) Equal(other Value) bool {
	c, err := v.Compare(other)
	return err == nil && c == 0
}

// Zero returns the typed null placeholder for d, used to build sentinel
// rows. The DataType argument exists for callers that want to document
// which column a given null stands in for; Value itself only tracks "null"
// as a single untyped case (spec §3: "Arithmetic on Null propagates Null").
func Zero(d DataType) Value {
	_ = d
	return NewNull()
}
