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

// DataType classifies the scalar kind a Value holds. Every Value reports
// exactly one DataType, and DataType is what drives comparison/coercion
// rules and column type display.
type DataType uint8

const (
	// NullType is the type of the Null value. It has no canonical column
	// type of its own; it unifies with any other type during coercion.
	NullType DataType = iota
	Boolean
	Int8
	Int16
	Int32
	Int64
	Float32
	Float64
	Text
	Timestamp
)

// String renders the DataType the way it would appear in a column
// definition or an error message.
func (t DataType) String() string {
	switch t {
	case NullType:
		return "NULL"
	case Boolean:
		return "BOOLEAN"
	case Int8:
		return "TINYINT"
	case Int16:
		return "SMALLINT"
	case Int32:
		return "INT"
	case Int64:
		return "BIGINT"
	case Float32:
		return "FLOAT"
	case Float64:
		return "DOUBLE"
	case Text:
		return "TEXT"
	case Timestamp:
		return "TIMESTAMP"
	default:
		return "UNKNOWN"
	}
}

// IsInteger reports whether t is one of the fixed-width integer kinds.
func (t DataType) IsInteger() bool {
	switch t {
	case Int8, Int16, Int32, Int64:
		return true
	default:
		return false
	}
}

// IsFloat reports whether t is one of the floating-point kinds.
func (t DataType) IsFloat() bool {
	return t == Float32 || t == Float64
}

// IsNumeric reports whether t is an integer or floating-point kind.
func (t DataType) IsNumeric() bool {
	return t.IsInteger() || t.IsFloat()
}
