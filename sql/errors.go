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
	errors "gopkg.in/src-d/go-errors.v1"
)

// Value-level and catalog-level error kinds. The value-level ones (overflow,
// division by zero, comparison and coercion failures) surface during
// expression evaluation and are wrapped into ExprError by the VM; the
// catalog and table ones are returned by the VM as-is.
var (
	// ErrOverflow is raised when integer arithmetic would wrap around
	// rather than silently producing an incorrect result.
	ErrOverflow = errors.NewKind("integer overflow evaluating %s %s %s")

	// ErrDivisionByZero is raised by both division and modulo by zero.
	ErrDivisionByZero = errors.NewKind("division by zero")

	// ErrIncomparableTypes is raised when two values cannot be ordered
	// even after coercion (e.g. text compared to a timestamp).
	ErrIncomparableTypes = errors.NewKind("cannot compare %s and %s")

	// ErrInvalidCoercion is raised when a cross-type coercion rule fails,
	// e.g. a non-numeric string used in arithmetic.
	ErrInvalidCoercion = errors.NewKind("cannot coerce value %v of type %s to %s")

	// ErrSchemaNotFound names a schema lookup miss.
	ErrSchemaNotFound = errors.NewKind("schema not found: %s")

	// ErrSchemaExists is raised by CREATE SCHEMA without IF NOT EXISTS
	// against an already-present schema name.
	ErrSchemaExists = errors.NewKind("schema already exists: %s")

	// ErrTableNotFound names a table lookup miss within a schema.
	ErrTableNotFound = errors.NewKind("table not found: %s")

	// ErrTableExists is raised by CREATE TABLE without IF NOT EXISTS
	// against an already-present table name.
	ErrTableExists = errors.NewKind("table already exists: %s")

	// ErrDuplicateColumnName is raised when a table definition repeats a
	// column name.
	ErrDuplicateColumnName = errors.NewKind("duplicate column name: %s")

	// ErrRowArityMismatch is raised when a row's length does not match
	// its table's column count.
	ErrRowArityMismatch = errors.NewKind("row has %d values, table %s has %d columns")
)
