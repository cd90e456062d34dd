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
	errors "gopkg.in/src-d/go-errors.v1"
)

// ExprError kinds. A Value-level failure (sql.ErrOverflow, sql.ErrDivisionByZero,
// ...) is returned as-is rather than re-wrapped, matching spec §7 ("Value-level
// failures (ValueError) propagate into ExprError").
var (
	// ErrColumnNotFound is raised when a ColumnRef does not resolve against
	// the row-context table.
	ErrColumnNotFound = errors.NewKind("column not found: %s")

	// ErrWildcardStandalone is raised when Wildcard is evaluated outside a
	// Project/aggregate-argument position (spec §4.1).
	ErrWildcardStandalone = errors.NewKind("'*' is only valid as a projection or aggregate argument")

	// ErrUnknownFunction is raised when a Function expression's name does
	// not resolve in the function registry.
	ErrUnknownFunction = errors.NewKind("unknown function: %s")

	// ErrWrongNumberOfArgs is raised when a known function is called with
	// an argument count it does not accept.
	ErrWrongNumberOfArgs = errors.NewKind("function %s: expected %d argument(s), got %d")

	// ErrNotBoolean is raised when And/Or/Not/IsTrue/IsFalse are applied to
	// a non-boolean, non-null operand.
	ErrNotBoolean = errors.NewKind("expected boolean, got %s")

	// ErrNotText is raised when LIKE/ILIKE's operands cannot be coerced to
	// text.
	ErrNotText = errors.NewKind("expected text, got %s")
)
