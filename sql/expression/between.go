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

// NewBetween desugars `x BETWEEN low AND high` into `(low <= x) AND (x <=
// high)`, and `x NOT BETWEEN low AND high` into the Not of that (spec
// §4.1). x is duplicated into both generated comparisons rather than
// evaluated once and cached: expressions are pure (design notes §9,
// "Expression purity"), so re-evaluating x is always safe, exactly as
// original_source/src/expr.rs does for the same desugaring.
func NewBetween(x, low, high Expr, negated bool) Expr {
	between := NewBinary(
		NewBinary(low, LessThanOrEqual, x),
		And,
		NewBinary(x, LessThanOrEqual, high),
	)
	if negated {
		return NewUnary(Not, between)
	}
	return between
}
