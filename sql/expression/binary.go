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
	"strings"

	"github.com/spf13/cast"

	"github.com/cobblesql/cobblesql/sql"
)

// BinOp enumerates the binary operators spec §4.1 requires.
type BinOp uint8

const (
	Plus BinOp = iota
	Minus
	Multiply
	Divide
	Modulo
	Equal
	NotEqual
	LessThan
	LessThanOrEqual
	GreaterThan
	GreaterThanOrEqual
	Like
	ILike
	And
	Or
)

var binOpSymbols = map[BinOp]string{
	Plus: "+", Minus: "-", Multiply: "*", Divide: "/", Modulo: "%",
	Equal: "=", NotEqual: "<>", LessThan: "<", LessThanOrEqual: "<=",
	GreaterThan: ">", GreaterThanOrEqual: ">=", Like: "LIKE", ILike: "ILIKE",
	And: "AND", Or: "OR",
}

func (op BinOp) String() string { return binOpSymbols[op] }

// Binary is a two-operand expression: left op right.
type Binary struct {
	Left  Expr
	Op    BinOp
	Right Expr
}

// NewBinary builds a Binary expression.
func NewBinary(left Expr, op BinOp, right Expr) *Binary {
	return &Binary{Left: left, Op: op, Right: right}
}

func (b *Binary) String() string {
	return "(" + b.Left.String() + " " + b.Op.String() + " " + b.Right.String() + ")"
}

func (b *Binary) Eval(ctx *Context) (sql.Value, error) {
	// And/Or follow Kleene three-valued logic (spec §4.1):
	// `Null AND false = false`, `Null OR true = true`. evalLogic always
	// evaluates both sides and looks the result up in a truth table; it
	// does not short-circuit.
	if b.Op == And || b.Op == Or {
		return b.evalLogic(ctx)
	}

	left, err := b.Left.Eval(ctx)
	if err != nil {
		return sql.Value{}, err
	}
	right, err := b.Right.Eval(ctx)
	if err != nil {
		return sql.Value{}, err
	}

	switch b.Op {
	case Plus:
		return left.Add(right)
	case Minus:
		return left.Sub(right)
	case Multiply:
		return left.Mul(right)
	case Divide:
		return left.Div(right)
	case Modulo:
		return left.Mod(right)
	case Equal, NotEqual, LessThan, LessThanOrEqual, GreaterThan, GreaterThanOrEqual:
		return compare(left, b.Op, right)
	case Like, ILike:
		return likeMatch(left, right, b.Op == ILike)
	default:
		return sql.Value{}, ErrUnknownFunction.New(b.Op.String())
	}
}

// compare implements the six relational operators. Null on either side
// yields Null (three-valued logic, spec §4.1); otherwise it defers to
// Value.Compare for the documented ordering/coercion rule.
func compare(left sql.Value, op BinOp, right sql.Value) (sql.Value, error) {
	if left.IsNull() || right.IsNull() {
		return sql.NewNull(), nil
	}
	c, err := left.Compare(right)
	if err != nil {
		return sql.Value{}, err
	}
	var result bool
	switch op {
	case Equal:
		result = c == 0
	case NotEqual:
		result = c != 0
	case LessThan:
		result = c < 0
	case LessThanOrEqual:
		result = c <= 0
	case GreaterThan:
		result = c > 0
	case GreaterThanOrEqual:
		result = c >= 0
	}
	return sql.NewBool(result), nil
}

// tri is a three-valued logic truth value: true, false, or null. And/Or are
// implemented as truth tables over tri rather than short-circuit Go bools,
// per design notes §9 ("all logical operators must be implemented by truth
// tables ... or correctness will drift").
type tri int8

const (
	triFalse tri = iota
	triTrue
	triNull
)

func toTri(v sql.Value) (tri, error) {
	if v.IsNull() {
		return triNull, nil
	}
	if v.DataType() != sql.Boolean {
		return 0, ErrNotBoolean.New(v.DataType())
	}
	if v.Bool() {
		return triTrue, nil
	}
	return triFalse, nil
}

func (t tri) value() sql.Value {
	switch t {
	case triTrue:
		return sql.NewBool(true)
	case triFalse:
		return sql.NewBool(false)
	default:
		return sql.NewNull()
	}
}

var andTable = map[tri]map[tri]tri{
	triTrue:  {triTrue: triTrue, triFalse: triFalse, triNull: triNull},
	triFalse: {triTrue: triFalse, triFalse: triFalse, triNull: triFalse},
	triNull:  {triTrue: triNull, triFalse: triFalse, triNull: triNull},
}

var orTable = map[tri]map[tri]tri{
	triTrue:  {triTrue: triTrue, triFalse: triTrue, triNull: triTrue},
	triFalse: {triTrue: triTrue, triFalse: triFalse, triNull: triNull},
	triNull:  {triTrue: triTrue, triFalse: triNull, triNull: triNull},
}

func (b *Binary) evalLogic(ctx *Context) (sql.Value, error) {
	leftVal, err := b.Left.Eval(ctx)
	if err != nil {
		return sql.Value{}, err
	}
	left, err := toTri(leftVal)
	if err != nil {
		return sql.Value{}, err
	}
	rightVal, err := b.Right.Eval(ctx)
	if err != nil {
		return sql.Value{}, err
	}
	right, err := toTri(rightVal)
	if err != nil {
		return sql.Value{}, err
	}
	if b.Op == And {
		return andTable[left][right].value(), nil
	}
	return orTable[left][right].value(), nil
}

// likeMatch implements SQL LIKE/ILIKE wildcard matching: `%` matches any
// run of characters, `_` matches exactly one. ILIKE folds case first.
func likeMatch(value, pattern sql.Value, caseInsensitive bool) (sql.Value, error) {
	if value.IsNull() || pattern.IsNull() {
		return sql.NewNull(), nil
	}
	s, err := cast.ToStringE(stringable(value))
	if err != nil {
		return sql.Value{}, ErrNotText.New(value.DataType())
	}
	p, err := cast.ToStringE(stringable(pattern))
	if err != nil {
		return sql.Value{}, ErrNotText.New(pattern.DataType())
	}
	if caseInsensitive {
		s = strings.ToLower(s)
		p = strings.ToLower(p)
	}
	return sql.NewBool(likeGlob(s, p)), nil
}

func stringable(v sql.Value) interface{} {
	if v.DataType() == sql.Text {
		return v.Text()
	}
	return v.String()
}

// likeGlob matches s against a SQL LIKE pattern p using `%` (any run) and
// `_` (single char), via straightforward dynamic programming over
// [len(s)+1][len(p)+1]bool rather than regex translation, so that literal
// regex metacharacters in s never need escaping.
func likeGlob(s, p string) bool {
	sr, pr := []rune(s), []rune(p)
	dp := make([][]bool, len(sr)+1)
	for i := range dp {
		dp[i] = make([]bool, len(pr)+1)
	}
	dp[0][0] = true
	for j := 1; j <= len(pr); j++ {
		if pr[j-1] == '%' {
			dp[0][j] = dp[0][j-1]
		}
	}
	for i := 1; i <= len(sr); i++ {
		for j := 1; j <= len(pr); j++ {
			switch pr[j-1] {
			case '%':
				dp[i][j] = dp[i-1][j] || dp[i][j-1]
			case '_':
				dp[i][j] = dp[i-1][j-1]
			default:
				dp[i][j] = dp[i-1][j-1] && sr[i-1] == pr[j-1]
			}
		}
	}
	return dp[len(sr)][len(pr)]
}
