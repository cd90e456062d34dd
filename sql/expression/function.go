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
	"math"
	"strings"

	"github.com/cobblesql/cobblesql/sql"
)

// Function is a named SQL function call (spec §4.1), resolved against a
// fixed registry keyed by case-insensitive name.
type Function struct {
	Name string
	Args []Expr
}

// NewFunction builds a Function expression.
func NewFunction(name string, args []Expr) *Function {
	return &Function{Name: name, Args: args}
}

func (f *Function) String() string {
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.String()
	}
	return f.Name + "(" + strings.Join(parts, ", ") + ")"
}

// funcEntry pairs a function's implementation with the argument count it
// accepts; -1 means variadic.
type funcEntry struct {
	arity int
	call  func(args []sql.Value) (sql.Value, error)
}

// registry is the fixed set of functions this engine understands. It is
// intentionally small: aggregate functions (COUNT, SUM, ...) require
// GROUP BY, which is an explicit non-goal (spec §1) and reserved at the VM
// level (GroupBy instruction, spec §4.2).
var registry = map[string]funcEntry{
	"abs":      {1, fnAbs},
	"lower":    {1, fnLower},
	"upper":    {1, fnUpper},
	"length":   {1, fnLength},
	"coalesce": {-1, fnCoalesce},
	"concat":   {-1, fnConcat},
}

func (f *Function) Eval(ctx *Context) (sql.Value, error) {
	entry, ok := registry[strings.ToLower(f.Name)]
	if !ok {
		return sql.Value{}, ErrUnknownFunction.New(f.Name)
	}
	if entry.arity >= 0 && len(f.Args) != entry.arity {
		return sql.Value{}, ErrWrongNumberOfArgs.New(f.Name, entry.arity, len(f.Args))
	}
	args := make([]sql.Value, len(f.Args))
	for i, a := range f.Args {
		if IsWildcard(a) {
			return sql.Value{}, ErrWildcardStandalone.New()
		}
		v, err := a.Eval(ctx)
		if err != nil {
			return sql.Value{}, err
		}
		args[i] = v
	}
	return entry.call(args)
}

func fnAbs(args []sql.Value) (sql.Value, error) {
	v := args[0]
	if v.IsNull() {
		return sql.NewNull(), nil
	}
	if v.DataType().IsInteger() {
		n := v.Int()
		if n < 0 {
			n = -n
		}
		return sql.NewInt64(n), nil
	}
	return sql.NewFloat64(math.Abs(v.Float())), nil
}

func fnLower(args []sql.Value) (sql.Value, error) {
	v := args[0]
	if v.IsNull() {
		return sql.NewNull(), nil
	}
	return sql.NewText(strings.ToLower(v.Text())), nil
}

func fnUpper(args []sql.Value) (sql.Value, error) {
	v := args[0]
	if v.IsNull() {
		return sql.NewNull(), nil
	}
	return sql.NewText(strings.ToUpper(v.Text())), nil
}

func fnLength(args []sql.Value) (sql.Value, error) {
	v := args[0]
	if v.IsNull() {
		return sql.NewNull(), nil
	}
	return sql.NewInt64(int64(len(v.Text()))), nil
}

// fnCoalesce returns its first non-null argument, or Null if all are null
// (or it was called with zero arguments).
func fnCoalesce(args []sql.Value) (sql.Value, error) {
	for _, v := range args {
		if !v.IsNull() {
			return v, nil
		}
	}
	return sql.NewNull(), nil
}

// fnConcat concatenates its text arguments; any Null argument makes the
// whole result Null, matching standard SQL CONCAT semantics.
func fnConcat(args []sql.Value) (sql.Value, error) {
	var b strings.Builder
	for _, v := range args {
		if v.IsNull() {
			return sql.NewNull(), nil
		}
		b.WriteString(v.String())
	}
	return sql.NewText(b.String()), nil
}
