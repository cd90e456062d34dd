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

import "github.com/cobblesql/cobblesql/sql"

// UnOp enumerates the unary operators spec §4.1 requires.
type UnOp uint8

const (
	UnaryPlus UnOp = iota
	UnaryMinus
	Not
	IsFalse
	IsTrue
	IsNull
	IsNotNull
)

var unOpSymbols = map[UnOp]string{
	UnaryPlus: "+", UnaryMinus: "-", Not: "NOT",
	IsFalse: "IS FALSE", IsTrue: "IS TRUE", IsNull: "IS NULL", IsNotNull: "IS NOT NULL",
}

func (op UnOp) String() string { return unOpSymbols[op] }

// Unary is a single-operand expression.
type Unary struct {
	Op      UnOp
	Operand Expr
}

// NewUnary builds a Unary expression.
func NewUnary(op UnOp, operand Expr) *Unary { return &Unary{Op: op, Operand: operand} }

func (u *Unary) String() string {
	if u.Op == IsFalse || u.Op == IsTrue || u.Op == IsNull || u.Op == IsNotNull {
		return u.Operand.String() + " " + u.Op.String()
	}
	return u.Op.String() + u.Operand.String()
}

func (u *Unary) Eval(ctx *Context) (sql.Value, error) {
	v, err := u.Operand.Eval(ctx)
	if err != nil {
		return sql.Value{}, err
	}

	switch u.Op {
	case IsNull:
		return sql.NewBool(v.IsNull()), nil
	case IsNotNull:
		return sql.NewBool(!v.IsNull()), nil
	case IsTrue:
		if v.IsNull() {
			return sql.NewBool(false), nil
		}
		t, err := toTri(v)
		if err != nil {
			return sql.Value{}, err
		}
		return sql.NewBool(t == triTrue), nil
	case IsFalse:
		if v.IsNull() {
			return sql.NewBool(false), nil
		}
		t, err := toTri(v)
		if err != nil {
			return sql.Value{}, err
		}
		return sql.NewBool(t == triFalse), nil
	case Not:
		if v.IsNull() {
			return sql.NewNull(), nil
		}
		t, err := toTri(v)
		if err != nil {
			return sql.Value{}, err
		}
		if t == triTrue {
			return sql.NewBool(false), nil
		}
		return sql.NewBool(true), nil
	case UnaryPlus:
		return v, nil
	case UnaryMinus:
		if v.IsNull() {
			return sql.NewNull(), nil
		}
		return sql.NewInt64(0).Sub(v)
	default:
		return sql.Value{}, ErrUnknownFunction.New(u.Op.String())
	}
}
