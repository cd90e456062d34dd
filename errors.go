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

package cobblesql

import (
	goerrors "gopkg.in/src-d/go-errors.v1"

	"github.com/pkg/errors"
)

// RuntimeError kinds not already owned by the sql package (TableNotFound,
// TableExists, SchemaNotFound, SchemaExists live in sql/errors.go and are
// returned as-is, preserving their Kind identity per spec §7).
var (
	// ErrEmptyRegister is raised when an instruction reads a register that
	// was never written. Per spec §4.5 this is treated as a lowerer bug,
	// not user error, but is still returned structured rather than
	// panicking.
	ErrEmptyRegister = goerrors.NewKind("register %s was never initialized (internal error, please file an issue)")

	// ErrRegisterKindMismatch names both the operation attempted and the
	// register kind actually found, for the same "lowerer bug" case.
	ErrRegisterKindMismatch = goerrors.NewKind("%s: register %s holds %s, not the expected kind (internal error, please file an issue)")

	// ErrCannotReturn is raised by the Return instruction when the target
	// register holds something other than a table handle or a scalar
	// value (spec §4.2 Return semantics).
	ErrCannotReturn = goerrors.NewKind("register %s cannot be returned: holds %s")

	// ErrFilterWithNonBoolean is raised when a WHERE predicate evaluates to
	// something other than Bool or Null (spec §4.2 Filter semantics).
	ErrFilterWithNonBoolean = goerrors.NewKind("WHERE clause evaluated to non-boolean value %s (expression: %s)")

	// ErrProjectTableSizeMismatch guards the Project invariant |in.rows| ==
	// |out.rows| (spec §4.2).
	ErrProjectTableSizeMismatch = goerrors.NewKind("project: input has %d rows but output has %d")

	// ErrExprError wraps any failure from expression evaluation
	// (sql.Value-level or sql/expression-level) as it crosses into the VM's
	// RuntimeError space (spec §7: "Expression-level failures (ExprError)
	// propagate into RuntimeError").
	ErrExprError = goerrors.NewKind("%s")

	// ErrUnsupported is returned by every reserved instruction (spec §4.2,
	// §9): GroupBy, Update, DropTable, RemoveColumn, RenameColumn, Union,
	// CrossJoin, NaturalJoin.
	ErrUnsupported = goerrors.NewKind("instruction not implemented: %s")

	// ErrColumnListInsertUnimplemented is returned by the Insert instruction
	// when its InsertDef carries an explicit column list. Routing values
	// into named columns requires filling the remaining columns with
	// defaults, and default values are an open question left undecided
	// (spec §9); rather than guess, this form fails with a well-defined
	// error instead of silently doing the wrong thing.
	ErrColumnListInsertUnimplemented = goerrors.NewKind("INSERT with an explicit column list is not yet implemented")
)

// wrapExprError lifts any error produced while evaluating an expression
// into the RuntimeError space, preserving the original message. Registered
// Kind errors from sql/expression or sql (e.g. ErrColumnNotFound,
// ErrDivisionByZero) still satisfy errors.Is/As against their own Kind;
// ErrExprError only adds the "this happened during expression evaluation"
// framing the VM uses for its own error reporting.
func wrapExprError(err error) error {
	if err == nil {
		return nil
	}
	return ErrExprError.Wrap(err, err.Error())
}

// Stage-tagging kinds for the three top-level error categories spec §7
// names: ParseStage (malformed SQL), CodegenStage (unsupported construct),
// and RuntimeStage (VM-time failure). VirtualMachine.Execute wraps
// whichever stage failed with the matching Kind, using Wrap so the
// original error (e.g. sql.ErrDivisionByZero, sql.ErrTableNotFound) stays
// reachable as the cause. Unlike a plain struct, a *goerrors.Error stays
// the concrete type Kind.Is itself walks, so a host checking
// sql.ErrDivisionByZero.Is(err) against an Execute() error still works
// instead of silently returning false at the Execute boundary.
var (
	ErrParseStage   = goerrors.NewKind("parse: %s")
	ErrCodegenStage = goerrors.NewKind("codegen: %s")
	ErrRuntimeStage = goerrors.NewKind("runtime: %s")
)

// Stage reports which pipeline stage produced err ("parse", "codegen", or
// "runtime"), or "" if err was not tagged by one of the Kinds above.
func Stage(err error) string {
	switch {
	case ErrParseStage.Is(err):
		return "parse"
	case ErrCodegenStage.Is(err):
		return "codegen"
	case ErrRuntimeStage.Is(err):
		return "runtime"
	default:
		return ""
	}
}

// wrapInternal adds a stack trace to a condition that should never happen
// on well-formed input (malformed register state, spec §4.5), the way
// engine.go wraps unexpected conditions with github.com/pkg/errors.
func wrapInternal(err error) error {
	return errors.WithStack(err)
}
