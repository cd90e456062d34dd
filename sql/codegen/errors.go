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

package codegen

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrUnknownType is raised when a CREATE TABLE column names a type this
	// engine does not recognize.
	ErrUnknownType = errors.NewKind("unknown column type %q")

	// ErrColumnCountMismatch is raised when an INSERT row's value count does
	// not match its explicit column list. Positional rows (no column list)
	// are not checked here; the VM checks their arity when appending them.
	ErrColumnCountMismatch = errors.NewKind("INSERT has %d values but %d columns")

	// ErrUnknownStatement guards the closed Stmt switch in Lower; it should
	// be unreachable for any Stmt parse.Parse actually returns.
	ErrUnknownStatement = errors.NewKind("codegen has no lowering for statement type %s")
)
