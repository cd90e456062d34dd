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

package parse

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrUnexpectedToken names both what the parser found and what it was
	// looking for.
	ErrUnexpectedToken = errors.NewKind("unexpected token %q at position %d, expected %s")

	// ErrUnexpectedEOF is raised when the input ends mid-construct.
	ErrUnexpectedEOF = errors.NewKind("unexpected end of input, expected %s")

	// ErrInvalidLiteral is raised when a numeric literal does not parse.
	ErrInvalidLiteral = errors.NewKind("invalid %s literal %q")

	// ErrUnknownStatement is raised when the input does not start with a
	// recognized statement keyword.
	ErrUnknownStatement = errors.NewKind("unrecognized statement starting at %q")
)
