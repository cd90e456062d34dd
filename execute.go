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
	"github.com/cobblesql/cobblesql/sql"
	"github.com/cobblesql/cobblesql/sql/codegen"
	"github.com/cobblesql/cobblesql/sql/parse"
)

// Execute parses, lowers, and runs every statement in sqlText against this
// VirtualMachine's Database, in order, returning the Table produced by the
// last statement whose Return instruction actually ran (spec §4.3 names
// this as a VM-level operation: parse, lower each statement, run). A later
// statement's error aborts the batch; earlier statements' catalog effects
// are not undone (there are no transactions).
//
// engine.Engine wraps this same pipeline with a Config-driven logger and a
// stable host-facing constructor; call Execute directly when a
// *VirtualMachine is already in hand and that wrapping isn't needed.
func (vm *VirtualMachine) Execute(sqlText string) (*sql.Table, error) {
	stmts, err := parse.Parse(sqlText)
	if err != nil {
		return nil, ErrParseStage.Wrap(err, err.Error())
	}

	var result *sql.Table
	for _, stmt := range stmts {
		program, err := codegen.Lower(stmt)
		if err != nil {
			return nil, ErrCodegenStage.Wrap(err, err.Error())
		}

		vm.log.WithField("instructions", len(program.Instrs)).Debug("running statement")
		vm.ResetRegisters()
		r, err := vm.ExecuteIC(program)
		if err != nil {
			return nil, ErrRuntimeStage.Wrap(err, err.Error())
		}
		if r != nil {
			result = r
		}
	}
	return result, nil
}
