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

// Package engine is the host-facing entry point (spec §6): a small,
// Config-driven façade over a *cobblesql.VirtualMachine, whose own
// Execute method does the actual parse -> codegen -> execute work (spec
// §4.3). Engine exists for callers that want a stable constructor
// (DatabaseName, Logger) rather than wiring a VirtualMachine by hand.
package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/cobblesql/cobblesql"
	"github.com/cobblesql/cobblesql/ic"
	"github.com/cobblesql/cobblesql/sql"
)

// Config carries the settings an Engine is constructed with. There is no
// file format or environment-variable binding for it (spec Non-goals
// exclude external configuration surfaces); callers build one directly.
type Config struct {
	// DatabaseName names the Database the Engine's VM runs against.
	DatabaseName string
	// Logger receives structured per-instruction/per-statement log entries.
	// A nil Logger falls back to logrus's standard logger.
	Logger *logrus.Logger
}

// Engine wraps a VirtualMachine with the statement pipeline (spec §6):
// text in, a result Table or a structured error out.
type Engine struct {
	vm *cobblesql.VirtualMachine
}

// New constructs an Engine per cfg.
func New(cfg Config) *Engine {
	name := cfg.DatabaseName
	if name == "" {
		name = cobblesql.DefaultDatabaseName
	}
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	vm := cobblesql.New(name)
	vm.SetLogger(log)
	return &Engine{vm: vm}
}

// Default constructs an Engine with default settings.
func Default() *Engine { return New(Config{}) }

// Database exposes the Engine's catalog root, for callers that want to
// inspect schemas/tables directly (e.g. a REPL's \d command).
func (e *Engine) Database() *sql.Database { return e.vm.Database() }

// Execute parses, lowers, and runs every statement in sqlText in order,
// returning the Table produced by the last statement whose Return
// instruction actually ran (spec §4.3, §6). A later statement's error
// aborts the batch; earlier statements' catalog effects are not undone
// (spec has no transactions). It is a thin Config-aware pass-through to
// VirtualMachine.Execute, the same pipeline run against a bare VM.
func (e *Engine) Execute(sqlText string) (*sql.Table, error) {
	return e.vm.Execute(sqlText)
}

// ExecuteIC runs one pre-lowered program directly, bypassing the
// parser/lowerer entirely; used by tests and by callers that already have
// an IntermediateCode program in hand.
func (e *Engine) ExecuteIC(program *ic.IntermediateCode) (*sql.Table, error) {
	e.vm.ResetRegisters()
	r, err := e.vm.ExecuteIC(program)
	if err != nil {
		return nil, cobblesql.ErrRuntimeStage.Wrap(err, err.Error())
	}
	return r, nil
}
