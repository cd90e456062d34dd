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

// Command cobblesql is a small interactive shell over an in-process
// Engine. There is no network listener here (spec §6 Non-goals exclude a
// wire protocol): statements are read from stdin, executed against one
// in-memory Database, and the resulting table is printed to stdout.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"github.com/cobblesql/cobblesql/engine"
	"github.com/cobblesql/cobblesql/sql"
)

func main() {
	log := logrus.StandardLogger()
	log.SetLevel(logrus.WarnLevel)

	e := engine.New(engine.Config{DatabaseName: "mydb", Logger: log})

	if len(os.Args) > 1 {
		// Non-interactive mode: treat the remaining args as one batch of SQL.
		runBatch(e, strings.Join(os.Args[1:], " "))
		return
	}
	repl(e, os.Stdin, os.Stdout)
}

func runBatch(e *engine.Engine, text string) {
	result, err := e.Execute(text)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	printTable(os.Stdout, result)
}

// repl accumulates input lines until a semicolon-terminated statement is
// seen, executes it, and prints the result, the way an interactive SQL
// client does.
func repl(e *engine.Engine, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	var buf strings.Builder

	fmt.Fprint(out, "cobblesql> ")
	for scanner.Scan() {
		line := scanner.Text()
		buf.WriteString(line)
		buf.WriteString("\n")

		if strings.Contains(line, ";") {
			text := buf.String()
			buf.Reset()

			result, err := e.Execute(text)
			if err != nil {
				fmt.Fprintln(out, err)
			} else {
				printTable(out, result)
			}
		}
		fmt.Fprint(out, "cobblesql> ")
	}
}

// printTable renders result as an aligned column/row grid. A nil result
// (e.g. a CREATE or INSERT with no Return) prints nothing.
func printTable(out io.Writer, result *sql.Table) {
	if result == nil {
		return
	}
	w := tabwriter.NewWriter(out, 0, 2, 2, ' ', 0)
	cols := result.Columns()
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	fmt.Fprintln(w, strings.Join(names, "\t"))

	for _, row := range result.Rows() {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = v.String()
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	w.Flush()
}
