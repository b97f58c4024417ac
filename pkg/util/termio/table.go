// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package termio

import (
	"fmt"
	"io"
)

// TablePrinter is useful for printing tables to the terminal.  Rows are added
// one at a time, and column widths grow to fit their contents.
type TablePrinter struct {
	widths        []uint
	rows          [][]string
	escapes       []string
	enableEscapes bool
}

// NewTablePrinter constructs a new table with a given number of columns.
func NewTablePrinter(width uint) *TablePrinter {
	return &TablePrinter{widths: make([]uint, width), enableEscapes: true}
}

// AddRow appends a row to this table, returning its index.
func (p *TablePrinter) AddRow(vals ...string) uint {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	// Update column widths
	for i := range p.widths {
		p.widths[i] = max(p.widths[i], uint(len(vals[i])))
	}
	//
	p.rows = append(p.rows, vals)
	p.escapes = append(p.escapes, "")
	//
	return uint(len(p.rows) - 1)
}

// Height returns the height of this table.
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// SetEscape sets the escape used when printing a given row.
func (p *TablePrinter) SetEscape(row uint, escape AnsiEscape) {
	p.escapes[row] = escape.Build()
}

// AnsiEscapes enables or disables the use of ANSI escapes (e.g. for showing
// colour).  Disabling escapes is useful when output is not a terminal as,
// otherwise, you get a lot of visible escape characters being printed.
func (p *TablePrinter) AnsiEscapes(enable bool) {
	p.enableEscapes = enable
}

// SetMaxWidth puts an upper bound on the width of a column.  Contents which
// are too long are truncated.
func (p *TablePrinter) SetMaxWidth(col uint, width uint) {
	p.widths[col] = min(p.widths[col], max(width, 3))
}

// Print the table.
func (p *TablePrinter) Print(w io.Writer) error {
	for i, row := range p.rows {
		escape := p.escapes[i] != "" && p.enableEscapes
		// Print colour (if applicable)
		if escape {
			if _, err := fmt.Fprint(w, p.escapes[i]); err != nil {
				return err
			}
		}
		//
		for j, col := range row {
			var width = p.widths[j]
			// Print data
			if uint(len(col)) > width {
				col = col[0:width-2] + ".."
			}
			//
			if _, err := fmt.Fprintf(w, " %-*s", int(width), col); err != nil {
				return err
			}
		}
		// Cancel colour (if applicable)
		if escape {
			if _, err := fmt.Fprint(w, ResetAnsiEscape().Build()); err != nil {
				return err
			}
		}
		//
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	//
	return nil
}
