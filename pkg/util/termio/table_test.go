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
	"strings"
	"testing"
)

func Test_Table_01(t *testing.T) {
	var (
		table   = NewTablePrinter(3)
		builder strings.Builder
	)
	//
	table.AddRow("step", "pc", "instruction")
	table.AddRow("0", "4", "add [9], [10], [3]")
	table.AnsiEscapes(false)
	//
	if err := table.Print(&builder); err != nil {
		t.Fatal(err)
	}
	//
	expected := " step pc instruction       \n 0    4  add [9], [10], [3]\n"
	//
	if builder.String() != expected {
		t.Errorf("unexpected table %q", builder.String())
	}
}

func Test_Table_02(t *testing.T) {
	var (
		table   = NewTablePrinter(1)
		builder strings.Builder
	)
	//
	row := table.AddRow("halted")
	table.SetEscape(row, BoldAnsiEscape().FgColour(TERM_RED))
	table.AddRow("a very long row")
	table.SetMaxWidth(0, 6)
	//
	if err := table.Print(&builder); err != nil {
		t.Fatal(err)
	}
	//
	expected := "\033[1;31m halted\033[0m\n a ve..\n"
	//
	if builder.String() != expected {
		t.Errorf("unexpected table %q", builder.String())
	}
}
