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
	"bufio"
	"io"
	"os"

	"golang.org/x/term"
)

// IsInteractive checks whether both standard input and standard output are
// attached to a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Width returns the width of the terminal attached to standard output, or a
// given fallback if there is none.
func Width(fallback uint) uint {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return uint(w)
	}
	//
	return fallback
}

// Console reads lines of input and writes output.  When attached to a terminal,
// it provides line editing and history with a prompt.  Otherwise, it simply
// reads lines from standard input.
type Console struct {
	// Set when attached to a terminal
	xterm *term.Terminal
	// Original state of terminal so this can be restored.
	state *term.State
	// Used when not attached to a terminal
	scanner *bufio.Scanner
	writer  io.Writer
}

// NewConsole constructs a console over standard input and output.  If both are
// attached to a terminal, then the terminal is moved into raw mode and must be
// restored by calling Close.
func NewConsole(prompt string) (*Console, error) {
	if !IsInteractive() {
		return &Console{scanner: bufio.NewScanner(os.Stdin), writer: os.Stdout}, nil
	}
	// Move terminal into raw mode
	state, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return nil, err
	}
	// Construct "screen"
	screen := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	//
	xterm := term.NewTerminal(screen, prompt)
	//
	return &Console{xterm: xterm, state: state, writer: xterm}, nil
}

// ReadLine reads the next line of input, without its line terminator.  This
// returns io.EOF when no more input is available.
func (p *Console) ReadLine() (string, error) {
	if p.xterm != nil {
		return p.xterm.ReadLine()
	} else if p.scanner.Scan() {
		return p.scanner.Text(), nil
	} else if err := p.scanner.Err(); err != nil {
		return "", err
	}
	//
	return "", io.EOF
}

// Write implementation for io.Writer.  In raw mode, newlines are translated as
// necessary.
func (p *Console) Write(bytes []byte) (int, error) {
	return p.writer.Write(bytes)
}

// Close restores the terminal to its original state (if applicable).
func (p *Console) Close() error {
	if p.state != nil {
		return term.Restore(int(os.Stdin.Fd()), p.state)
	}
	//
	return nil
}
