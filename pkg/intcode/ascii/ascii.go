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
package ascii

import (
	"strings"
	"unicode/utf8"
)

// Newline terminates every line of input given to a program.
const Newline = '\n'

// Encode a line of text as program input, one value per character followed by
// a newline.  Any trailing newline in the line itself is dropped first.  This
// reports false if the line contains non-ASCII characters.
func Encode(line string) ([]int64, bool) {
	var values = make([]int64, 0, len(line)+1)
	//
	line = strings.TrimRight(line, "\r\n")
	//
	for _, c := range line {
		if c >= utf8.RuneSelf {
			return nil, false
		}
		//
		values = append(values, int64(c))
	}
	//
	return append(values, Newline), true
}

// Decode program output as text.  Values outside the ASCII range cannot be
// rendered, and are returned separately in the order they were produced.
func Decode(values []int64) (string, []int64) {
	var (
		builder strings.Builder
		others  []int64
	)
	//
	for _, v := range values {
		if v >= 0 && v < utf8.RuneSelf {
			builder.WriteByte(byte(v))
		} else {
			others = append(others, v)
		}
	}
	//
	return builder.String(), others
}
