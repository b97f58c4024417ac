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
package program

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// CompressedExtension identifies program files held in zstd compressed form.
const CompressedExtension = ".zst"

// Parse a program image given as comma separated signed integers.  Whitespace
// (including newlines) around each value is ignored, as is a trailing comma.
func Parse(text string) ([]int64, error) {
	var (
		fields = strings.Split(strings.TrimSpace(text), ",")
		image  = make([]int64, 0, len(fields))
	)
	//
	for i, field := range fields {
		field = strings.TrimSpace(field)
		// Permit trailing comma
		if field == "" && i == len(fields)-1 && i != 0 {
			break
		}
		//
		word, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "word %d", i)
		}
		//
		image = append(image, word)
	}
	//
	return image, nil
}

// Format a program image as comma separated integers.  This is the inverse of
// Parse.
func Format(image []int64) string {
	var builder strings.Builder
	//
	for i, word := range image {
		if i != 0 {
			builder.WriteString(",")
		}
		//
		builder.WriteString(strconv.FormatInt(word, 10))
	}
	//
	return builder.String()
}

// ReadFile reads a program image from a given file, decompressing it first if
// it has the compressed extension.
func ReadFile(path string) ([]int64, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	//
	if filepath.Ext(path) == CompressedExtension {
		if bytes, err = Decompress(bytes); err != nil {
			return nil, errors.Wrapf(err, "decompressing %s", path)
		}
	}
	//
	image, err := Parse(string(bytes))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	//
	return image, nil
}

// WriteFile writes a program image to a given file, compressing it if the file
// has the compressed extension.
func WriteFile(path string, image []int64) error {
	var bytes = []byte(Format(image) + "\n")
	//
	if filepath.Ext(path) == CompressedExtension {
		var err error
		//
		if bytes, err = Compress(bytes); err != nil {
			return err
		}
	}
	//
	return os.WriteFile(path, bytes, 0644)
}

// Compress data using zstd.
func Compress(data []byte) ([]byte, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, err
	}
	//
	defer encoder.Close()
	//
	return encoder.EncodeAll(data, nil), nil
}

// Decompress zstd compressed data.
func Decompress(data []byte) ([]byte, error) {
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	//
	defer decoder.Close()
	//
	return decoder.DecodeAll(data, nil)
}
