// Copyright 2025 Naren Yellavula
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

package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// parseKey parses a single tree key. NaN has no place in the key order and
// infinities would turn the tree sum into NaN, so both are rejected.
func parseKey(s string) (float64, error) {
	k, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid key %q: not a number", s)
	}
	if math.IsNaN(k) {
		return 0, fmt.Errorf("invalid key %q: NaN cannot be ordered", s)
	}
	if math.IsInf(k, 0) {
		return 0, fmt.Errorf("invalid key %q: key must be finite", s)
	}
	return k, nil
}

func parseKeys(args []string) ([]float64, error) {
	keys := make([]float64, 0, len(args))
	for _, a := range args {
		k, err := parseKey(a)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// readKeys reads keys separated by whitespace and/or commas. Anything after
// a # on a line is a comment.
func readKeys(r io.Reader) ([]float64, error) {
	var fields []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields = append(fields, strings.FieldsFunc(line, func(c rune) bool {
			return c == ',' || unicode.IsSpace(c)
		})...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return parseKeys(fields)
}

func formatKey(k float64) string {
	return strconv.FormatFloat(k, 'f', -1, 64)
}

func formatKeys(keys []float64) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = formatKey(k)
	}
	return strings.Join(parts, " ")
}
