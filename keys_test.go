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
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"10", 10, false},
		{"-1", -1, false},
		{"2.5", 2.5, false},
		{"1e3", 1000, false},
		{"1e6", 1e6, false},
		{"+Inf", 0, true},
		{"-inf", 0, true},
		{"1e400", 0, true},
		{"NaN", 0, true},
		{"ten", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseKey(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestReadKeys(t *testing.T) {
	input := "# sample keys\n10, 20,30\n25\t28 27\n\n-1\n"
	keys, err := readKeys(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, []float64{10, 20, 30, 25, 28, 27, -1}, keys)

	keys, err = readKeys(strings.NewReader("10 20 # first pair\n30,#40\n   # indented comment\n"))
	require.NoError(t, err)
	require.Equal(t, []float64{10, 20, 30}, keys)

	_, err = readKeys(strings.NewReader("1 2 three"))
	require.ErrorContains(t, err, `"three"`)
}

func TestFormatKeys(t *testing.T) {
	require.Equal(t, "-1 2.5 1000000", formatKeys([]float64{-1, 2.5, 1e6}))
	require.Equal(t, "", formatKeys(nil))
	require.Equal(t, "123456789012", formatKey(123456789012))
	require.Equal(t, "-0.000001", formatKey(-1e-6))
}
