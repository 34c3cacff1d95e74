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
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestDetectTerminalMode(t *testing.T) {
	tests := []struct {
		name      string
		colorfgbg string
		theme     string
		want      TerminalMode
	}{
		{"nothing set", "", "", TerminalModeDark},
		{"black background", "15;0", "", TerminalModeDark},
		{"white background", "0;15", "", TerminalModeLight},
		{"grey background", "0;default;7", "", TerminalModeLight},
		{"unparsable background", "0;default", "light", TerminalModeLight},
		{"theme light", "", "Solarized-Light", TerminalModeLight},
		{"theme dark", "", "dark", TerminalModeDark},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("COLORFGBG", tt.colorfgbg)
			t.Setenv("TERM_THEME", tt.theme)
			t.Setenv("THEME", "")
			require.Equal(t, tt.want, detectTerminalMode())
		})
	}
}

func TestInitializeColors(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Cleanup(func() { InitializeColors(false, TerminalModeDark) })

	InitializeColors(true, TerminalModeLight)
	require.Equal(t, "\033[32m", Green)
	require.Equal(t, "\033[0m", Reset)

	InitializeColors(true, TerminalModeDark)
	require.Equal(t, "\033[92m", Green)

	InitializeColors(false, TerminalModeDark)
	require.Empty(t, Green)
	require.Empty(t, Reset)
}

func TestRendererFollowsTerminalMode(t *testing.T) {
	dark := newTreeRenderer(true, TerminalModeDark)
	light := newTreeRenderer(true, TerminalModeLight)
	require.Equal(t, lipgloss.Color("39"), dark.left.GetForeground())
	require.Equal(t, lipgloss.Color("25"), light.left.GetForeground())
	require.NotEqual(t, dark.guide.GetForeground(), light.guide.GetForeground())

	require.Equal(t, paletteFor(TerminalModeLight).bad, NewStyles(TerminalModeLight).ErrorMessage.GetForeground())
	require.Equal(t, paletteFor(TerminalModeDark).accent, NewStyles(TerminalModeDark).BorderFocused.GetBorderTopForeground())

	m := InitialModel(newTestInterpreter(), light)
	require.Equal(t, paletteFor(TerminalModeLight).title, m.styles.Title.GetForeground())

	// unknown modes fall back to the dark palette
	require.Equal(t, paletteFor(TerminalModeDark), paletteFor(TerminalMode(42)))
}
