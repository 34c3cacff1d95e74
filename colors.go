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
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TerminalMode is the background the terminal is assumed to draw on.
type TerminalMode int

const (
	TerminalModeDark TerminalMode = iota
	TerminalModeLight
)

// palette is one colour set, shared by plain ANSI output, the tree renderer
// and the TUI styles.
type palette struct {
	success, info, warning, error string

	rootLabel, leftLabel, rightLabel, guide lipgloss.Color
	accent, title, muted, ok, bad           lipgloss.Color
}

// Light terminals get the darker shades.
var palettes = map[TerminalMode]palette{
	TerminalModeDark: {
		success: "\033[92m",
		info:    "\033[96m",
		warning: "\033[93m",
		error:   "\033[91m",

		rootLabel:  "205",
		leftLabel:  "39",
		rightLabel: "214",
		guide:      "240",
		accent:     "62",
		title:      "39",
		muted:      "243",
		ok:         "46",
		bad:        "196",
	},
	TerminalModeLight: {
		success: "\033[32m",
		info:    "\033[34m",
		warning: "\033[33m",
		error:   "\033[31m",

		rootLabel:  "125",
		leftLabel:  "25",
		rightLabel: "130",
		guide:      "247",
		accent:     "55",
		title:      "25",
		muted:      "240",
		ok:         "28",
		bad:        "160",
	},
}

func paletteFor(mode TerminalMode) palette {
	if p, ok := palettes[mode]; ok {
		return p
	}
	return palettes[TerminalModeDark]
}

// ANSI escapes used for plain (non-TUI) output. Empty until InitializeColors
// runs, so output stays uncoloured when colours are disabled.
var Green, Info, Warning, Error, Reset string

// detectTerminalMode guesses the background from COLORFGBG ("fg;bg", as set
// by rxvt and several other terminals), then TERM_THEME or THEME. Dark wins
// when nothing says otherwise.
func detectTerminalMode() TerminalMode {
	if fgbg := os.Getenv("COLORFGBG"); fgbg != "" {
		parts := strings.Split(fgbg, ";")
		if bg, err := strconv.Atoi(parts[len(parts)-1]); err == nil && len(parts) >= 2 {
			// 7 and 9-15 are the light entries of the 16-colour table.
			if bg == 7 || (bg >= 9 && bg <= 15) || bg == 255 {
				return TerminalModeLight
			}
			return TerminalModeDark
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		theme := strings.ToLower(os.Getenv(env))
		switch {
		case strings.Contains(theme, "light"):
			return TerminalModeLight
		case strings.Contains(theme, "dark"):
			return TerminalModeDark
		}
	}
	return TerminalModeDark
}

// InitializeColors fills in the ANSI colour variables for mode. With enabled
// false, or NO_COLOR set, every colour is the empty string.
func InitializeColors(enabled bool, mode TerminalMode) {
	if !enabled || os.Getenv("NO_COLOR") != "" {
		Green, Info, Warning, Error, Reset = "", "", "", "", ""
		return
	}
	p := paletteFor(mode)
	Green, Info, Warning, Error, Reset = p.success, p.info, p.warning, p.error, "\033[0m"
}
