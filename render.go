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

	"github.com/charmbracelet/lipgloss"

	"github.com/cybrota/avlkit/avl"
)

// treeRenderer draws trees in the "Root: / L--- / R--- " layout, optionally
// colouring the branch labels with the palette for mode.
type treeRenderer struct {
	color bool
	mode  TerminalMode
	root  lipgloss.Style
	left  lipgloss.Style
	right lipgloss.Style
	key   lipgloss.Style
	guide lipgloss.Style
}

func newTreeRenderer(color bool, mode TerminalMode) *treeRenderer {
	p := paletteFor(mode)
	return &treeRenderer{
		color: color,
		mode:  mode,
		root:  lipgloss.NewStyle().Foreground(p.rootLabel).Bold(true),
		left:  lipgloss.NewStyle().Foreground(p.leftLabel),
		right: lipgloss.NewStyle().Foreground(p.rightLabel),
		key:   lipgloss.NewStyle().Bold(true),
		guide: lipgloss.NewStyle().Foreground(p.guide),
	}
}

// Render draws the whole tree under root. Without colour the result is
// byte-for-byte avl.Render.
func (r *treeRenderer) Render(root *avl.Node[float64]) string {
	return r.RenderNode(root, avl.SideRoot.Prefix())
}

// RenderNode draws the subtree under n, labelling n with prefix.
func (r *treeRenderer) RenderNode(n *avl.Node[float64], prefix string) string {
	if !r.color {
		return n.Render(prefix)
	}

	var sb strings.Builder
	for _, line := range avl.Layout(n) {
		label := line.Side.Prefix()
		style := r.labelStyle(line.Side)
		if line.Depth == 0 {
			label = prefix
			style = r.root
		}
		sb.WriteString(r.guide.Render(strings.Repeat("│   ", line.Depth)))
		sb.WriteString(style.Render(label))
		sb.WriteString(r.key.Render(formatKey(line.Key)))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (r *treeRenderer) labelStyle(side avl.Side) lipgloss.Style {
	switch side {
	case avl.SideLeft:
		return r.left
	case avl.SideRight:
		return r.right
	default:
		return r.root
	}
}
