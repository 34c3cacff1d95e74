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

package avl

import (
	"fmt"
	"strings"
)

// Side tells which link of its parent a node hangs off.
type Side int

const (
	SideRoot Side = iota
	SideLeft
	SideRight
)

// Prefix is the label printed in front of a key on the given side.
func (s Side) Prefix() string {
	switch s {
	case SideLeft:
		return "L--- "
	case SideRight:
		return "R--- "
	default:
		return "Root: "
	}
}

// Line is one node of a rendered tree.
type Line[K Number] struct {
	Depth int
	Side  Side
	Key   K
}

// Layout lists the nodes under root in pre-order, left before right, with
// their depth below root.
func Layout[K Number](root *Node[K]) []Line[K] {
	var lines []Line[K]
	layout(root, 0, SideRoot, &lines)
	return lines
}

func layout[K Number](node *Node[K], depth int, side Side, lines *[]Line[K]) {
	if node == nil {
		return
	}
	*lines = append(*lines, Line[K]{Depth: depth, Side: side, Key: node.key})
	layout(node.left, depth+1, SideLeft, lines)
	layout(node.right, depth+1, SideRight, lines)
}

// Render draws the tree under root, one tab per level:
//
//	Root: 20
//		L--- 10
//		R--- 30
//
// An empty tree renders as the empty string.
func Render[K Number](root *Node[K]) string {
	return root.Render(SideRoot.Prefix())
}

func (n *Node[K]) String() string {
	return Render(n)
}

// Render draws the subtree rooted at n like Render, labelling n itself with
// prefix instead of "Root: ".
func (n *Node[K]) Render(prefix string) string {
	var sb strings.Builder
	for _, line := range Layout(n) {
		p := line.Side.Prefix()
		if line.Depth == 0 {
			p = prefix
		}
		fmt.Fprintf(&sb, "%s%s%v\n", strings.Repeat("\t", line.Depth), p, line.Key)
	}
	return sb.String()
}
