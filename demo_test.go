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
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestRunDemo(t *testing.T) {
	InitializeColors(false, TerminalModeDark)
	var out bytes.Buffer

	opts := demoOptions{
		Keys:   []float64{10, 20, 30, 25, 28, 27, -1},
		Delete: []float64{10, 27},
		Check:  true,
	}
	require.NoError(t, runDemo(&out, newTreeRenderer(false, TerminalModeDark), opts, zerolog.Nop()))

	want := "Building AVL tree: 10 20 30 25 28 27 -1\n" +
		"AVL tree:\n" +
		"Root: 25\n\tL--- 10\n\t\tL--- -1\n\t\tR--- 20\n\tR--- 28\n\t\tL--- 27\n\t\tR--- 30\n" +
		"Max element: Node 30\n" +
		"Min element: Node -1\n" +
		"Sum of elements: 139\n" +
		"Deleted: 10\n" +
		"AVL tree:\n" +
		"Root: 25\n\tL--- 20\n\t\tL--- -1\n\tR--- 28\n\t\tL--- 27\n\t\tR--- 30\n" +
		"Deleted: 27\n" +
		"AVL tree:\n" +
		"Root: 25\n\tL--- 20\n\t\tL--- -1\n\tR--- 28\n\t\tR--- 30\n" +
		"Max element: Node 30\n" +
		"Min element: Node -1\n" +
		"Sum of elements: 102\n"
	require.Equal(t, want, out.String())
}

func TestRunDemoEmptiedTree(t *testing.T) {
	InitializeColors(false, TerminalModeDark)
	var out bytes.Buffer

	opts := demoOptions{Keys: []float64{5}, Delete: []float64{5, 6}}
	require.NoError(t, runDemo(&out, newTreeRenderer(false, TerminalModeDark), opts, zerolog.Nop()))

	require.Contains(t, out.String(), "Not found: 6\nAVL tree:\n(empty)\n")
	require.Contains(t, out.String(), "Max element: avl: tree is empty\n")
	require.Contains(t, out.String(), "Min element: avl: tree is empty\n")
	require.Contains(t, out.String(), "Sum of elements: 0\n")
}

func TestRunBuild(t *testing.T) {
	InitializeColors(false, TerminalModeDark)
	var out bytes.Buffer

	require.NoError(t, runBuild(&out, newTreeRenderer(false, TerminalModeDark), []float64{1, 2, 3, 4, 5, 6, 7, 7}, true))
	require.Contains(t, out.String(), "Root: 4\n")
	require.Contains(t, out.String(), "Height: 3\n")
	require.Contains(t, out.String(), "Count: 7\n")
	require.Contains(t, out.String(), "Max element: Node 7\n")
	require.Contains(t, out.String(), "Min element: Node 1\n")
	require.Contains(t, out.String(), "Sum of elements: 28\n")
}

func TestRunStress(t *testing.T) {
	report, err := runStress(StressOptions{Operations: 2000, KeyRange: 200, Seed: 7}, zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, 2000, report.Operations)
	require.Equal(t, report.Operations, report.Inserts+report.Deletes)
	require.Positive(t, report.FinalLen)
	require.LessOrEqual(t, report.FinalLen, 200)
	// an AVL tree with at most 200 nodes is never taller than 10
	require.LessOrEqual(t, report.MaxHeight, 10)
}

func TestRunStressWithProgress(t *testing.T) {
	var progress bytes.Buffer
	_, err := runStress(StressOptions{Operations: 100, KeyRange: 10, Seed: 1, Progress: &progress}, zerolog.Nop())
	require.NoError(t, err)
	require.Contains(t, progress.String(), "Stress run completed")
}

func TestRunStressRejectsBadOptions(t *testing.T) {
	_, err := runStress(StressOptions{Operations: 0, KeyRange: 10}, zerolog.Nop())
	require.Error(t, err)
	_, err = runStress(StressOptions{Operations: 10, KeyRange: 0}, zerolog.Nop())
	require.Error(t, err)
}

func TestTreeRendererColor(t *testing.T) {
	in := newTestInterpreter()
	_, err := in.Exec("insert 2 1 3")
	require.NoError(t, err)
	root := in.Current().Tree.Root()

	plain := newTreeRenderer(false, TerminalModeDark)
	require.Equal(t, "Root: 2\n\tL--- 1\n\tR--- 3\n", plain.Render(root))

	// colouring may be stripped without a TTY, but every label and key stays
	colored := newTreeRenderer(true, TerminalModeDark).Render(root)
	for _, part := range []string{"Root:", "L---", "R---", "1", "2", "3"} {
		require.Contains(t, colored, part)
	}
}
