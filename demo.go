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
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/cybrota/avlkit/avl"
)

type demoOptions struct {
	Keys   []float64
	Delete []float64
	// Check validates the tree after every insert and delete.
	Check bool
}

// runDemo builds a tree from opts.Keys, prints it with its max, min and sum,
// then deletes opts.Delete one key at a time and prints the result again.
func runDemo(w io.Writer, r *treeRenderer, opts demoOptions, log zerolog.Logger) error {
	tree := avl.New[float64]()

	fmt.Fprintf(w, "%sBuilding AVL tree:%s %s\n", Info, Reset, formatKeys(opts.Keys))
	for _, k := range opts.Keys {
		if !tree.Insert(k) {
			log.Debug().Float64("key", k).Msg("duplicate key ignored")
		}
		if err := checkStep(tree, opts.Check, "insert", k); err != nil {
			return err
		}
	}

	printTree(w, r, tree)
	printSummary(w, r, tree)

	for _, k := range opts.Delete {
		if tree.Delete(k) {
			fmt.Fprintf(w, "%sDeleted:%s %s\n", Warning, Reset, formatKey(k))
		} else {
			fmt.Fprintf(w, "%sNot found:%s %s\n", Warning, Reset, formatKey(k))
		}
		if err := checkStep(tree, opts.Check, "delete", k); err != nil {
			return err
		}
		printTree(w, r, tree)
	}

	if len(opts.Delete) > 0 {
		printSummary(w, r, tree)
	}
	return nil
}

// runBuild inserts keys and prints the tree with its shape and aggregates.
func runBuild(w io.Writer, r *treeRenderer, keys []float64, check bool) error {
	tree := avl.New[float64]()
	for _, k := range keys {
		tree.Insert(k)
		if err := checkStep(tree, check, "insert", k); err != nil {
			return err
		}
	}

	printTree(w, r, tree)
	fmt.Fprintf(w, "Height: %d\n", tree.Height())
	fmt.Fprintf(w, "Count: %d\n", tree.Len())
	printSummary(w, r, tree)
	return nil
}

func checkStep(tree *avl.Tree[float64], enabled bool, op string, key float64) error {
	if !enabled {
		return nil
	}
	if err := tree.Validate(); err != nil {
		return fmt.Errorf("after %s %s: %w", op, formatKey(key), err)
	}
	return nil
}

func printTree(w io.Writer, r *treeRenderer, tree *avl.Tree[float64]) {
	fmt.Fprintf(w, "%sAVL tree:%s\n", Info, Reset)
	if tree.Len() == 0 {
		fmt.Fprintln(w, "(empty)")
		return
	}
	fmt.Fprint(w, r.Render(tree.Root()))
}

func printSummary(w io.Writer, r *treeRenderer, tree *avl.Tree[float64]) {
	printExtreme(w, r, "Max element", avl.MaxNode[float64], tree.Root())
	printExtreme(w, r, "Min element", avl.MinNode[float64], tree.Root())
	fmt.Fprintf(w, "%sSum of elements:%s %s\n", Green, Reset, formatKey(tree.Sum()))
}

func printExtreme(w io.Writer, r *treeRenderer, label string, find func(*avl.Node[float64]) (*avl.Node[float64], error), root *avl.Node[float64]) {
	n, err := find(root)
	if err != nil {
		fmt.Fprintf(w, "%s%s:%s %v\n", Error, label, Reset, err)
		return
	}
	fmt.Fprintf(w, "%s%s:%s %s", Green, label, Reset, r.RenderNode(n, "Node "))
}
