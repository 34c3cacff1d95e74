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

import "fmt"

// Tree owns the root of an AVL tree and keeps a count of its nodes.
//
// The zero value is an empty tree ready to use. Tree is not safe for
// concurrent use by multiple goroutines.
type Tree[K Number] struct {
	root *Node[K]
	size int
}

// New returns an empty tree.
func New[K Number]() *Tree[K] {
	return &Tree[K]{}
}

// Insert adds key and reports whether the tree changed.
func (t *Tree[K]) Insert(key K) bool {
	if isNaN(key) {
		return false
	}
	var added bool
	t.root, added = insert(t.root, key)
	if added {
		t.size++
	}
	return added
}

// Delete removes key and reports whether it was present.
func (t *Tree[K]) Delete(key K) bool {
	if isNaN(key) {
		return false
	}
	var removed bool
	t.root, removed = remove(t.root, key)
	if removed {
		t.size--
	}
	return removed
}

func (t *Tree[K]) Contains(key K) bool {
	return Contains(t.root, key)
}

// Min returns the smallest key, or ErrEmptyTree.
func (t *Tree[K]) Min() (K, error) {
	n, err := MinNode(t.root)
	if err != nil {
		var zero K
		return zero, err
	}
	return n.key, nil
}

// Max returns the largest key, or ErrEmptyTree.
func (t *Tree[K]) Max() (K, error) {
	n, err := MaxNode(t.root)
	if err != nil {
		var zero K
		return zero, err
	}
	return n.key, nil
}

func (t *Tree[K]) Sum() K {
	return Sum(t.root)
}

func (t *Tree[K]) Height() int {
	return Height(t.root)
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	return t.size
}

// Root returns the root node, nil for an empty tree. The returned nodes must
// be treated as read-only.
func (t *Tree[K]) Root() *Node[K] {
	return t.root
}

// Keys returns all keys in ascending order.
func (t *Tree[K]) Keys() []K {
	return Keys(t.root)
}

// Clear drops every node.
func (t *Tree[K]) Clear() {
	t.root = nil
	t.size = 0
}

// Validate checks the tree invariants and the node count.
func (t *Tree[K]) Validate() error {
	n, err := validate(t.root)
	if err != nil {
		return err
	}
	if n != t.size {
		return fmt.Errorf("%w: tree counts %d nodes, found %d", ErrInvariantViolated, t.size, n)
	}
	return nil
}

func (t *Tree[K]) String() string {
	return Render(t.root)
}
