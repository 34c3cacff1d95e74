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

import "golang.org/x/exp/constraints"

// Number is the set of key types a tree can hold. Keys need a total order
// for the descent and support for + for Sum.
type Number interface {
	constraints.Integer | constraints.Float
}

// Node is a single tree element. A node exclusively owns its two subtrees.
type Node[K Number] struct {
	key    K
	height int
	left   *Node[K]
	right  *Node[K]
}

func newNode[K Number](key K) *Node[K] {
	return &Node[K]{key: key, height: 1}
}

// Key returns the key stored in n. It panics on a nil node.
func (n *Node[K]) Key() K {
	return n.key
}

// Height returns the cached height of n, 0 for nil.
func (n *Node[K]) Height() int {
	return Height(n)
}

// Balance returns the balance factor of n, 0 for nil.
func (n *Node[K]) Balance() int {
	return Balance(n)
}

// Left returns the left subtree, nil for a nil node.
func (n *Node[K]) Left() *Node[K] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right subtree, nil for a nil node.
func (n *Node[K]) Right() *Node[K] {
	if n == nil {
		return nil
	}
	return n.right
}

// Height returns the cached height of n. An absent node has height 0 and a
// leaf has height 1.
func Height[K Number](n *Node[K]) int {
	if n == nil {
		return 0
	}
	return n.height
}

// Balance returns height(left) - height(right) for n, 0 for nil.
func Balance[K Number](n *Node[K]) int {
	if n == nil {
		return 0
	}
	return Height(n.left) - Height(n.right)
}

func updateHeight[K Number](n *Node[K]) {
	n.height = max(Height(n.left), Height(n.right)) + 1
}

// rotateLeft makes z.right the root of the subtree. z.right must not be nil.
func rotateLeft[K Number](z *Node[K]) *Node[K] {
	pivot := z.right

	z.right = pivot.left
	pivot.left = z

	updateHeight(z)
	updateHeight(pivot)

	return pivot
}

// rotateRight makes y.left the root of the subtree. y.left must not be nil.
func rotateRight[K Number](y *Node[K]) *Node[K] {
	pivot := y.left

	y.left = pivot.right
	pivot.right = y

	updateHeight(y)
	updateHeight(pivot)

	return pivot
}
