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

// Insert adds key to the subtree rooted at root and returns the new root.
// Inserting a key that is already present leaves the tree unchanged.
func Insert[K Number](root *Node[K], key K) *Node[K] {
	if isNaN(key) {
		return root
	}
	root, _ = insert(root, key)
	return root
}

func insert[K Number](node *Node[K], key K) (*Node[K], bool) {
	if node == nil {
		return newNode(key), true
	}

	var added bool
	if key < node.key {
		node.left, added = insert(node.left, key)
	} else if key > node.key {
		node.right, added = insert(node.right, key)
	} else {
		return node, false
	}

	updateHeight(node)

	// Only the side that grew can be too tall, and the new key tells us
	// whether it went to the outer or the inner grandchild.
	balanceFactor := Balance(node)
	if balanceFactor > 1 {
		if key < node.left.key {
			return rotateRight(node), added
		}
		// Left-Right case
		node.left = rotateLeft(node.left)
		return rotateRight(node), added
	} else if balanceFactor < -1 {
		if key > node.right.key {
			return rotateLeft(node), added
		}
		// Right-Left case
		node.right = rotateRight(node.right)
		return rotateLeft(node), added
	}

	return node, added
}

// Delete removes key from the subtree rooted at root and returns the new
// root. Deleting an absent key leaves the tree unchanged.
//
// A node with two children keeps its identity: it takes over the key of its
// in-order successor, and the successor is then deleted from the right
// subtree.
func Delete[K Number](root *Node[K], key K) *Node[K] {
	if isNaN(key) {
		return root
	}
	root, _ = remove(root, key)
	return root
}

func remove[K Number](node *Node[K], key K) (*Node[K], bool) {
	if node == nil {
		return nil, false
	}

	var removed bool
	if key < node.key {
		node.left, removed = remove(node.left, key)
	} else if key > node.key {
		node.right, removed = remove(node.right, key)
	} else {
		if node.left == nil {
			return node.right, true
		}
		if node.right == nil {
			return node.left, true
		}
		successor := minNode(node.right)
		node.key = successor.key
		node.right, _ = remove(node.right, successor.key)
		removed = true
	}

	if !removed {
		return node, false
	}

	updateHeight(node)
	return rebalance(node), true
}

// rebalance restores the balance of node after a deletion below it. With no
// inserted key to compare against, the child's own balance decides between a
// single and a double rotation.
func rebalance[K Number](node *Node[K]) *Node[K] {
	balanceFactor := Balance(node)

	// Left-heavy
	if balanceFactor > 1 {
		if Balance(node.left) >= 0 {
			return rotateRight(node)
		}
		node.left = rotateLeft(node.left)
		return rotateRight(node)
	}

	// Right-heavy
	if balanceFactor < -1 {
		if Balance(node.right) <= 0 {
			return rotateLeft(node)
		}
		node.right = rotateRight(node.right)
		return rotateLeft(node)
	}

	return node
}

// MinNode returns the node holding the smallest key under root.
func MinNode[K Number](root *Node[K]) (*Node[K], error) {
	if root == nil {
		return nil, ErrEmptyTree
	}
	return minNode(root), nil
}

// MaxNode returns the node holding the largest key under root.
func MaxNode[K Number](root *Node[K]) (*Node[K], error) {
	if root == nil {
		return nil, ErrEmptyTree
	}
	return maxNode(root), nil
}

func minNode[K Number](node *Node[K]) *Node[K] {
	for node.left != nil {
		node = node.left
	}
	return node
}

func maxNode[K Number](node *Node[K]) *Node[K] {
	for node.right != nil {
		node = node.right
	}
	return node
}

// Sum returns the sum of all keys under root, 0 for an empty tree.
func Sum[K Number](root *Node[K]) K {
	if root == nil {
		return 0
	}
	return root.key + Sum(root.left) + Sum(root.right)
}

// Contains reports whether key is stored under root.
func Contains[K Number](root *Node[K], key K) bool {
	if isNaN(key) {
		return false
	}
	for root != nil {
		switch {
		case key < root.key:
			root = root.left
		case key > root.key:
			root = root.right
		default:
			return true
		}
	}
	return false
}

// isNaN reports whether key is a floating point NaN, which has no place in
// the key order. Always false for integer keys.
func isNaN[K Number](key K) bool {
	return key != key
}
