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

// InOrder calls fn for every key under root in ascending order until fn
// returns false.
func InOrder[K Number](root *Node[K], fn func(key K) bool) {
	inOrder(root, fn)
}

func inOrder[K Number](node *Node[K], fn func(key K) bool) bool {
	if node == nil {
		return true
	}
	if !inOrder(node.left, fn) {
		return false
	}
	if !fn(node.key) {
		return false
	}
	return inOrder(node.right, fn)
}

// PreOrder calls fn for every key under root, parent before children, until
// fn returns false.
func PreOrder[K Number](root *Node[K], fn func(key K) bool) {
	preOrder(root, fn)
}

func preOrder[K Number](node *Node[K], fn func(key K) bool) bool {
	if node == nil {
		return true
	}
	if !fn(node.key) {
		return false
	}
	if !preOrder(node.left, fn) {
		return false
	}
	return preOrder(node.right, fn)
}

// Keys returns the keys under root in ascending order.
func Keys[K Number](root *Node[K]) []K {
	var keys []K
	InOrder(root, func(key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}
