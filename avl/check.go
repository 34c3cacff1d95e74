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

// Validate walks the tree under root and checks, for every node, the search
// tree ordering, that the cached height matches a height computed from
// scratch, and that the balance factor is within [-1, 1].
func Validate[K Number](root *Node[K]) error {
	_, err := validate(root)
	return err
}

// validate returns the number of nodes under root.
func validate[K Number](root *Node[K]) (int, error) {
	count := 0
	_, err := check(root, nil, nil, &count)
	return count, err
}

// check returns the real height of node. lo and hi are exclusive key bounds,
// nil when unbounded.
func check[K Number](node *Node[K], lo, hi *K, count *int) (int, error) {
	if node == nil {
		return 0, nil
	}
	*count++

	if isNaN(node.key) {
		return 0, fmt.Errorf("%w: NaN key", ErrInvariantViolated)
	}
	if lo != nil && node.key <= *lo {
		return 0, fmt.Errorf("%w: key %v not greater than ancestor %v", ErrInvariantViolated, node.key, *lo)
	}
	if hi != nil && node.key >= *hi {
		return 0, fmt.Errorf("%w: key %v not less than ancestor %v", ErrInvariantViolated, node.key, *hi)
	}

	lh, err := check(node.left, lo, &node.key, count)
	if err != nil {
		return 0, err
	}
	rh, err := check(node.right, &node.key, hi, count)
	if err != nil {
		return 0, err
	}

	h := max(lh, rh) + 1
	if node.height != h {
		return 0, fmt.Errorf("%w: node %v caches height %d, actual %d", ErrInvariantViolated, node.key, node.height, h)
	}
	if b := lh - rh; b < -1 || b > 1 {
		return 0, fmt.Errorf("%w: node %v has balance %d", ErrInvariantViolated, node.key, b)
	}
	return h, nil
}
