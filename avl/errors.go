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

import "errors"

var (
	// ErrEmptyTree is returned by Min/Max lookups on a tree without nodes.
	ErrEmptyTree = errors.New("avl: tree is empty")

	// ErrInvariantViolated is wrapped by Validate when the ordering, height
	// or balance invariant does not hold somewhere in the tree.
	ErrInvariantViolated = errors.New("avl: invariant violated")
)
