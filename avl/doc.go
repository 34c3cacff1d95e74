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

// Package avl implements a key-only AVL tree over numeric keys.
//
// Every mutating operation is a recursive rebuild that returns the (possibly
// new) root of the subtree it was given. Heights are cached on the nodes and
// restored bottom-up on the way out of the recursion, and rotations are
// applied at each node whose balance factor leaves [-1, 1].
//
// Duplicate inserts and deletes of absent keys are silent no-ops. Min and Max
// on an empty tree return ErrEmptyTree.
//
// A tree is not safe for concurrent use. If several goroutines access one
// tree and at least one of them modifies it, access must be synchronized
// externally.
package avl
