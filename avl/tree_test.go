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

package avl_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cybrota/avlkit/avl"
)

func TestTree(t *testing.T) {
	tree := avl.New[int]()
	for _, k := range []int{10, 20, 30, 25, 28, 27, -1} {
		require.True(t, tree.Insert(k))
	}
	require.False(t, tree.Insert(28))
	require.Equal(t, 7, tree.Len())
	require.NoError(t, tree.Validate())
	require.True(t, tree.Contains(27))
	require.False(t, tree.Contains(26))

	minKey, err := tree.Min()
	require.NoError(t, err)
	require.Equal(t, -1, minKey)
	maxKey, err := tree.Max()
	require.NoError(t, err)
	require.Equal(t, 30, maxKey)
	require.Equal(t, 139, tree.Sum())
	require.Equal(t, 3, tree.Height())

	require.True(t, tree.Delete(10))
	require.True(t, tree.Delete(27))
	require.False(t, tree.Delete(27))
	require.Equal(t, 5, tree.Len())
	require.Equal(t, []int{-1, 20, 25, 28, 30}, tree.Keys())
	require.Equal(t, 102, tree.Sum())
	require.NoError(t, tree.Validate())
	require.Equal(t, avl.Render(tree.Root()), tree.String())

	tree.Clear()
	require.Zero(t, tree.Len())
	_, err = tree.Min()
	require.ErrorIs(t, err, avl.ErrEmptyTree)
	_, err = tree.Max()
	require.ErrorIs(t, err, avl.ErrEmptyTree)
}

func TestTreeRoundTrip(t *testing.T) {
	var tree avl.Tree[int64]
	for k := int64(0); k < 100; k++ {
		tree.Insert((k * 37) % 100)
	}
	require.Equal(t, 100, tree.Len())
	require.NoError(t, tree.Validate())
	require.LessOrEqual(t, tree.Height(), 9)

	for k := int64(0); k < 100; k++ {
		require.True(t, tree.Delete(k))
		require.NoError(t, tree.Validate())
	}
	require.Nil(t, tree.Root())
	require.Zero(t, tree.Len())
}

func ExampleTree() {
	tree := avl.New[int]()
	for _, k := range []int{10, 20, 30, 25, 28, 27, -1} {
		tree.Insert(k)
	}
	minKey, _ := tree.Min()
	maxKey, _ := tree.Max()
	fmt.Println(minKey, maxKey, tree.Sum())
	// Output: -1 30 139
}
