// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

package treehash

import "testing"

func TestNextPowerOfTwo(t *testing.T) {
	testCases := []struct {
		in   uint64
		want uint64
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{8, 8},
		{9, 16},
		{1023, 1024},
		{1024, 1024},
	}

	for _, test := range testCases {
		if got := nextPowerOfTwo(test.in); got != test.want {
			t.Errorf("nextPowerOfTwo(%d) = %d, want %d", test.in, got, test.want)
		}
	}
}

func TestNumInternalAndLeafNodes(t *testing.T) {
	testCases := []struct {
		leaves       uint64
		wantInternal uint64
		wantLeaf     uint64
	}{
		{0, 0, 1},
		{1, 0, 1},
		{2, 1, 2},
		{3, 3, 4},
		{4, 3, 4},
		{5, 7, 8},
		{8, 7, 8},
	}

	for _, test := range testCases {
		if got := numInternalNodes(test.leaves); got != test.wantInternal {
			t.Errorf("numInternalNodes(%d) = %d, want %d", test.leaves, got, test.wantInternal)
		}
		if got := numLeafNodes(test.leaves); got != test.wantLeaf {
			t.Errorf("numLeafNodes(%d) = %d, want %d", test.leaves, got, test.wantLeaf)
		}
	}
}

func TestTreeHeight(t *testing.T) {
	testCases := []struct {
		leaves uint64
		want   uint8
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 3},
		{4, 3},
		{5, 4},
		{8, 4},
	}

	for _, test := range testCases {
		if got := treeHeight(test.leaves); got != test.want {
			t.Errorf("treeHeight(%d) = %d, want %d", test.leaves, got, test.want)
		}
	}
}

func TestParentAndChildrenOf(t *testing.T) {
	testCases := []struct {
		node        uint64
		left, right uint64
	}{
		{0, 1, 2},
		{1, 3, 4},
		{2, 5, 6},
	}

	for _, test := range testCases {
		left, right := childrenOf(test.node)
		if left != test.left || right != test.right {
			t.Errorf("childrenOf(%d) = (%d, %d), want (%d, %d)", test.node, left, right, test.left, test.right)
		}
		if got := parentOf(test.left); got != test.node {
			t.Errorf("parentOf(%d) = %d, want %d", test.left, got, test.node)
		}
		if got := parentOf(test.right); got != test.node {
			t.Errorf("parentOf(%d) = %d, want %d", test.right, got, test.node)
		}
	}
}

func TestZeroChunksAndByteRange(t *testing.T) {
	z := zeroChunks(3)
	if len(z) != 3*HASHSIZE {
		t.Fatalf("zeroChunks(3) length = %d, want %d", len(z), 3*HASHSIZE)
	}
	for _, b := range z {
		if b != 0 {
			t.Fatalf("zeroChunks(3) contains a non-zero byte")
		}
	}

	start, end := chunkByteRange(2)
	if start != 64 || end != 96 {
		t.Errorf("chunkByteRange(2) = (%d, %d), want (64, 96)", start, end)
	}
}
