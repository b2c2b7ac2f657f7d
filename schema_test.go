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

func TestBTreeSchemaCounts(t *testing.T) {
	testCases := []struct {
		schema       BTreeSchema
		wantInternal uint64
		wantLeaf     uint64
		wantHeight   uint8
	}{
		{BTreeSchema{Leaves: 0}, 0, 1, 1},
		{BTreeSchema{Leaves: 1}, 0, 1, 1},
		{BTreeSchema{Leaves: 2}, 1, 2, 2},
		{BTreeSchema{Leaves: 3}, 3, 4, 3},
		{BTreeSchema{Leaves: 8}, 7, 8, 4},
	}

	for _, test := range testCases {
		if got := test.schema.NumInternalNodes(); got != test.wantInternal {
			t.Errorf("NumInternalNodes(%+v) = %d, want %d", test.schema, got, test.wantInternal)
		}
		if got := test.schema.NumLeafNodes(); got != test.wantLeaf {
			t.Errorf("NumLeafNodes(%+v) = %d, want %d", test.schema, got, test.wantLeaf)
		}
		if got := test.schema.Height(); got != test.wantHeight {
			t.Errorf("Height(%+v) = %d, want %d", test.schema, got, test.wantHeight)
		}
	}
}

func TestIntoOverlayCarriesChunkIndex(t *testing.T) {
	schema := BTreeSchema{Leaves: 4, IsListLike: true}
	overlay := schema.IntoOverlay(10)

	if overlay.ChunkIndex != 10 {
		t.Errorf("overlay.ChunkIndex = %d, want 10", overlay.ChunkIndex)
	}
	if overlay.Leaves != 4 || !overlay.IsListLike {
		t.Errorf("overlay did not carry the schema's fields: %+v", overlay)
	}
}
