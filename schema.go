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

// BTreeSchema is the serializable description of one logical node's
// subtree shape: its depth, its number of logical leaves, and whether it
// mixes in a length chunk (the list/sequence case). It carries no chunk
// index of its own — that is added when it is resolved into a
// BTreeOverlay (see overlay.go).
type BTreeSchema struct {
	// Depth is this subtree's nesting depth within the logical object,
	// used by RemoveProceedingChildSchemas to find where a subtree's
	// descendant schemas end.
	Depth uint8
	// Leaves is the number of logical leaves before power-of-two padding.
	Leaves uint64
	// IsListLike marks a variable-cardinality subtree whose root mixes in
	// its length, per spec.md §4.4's length-mixin convention.
	IsListLike bool
}

// NumInternalNodes is next_power_of_two(Leaves) - 1, or 0 when Leaves is 0.
func (s BTreeSchema) NumInternalNodes() uint64 {
	return numInternalNodes(s.Leaves)
}

// NumLeafNodes is the number of leaf chunks after padding to a power of two.
func (s BTreeSchema) NumLeafNodes() uint64 {
	return numLeafNodes(s.Leaves)
}

// Height is ceil(log2(max(Leaves, 1))) + 1.
func (s BTreeSchema) Height() uint8 {
	return treeHeight(s.Leaves)
}

// IntoOverlay resolves this schema against a concrete chunk_index offset,
// producing the runtime view used to address parents, children, and
// child-subtree boundaries.
func (s BTreeSchema) IntoOverlay(chunkIndex uint64) BTreeOverlay {
	return BTreeOverlay{BTreeSchema: s, ChunkIndex: chunkIndex}
}
