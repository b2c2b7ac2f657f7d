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

// BTreeOverlay is a BTreeSchema resolved against a concrete chunk_index
// offset: the runtime view of one subtree within the cache's flat chunk
// buffer. Positions, not pointers, are what overlays reference, which is
// what keeps node identity stable across resizes (see DESIGN.md's "arena
// + indices" note).
type BTreeOverlay struct {
	BTreeSchema
	ChunkIndex uint64
}

// ParentChunkAndChildren is one (parent, (left, right)) triple in the
// bottom-up walk produced by InternalParentsAndChildren.
type ParentChunkAndChildren struct {
	Parent uint64
	Left   uint64
	Right  uint64
}

// InternalChunkRange is [chunk_index, chunk_index + num_internal_nodes).
func (o BTreeOverlay) InternalChunkRange() (start, end uint64) {
	n := o.NumInternalNodes()
	return o.ChunkIndex, o.ChunkIndex + n
}

// LeafChunkRange is the chunk range immediately following the internal
// region: [chunk_index + num_internal_nodes, chunk_index + num_internal_nodes + num_leaf_nodes).
func (o BTreeOverlay) LeafChunkRange() (start, end uint64) {
	_, internalEnd := o.InternalChunkRange()
	return internalEnd, internalEnd + o.NumLeafNodes()
}

// RootChunk is the cache-global chunk index of this subtree's root: the
// internal chunk range's first element when non-empty, otherwise the
// first (and only) leaf chunk.
func (o BTreeOverlay) RootChunk() uint64 {
	return o.ChunkIndex
}

// InternalParentsAndChildren produces the sequence of (parent_chunk,
// (left_chunk, right_chunk)) triples in bottom-up order — deepest parents
// first — so that by the time each parent is rehashed its children are
// already current. Indices are cache-global (chunk_index already added).
//
// This mirrors, in iteration-over-indices form, the recursive
// children-before-parent walk the teacher's InternalNode.Hash() performs
// over an explicit pointer tree (tree.go); here the tree is implicit in
// the index arithmetic, so the walk is just a reverse scan over local
// node indices [0, num_internal_nodes).
func (o BTreeOverlay) InternalParentsAndChildren() []ParentChunkAndChildren {
	n := o.NumInternalNodes()
	if n == 0 {
		return nil
	}
	out := make([]ParentChunkAndChildren, 0, n)
	for i := n; i > 0; i-- {
		p := i - 1
		left, right := childrenOf(p)
		out = append(out, ParentChunkAndChildren{
			Parent: o.ChunkIndex + p,
			Left:   o.ChunkIndex + left,
			Right:  o.ChunkIndex + right,
		})
	}
	return out
}
