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

// Package demo contains small, hand-written types exercising the
// treehash.CachedTreeHash capability contract end to end: a fixed
// Container (Checkpoint) and a variable-length List (ValidatorRoots).
// Neither is meant to be a general-purpose SSZ encoder — each just
// implements the four methods of that interface.
package demo

import (
	"encoding/binary"

	treehash "github.com/wealdtech/go-treehash-cache"
)

// Checkpoint is a two-field fixed Container: an epoch counter and a
// 32-byte root. Both fields are Basic leaves, one chunk each, laid out
// in declaration order.
type Checkpoint struct {
	Epoch uint64
	Root  [32]byte
}

var _ treehash.CachedTreeHash = (*Checkpoint)(nil)

func (c *Checkpoint) TreeHashType() treehash.TreeHashType { return treehash.Container }

func (c *Checkpoint) TreeHashPackingFactor() uint64 { return 1 }

func (c *Checkpoint) epochChunk() []byte {
	var b [32]byte
	binary.LittleEndian.PutUint64(b[:8], c.Epoch)
	return b[:]
}

// NewTreeHashCache builds a fresh, fully-hashed cache for the
// checkpoint's current value: two leaf chunks (epoch, root) merkleized
// into a single root chunk.
func (c *Checkpoint) NewTreeHashCache(depth uint64) (*treehash.TreeHashCache, error) {
	leaves := make([]byte, 0, 2*treehash.HASHSIZE)
	leaves = append(leaves, c.epochChunk()...)
	leaves = append(leaves, c.Root[:]...)

	tree, err := treehash.Merkleize(leaves)
	if err != nil {
		return nil, err
	}
	return treehash.FromBytes(tree, true, nil)
}

// UpdateTreeHashCache walks the two fields in the same order used at
// construction, advancing the cache's chunk cursor and marking any
// changed leaf dirty; it then re-hashes the single internal node (the
// root) if either leaf changed.
func (c *Checkpoint) UpdateTreeHashCache(cache *treehash.TreeHashCache) error {
	schema := treehash.BTreeSchema{Depth: 0, Leaves: 2}
	overlay := schema.IntoOverlay(cache.AdvanceChunkIndex(schema.NumInternalNodes() + schema.NumLeafNodes()))

	epochChunk, _ := overlay.LeafChunkRange()
	if err := cache.MaybeUpdateChunk(epochChunk, c.epochChunk()); err != nil {
		return err
	}
	if err := cache.MaybeUpdateChunk(epochChunk+1, c.Root[:]); err != nil {
		return err
	}
	return cache.UpdateInternalNodes(overlay)
}
