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

package demo

import (
	"github.com/prysmaticlabs/go-bitfield"

	treehash "github.com/wealdtech/go-treehash-cache"
)

// ValidatorRoots is a variable-length List of 32-byte roots: the
// "push an element" and "truncate" scenarios from spec.md §8's
// concrete scenarios 2 and 3 are exercised against exactly this type in
// validator_list_test.go.
type ValidatorRoots struct {
	Roots [][32]byte
}

var _ treehash.CachedTreeHash = (*ValidatorRoots)(nil)

func (v *ValidatorRoots) TreeHashType() treehash.TreeHashType { return treehash.List }

func (v *ValidatorRoots) TreeHashPackingFactor() uint64 { return 1 }

// the mixed root always lives at chunk 0 and the data subtree's root
// always lives at chunk 1 for this top-level list; AddLengthNodes is
// what reserves that layout at build time.
const dataRootChunk = uint64(1)

func (v *ValidatorRoots) leaves() []byte {
	out := make([]byte, 0, len(v.Roots)*treehash.HASHSIZE)
	for _, r := range v.Roots {
		out = append(out, r[:]...)
	}
	return out
}

// NewTreeHashCache builds the data subtree, then reserves and fills the
// two length-mixin chunks around it (spec.md §4.4).
func (v *ValidatorRoots) NewTreeHashCache(depth uint64) (*treehash.TreeHashCache, error) {
	n := uint64(len(v.Roots))
	padded := treehash.PadForLeafCount(n, v.leaves())
	tree, err := treehash.Merkleize(padded)
	if err != nil {
		return nil, err
	}

	schema := treehash.BTreeSchema{Depth: uint8(depth), Leaves: n, IsListLike: true}
	cache, err := treehash.FromBytes(tree, true, &schema)
	if err != nil {
		return nil, err
	}

	dataChunks := cache.NumChunks()
	if err := cache.AddLengthNodes(0, dataChunks, n); err != nil {
		return nil, err
	}
	return cache, nil
}

// UpdateTreeHashCache rewrites the padded leaf region in place (zero
// chunks beyond the last element) when the padded leaf count is
// unchanged, or resizes the internal-node region via ReplaceOverlay and
// splices in a freshly padded leaf region when it isn't, before
// re-hashing the interior and the length mixin.
func (v *ValidatorRoots) UpdateTreeHashCache(cache *treehash.TreeHashCache) error {
	si := cache.AdvanceSchemaIndex(1)
	old, err := cache.GetOverlay(si, dataRootChunk)
	if err != nil {
		return err
	}

	n := uint64(len(v.Roots))
	newOverlay := treehash.BTreeSchema{Depth: old.Depth, Leaves: n, IsListLike: true}.IntoOverlay(dataRootChunk)

	if newOverlay.NumLeafNodes() != old.NumLeafNodes() {
		oldLeafCount := old.NumLeafNodes()
		if _, err := cache.ReplaceOverlay(si, dataRootChunk, newOverlay); err != nil {
			return err
		}
		// ReplaceOverlay leaves the leaf region untouched: it still holds
		// oldLeafCount chunks, now shifted to start right after the
		// resized internal region.
		_, newInternalEnd := newOverlay.InternalChunkRange()
		oldLeafStart, oldLeafEnd := newInternalEnd, newInternalEnd+oldLeafCount
		padded := treehash.PadForLeafCount(n, v.leaves())
		if err := cache.Splice(oldLeafStart, oldLeafEnd, padded, allDirty(newOverlay.NumLeafNodes())); err != nil {
			return err
		}
	} else {
		leafStart, _ := old.LeafChunkRange()
		padded := treehash.PadForLeafCount(n, v.leaves())
		for i := uint64(0); i < newOverlay.NumLeafNodes(); i++ {
			leaf := padded[i*treehash.HASHSIZE : (i+1)*treehash.HASHSIZE]
			if err := cache.MaybeUpdateChunk(leafStart+i, leaf); err != nil {
				return err
			}
		}
	}

	if err := cache.UpdateInternalNodes(newOverlay); err != nil {
		return err
	}

	lengthChunk := dataRootChunk + newOverlay.NumInternalNodes() + newOverlay.NumLeafNodes()
	return cache.MixInLength(dataRootChunk, lengthChunk, n)
}

func allDirty(n uint64) *bitfield.Bitlist {
	b := bitfield.NewBitlist(n)
	for i := uint64(0); i < n; i++ {
		b.SetBitAt(i, true)
	}
	return b
}
