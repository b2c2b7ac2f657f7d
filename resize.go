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

import (
	"fmt"

	"github.com/prysmaticlabs/go-bitfield"
)

// internalHeight is "number of node levels including leaves" minus one,
// matching spec.md §4.3's convention that height counts leaf levels too.
func internalHeight(h uint8) uint8 {
	if h == 0 {
		return 0
	}
	return h - 1
}

// newDirtyBitlist allocates a Bitlist of n bits, all set — used when
// growing into freshly introduced positions, which are always dirty.
func newDirtyBitlist(n uint64) *bitfield.Bitlist {
	b := bitfield.NewBitlist(n)
	for i := uint64(0); i < n; i++ {
		b.SetBitAt(i, true)
	}
	return b
}

// Grow transforms an old internal-node region (bytes + dirty flags) for a
// tree of height hOld into the internal-node region for height hNew, with
// hNew > hOld. Nodes whose positions exist in both trees retain their old
// bytes and flags; every other position is a zero chunk marked dirty.
//
// Positions align because both trees use the same heap indexing: node i
// in the old tree occupies the same index i in the new, larger tree —
// only the *range* of valid indices grows. This is the one invariant that
// makes the whole incremental scheme work; without it grow/shrink would
// need to renumber every surviving node.
func Grow(oldBytes []byte, oldFlags *bitfield.Bitlist, hOld, hNew uint8) ([]byte, *bitfield.Bitlist, error) {
	if hNew <= hOld {
		return nil, nil, fmt.Errorf("%w: new height %d must exceed old height %d", ErrUnableToGrowMerkleTree, hNew, hOld)
	}
	oldInternal := nodesInTreeOfHeight(internalHeight(hOld))
	newInternal := nodesInTreeOfHeight(internalHeight(hNew))
	if uint64(len(oldBytes)) != oldInternal*HASHSIZE {
		return nil, nil, fmt.Errorf("%w: old bytes length %d does not match height %d", ErrUnableToGrowMerkleTree, len(oldBytes), hOld)
	}
	if oldFlags != nil && oldFlags.Len() != oldInternal {
		return nil, nil, fmt.Errorf("%w: old flags length %d does not match height %d", ErrUnableToGrowMerkleTree, oldFlags.Len(), hOld)
	}

	newBytes := zeroChunks(newInternal)
	copy(newBytes, oldBytes)

	newFlags := newDirtyBitlist(newInternal)
	for i := uint64(0); i < oldInternal; i++ {
		if oldFlags != nil && oldFlags.BitAt(i) {
			newFlags.SetBitAt(i, true)
		} else {
			newFlags.SetBitAt(i, false)
		}
	}
	return newBytes, newFlags, nil
}

// Shrink is the symmetric counterpart of Grow: hNew < hOld. Surviving
// positions (those that still exist in the smaller tree) retain their old
// bytes and dirty flags; positions that no longer exist are simply
// truncated away, never resurrected.
func Shrink(oldBytes []byte, oldFlags *bitfield.Bitlist, hOld, hNew uint8) ([]byte, *bitfield.Bitlist, error) {
	if hNew >= hOld {
		return nil, nil, fmt.Errorf("%w: new height %d must be below old height %d", ErrUnableToShrinkMerkleTree, hNew, hOld)
	}
	oldInternal := nodesInTreeOfHeight(internalHeight(hOld))
	newInternal := nodesInTreeOfHeight(internalHeight(hNew))
	if uint64(len(oldBytes)) != oldInternal*HASHSIZE {
		return nil, nil, fmt.Errorf("%w: old bytes length %d does not match height %d", ErrUnableToShrinkMerkleTree, len(oldBytes), hOld)
	}
	if oldFlags != nil && oldFlags.Len() != oldInternal {
		return nil, nil, fmt.Errorf("%w: old flags length %d does not match height %d", ErrUnableToShrinkMerkleTree, oldFlags.Len(), hOld)
	}
	if newInternal > oldInternal {
		return nil, nil, fmt.Errorf("%w: new internal count %d exceeds old %d", ErrUnableToShrinkMerkleTree, newInternal, oldInternal)
	}

	newBytes := make([]byte, newInternal*HASHSIZE)
	copy(newBytes, oldBytes[:newInternal*HASHSIZE])

	newFlags := bitfield.NewBitlist(newInternal)
	for i := uint64(0); i < newInternal; i++ {
		if oldFlags != nil && oldFlags.BitAt(i) {
			newFlags.SetBitAt(i, true)
		}
	}
	return newBytes, newFlags, nil
}
