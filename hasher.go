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
	"errors"
	"fmt"

	"github.com/prysmaticlabs/gohashtree"
)

// ErrOddLayer is returned by Merkleize if given a leaf layer whose length,
// in chunks, is not a power of two. Callers are expected to have already
// padded via PadForLeafCount; Merkleize itself never pads silently, since
// silent padding would hide a caller bug in a cache that tracks leaf
// counts explicitly.
var ErrOddLayer = errors.New("treehash: leaf layer is not a power-of-two number of chunks")

// HashPair hashes two sibling chunks into their parent, via the same
// batched primitive Merkleize uses internally. It exists for callers (such
// as TreeHashCache.UpdateInternalNodes) that need to rehash a single node
// rather than a full layer.
func HashPair(left, right [HASHSIZE]byte) ([HASHSIZE]byte, error) {
	var buf [2 * HASHSIZE]byte
	copy(buf[:HASHSIZE], left[:])
	copy(buf[HASHSIZE:], right[:])

	var out [HASHSIZE]byte
	if err := gohashtree.HashByteSlice(out[:], buf[:]); err != nil {
		return out, fmt.Errorf("treehash: hash pair: %w", err)
	}
	return out, nil
}

// PadForLeafCount appends zero chunks to leaves until the trailing region
// has length next_power_of_two(n) * HASHSIZE. It never pads if n is
// already a power of two, matching spec.md §4.1.
func PadForLeafCount(n uint64, leaves []byte) []byte {
	want := numLeafNodes(n) * HASHSIZE
	if uint64(len(leaves)) >= want {
		return leaves
	}
	padded := make([]byte, want)
	copy(padded, leaves)
	return padded
}

// Merkleize accepts a byte sequence whose length is a power-of-two
// multiple of HASHSIZE and returns a buffer holding the full binary tree
// concatenation: internal nodes first, in level order with the root at
// offset 0, followed by the input leaves unchanged. Empty input yields an
// empty buffer.
//
// Internal node i, for i in [0, num_internal), is hash(node[2i+1] ||
// node[2i+2]); this is computed bottom-up, one layer at a time, by
// collapsing the current layer in place with gohashtree.HashByteSlice —
// the same layer-collapse gfx-labs/ssz's ComputeMerkleRootRange performs.
func Merkleize(leaves []byte) ([]byte, error) {
	if len(leaves) == 0 {
		return nil, nil
	}
	if len(leaves)%HASHSIZE != 0 {
		return nil, errBytesAreNotEvenChunks(len(leaves))
	}
	numLeaves := uint64(len(leaves)) / HASHSIZE
	if nextPowerOfTwo(numLeaves) != numLeaves {
		return nil, fmt.Errorf("%w: %d leaves", ErrOddLayer, numLeaves)
	}

	numInternal := numInternalNodes(numLeaves)
	out := make([]byte, (numInternal+numLeaves)*HASHSIZE)
	copy(out[numInternal*HASHSIZE:], leaves)

	// layer holds the current level, leaves first; each pass collapses it
	// into the layer immediately above, working from the deepest parents
	// up to the root. remaining tracks how many internal chunks, counted
	// from chunk 0, have yet to be written.
	layer := out[numInternal*HASHSIZE:]
	remaining := numInternal
	for remaining > 0 {
		layerLeaves := uint64(len(layer)) / HASHSIZE
		parentCount := layerLeaves / 2
		parentStart := (remaining - parentCount) * HASHSIZE
		dst := out[parentStart : parentStart+parentCount*HASHSIZE]
		if err := gohashtree.HashByteSlice(dst, layer); err != nil {
			return nil, fmt.Errorf("treehash: merkleize layer: %w", err)
		}
		layer = dst
		remaining -= parentCount
	}
	return out, nil
}
