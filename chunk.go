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

import "math/bits"

// HASHSIZE is the size, in bytes, of a single chunk: one leaf or one
// internal node of the tree. It is a compile-time constant; this module
// carries no cryptographic agility (see the Non-goals in SPEC_FULL.md).
const HASHSIZE = 32

// Chunk is a single HASHSIZE-byte block: the atomic unit of the tree buffer.
type Chunk [HASHSIZE]byte

// nextPowerOfTwo returns the smallest power of two greater than or equal
// to n. nextPowerOfTwo(0) is 1, matching the "leaves == 0" case in
// spec.md §3 (num_internal_nodes is 0, but height still treats an empty
// subtree as having a single, zero leaf slot).
func nextPowerOfTwo(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	return uint64(1) << bits.Len64(n-1)
}

// numInternalNodes is next_power_of_two(leaves) - 1 for a non-empty
// subtree, and 0 when leaves is zero.
func numInternalNodes(leaves uint64) uint64 {
	if leaves == 0 {
		return 0
	}
	return nextPowerOfTwo(leaves) - 1
}

// numLeafNodes is the number of leaf chunks after padding to a power of two.
func numLeafNodes(leaves uint64) uint64 {
	return nextPowerOfTwo(leaves)
}

// treeHeight is ceil(log2(max(leaves, 1))) + 1, counting leaf level.
func treeHeight(leaves uint64) uint8 {
	return uint8(bits.Len64(nextPowerOfTwo(leaves)-1)) + 1
}

// nodesInTreeOfHeight returns the number of internal nodes in a complete
// binary tree whose internal region has the given height (levels above
// the leaves). A height of 0 has no internal nodes.
func nodesInTreeOfHeight(internalHeight uint8) uint64 {
	if internalHeight == 0 {
		return 0
	}
	return (uint64(1) << internalHeight) - 1
}

// parentOf returns the chunk-local index of the parent of node i.
func parentOf(i uint64) uint64 {
	return (i - 1) / 2
}

// childrenOf returns the chunk-local indices of the two children of
// internal node i: (2i+1, 2i+2).
func childrenOf(i uint64) (left, right uint64) {
	return 2*i + 1, 2*i + 2
}

// zeroChunks returns n freshly allocated, zeroed chunks concatenated
// into a single byte slice of length n*HASHSIZE.
func zeroChunks(n uint64) []byte {
	return make([]byte, n*HASHSIZE)
}

// chunkByteRange returns the [start, end) byte offsets of chunk index c.
func chunkByteRange(c uint64) (start, end uint64) {
	return c * HASHSIZE, (c + 1) * HASHSIZE
}
