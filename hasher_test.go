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
	"bytes"
	"errors"
	"testing"
)

func TestHashPairMatchesMerkleizeOfTwoLeaves(t *testing.T) {
	var left, right [HASHSIZE]byte
	left[0] = 0x01
	right[0] = 0x02

	leaves := make([]byte, 0, 2*HASHSIZE)
	leaves = append(leaves, left[:]...)
	leaves = append(leaves, right[:]...)

	tree, err := Merkleize(leaves)
	if err != nil {
		t.Fatalf("Merkleize: %v", err)
	}

	pair, err := HashPair(left, right)
	if err != nil {
		t.Fatalf("HashPair: %v", err)
	}

	if !bytes.Equal(tree[:HASHSIZE], pair[:]) {
		t.Errorf("Merkleize root = %x, want HashPair result %x", tree[:HASHSIZE], pair)
	}
}

func TestMerkleizeEmptyInput(t *testing.T) {
	out, err := Merkleize(nil)
	if err != nil {
		t.Fatalf("Merkleize(nil): %v", err)
	}
	if out != nil {
		t.Errorf("Merkleize(nil) = %x, want nil", out)
	}
}

func TestMerkleizeRejectsOddLayer(t *testing.T) {
	leaves := make([]byte, 3*HASHSIZE)
	if _, err := Merkleize(leaves); !errors.Is(err, ErrOddLayer) {
		t.Errorf("Merkleize(3 leaves) error = %v, want %v", err, ErrOddLayer)
	}
}

func TestMerkleizeRejectsPartialChunk(t *testing.T) {
	leaves := make([]byte, HASHSIZE+1)
	if _, err := Merkleize(leaves); !errors.Is(err, ErrBytesAreNotEvenChunks) {
		t.Errorf("Merkleize(partial chunk) error = %v, want %v", err, ErrBytesAreNotEvenChunks)
	}
}

func TestMerkleizeFourLeavesLayout(t *testing.T) {
	leaves := make([]byte, 4*HASHSIZE)
	for i := 0; i < 4; i++ {
		leaves[i*HASHSIZE] = byte(i + 1)
	}

	out, err := Merkleize(leaves)
	if err != nil {
		t.Fatalf("Merkleize: %v", err)
	}
	if len(out) != 7*HASHSIZE {
		t.Fatalf("Merkleize output length = %d, want %d", len(out), 7*HASHSIZE)
	}

	var l0, l1, l2, l3 [HASHSIZE]byte
	copy(l0[:], leaves[0:HASHSIZE])
	copy(l1[:], leaves[HASHSIZE:2*HASHSIZE])
	copy(l2[:], leaves[2*HASHSIZE:3*HASHSIZE])
	copy(l3[:], leaves[3*HASHSIZE:4*HASHSIZE])

	left, err := HashPair(l0, l1)
	if err != nil {
		t.Fatalf("HashPair: %v", err)
	}
	right, err := HashPair(l2, l3)
	if err != nil {
		t.Fatalf("HashPair: %v", err)
	}
	root, err := HashPair(left, right)
	if err != nil {
		t.Fatalf("HashPair: %v", err)
	}

	if !bytes.Equal(out[:HASHSIZE], root[:]) {
		t.Errorf("root chunk = %x, want %x", out[:HASHSIZE], root)
	}
	// internal node 1 and 2 (children of root) occupy chunks 1 and 2.
	if !bytes.Equal(out[HASHSIZE:2*HASHSIZE], left[:]) {
		t.Errorf("left internal chunk = %x, want %x", out[HASHSIZE:2*HASHSIZE], left)
	}
	if !bytes.Equal(out[2*HASHSIZE:3*HASHSIZE], right[:]) {
		t.Errorf("right internal chunk = %x, want %x", out[2*HASHSIZE:3*HASHSIZE], right)
	}
}

func TestPadForLeafCount(t *testing.T) {
	leaves := make([]byte, 3*HASHSIZE)
	padded := PadForLeafCount(3, leaves)
	if len(padded) != 4*HASHSIZE {
		t.Fatalf("PadForLeafCount(3, ...) length = %d, want %d", len(padded), 4*HASHSIZE)
	}

	// already a power of two: no padding, same length.
	leaves = make([]byte, 4*HASHSIZE)
	padded = PadForLeafCount(4, leaves)
	if len(padded) != 4*HASHSIZE {
		t.Fatalf("PadForLeafCount(4, ...) length = %d, want %d", len(padded), 4*HASHSIZE)
	}
}
