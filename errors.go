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
)

// Sentinel error kinds, named as in spec.md §7. Callers compare against
// these with errors.Is; the wrapping constructors below attach the
// offending index without losing the sentinel identity, the same
// errors.New-plus-fmt.Errorf("%w", ...) idiom the teacher uses
// throughout its own package-level error vars.
var (
	ErrCacheNotInitialized      = errors.New("treehash: cache not initialized")
	ErrNoSchemaForIndex         = errors.New("treehash: no schema for index")
	ErrNoBytesForRoot           = errors.New("treehash: no bytes for root")
	ErrNoBytesForChunk          = errors.New("treehash: no bytes for chunk")
	ErrNoModifiedFieldForChunk  = errors.New("treehash: no modified field for chunk")
	ErrBytesAreNotEvenChunks    = errors.New("treehash: bytes are not an even number of chunks")
	ErrUnableToObtainSlices     = errors.New("treehash: unable to obtain slices")
	ErrUnableToGrowMerkleTree   = errors.New("treehash: unable to grow merkle tree")
	ErrUnableToShrinkMerkleTree = errors.New("treehash: unable to shrink merkle tree")
)

func errNoSchemaForIndex(i uint64) error {
	return fmt.Errorf("%w: %d", ErrNoSchemaForIndex, i)
}

func errNoBytesForChunk(c uint64) error {
	return fmt.Errorf("%w: %d", ErrNoBytesForChunk, c)
}

func errNoModifiedFieldForChunk(c uint64) error {
	return fmt.Errorf("%w: %d", ErrNoModifiedFieldForChunk, c)
}

func errBytesAreNotEvenChunks(n int) error {
	return fmt.Errorf("%w: %d bytes", ErrBytesAreNotEvenChunks, n)
}
