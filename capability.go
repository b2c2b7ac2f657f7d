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

// TreeHashType classifies how a user type's tree hash is composed, per
// spec.md §6.
type TreeHashType int

const (
	// Basic is a single packed/primitive value, or a fixed-size array of
	// them sharing one chunk (see TreeHashPackingFactor).
	Basic TreeHashType = iota
	// Vector is a fixed-length homogeneous sequence.
	Vector
	// List is a variable-length homogeneous sequence; its root mixes in
	// its length (spec.md §4.4).
	List
	// Container is a heterogeneous, fixed-shape composite of fields.
	Container
)

// CachedTreeHash is the capability a user type provides so the generic,
// non-generic TreeHashCache can recurse into it without knowing anything
// about the type's shape. Mirrors the teacher's VerkleNode interface in
// tree.go: a small, closed set of methods realizing polymorphism at the
// boundary while the core engine (TreeHashCache) stays ordinary,
// non-generic Go.
//
// The surrounding peer-to-peer RPC framing described in spec.md §6 (the
// request/response envelope, method codes, connection upgrades) is a
// distinct, out-of-scope collaborator: it is a consumer of a type's
// CachedTreeHash-computed root over the wire, never a participant in the
// recursion itself, so no networking import belongs anywhere near this
// interface.
type CachedTreeHash interface {
	// TreeHashType reports this type's shape.
	TreeHashType() TreeHashType

	// NewTreeHashCache builds a fully-hashed cache for the current value
	// of the receiver, suitable for embedding at the given depth.
	NewTreeHashCache(depth uint64) (*TreeHashCache, error)

	// UpdateTreeHashCache walks the receiver's fields in the same
	// deterministic order used by NewTreeHashCache, advancing c's
	// chunk_index/schema_index cursors and marking dirty chunks for any
	// leaf whose value changed since the cache was built.
	UpdateTreeHashCache(c *TreeHashCache) error

	// TreeHashPackingFactor reports how many basic values share one
	// chunk when this type is the element of a packed Basic vector or
	// list (e.g. 32 for a byte, 1 for a Container).
	TreeHashPackingFactor() uint64
}
