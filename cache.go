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
	"encoding/binary"
	"fmt"

	"github.com/prysmaticlabs/go-bitfield"
)

// TreeHashCache is a flat, chunk-addressed buffer mirroring the layout of
// a binary Merkle tree, together with the bookkeeping needed to re-hash
// only the dirty internal-node paths after a partial update. See
// SPEC_FULL.md §5/§6 for the full contract; this file is the dominant
// module of the whole repository, matching the budget in spec.md §2.
type TreeHashCache struct {
	bytes         []byte
	chunkModified *bitfield.Bitlist
	schemas       []BTreeSchema

	// chunkIndex and schemaIndex are per-update cursors, threaded through
	// a user type's UpdateTreeHashCache the way a parser threads a
	// cursor through recursive descent.
	chunkIndex  uint64
	schemaIndex uint64
}

// New builds a fully-hashed cache for item, suitable for querying its
// root immediately.
func New(item CachedTreeHash) (*TreeHashCache, error) {
	return item.NewTreeHashCache(0)
}

// NewAtDepth is New, but for a subtree intended to be embedded at depth d
// within a larger object.
func NewAtDepth(item CachedTreeHash, depth uint64) (*TreeHashCache, error) {
	return item.NewTreeHashCache(depth)
}

// FromBytes builds a leaf-only cache directly from a flat byte buffer,
// skipping a user type's NewTreeHashCache entirely. Used for the Basic
// leaves at the bottom of a recursion, and in tests exercising the cache
// in isolation.
func FromBytes(bytes []byte, dirty bool, schema *BTreeSchema) (*TreeHashCache, error) {
	if len(bytes)%HASHSIZE != 0 {
		return nil, errBytesAreNotEvenChunks(len(bytes))
	}
	n := uint64(len(bytes)) / HASHSIZE
	flags := bitfield.NewBitlist(n)
	if dirty {
		for i := uint64(0); i < n; i++ {
			flags.SetBitAt(i, true)
		}
	}
	var schemas []BTreeSchema
	if schema != nil {
		schemas = []BTreeSchema{*schema}
	}
	return &TreeHashCache{bytes: bytes, chunkModified: flags, schemas: schemas}, nil
}

// FromSubtrees stitches a set of fully-built subtree caches (one per
// field of a Container, or one per element of a Vector/List) into a
// single composite cache: each subtree's root becomes one leaf of a
// freshly merkleized layer, the subtrees' own byte images (internal
// nodes and all) are preserved immediately after the new interior, and
// their schema lists are concatenated in order. If ownSchema is
// non-nil it is prepended — used when the composite itself is a List,
// whose own cardinality needs tracking; Vector and Container composites
// pass nil, since spec.md §3 tracks schemas only for variable-cardinality
// subtrees.
func FromSubtrees(subtrees []*TreeHashCache, ownSchema *BTreeSchema) (*TreeHashCache, error) {
	leaves := make([]byte, 0, len(subtrees)*HASHSIZE)
	var schemas []BTreeSchema
	for _, st := range subtrees {
		if st == nil || len(st.bytes) < HASHSIZE {
			return nil, ErrCacheNotInitialized
		}
		leaves = append(leaves, st.bytes[:HASHSIZE]...)
		schemas = append(schemas, st.schemas...)
	}

	n := uint64(len(subtrees))
	padded := PadForLeafCount(n, leaves)
	interior, err := Merkleize(padded)
	if err != nil {
		return nil, err
	}
	numInternal := numInternalNodes(n)

	out := make([]byte, 0, uint64(len(interior))+uint64(len(leaves)))
	out = append(out, interior[:numInternal*HASHSIZE]...)
	for _, st := range subtrees {
		out = append(out, st.bytes...)
	}

	flags := bitfield.NewBitlist(uint64(len(out)) / HASHSIZE)
	for i := uint64(0); i < numInternal; i++ {
		flags.SetBitAt(i, true)
	}
	offset := numInternal
	for _, st := range subtrees {
		stLen := uint64(len(st.bytes)) / HASHSIZE
		for i := uint64(0); i < stLen; i++ {
			if st.chunkModified.BitAt(i) {
				flags.SetBitAt(offset+i, true)
			}
		}
		offset += stLen
	}

	if ownSchema != nil {
		schemas = append([]BTreeSchema{*ownSchema}, schemas...)
	}

	return &TreeHashCache{bytes: out, chunkModified: flags, schemas: schemas}, nil
}

// ResetModifications clears every dirty flag and both cursors. The first
// step of Update.
func (c *TreeHashCache) ResetModifications() {
	n := uint64(len(c.bytes)) / HASHSIZE
	c.chunkModified = bitfield.NewBitlist(n)
	c.chunkIndex = 0
	c.schemaIndex = 0
}

// Update re-hashes the cache for item's current value: it resets dirty
// flags and cursors, walks item's fields via UpdateTreeHashCache (which
// marks any changed leaves dirty and re-hashes their ancestor paths along
// the way), and leaves TreeHashRoot ready to query.
func (c *TreeHashCache) Update(item CachedTreeHash) error {
	if len(c.bytes) == 0 {
		return ErrCacheNotInitialized
	}
	c.ResetModifications()
	return item.UpdateTreeHashCache(c)
}

// TreeHashRoot returns the first chunk: the Merkle root, valid as of the
// last successful Update (or build).
func (c *TreeHashCache) TreeHashRoot() ([]byte, error) {
	if len(c.bytes) == 0 {
		return nil, ErrCacheNotInitialized
	}
	if len(c.bytes) < HASHSIZE {
		return nil, ErrNoBytesForRoot
	}
	return c.bytes[:HASHSIZE], nil
}

// ChunkIndex returns the current update cursor.
func (c *TreeHashCache) ChunkIndex() uint64 { return c.chunkIndex }

// SchemaIndex returns the current update cursor.
func (c *TreeHashCache) SchemaIndex() uint64 { return c.schemaIndex }

// AdvanceChunkIndex advances the chunk cursor by n chunks, returning the
// cursor's prior value.
func (c *TreeHashCache) AdvanceChunkIndex(n uint64) uint64 {
	prev := c.chunkIndex
	c.chunkIndex += n
	return prev
}

// AdvanceSchemaIndex advances the schema cursor by n, returning its prior
// value.
func (c *TreeHashCache) AdvanceSchemaIndex(n uint64) uint64 {
	prev := c.schemaIndex
	c.schemaIndex += n
	return prev
}

// NumChunks is the number of HASHSIZE chunks currently in the buffer.
func (c *TreeHashCache) NumChunks() uint64 {
	return uint64(len(c.bytes)) / HASHSIZE
}

func (c *TreeHashCache) chunkAt(i uint64) ([]byte, error) {
	if i >= c.NumChunks() {
		return nil, errNoBytesForChunk(i)
	}
	start, end := chunkByteRange(i)
	return c.bytes[start:end], nil
}

func (c *TreeHashCache) isModified(i uint64) (bool, error) {
	if i >= c.chunkModified.Len() {
		return false, errNoModifiedFieldForChunk(i)
	}
	return c.chunkModified.BitAt(i), nil
}

func (c *TreeHashCache) setModified(i uint64, dirty bool) error {
	if i >= c.chunkModified.Len() {
		return errNoModifiedFieldForChunk(i)
	}
	c.chunkModified.SetBitAt(i, dirty)
	return nil
}

// GetOverlay resolves the schema at schemaIndex si against chunkIndex ci.
func (c *TreeHashCache) GetOverlay(si, ci uint64) (BTreeOverlay, error) {
	if si >= uint64(len(c.schemas)) {
		return BTreeOverlay{}, errNoSchemaForIndex(si)
	}
	return c.schemas[si].IntoOverlay(ci), nil
}

// ReplaceOverlay resizes the cache's internal-node region at schema index
// si from old's shape to newOverlay's shape, preserving every
// positionally-aligned interior hash, and replaces the stored schema
// entry. The leaf region itself is not touched — the caller writes new
// leaves immediately after. Returns the overlay that was replaced.
func (c *TreeHashCache) ReplaceOverlay(si, ci uint64, newOverlay BTreeOverlay) (BTreeOverlay, error) {
	old, err := c.GetOverlay(si, ci)
	if err != nil {
		return BTreeOverlay{}, err
	}

	if newOverlay.NumInternalNodes() == old.NumInternalNodes() {
		c.schemas[si] = newOverlay.BTreeSchema
		return old, nil
	}

	start, end := old.InternalChunkRange()
	oldBytes, oldFlags, err := c.sliceAndFlags(start, end)
	if err != nil {
		return BTreeOverlay{}, fmt.Errorf("%w: %v", ErrUnableToObtainSlices, err)
	}

	var newBytes []byte
	var newFlags *bitfield.Bitlist
	switch {
	case old.NumInternalNodes() == 0 && newOverlay.NumInternalNodes() > 0:
		n := nodesInTreeOfHeight(internalHeight(newOverlay.Height()))
		newBytes = zeroChunks(n)
		newFlags = newDirtyBitlist(n)
	case newOverlay.NumInternalNodes() == 0:
		newBytes = nil
		newFlags = bitfield.NewBitlist(0)
	case newOverlay.NumInternalNodes() > old.NumInternalNodes():
		newBytes, newFlags, err = Grow(oldBytes, oldFlags, old.Height(), newOverlay.Height())
		if err != nil {
			return BTreeOverlay{}, err
		}
	default:
		newBytes, newFlags, err = Shrink(oldBytes, oldFlags, old.Height(), newOverlay.Height())
		if err != nil {
			return BTreeOverlay{}, err
		}
	}

	if err := c.splice(start, end, newBytes, newFlags); err != nil {
		return BTreeOverlay{}, err
	}
	c.schemas[si] = newOverlay.BTreeSchema
	return old, nil
}

// RemoveProceedingChildSchemas removes every schema entry immediately
// following si whose Depth is strictly greater than depth: the
// descendant schemas of whatever used to be at si, now being replaced.
func (c *TreeHashCache) RemoveProceedingChildSchemas(si uint64, depth uint8) {
	i := si + 1
	for i < uint64(len(c.schemas)) && c.schemas[i].Depth > depth {
		i++
	}
	c.schemas = append(c.schemas[:si+1], c.schemas[i:]...)
}

// UpdateInternalNodes walks overlay's internal nodes bottom-up, via
// InternalParentsAndChildren, rehashing any parent whose children are
// dirty and marking it dirty in turn so the dirtiness propagates upward
// to whatever calls UpdateInternalNodes on the enclosing overlay next.
func (c *TreeHashCache) UpdateInternalNodes(overlay BTreeOverlay) error {
	for _, pc := range overlay.InternalParentsAndChildren() {
		leftDirty, err := c.isModified(pc.Left)
		if err != nil {
			return err
		}
		rightDirty, err := c.isModified(pc.Right)
		if err != nil {
			return err
		}
		if !leftDirty && !rightDirty {
			continue
		}

		left, err := c.chunkAt(pc.Left)
		if err != nil {
			return err
		}
		right, err := c.chunkAt(pc.Right)
		if err != nil {
			return err
		}
		var l, r [HASHSIZE]byte
		copy(l[:], left)
		copy(r[:], right)
		parent, err := HashPair(l, r)
		if err != nil {
			return err
		}
		if err := c.ModifyChunk(pc.Parent, parent[:]); err != nil {
			return err
		}
	}
	return nil
}

// MaybeUpdateChunk sets chunk c to to, marking it dirty only if the bytes
// actually changed — the conservative-but-cheap path used for ordinary
// leaf writes during Update.
func (c *TreeHashCache) MaybeUpdateChunk(chunk uint64, to []byte) error {
	cur, err := c.chunkAt(chunk)
	if err != nil {
		return err
	}
	if bytesEqual(cur, to) {
		return nil
	}
	copy(cur, to)
	return c.setModified(chunk, true)
}

// ModifyChunk sets chunk c to to and marks it dirty unconditionally, used
// for freshly computed interior hashes where the prior value is
// irrelevant.
func (c *TreeHashCache) ModifyChunk(chunk uint64, to []byte) error {
	cur, err := c.chunkAt(chunk)
	if err != nil {
		return err
	}
	copy(cur, to)
	return c.setModified(chunk, true)
}

func (c *TreeHashCache) sliceAndFlags(start, end uint64) ([]byte, *bitfield.Bitlist, error) {
	if end > c.NumChunks() || start > end {
		return nil, nil, fmt.Errorf("%w: range [%d, %d) out of bounds", ErrUnableToObtainSlices, start, end)
	}
	bs, be := start*HASHSIZE, end*HASHSIZE
	bytes := make([]byte, be-bs)
	copy(bytes, c.bytes[bs:be])
	flags := bitfield.NewBitlist(end - start)
	for i := start; i < end; i++ {
		dirty, err := c.isModified(i)
		if err != nil {
			return nil, nil, err
		}
		flags.SetBitAt(i-start, dirty)
	}
	return bytes, flags, nil
}

// Splice replaces the chunk range [start, end) with bytes/flags of
// arbitrary new length, resizing the cache's buffer in place. bytes must
// be a whole number of chunks and flags.Len() must equal that number.
func (c *TreeHashCache) Splice(start, end uint64, bytes []byte, flags *bitfield.Bitlist) error {
	return c.splice(start, end, bytes, flags)
}

func (c *TreeHashCache) splice(start, end uint64, newBytes []byte, newFlags *bitfield.Bitlist) error {
	if end > c.NumChunks() || start > end {
		return fmt.Errorf("%w: range [%d, %d) out of bounds", ErrUnableToObtainSlices, start, end)
	}
	bs, be := start*HASHSIZE, end*HASHSIZE

	rebuilt := make([]byte, 0, uint64(len(c.bytes))-(be-bs)+uint64(len(newBytes)))
	rebuilt = append(rebuilt, c.bytes[:bs]...)
	rebuilt = append(rebuilt, newBytes...)
	rebuilt = append(rebuilt, c.bytes[be:]...)
	c.bytes = rebuilt

	newTotal := uint64(len(c.bytes)) / HASHSIZE
	rebuiltFlags := bitfield.NewBitlist(newTotal)
	for i := uint64(0); i < start; i++ {
		if b, _ := c.isModifiedFromOld(i); b {
			rebuiltFlags.SetBitAt(i, true)
		}
	}
	newCount := uint64(len(newBytes)) / HASHSIZE
	for i := uint64(0); i < newCount; i++ {
		if newFlags != nil && i < newFlags.Len() && newFlags.BitAt(i) {
			rebuiltFlags.SetBitAt(start+i, true)
		}
	}
	tailShift := int64(newCount) - int64(end-start)
	for i := end; i < c.chunkModified.Len(); i++ {
		if c.chunkModified.BitAt(i) {
			rebuiltFlags.SetBitAt(uint64(int64(i)+tailShift), true)
		}
	}
	c.chunkModified = rebuiltFlags
	return nil
}

// isModifiedFromOld reads the dirty flag from the pre-splice bitmap; used
// only while rebuilding during splice, before c.chunkModified is replaced.
func (c *TreeHashCache) isModifiedFromOld(i uint64) (bool, error) {
	return c.isModified(i)
}

// AddLengthNodes reserves the two chunks surrounding [start, end) used to
// mix a list's length into its root: a placeholder immediately before
// start (for the mixed root) and a length slot immediately after the
// shifted data, then fills the length slot via MixInLength.
func (c *TreeHashCache) AddLengthNodes(start, end, length uint64) error {
	if start > end || end > c.NumChunks() {
		return fmt.Errorf("%w: range [%d, %d) out of bounds", ErrUnableToObtainSlices, start, end)
	}
	bs, be := start*HASHSIZE, end*HASHSIZE

	rebuilt := make([]byte, 0, len(c.bytes)+2*HASHSIZE)
	rebuilt = append(rebuilt, c.bytes[:bs]...)
	rebuilt = append(rebuilt, make([]byte, HASHSIZE)...) // mixed-root placeholder
	rebuilt = append(rebuilt, c.bytes[bs:be]...)          // shifted data, unchanged
	rebuilt = append(rebuilt, make([]byte, HASHSIZE)...) // length slot
	rebuilt = append(rebuilt, c.bytes[be:]...)
	c.bytes = rebuilt

	newTotal := uint64(len(c.bytes)) / HASHSIZE
	rebuiltFlags := bitfield.NewBitlist(newTotal)
	for i := uint64(0); i < start; i++ {
		if c.chunkModified.BitAt(i) {
			rebuiltFlags.SetBitAt(i, true)
		}
	}
	for i := start; i < end; i++ {
		if c.chunkModified.BitAt(i) {
			rebuiltFlags.SetBitAt(i+1, true)
		}
	}
	for i := end; i < c.chunkModified.Len(); i++ {
		if c.chunkModified.BitAt(i) {
			rebuiltFlags.SetBitAt(i+2, true)
		}
	}
	c.chunkModified = rebuiltFlags

	return c.MixInLength(start+1, end+1, length)
}

// MixInLength implements spec.md §4.4's length-mixin convention: the
// chunk at range.end is set to the little-endian 32-byte length; if
// either the data root (chunk at range.start) or the length chunk
// changed, the chunk immediately before range.start is recomputed as
// hash(root || length).
func (c *TreeHashCache) MixInLength(start, end, length uint64) error {
	if start < 1 {
		return fmt.Errorf("%w: length-mixin range must start at or after chunk 1, got %d", ErrUnableToObtainSlices, start)
	}
	if end >= c.NumChunks() {
		return fmt.Errorf("%w: length chunk %d out of bounds", ErrNoBytesForChunk, end)
	}

	var lengthBytes [HASHSIZE]byte
	binary.LittleEndian.PutUint64(lengthBytes[:8], length)
	if err := c.MaybeUpdateChunk(end, lengthBytes[:]); err != nil {
		return err
	}

	rootDirty, err := c.isModified(start)
	if err != nil {
		return err
	}
	lengthDirty, err := c.isModified(end)
	if err != nil {
		return err
	}
	if !rootDirty && !lengthDirty {
		return nil
	}

	root, err := c.chunkAt(start)
	if err != nil {
		return err
	}
	var r, l [HASHSIZE]byte
	copy(r[:], root)
	copy(l[:], lengthBytes[:])
	mixed, err := HashPair(r, l)
	if err != nil {
		return err
	}
	return c.ModifyChunk(start-1, mixed[:])
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
