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

package voxtree

import "github.com/bits-and-blooms/bitset"

// leafMask is the (set, clear) bit pair for one leaf-parent's eight
// children: bit i of set means child i should end up with a non-default
// value, bit i of clear means it should end up default. A child touched by
// neither bit is left as-is when the batch is applied.
type leafMask struct {
	set, clear uint8
}

// Batch buffers edits against an octree without touching the shared Store
// until ApplyBatch runs, so a caller can stage thousands of individual Set
// calls and pay the interning cost once, bottom-up, instead of once per
// call. Entries are indexed by the Morton path of their leaf-parent, which
// keeps writes to nearby voxels close together in the underlying slices.
type Batch[T Value] struct {
	masks    []leafMask
	values   [][MaxChildren]T
	touched  *bitset.BitSet
	toFill   *T
	maxDepth uint8
	patched  bool
}

// NewBatch allocates a batch sized for an octree of the given max depth.
func NewBatch[T Value](maxDepth uint8) *Batch[T] {
	lower := maxDepth
	if lower > 0 {
		lower--
	}
	size := uint(1) << (3 * lower)

	return &Batch[T]{
		masks:    make([]leafMask, size),
		values:   make([][MaxChildren]T, size),
		touched:  bitset.New(size),
		maxDepth: maxDepth,
	}
}

// pathOf splits a voxel position into its leaf-parent's batch slot and the
// child index (0-7) within that slot.
func (b *Batch[T]) pathOf(pos Vec3i) (slot uint, childIdx uint8) {
	full := encodeChildIndexPath(pos)
	slot = uint(full >> 3)
	childIdx = uint8(full & 0b111)
	return
}

// Set stages value at pos. Returns false if pos is out of bounds.
func (b *Batch[T]) Set(pos Vec3i, value T) bool {
	side := int32(1) << b.maxDepth
	if !pos.InBounds(side) {
		return false
	}

	var zero T
	slot, childIdx := b.pathOf(pos)
	bit := uint8(1) << childIdx

	m := &b.masks[slot]
	if value != zero {
		m.set |= bit
		m.clear &^= bit
	} else {
		m.set &^= bit
		m.clear |= bit
	}
	b.values[slot][childIdx] = value
	b.touched.Set(slot)
	b.patched = true

	return true
}

// Fill stages value for every voxel in the octree, discarding any prior
// per-voxel edits staged in this batch.
func (b *Batch[T]) Fill(value T) {
	b.Clear()
	b.toFill = &value
}

// Clear discards every staged edit, including a pending Fill.
func (b *Batch[T]) Clear() {
	for i := range b.masks {
		b.masks[i] = leafMask{}
	}
	var zeroRow [MaxChildren]T
	for i := range b.values {
		b.values[i] = zeroRow
	}
	b.touched.ClearAll()
	b.toFill = nil
	b.patched = false
}

// Size reports how many leaf-parent slots carry at least one staged edit.
func (b *Batch[T]) Size() uint {
	return b.touched.Count()
}

// HasPatches reports whether any edit (fill or per-voxel) is staged.
func (b *Batch[T]) HasPatches() bool {
	return b.patched || b.toFill != nil
}

// ToFill returns the pending fill value, if Fill was called more recently
// than Clear.
func (b *Batch[T]) ToFill() (T, bool) {
	if b.toFill == nil {
		var zero T
		return zero, false
	}
	return *b.toFill, true
}

// Touched reports the leaf-parent slots with staged per-voxel edits, for
// iterating only the parts of the batch that actually changed.
func (b *Batch[T]) Touched() *bitset.BitSet { return b.touched }

// MaskAt returns the (set, clear) pair for a leaf-parent slot.
func (b *Batch[T]) MaskAt(slot uint) (set, clear uint8) {
	m := b.masks[slot]
	return m.set, m.clear
}

// ValuesAt returns the eight staged values for a leaf-parent slot.
func (b *Batch[T]) ValuesAt(slot uint) [MaxChildren]T {
	return b.values[slot]
}
