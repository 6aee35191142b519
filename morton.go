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

// childIndex returns which of the eight children of a branch at the given
// traversal depth contains pos: the bit at (max-current-1) of each axis,
// packed x|y<<1|z<<2.
func childIndex(pos Vec3i, depth TraversalDepth) uint8 {
	return childIndexAt(pos, depth.Current(), depth.Max())
}

// childIndexAt is childIndex without a packed TraversalDepth, for callers
// that already carry current/max separately.
func childIndexAt(pos Vec3i, current, max uint8) uint8 {
	shift := uint(max - current - 1)
	return uint8((pos.X>>shift)&1) |
		uint8((pos.Y>>shift)&1)<<1 |
		uint8((pos.Z>>shift)&1)<<2
}

const (
	mortonMask10Bits uint32 = 0x000003FF
	mortonMask1      uint32 = 0x030000FF
	mortonMask2      uint32 = 0x0300F00F
	mortonMask3      uint32 = 0x030C30C3
	mortonMask4      uint32 = 0x09249249
)

// encodeChildIndexPath interleaves the low 10 bits of each axis of pos into
// a 30-bit Morton code (x at bit 3n, y at 3n+1, z at 3n+2), used to index a
// batch's per-leaf-parent entries by path rather than by pointer.
func encodeChildIndexPath(pos Vec3i) uint32 {
	spread := func(v uint32) uint32 {
		v &= mortonMask10Bits
		v = (v | (v << 16)) & mortonMask1
		v = (v | (v << 8)) & mortonMask2
		v = (v | (v << 4)) & mortonMask3
		v = (v | (v << 2)) & mortonMask4
		return v
	}

	x := spread(uint32(pos.X))
	y := spread(uint32(pos.Y))
	z := spread(uint32(pos.Z))

	return x | (y << 1) | (z << 2)
}

// decodeChildIndexPath is the inverse of encodeChildIndexPath: it recovers
// the grid coordinate from a 30-bit Morton code.
func decodeChildIndexPath(path uint32) Vec3i {
	compact := func(v uint32) uint32 {
		v &= mortonMask4
		v = (v | (v >> 2)) & mortonMask3
		v = (v | (v >> 4)) & mortonMask2
		v = (v | (v >> 8)) & mortonMask1
		v = (v | (v >> 16)) & mortonMask10Bits
		return v
	}

	return Vec3i{
		X: int32(compact(path)),
		Y: int32(compact(path >> 1)),
		Z: int32(compact(path >> 2)),
	}
}
