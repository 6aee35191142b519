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

// GenerateSphereBatch stages a solid sphere of value centered on center
// with the given radius: every voxel within radius (inclusive, by squared
// distance) is set.
func GenerateSphereBatch[T Value](b *Batch[T], voxelsPerAxis int32, center Vec3i, radius int32, value T) {
	radiusSquared := radius * radius

	var pos Vec3i
	for y := int32(0); y < voxelsPerAxis; y++ {
		pos.Y = y
		dy := y - center.Y
		for z := int32(0); z < voxelsPerAxis; z++ {
			pos.Z = z
			dz := z - center.Z
			for x := int32(0); x < voxelsPerAxis; x++ {
				dx := x - center.X
				if dx*dx+dy*dy+dz*dz <= radiusSquared {
					pos.X = x
					b.Set(pos, value)
				}
			}
		}
	}
}

// GenerateCheckerboardBatch stages value at every voxel whose coordinate
// sum is even.
func GenerateCheckerboardBatch[T Value](b *Batch[T], voxelsPerAxis int32, value T) {
	var pos Vec3i
	for y := int32(0); y < voxelsPerAxis; y++ {
		pos.Y = y
		for z := int32(0); z < voxelsPerAxis; z++ {
			pos.Z = z
			for x := int32(0); x < voxelsPerAxis; x++ {
				if (x+y+z)%2 == 0 {
					pos.X = x
					b.Set(pos, value)
				}
			}
		}
	}
}

// CornerIndex names the eight corners GenerateCornerBatch can stage,
// matching the original layout: low/high on each axis, y outermost.
type CornerIndex uint8

const (
	CornerBottomLeftBack CornerIndex = iota
	CornerBottomRightBack
	CornerBottomLeftFront
	CornerBottomRightFront
	CornerTopLeftBack
	CornerTopRightBack
	CornerTopLeftFront
	CornerTopRightFront
)

// GenerateCornerBatch stages value at whichever of the volume's eight
// corner voxels corners[i] marks true.
func GenerateCornerBatch[T Value](b *Batch[T], voxelsPerAxis int32, corners [8]bool, value T) {
	max := voxelsPerAxis - 1

	set := func(idx CornerIndex, x, y, z int32) {
		if corners[idx] {
			b.Set(Vec3i{X: x, Y: y, Z: z}, value)
		}
	}

	set(CornerBottomLeftBack, 0, 0, 0)
	set(CornerBottomRightBack, max, 0, 0)
	set(CornerBottomLeftFront, 0, 0, max)
	set(CornerBottomRightFront, max, 0, max)
	set(CornerTopLeftBack, 0, max, 0)
	set(CornerTopRightBack, max, max, 0)
	set(CornerTopLeftFront, 0, max, max)
	set(CornerTopRightFront, max, max, max)
}

// GenerateBoxBatch stages value at every voxel within the axis-aligned
// box [min, max] (inclusive on both ends).
func GenerateBoxBatch[T Value](b *Batch[T], min, max Vec3i, value T) {
	var pos Vec3i
	for y := min.Y; y <= max.Y; y++ {
		pos.Y = y
		for z := min.Z; z <= max.Z; z++ {
			pos.Z = z
			for x := min.X; x <= max.X; x++ {
				pos.X = x
				b.Set(pos, value)
			}
		}
	}
}

// GenerateHollowCubeBatch stages value at every voxel on the outer shell
// of the volume, leaving the interior untouched. Supplements the four
// shape generators named in the distilled spec with one more the original
// tool offers.
func GenerateHollowCubeBatch[T Value](b *Batch[T], voxelsPerAxis int32, value T) {
	max := voxelsPerAxis - 1
	var pos Vec3i
	for y := int32(0); y < voxelsPerAxis; y++ {
		pos.Y = y
		for z := int32(0); z < voxelsPerAxis; z++ {
			pos.Z = z
			for x := int32(0); x < voxelsPerAxis; x++ {
				if x == 0 || x == max || y == 0 || y == max || z == 0 || z == max {
					pos.X = x
					b.Set(pos, value)
				}
			}
		}
	}
}

// GenerateDiagonalBatch stages value along the volume's main diagonal.
func GenerateDiagonalBatch[T Value](b *Batch[T], voxelsPerAxis int32, value T) {
	var pos Vec3i
	for i := int32(0); i < voxelsPerAxis; i++ {
		pos.X, pos.Y, pos.Z = i, i, i
		b.Set(pos, value)
	}
}
