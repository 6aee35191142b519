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

import "testing"

func countNonDefault[T Value](t *testing.T, in *Interner[T], tree *Svo[T], voxelsPerAxis int32) int {
	t.Helper()
	var zero T
	count := 0
	for y := int32(0); y < voxelsPerAxis; y++ {
		for z := int32(0); z < voxelsPerAxis; z++ {
			for x := int32(0); x < voxelsPerAxis; x++ {
				v, ok := tree.Get(in, Vec3i{X: x, Y: y, Z: z})
				if ok && v != zero {
					count++
				}
			}
		}
	}
	return count
}

func TestGenerateSphereBatchFillsWithinRadius(t *testing.T) {
	t.Parallel()

	in := newTestInterner()
	const side = int32(8)
	tree := NewSvo[int32](NewMaxDepth(3))
	batch := tree.CreateBatch()

	center := Vec3i{X: 4, Y: 4, Z: 4}
	GenerateSphereBatch(batch, side, center, 2, 9)
	tree.ApplyBatch(in, batch)

	v, ok := tree.Get(in, center)
	if !ok || v != 9 {
		t.Fatalf("center voxel = (%d, %v), want (9, true)", v, ok)
	}

	corner := Vec3i{X: 0, Y: 0, Z: 0}
	if v, ok := tree.Get(in, corner); ok && v != 0 {
		t.Fatalf("corner voxel outside the sphere should be unset, got (%d, %v)", v, ok)
	}
}

func TestGenerateCheckerboardBatchAlternatesParity(t *testing.T) {
	t.Parallel()

	in := newTestInterner()
	const side = int32(4)
	tree := NewSvo[int32](NewMaxDepth(2))
	batch := tree.CreateBatch()

	GenerateCheckerboardBatch(batch, side, 7)
	tree.ApplyBatch(in, batch)

	for y := int32(0); y < side; y++ {
		for z := int32(0); z < side; z++ {
			for x := int32(0); x < side; x++ {
				want := (x+y+z)%2 == 0
				v, ok := tree.Get(in, Vec3i{X: x, Y: y, Z: z})
				got := ok && v == 7
				if got != want {
					t.Fatalf("voxel (%d,%d,%d): set = %v, want %v", x, y, z, got, want)
				}
			}
		}
	}
}

func TestGenerateCornerBatchStagesOnlySelectedCorners(t *testing.T) {
	t.Parallel()

	in := newTestInterner()
	const side = int32(4)
	tree := NewSvo[int32](NewMaxDepth(2))
	batch := tree.CreateBatch()

	var corners [8]bool
	corners[CornerBottomLeftBack] = true
	corners[CornerTopRightFront] = true
	GenerateCornerBatch(batch, side, corners, 3)
	tree.ApplyBatch(in, batch)

	if v, ok := tree.Get(in, Vec3i{X: 0, Y: 0, Z: 0}); !ok || v != 3 {
		t.Fatalf("CornerBottomLeftBack not staged: (%d, %v)", v, ok)
	}
	if v, ok := tree.Get(in, Vec3i{X: side - 1, Y: side - 1, Z: side - 1}); !ok || v != 3 {
		t.Fatalf("CornerTopRightFront not staged: (%d, %v)", v, ok)
	}
	if v, ok := tree.Get(in, Vec3i{X: side - 1, Y: 0, Z: 0}); ok && v != 0 {
		t.Fatalf("CornerBottomRightBack should not have been staged, got (%d, %v)", v, ok)
	}
}

func TestGenerateBoxBatchFillsInclusiveRange(t *testing.T) {
	t.Parallel()

	in := newTestInterner()
	tree := NewSvo[int32](NewMaxDepth(3))
	batch := tree.CreateBatch()

	min := Vec3i{X: 1, Y: 1, Z: 1}
	max := Vec3i{X: 2, Y: 2, Z: 2}
	GenerateBoxBatch(batch, min, max, 5)
	tree.ApplyBatch(in, batch)

	if got := countNonDefault(t, in, tree, 8); got != 8 {
		t.Fatalf("box [1,2]^3 should stage 8 voxels, got %d", got)
	}
	if v, ok := tree.Get(in, Vec3i{X: 1, Y: 1, Z: 1}); !ok || v != 5 {
		t.Fatalf("min corner not staged: (%d, %v)", v, ok)
	}
	if v, ok := tree.Get(in, Vec3i{X: 0, Y: 0, Z: 0}); ok && v != 0 {
		t.Fatalf("voxel outside the box should not be staged, got (%d, %v)", v, ok)
	}
}

func TestGenerateHollowCubeBatchLeavesInteriorEmpty(t *testing.T) {
	t.Parallel()

	in := newTestInterner()
	const side = int32(4)
	tree := NewSvo[int32](NewMaxDepth(2))
	batch := tree.CreateBatch()

	GenerateHollowCubeBatch(batch, side, 2)
	tree.ApplyBatch(in, batch)

	if v, ok := tree.Get(in, Vec3i{X: 1, Y: 1, Z: 1}); ok && v != 0 {
		t.Fatalf("interior voxel should be untouched, got (%d, %v)", v, ok)
	}
	if v, ok := tree.Get(in, Vec3i{X: 0, Y: 1, Z: 1}); !ok || v != 2 {
		t.Fatalf("shell voxel should be staged, got (%d, %v)", v, ok)
	}
}

func TestGenerateDiagonalBatchStagesMainDiagonal(t *testing.T) {
	t.Parallel()

	in := newTestInterner()
	const side = int32(4)
	tree := NewSvo[int32](NewMaxDepth(2))
	batch := tree.CreateBatch()

	GenerateDiagonalBatch(batch, side, 4)
	tree.ApplyBatch(in, batch)

	for i := int32(0); i < side; i++ {
		v, ok := tree.Get(in, Vec3i{X: i, Y: i, Z: i})
		if !ok || v != 4 {
			t.Fatalf("diagonal voxel %d not staged: (%d, %v)", i, v, ok)
		}
	}
	if got := countNonDefault(t, in, tree, side); got != int(side) {
		t.Fatalf("diagonal should stage exactly %d voxels, got %d", side, got)
	}
}
