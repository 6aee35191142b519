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

func TestLodMaxDepthHalvesResolutionPerLevel(t *testing.T) {
	t.Parallel()

	full := NewMaxDepth(4)
	if got := lodMaxDepth(full, NewLod(0)).Max(); got != 4 {
		t.Fatalf("lod 0 depth = %d, want 4", got)
	}
	if got := lodMaxDepth(full, NewLod(2)).Max(); got != 2 {
		t.Fatalf("lod 2 depth = %d, want 2", got)
	}
	if got := lodMaxDepth(full, NewLod(9)).Max(); got != 0 {
		t.Fatalf("lod past full depth should floor at 0, got %d", got)
	}
}

func TestMaterializeLodZeroMatchesToVec(t *testing.T) {
	t.Parallel()

	in := newTestInterner()
	tree := NewSvo[int32](NewMaxDepth(2))
	tree.Set(in, Vec3i{X: 1, Y: 1, Z: 1}, 5)

	want := tree.ToVec(in, NewLod(0))
	got := materialize(in, tree.GetRootID(), NewMaxDepth(2), NewLod(0))

	if len(want) != len(got) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("voxel %d: got %d want %d", i, got[i], want[i])
		}
	}
}

func TestMaterializeUniformFillCollapsesAtEveryLod(t *testing.T) {
	t.Parallel()

	in := newTestInterner()
	tree := NewSvo[int32](NewMaxDepth(3))
	tree.Fill(in, 6)

	for level := uint8(0); level <= 3; level++ {
		grid := tree.ToVec(in, NewLod(level))
		for i, v := range grid {
			if v != 6 {
				t.Fatalf("lod %d voxel %d = %d, want 6", level, i, v)
			}
		}
	}
}

func TestMaterializeLodAppliesPluralityOverMixedChildren(t *testing.T) {
	t.Parallel()

	in := newTestInterner()
	tree := NewSvo[int32](NewMaxDepth(1))
	// Fill 3 of the 8 bottom-level octants with the same non-default
	// value: a strict majority of 8 stays default (5 unset octants),
	// so the single LOD-1 voxel should collapse back to default.
	tree.Set(in, Vec3i{X: 0, Y: 0, Z: 0}, 1)
	tree.Set(in, Vec3i{X: 1, Y: 0, Z: 0}, 1)
	tree.Set(in, Vec3i{X: 0, Y: 1, Z: 0}, 1)

	grid := materialize(in, tree.GetRootID(), NewMaxDepth(1), NewLod(1))
	if len(grid) != 1 {
		t.Fatalf("lod 1 grid for a depth-1 tree should hold exactly one voxel, got %d", len(grid))
	}
	if grid[0] != 0 {
		t.Fatalf("collapsed voxel = %d, want 0 (default retains majority)", grid[0])
	}
}
