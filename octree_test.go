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

func TestSetVoxelNoopOnUnchangedValue(t *testing.T) {
	t.Parallel()

	in := newTestInterner()
	tree := NewSvo[int32](NewMaxDepth(2))
	pos := Vec3i{X: 1, Y: 1, Z: 1}

	tree.Set(in, pos, 4)
	before := tree.GetRootID()
	tree.ClearDirty()

	tree.Set(in, pos, 4)
	if tree.GetRootID() != before {
		t.Fatal("setting the same value again should not change the root id")
	}
	if tree.IsDirty() {
		t.Fatal("setting the same value again should not mark the tree dirty")
	}
}

func TestFillAllOnZeroValueProducesEmptyRoot(t *testing.T) {
	t.Parallel()

	in := newTestInterner()
	tree := NewSvo[int32](NewMaxDepth(2))
	tree.Set(in, Vec3i{X: 1, Y: 1, Z: 1}, 5)

	tree.Fill(in, 0)
	if !tree.IsEmpty() {
		t.Fatal("Fill with the zero value should leave the tree empty")
	}
}

func TestMaskOfTracksOccupiedAndLeafChildren(t *testing.T) {
	t.Parallel()

	in := newTestInterner()
	leaf := in.GetOrInsertLeaf(int32(7))

	var children Children
	children[0] = EmptyBlockId
	children[1] = leaf
	for i := 2; i < MaxChildren; i++ {
		children[i] = EmptyBlockId
	}

	types, mask := maskOf(children)
	if mask != 0b10 {
		t.Fatalf("mask = %08b, want %08b", mask, 0b10)
	}
	if types != 0b10 {
		t.Fatalf("types = %08b, want %08b", types, 0b10)
	}
}

func TestBranchChildrenReplicatesLeafAcrossAllSlots(t *testing.T) {
	t.Parallel()

	in := newTestInterner()
	leaf := in.GetOrInsertLeaf(int32(3))

	children := branchChildren(in, leaf)
	for i, c := range children {
		if c != leaf {
			t.Fatalf("slot %d = %s, want %s (leaf replicated)", i, c, leaf)
		}
	}
}
