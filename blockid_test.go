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

func TestBlockIdLeafRoundtrip(t *testing.T) {
	t.Parallel()

	id := NewLeafBlockId(1234, 7)
	if !id.IsLeaf() {
		t.Fatal("expected leaf id")
	}
	if id.Index() != 1234 {
		t.Fatalf("index = %d, want 1234", id.Index())
	}
	if id.Generation() != 7 {
		t.Fatalf("generation = %d, want 7", id.Generation())
	}
}

func TestBlockIdBranchRoundtrip(t *testing.T) {
	t.Parallel()

	id := NewBranchBlockId(42, 3, 0b1010_0000, 0b1111_0000)
	if !id.IsBranch() {
		t.Fatal("expected branch id")
	}
	if id.Types() != 0b1010_0000 {
		t.Fatalf("types = %08b, want %08b", id.Types(), 0b1010_0000)
	}
	if id.Mask() != 0b1111_0000 {
		t.Fatalf("mask = %08b, want %08b", id.Mask(), 0b1111_0000)
	}
	if !id.HasChild(4) || !id.HasChild(7) {
		t.Fatal("expected children 4 and 7 to be present")
	}
	if id.HasChild(0) {
		t.Fatal("did not expect child 0 to be present")
	}
}

func TestBlockIdSentinels(t *testing.T) {
	t.Parallel()

	if !EmptyBlockId.IsEmpty() {
		t.Fatal("EmptyBlockId.IsEmpty() = false")
	}
	if !InvalidBlockId.IsInvalid() {
		t.Fatal("InvalidBlockId.IsInvalid() = false")
	}
	if EmptyBlockId.IsInvalid() {
		t.Fatal("EmptyBlockId should not be invalid")
	}
	if InvalidBlockId.IsEmpty() {
		t.Fatal("InvalidBlockId should not be empty")
	}
}

func TestBlockIdTypesPanicsOnLeaf(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic calling Types on a leaf BlockId")
		}
	}()
	NewLeafBlockId(0, 0).Types()
}

func TestBlockIdGenerationOverflowPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for generation above MaxGeneration")
		}
	}()
	NewLeafBlockId(0, MaxGeneration+1)
}
