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

func TestTraversalDepthIncrementDecrement(t *testing.T) {
	t.Parallel()

	d := NewTraversalDepth(0, 4)
	d = d.Increment().Increment()
	if d.Current() != 2 {
		t.Fatalf("Current() = %d, want 2", d.Current())
	}
	if d.Max() != 4 {
		t.Fatalf("Max() = %d, want 4", d.Max())
	}
	d = d.Decrement()
	if d.Current() != 1 {
		t.Fatalf("Current() = %d, want 1", d.Current())
	}
}

func TestTraversalDepthCurrentExceedsMaxPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when current depth exceeds max")
		}
	}()
	NewTraversalDepth(5, 4)
}

func TestMaxDepthVoxelsPerAxis(t *testing.T) {
	t.Parallel()

	d := NewMaxDepth(4)
	if got := d.VoxelsPerAxis(); got != 16 {
		t.Fatalf("VoxelsPerAxis() = %d, want 16", got)
	}
}

func TestMaxDepthTooLargePanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a max depth at or above MaxAllowedDepth")
		}
	}()
	NewMaxDepth(MaxAllowedDepth)
}
