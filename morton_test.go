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

func TestEncodeDecodeChildIndexPathRoundTrips(t *testing.T) {
	t.Parallel()

	positions := []Vec3i{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
		{X: 7, Y: 3, Z: 5},
		{X: 31, Y: 17, Z: 9},
		{X: 1023, Y: 1023, Z: 1023},
	}

	for _, pos := range positions {
		path := encodeChildIndexPath(pos)
		got := decodeChildIndexPath(path)
		if got != pos {
			t.Fatalf("round trip of %s = %s", pos, got)
		}
	}
}

func TestChildIndexAtCoversAllOctants(t *testing.T) {
	t.Parallel()

	seen := make(map[uint8]bool)
	for dx := int32(0); dx < 2; dx++ {
		for dy := int32(0); dy < 2; dy++ {
			for dz := int32(0); dz < 2; dz++ {
				pos := Vec3i{X: dx, Y: dy, Z: dz}
				idx := childIndexAt(pos, 0, 1)
				seen[idx] = true
			}
		}
	}
	if len(seen) != MaxChildren {
		t.Fatalf("childIndexAt produced %d distinct octants, want %d", len(seen), MaxChildren)
	}
}
