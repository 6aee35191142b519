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

func TestAveragePlurality(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []int32
		want   int32
	}{
		{"all default", []int32{0, 0, 0, 0}, 0},
		{"default strict majority", []int32{0, 0, 0, 1}, 0},
		{"non-default plurality", []int32{1, 1, 2, 0}, 1},
		{"tie favors first encountered", []int32{2, 1, 1, 2}, 2},
		{"single non-default", []int32{0, 0, 0, 5}, 0},
		{"unanimous non-default", []int32{3, 3, 3, 3}, 3},
	}

	for _, tt := range tests {
		if got := average(tt.values); got != tt.want {
			t.Errorf("%s: average(%v) = %d, want %d", tt.name, tt.values, got, tt.want)
		}
	}
}
