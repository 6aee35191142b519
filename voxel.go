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

// Value is the voxel payload type: opaque, copyable, hashable, totally
// ordered, and defaultable (the Go zero value is "empty"). Fixed-width
// integers are the natural realization — material ids, density levels,
// and the like all fit this shape. hash.go hashes values as fixed-width
// big-endian bytes; serialize.go writes leaf values as unsigned varints,
// not as fixed-width big-endian bytes.
type Value interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// average implements T::average: plurality vote among non-default values
// in a group of up to MaxChildren voxels, ties broken toward non-default
// values. Default only wins when it is a strict majority. Among tied
// non-default values, the first one encountered (scan order) wins; this
// matches the source's documented behavior and is preserved deliberately
// rather than replaced by a numeric mean, which would be meaningless for
// categorical voxel values.
func average[T Value](values []T) T {
	var zero T

	var uniq []T
	counts := make(map[T]int, len(values))
	for _, v := range values {
		if _, ok := counts[v]; !ok {
			uniq = append(uniq, v)
		}
		counts[v]++
	}

	if len(uniq) == 0 {
		return zero
	}

	if counts[zero]*2 > len(values) {
		return zero
	}

	best := zero
	bestCount := -1
	for _, v := range uniq {
		if v == zero {
			continue
		}
		if c := counts[v]; c > bestCount {
			bestCount = c
			best = v
		}
	}

	if bestCount < 0 {
		return zero
	}
	return best
}
