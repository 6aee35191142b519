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

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// computeEmptyBranchHash hashes the canonical empty branch: the branch tag
// followed by eight CHILD_ABSENT markers.
func computeEmptyBranchHash() uint64 {
	var buf [1 + MaxChildren]byte
	buf[0] = nodeTypeBranch
	return xxhash.Sum64(buf[:])
}

// hashLeaf hashes the leaf tag and value. value must not be the zero value.
func hashLeaf[T Value](value T) uint64 {
	d := xxhash.New()
	d.Write([]byte{nodeTypeLeaf})
	putBigEndian(d, value)
	return d.Sum64()
}

// hashBranch hashes the branch tag, the packed (types<<8|mask) word, and
// each child's raw 64-bit id, in child order.
func hashBranch(children [MaxChildren]BlockId, types, mask uint8) uint64 {
	d := xxhash.New()
	var head [3]byte
	head[0] = nodeTypeBranch
	binary.BigEndian.PutUint16(head[1:], uint16(types)<<8|uint16(mask))
	d.Write(head[:])

	var raw [8]byte
	for _, c := range children {
		binary.BigEndian.PutUint64(raw[:], c.raw)
		d.Write(raw[:])
	}
	return d.Sum64()
}

// putBigEndian writes value's big-endian byte representation, sized to
// its underlying integer width, into d.
func putBigEndian[T Value](d *xxhash.Digest, value T) {
	u := uint64(value)
	switch any(value).(type) {
	case int8, uint8:
		d.Write([]byte{byte(u)})
	case int16, uint16:
		var b [2]byte
		binary.BigEndian.PutUint16(b[:], uint16(u))
		d.Write(b[:])
	case int32, uint32:
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], uint32(u))
		d.Write(b[:])
	default:
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], u)
		d.Write(b[:])
	}
}
