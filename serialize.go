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

import "encoding/binary"

// Serialize walks the DAG rooted at root in post-order and writes one
// record per distinct node: every node a DAG shares between multiple
// parents is written exactly once, and later references to it are a
// varint index into the nodes already written, which is what lets
// Deserialize rebuild the same sharing instead of expanding it back into
// a tree.
func Serialize[T Value](in *Interner[T], root BlockId) []byte {
	buf := make([]byte, 0, 256)
	seen := make(map[BlockId]uint32)

	if root.IsEmpty() {
		return binary.AppendUvarint(buf, 0)
	}

	var rootRef uint32
	records := make([]byte, 0, 256)
	rootRef = serializeNode(in, root, seen, &records)

	buf = binary.AppendUvarint(buf, uint64(len(seen)))
	buf = append(buf, records...)
	buf = binary.AppendUvarint(buf, uint64(rootRef))
	return buf
}

const (
	tagLeaf   byte = 0
	tagBranch byte = 1
)

func serializeNode[T Value](in *Interner[T], id BlockId, seen map[BlockId]uint32, out *[]byte) uint32 {
	if ref, ok := seen[id]; ok {
		return ref
	}

	if id.IsLeaf() {
		ref := uint32(len(seen))
		seen[id] = ref
		*out = append(*out, tagLeaf)
		*out = binary.AppendUvarint(*out, uint64(in.GetValue(id)))
		return ref
	}

	children := in.GetChildren(id)
	childRefs := make([]uint32, 0, MaxChildren)
	for _, c := range children {
		if !c.IsEmpty() {
			childRefs = append(childRefs, serializeNode(in, c, seen, out))
		}
	}

	ref := uint32(len(seen))
	seen[id] = ref
	*out = append(*out, tagBranch, id.Types(), id.Mask())
	for _, r := range childRefs {
		*out = binary.AppendUvarint(*out, uint64(r))
	}
	return ref
}

// Deserialize rebuilds a DAG from Serialize's output, re-interning every
// node through in so the result shares structure with anything else
// already resident in the same Store.
func Deserialize[T Value](in *Interner[T], data []byte) (BlockId, error) {
	count, n := binary.Uvarint(data)
	if n <= 0 {
		return InvalidBlockId, ErrCorruptData
	}
	data = data[n:]

	if count == 0 {
		return EmptyBlockId, nil
	}

	nodes := make([]BlockId, count)
	for i := uint64(0); i < count; i++ {
		if len(data) < 1 {
			return InvalidBlockId, ErrCorruptData
		}
		tag := data[0]
		data = data[1:]

		switch tag {
		case tagLeaf:
			raw, n := binary.Uvarint(data)
			if n <= 0 {
				return InvalidBlockId, ErrCorruptData
			}
			data = data[n:]
			nodes[i] = in.GetOrInsertLeaf(T(raw))

		case tagBranch:
			if len(data) < 2 {
				return InvalidBlockId, ErrCorruptData
			}
			types, mask := data[0], data[1]
			data = data[2:]

			var children Children
			for slot := uint8(0); slot < MaxChildren; slot++ {
				if mask&(1<<slot) == 0 {
					continue
				}
				ref, n := binary.Uvarint(data)
				if n <= 0 {
					return InvalidBlockId, ErrCorruptData
				}
				data = data[n:]
				if ref >= i {
					return InvalidBlockId, ErrCorruptData
				}
				children[slot] = nodes[ref]
			}

			nodes[i] = in.GetOrInsertBranch(children, types, mask)

		default:
			return InvalidBlockId, ErrCorruptData
		}
	}

	ref, n := binary.Uvarint(data)
	if n <= 0 || ref >= count {
		return InvalidBlockId, ErrCorruptData
	}

	// Every node in nodes[] was returned from GetOrInsertLeaf/Branch
	// holding its own creation reference. Every node except the root is
	// also referenced as a child by whichever branch(es) enclose it,
	// which GetOrInsertBranch already retained for. nodes[] itself isn't
	// a real owner, so its creation reference is surplus for everything
	// but the root, which has no enclosing parent to retain it.
	for i, id := range nodes {
		if uint64(i) != ref {
			in.Release(id)
		}
	}

	return nodes[ref], nil
}
