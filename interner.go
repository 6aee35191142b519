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

// Interner content-addresses every branch and leaf that passes through
// GetOrInsertLeaf/GetOrInsertBranch: structurally identical subtrees always
// resolve to the same BlockId, which is what turns the octree into a DAG
// instead of a tree. It owns the one NodeStore backing all of that
// structural sharing.
//
// children/types/mask passed to GetOrInsertBranch are borrowed: the
// interner decides, based on the outcome (dedup hit, uniform collapse, or
// genuinely new branch), which of them it ends up referencing, and Retains
// exactly those. Callers never need to pre-retain before calling, and
// never need to release afterward beyond the BlockId actually returned.
type Interner[T Value] struct {
	store    *NodeStore[T]
	patterns map[uint64]BlockId
}

// NewInterner wraps store with structural-hash deduplication. The empty
// branch sentinel is installed under its own fixed canonical hash up
// front, the same way every other structural pattern is keyed, even
// though GetOrInsertBranch's mask==0 fast path never has to consult it.
func NewInterner[T Value](store *NodeStore[T]) *Interner[T] {
	in := &Interner[T]{
		store:    store,
		patterns: make(map[uint64]BlockId),
	}
	in.patterns[emptyBranchHash()] = EmptyBlockId
	return in
}

// Store exposes the backing node store, e.g. for read-only traversal that
// does not need deduplication.
func (in *Interner[T]) Store() *NodeStore[T] { return in.store }

// Len reports how many distinct structural patterns are currently live,
// not counting the permanent empty-branch sentinel every interner starts
// with.
func (in *Interner[T]) Len() int { return len(in.patterns) - 1 }

// GetOrInsertLeaf returns the canonical BlockId for value, creating it if
// this is the first time value has been seen. The default value of T is
// never interned as a leaf; it is represented directly by EmptyBlockId.
func (in *Interner[T]) GetOrInsertLeaf(value T) BlockId {
	var zero T
	if value == zero {
		return EmptyBlockId
	}

	hash := hashLeaf(value)
	if id, ok := in.patterns[hash]; ok {
		in.store.Retain(id)
		return id
	}

	id := in.store.NewLeaf(value)
	in.patterns[hash] = id
	return id
}

// GetOrInsertBranch returns the canonical BlockId for a branch with the
// given children and type/presence masks.
//
// Two fast paths skip creating a branch node entirely:
//   - mask == 0 (no children) collapses to EmptyBlockId.
//   - all eight slots filled with the identical leaf (types == mask ==
//     0xFF and every child equal) collapses to that leaf's own id, since a
//     branch whose children are all the same leaf carries no information
//     a plain leaf doesn't already carry.
func (in *Interner[T]) GetOrInsertBranch(children Children, types, mask uint8) BlockId {
	if mask == 0 {
		return EmptyBlockId
	}

	if mask == 0xFF && types == 0xFF {
		first := children[0]
		uniform := true
		for i := 1; i < MaxChildren; i++ {
			if children[i] != first {
				uniform = false
				break
			}
		}
		if uniform {
			in.store.Retain(first)
			return first
		}
	}

	hash := hashBranch(children, types, mask)
	if id, ok := in.patterns[hash]; ok {
		in.store.Retain(id)
		return id
	}

	for _, c := range children {
		if !c.IsEmpty() {
			in.store.Retain(c)
		}
	}
	id := in.store.NewBranch(children, types, mask)
	in.patterns[hash] = id
	return id
}

// Retain increments id's refcount directly, for callers holding onto a
// BlockId returned by a prior GetOrInsert call (e.g. a root pointer).
func (in *Interner[T]) Retain(id BlockId) {
	if id.IsEmpty() || id.IsInvalid() {
		return
	}
	in.store.Retain(id)
}

// Release drops one reference to id, recursively releasing its children
// (for a branch) once its own refcount hits zero, and evicting the
// corresponding entry from the structural-hash table.
func (in *Interner[T]) Release(id BlockId) {
	if id.IsEmpty() || id.IsInvalid() {
		return
	}

	if id.IsLeaf() {
		value := in.store.GetValue(id)
		hash := hashLeaf(value)
		if in.store.Release(id) == 0 {
			delete(in.patterns, hash)
		}
		return
	}

	children := in.store.GetChildren(id)
	hash := hashBranch(children, id.Types(), id.Mask())
	if in.store.Release(id) == 0 {
		delete(in.patterns, hash)
		for _, c := range children {
			if !c.IsEmpty() {
				in.Release(c)
			}
		}
	}
}

// GetValue returns the value held by a leaf BlockId.
func (in *Interner[T]) GetValue(id BlockId) T { return in.store.GetValue(id) }

// GetChildren returns the child array of a branch BlockId.
func (in *Interner[T]) GetChildren(id BlockId) Children { return in.store.GetChildren(id) }

// GetChildID returns one child of a branch, by octant (0-7).
func (in *Interner[T]) GetChildID(id BlockId, childIndex uint8) BlockId {
	return in.store.GetChildID(id, childIndex)
}
