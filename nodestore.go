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

// Children is a branch's eight child slots, indexed by octant.
type Children = [MaxChildren]BlockId

// EmptyChildren is a branch with every slot empty.
var EmptyChildren = Children{}

// nodeMeta is the refcount/generation bookkeeping for one node kind,
// indexed by the same slot index the kind's pool hands out. Generation is
// bumped on every free so a stale BlockId captured before the free no
// longer matches the slot's current occupant.
type nodeMeta struct {
	refcounts   []uint32
	generations []uint16
}

func (m *nodeMeta) ensure(index uint32) {
	for uint32(len(m.refcounts)) <= index {
		m.refcounts = append(m.refcounts, 0)
		m.generations = append(m.generations, 0)
	}
}

func (m *nodeMeta) onAlloc(index uint32) uint16 {
	m.ensure(index)
	m.refcounts[index] = 1
	return m.generations[index]
}

// onFree clears index's refcount and bumps its generation so a stale
// BlockId captured before this free no longer matches. Once the
// generation reaches MaxGeneration it reports the slot as retired instead
// of wrapping back to 0: the caller must not push a retired slot onto any
// free list, since reusing it could let an old handle alias a new node.
func (m *nodeMeta) onFree(index uint32) (retired bool) {
	m.refcounts[index] = 0
	if m.generations[index] >= MaxGeneration {
		return true
	}
	m.generations[index]++
	return false
}

func (m *nodeMeta) retain(index uint32) uint32 {
	m.refcounts[index]++
	return m.refcounts[index]
}

func (m *nodeMeta) decref(index uint32) uint32 {
	if m.refcounts[index] == 0 {
		panic("voxtree: refcount underflow")
	}
	m.refcounts[index]--
	return m.refcounts[index]
}

// slotFreeList is a LIFO of reusable leaf-pool indices, kept by NodeStore
// rather than inside PoolLite: PoolLite's whole point is that the caller
// already tracks free slots, so there is no reason to track them twice.
type slotFreeList struct {
	free []uint32
}

func (f *slotFreeList) pop() (uint32, bool) {
	n := len(f.free)
	if n == 0 {
		return 0, false
	}
	index := f.free[n-1]
	f.free = f.free[:n-1]
	return index, true
}

func (f *slotFreeList) push(index uint32) {
	f.free = append(f.free, index)
}

// NodeStore is the slab allocator backing one octree family: every branch
// and leaf node, content-addressed or not, lives in one of its two pools.
// Branches use the self-contained Pool since a [8]BlockId is well above
// pointer size and can track its own free list; leaves use PoolLite plus
// an explicit slotFreeList, since T may be as small as a byte and the
// refcount/generation bookkeeping NodeStore already keeps makes a second,
// pool-internal free list redundant.
type NodeStore[T Value] struct {
	branches   *Pool[Children]
	branchMeta nodeMeta

	leaves   *PoolLite[T]
	leafFree slotFreeList
	leafMeta nodeMeta
}

// NewNodeStore allocates a store with room for capacity branch nodes and
// capacity leaf nodes.
func NewNodeStore[T Value](capacity uint32) *NodeStore[T] {
	return &NodeStore[T]{
		branches: NewPool[Children](capacity),
		leaves:   NewPoolLite[T](capacity),
	}
}

// NewLeaf allocates a new leaf node holding value, with refcount 1.
func (s *NodeStore[T]) NewLeaf(value T) BlockId {
	var reuse *uint32
	if index, ok := s.leafFree.pop(); ok {
		reuse = &index
	}
	index := s.leaves.Allocate(value, reuse)
	generation := s.leafMeta.onAlloc(index)
	return NewLeafBlockId(index, generation)
}

// NewBranch allocates a new branch node with the given children and
// type/presence masks, with refcount 1.
func (s *NodeStore[T]) NewBranch(children Children, types, mask uint8) BlockId {
	index := s.branches.Allocate(children)
	generation := s.branchMeta.onAlloc(index)
	return NewBranchBlockId(index, generation, types, mask)
}

// Retain increments id's refcount and returns the new count.
func (s *NodeStore[T]) Retain(id BlockId) uint32 {
	if id.IsLeaf() {
		return s.leafMeta.retain(id.Index())
	}
	return s.branchMeta.retain(id.Index())
}

// Release decrements id's refcount and returns the new count. When the
// count reaches zero the slot is freed and its generation bumped; the
// caller (the interner) is responsible for releasing id's children first,
// since NodeStore has no notion of structural sharing. A slot whose
// generation has already saturated at MaxGeneration is instead leaked: it
// is never pushed back onto a free list, so its index can never be
// reissued and alias an old handle.
func (s *NodeStore[T]) Release(id BlockId) uint32 {
	if id.IsLeaf() {
		index := id.Index()
		count := s.leafMeta.decref(index)
		if count == 0 {
			if retired := s.leafMeta.onFree(index); !retired {
				s.leaves.Deallocate(index)
				s.leafFree.push(index)
			}
		}
		return count
	}

	index := id.Index()
	count := s.branchMeta.decref(index)
	if count == 0 {
		if retired := s.branchMeta.onFree(index); !retired {
			s.branches.Deallocate(index)
		}
	}
	return count
}

// RefCount reports id's current refcount.
func (s *NodeStore[T]) RefCount(id BlockId) uint32 {
	if id.IsLeaf() {
		return s.leafMeta.refcounts[id.Index()]
	}
	return s.branchMeta.refcounts[id.Index()]
}

// GetValue returns the value stored at a leaf.
func (s *NodeStore[T]) GetValue(id BlockId) T {
	if !id.IsLeaf() {
		panic("voxtree: GetValue called on a branch BlockId")
	}
	return s.leaves.Get(id.Index())
}

// GetChildren returns the child array stored at a branch.
func (s *NodeStore[T]) GetChildren(id BlockId) Children {
	if id.IsLeaf() {
		panic("voxtree: GetChildren called on a leaf BlockId")
	}
	return s.branches.Get(id.Index())
}

// GetChildID returns one child of a branch, by octant (0-7).
func (s *NodeStore[T]) GetChildID(id BlockId, childIndex uint8) BlockId {
	return s.GetChildren(id)[childIndex]
}
