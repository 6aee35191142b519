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

// Pool is a fixed-capacity slab of T, indexed by uint32, with its own LIFO
// free list. Go has no use for the teacher's raw-pointer free-list trick
// (an intrusive *mut T embedded in freed slots): a plain slice of indices
// does the same job without unsafe, at the cost of one extra uint32 per
// free slot, which is immaterial next to the generation/refcount arrays
// NodeStore already carries alongside every slot.
type Pool[T any] struct {
	slots    []T
	free     []uint32
	capacity uint32
}

// NewPool allocates a pool with room for capacity elements, zero-valued
// until first use.
func NewPool[T any](capacity uint32) *Pool[T] {
	if capacity == 0 {
		panic("voxtree: pool capacity must be greater than 0")
	}
	return &Pool[T]{slots: make([]T, 0, capacity), capacity: capacity}
}

// Len reports how many slots are currently live (allocated, not freed).
func (p *Pool[T]) Len() int { return len(p.slots) - len(p.free) }

// Allocate stores value in a free or fresh slot and returns its index.
// Panics if the pool is full.
func (p *Pool[T]) Allocate(value T) uint32 {
	if n := len(p.free); n > 0 {
		index := p.free[n-1]
		p.free = p.free[:n-1]
		p.slots[index] = value
		return index
	}

	if uint32(len(p.slots)) >= p.capacity {
		panic("voxtree: pool out of memory")
	}

	index := uint32(len(p.slots))
	p.slots = append(p.slots, value)
	return index
}

// Deallocate returns index to the free list, zeroing its slot. Panics on
// out-of-range or double-free.
func (p *Pool[T]) Deallocate(index uint32) {
	if index >= uint32(len(p.slots)) {
		panic("voxtree: pool index out of bounds")
	}
	for _, f := range p.free {
		if f == index {
			panic("voxtree: double free detected")
		}
	}

	var zero T
	p.slots[index] = zero
	p.free = append(p.free, index)
}

// Get returns the value stored at index.
func (p *Pool[T]) Get(index uint32) T {
	if index >= uint32(len(p.slots)) {
		panic("voxtree: pool index out of bounds")
	}
	return p.slots[index]
}

// GetMut returns a pointer to the slot at index, for in-place mutation.
func (p *Pool[T]) GetMut(index uint32) *T {
	if index >= uint32(len(p.slots)) {
		panic("voxtree: pool index out of bounds")
	}
	return &p.slots[index]
}

// Set overwrites the value stored at index without touching the free list.
func (p *Pool[T]) Set(index uint32, value T) {
	if index >= uint32(len(p.slots)) {
		panic("voxtree: pool index out of bounds")
	}
	p.slots[index] = value
}

// PoolLite is a Pool variant for callers that already track their own free
// indices (NodeStore keeps a per-kind free list alongside refcounts and
// generations, so there is no reason to duplicate it inside the pool).
// Allocate takes the slot to reuse, if any, instead of consulting an
// internal free list.
type PoolLite[T any] struct {
	slots    []T
	capacity uint32
}

// NewPoolLite allocates a lite pool with room for capacity elements.
func NewPoolLite[T any](capacity uint32) *PoolLite[T] {
	if capacity == 0 {
		panic("voxtree: pool capacity must be greater than 0")
	}
	return &PoolLite[T]{slots: make([]T, 0, capacity), capacity: capacity}
}

// Allocate stores value at reuse, if given, otherwise grows the slab by
// one. Panics if the pool is full and reuse is nil.
func (p *PoolLite[T]) Allocate(value T, reuse *uint32) uint32 {
	if reuse != nil {
		index := *reuse
		if index >= uint32(len(p.slots)) {
			panic("voxtree: pool index out of bounds")
		}
		p.slots[index] = value
		return index
	}

	if uint32(len(p.slots)) >= p.capacity {
		panic("voxtree: pool out of memory")
	}

	index := uint32(len(p.slots))
	p.slots = append(p.slots, value)
	return index
}

// Deallocate zeroes the slot at index; the caller is responsible for
// recording index on its own free list.
func (p *PoolLite[T]) Deallocate(index uint32) {
	if index >= uint32(len(p.slots)) {
		panic("voxtree: pool index out of bounds")
	}
	var zero T
	p.slots[index] = zero
}

func (p *PoolLite[T]) Get(index uint32) T {
	if index >= uint32(len(p.slots)) {
		panic("voxtree: pool index out of bounds")
	}
	return p.slots[index]
}

func (p *PoolLite[T]) GetMut(index uint32) *T {
	if index >= uint32(len(p.slots)) {
		panic("voxtree: pool index out of bounds")
	}
	return &p.slots[index]
}

func (p *PoolLite[T]) Set(index uint32, value T) {
	if index >= uint32(len(p.slots)) {
		panic("voxtree: pool index out of bounds")
	}
	p.slots[index] = value
}
