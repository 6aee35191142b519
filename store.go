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

import "sync"

// DefaultStoreCapacity is used by NewStore when the caller has no better
// estimate of how many nodes a workload will need.
const DefaultStoreCapacity uint32 = 1 << 16

// Store is the unit of sharing between octrees: every View that
// participates in the same DAG is operated on with the same Store's
// interner, under that Store's lock. Operations never stash the
// store on a View as an implicit field; it is always threaded through as
// an explicit parameter, so a reader can tell from a function's signature
// alone whether it touches shared state.
type Store[T Value] struct {
	mu       sync.RWMutex
	interner *Interner[T]
}

// NewStore allocates a Store with room for capacity nodes of each kind.
func NewStore[T Value](capacity uint32) *Store[T] {
	return &Store[T]{interner: NewInterner[T](NewNodeStore[T](capacity))}
}

// Lock acquires the store for a write operation (insert, release, batch
// apply). Callers must Unlock when done.
func (s *Store[T]) Lock() { s.mu.Lock() }

// Unlock releases a write lock taken with Lock.
func (s *Store[T]) Unlock() { s.mu.Unlock() }

// RLock acquires the store for a read operation (get, materialize, mesh).
// Callers must RUnlock when done.
func (s *Store[T]) RLock() { s.mu.RLock() }

// RUnlock releases a read lock taken with RLock.
func (s *Store[T]) RUnlock() { s.mu.RUnlock() }

// Interner returns the store's interner. Callers must hold the
// appropriate lock before calling any method on it.
func (s *Store[T]) Interner() *Interner[T] { return s.interner }
