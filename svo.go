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

// Svo is the mutable, incrementally-edited octree View: every Set
// descends and rebuilds just the path it touched, which is the efficient
// shape for interactive, one-voxel-at-a-time editing. It still shares its
// nodes with every other View on the same Store, since every edit goes
// through GetOrInsertLeaf/GetOrInsertBranch.
type Svo[T Value] struct {
	root     BlockId
	maxDepth MaxDepth
	dirtyFlag
}

// NewSvo creates an empty dynamic octree for the given max depth.
func NewSvo[T Value](maxDepth MaxDepth) *Svo[T] {
	return &Svo[T]{root: EmptyBlockId, maxDepth: maxDepth}
}

func (s *Svo[T]) GetRootID() BlockId { return s.root }

// Get reads the voxel at pos, if any.
func (s *Svo[T]) Get(in *Interner[T], pos Vec3i) (T, bool) {
	return getAtDepth(in, s.root, pos, NewTraversalDepth(0, s.maxDepth.Max()))
}

// Set writes value at pos, rebuilding the path from the edited leaf back
// to the root. Returns false if pos is out of bounds.
func (s *Svo[T]) Set(in *Interner[T], pos Vec3i, value T) bool {
	side := s.maxDepth.VoxelsPerAxis()
	if !pos.InBounds(side) {
		return false
	}

	oldRoot := s.root
	newRoot, changed := setVoxel(in, oldRoot, s.maxDepth, pos, value)
	if changed {
		s.root = newRoot
		in.Release(oldRoot)
		s.MarkDirty()
	}
	return true
}

// Fill replaces every voxel in the volume with value.
func (s *Svo[T]) Fill(in *Interner[T], value T) {
	s.root = fillAll(in, s.root, value)
	s.MarkDirty()
}

// Clear empties the volume.
func (s *Svo[T]) Clear(in *Interner[T]) {
	in.Release(s.root)
	s.root = EmptyBlockId
	s.MarkDirty()
}

// CreateBatch allocates a batch sized for this octree.
func (s *Svo[T]) CreateBatch() *Batch[T] {
	return NewBatch[T](s.maxDepth.Max())
}

// ApplyBatch folds every staged edit in batch into the tree in one pass
// over the leaf-parent grid, folding upward level by level through the
// same uniform-collapse rule a single Set uses, instead of rebuilding the
// root once per touched voxel. If batch carries a fill, untouched regions
// start from that fill and patches are overlaid on top of it (a cleared
// child always resolves to default, even over a fill).
func (s *Svo[T]) ApplyBatch(in *Interner[T], batch *Batch[T]) bool {
	if !batch.HasPatches() {
		return false
	}

	oldRoot := s.root
	newRoot := applyBatchToRoot(in, oldRoot, s.maxDepth, batch)
	if newRoot == oldRoot {
		in.Release(newRoot)
		return false
	}

	s.root = newRoot
	in.Release(oldRoot)
	s.MarkDirty()
	return true
}

// ToVec materializes the octree at the given level of detail.
func (s *Svo[T]) ToVec(in *Interner[T], lod Lod) []T {
	return materialize(in, s.root, s.maxDepth, lod)
}

// GenerateNaiveMeshArrays appends one quad per exposed voxel face, offset
// into world space by offset.
func (s *Svo[T]) GenerateNaiveMeshArrays(in *Interner[T], mesh *MeshData, offset Vec3f, lod Lod) {
	generateNaiveMeshArrays(in, s.root, s.maxDepth, offset, lod, mesh)
}

// GenerateGreedyMeshArrays meshes the same surface as
// GenerateNaiveMeshArrays, merging coplanar same-value faces into fewer
// quads.
func (s *Svo[T]) GenerateGreedyMeshArrays(in *Interner[T], mesh *MeshData, offset Vec3f, lod Lod) {
	generateGreedyMeshArrays(in, s.root, s.maxDepth, offset, lod, mesh)
}

func (s *Svo[T]) MaxDepth(lod Lod) MaxDepth {
	return lodMaxDepth(s.maxDepth, lod)
}

func (s *Svo[T]) VoxelsPerAxis(lod Lod) uint32 {
	return uint32(s.MaxDepth(lod).VoxelsPerAxis())
}

func (s *Svo[T]) IsEmpty() bool { return s.root.IsEmpty() }
func (s *Svo[T]) IsLeaf() bool  { return s.root.IsLeaf() }
