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

// SvoDag is the static, batch-loaded octree View: it is populated once
// (typically from a voxelizer or a container load) through ApplyBatch and
// then treated as read-mostly. Unlike Svo it has no single-voxel Set,
// which keeps its usage pattern honest: if something needs interactive
// per-voxel edits, it should be a Svo, converted with ToStatic once
// editing is done.
type SvoDag[T Value] struct {
	root     BlockId
	maxDepth MaxDepth
	dirtyFlag
}

// NewSvoDag creates an empty static octree for the given max depth.
func NewSvoDag[T Value](maxDepth MaxDepth) *SvoDag[T] {
	return &SvoDag[T]{root: EmptyBlockId, maxDepth: maxDepth}
}

func (d *SvoDag[T]) GetRootID() BlockId { return d.root }

// Get reads the voxel at pos, if any.
func (d *SvoDag[T]) Get(in *Interner[T], pos Vec3i) (T, bool) {
	return getAtDepth(in, d.root, pos, NewTraversalDepth(0, d.maxDepth.Max()))
}

// Fill replaces every voxel in the volume with value.
func (d *SvoDag[T]) Fill(in *Interner[T], value T) {
	d.root = fillAll(in, d.root, value)
	d.MarkDirty()
}

// Clear empties the volume.
func (d *SvoDag[T]) Clear(in *Interner[T]) {
	in.Release(d.root)
	d.root = EmptyBlockId
	d.MarkDirty()
}

// CreateBatch allocates a batch sized for this octree.
func (d *SvoDag[T]) CreateBatch() *Batch[T] {
	return NewBatch[T](d.maxDepth.Max())
}

// ApplyBatch folds every staged edit in batch into the tree. This is the
// intended way to populate a SvoDag: stage a full load (or a region) into
// a Batch, then apply it once.
func (d *SvoDag[T]) ApplyBatch(in *Interner[T], batch *Batch[T]) bool {
	svo := Svo[T]{root: d.root, maxDepth: d.maxDepth}
	applied := svo.ApplyBatch(in, batch)
	d.root = svo.root
	if applied {
		d.MarkDirty()
	}
	return applied
}

// ToVec materializes the octree at the given level of detail.
func (d *SvoDag[T]) ToVec(in *Interner[T], lod Lod) []T {
	return materialize(in, d.root, d.maxDepth, lod)
}

// GenerateNaiveMeshArrays appends one quad per exposed voxel face, offset
// into world space by offset.
func (d *SvoDag[T]) GenerateNaiveMeshArrays(in *Interner[T], mesh *MeshData, offset Vec3f, lod Lod) {
	generateNaiveMeshArrays(in, d.root, d.maxDepth, offset, lod, mesh)
}

// GenerateGreedyMeshArrays meshes the same surface as
// GenerateNaiveMeshArrays, merging coplanar same-value faces into fewer
// quads.
func (d *SvoDag[T]) GenerateGreedyMeshArrays(in *Interner[T], mesh *MeshData, offset Vec3f, lod Lod) {
	generateGreedyMeshArrays(in, d.root, d.maxDepth, offset, lod, mesh)
}

func (d *SvoDag[T]) MaxDepth(lod Lod) MaxDepth {
	return lodMaxDepth(d.maxDepth, lod)
}

func (d *SvoDag[T]) VoxelsPerAxis(lod Lod) uint32 {
	return uint32(d.MaxDepth(lod).VoxelsPerAxis())
}

func (d *SvoDag[T]) IsEmpty() bool { return d.root.IsEmpty() }
func (d *SvoDag[T]) IsLeaf() bool  { return d.root.IsLeaf() }

// ToStatic converts a Svo into a SvoDag by re-inserting every voxel read
// from it. Since both Views share the same content-addressed Store, this
// changes only which wrapper holds the root reference, not the
// underlying nodes: structurally identical subtrees collapse onto the
// same BlockIds they already had.
func ToStatic[T Value](in *Interner[T], src *Svo[T]) *SvoDag[T] {
	dst := NewSvoDag[T](src.maxDepth)
	copyOctree[T](in, src, dst)
	return dst
}

// ToDynamic converts a SvoDag into a Svo the same way ToStatic runs in
// reverse.
func ToDynamic[T Value](in *Interner[T], src *SvoDag[T]) *Svo[T] {
	dst := NewSvo[T](src.maxDepth)
	copyOctree[T](in, src, dst)
	return dst
}

type octreeSource[T Value] interface {
	OctreeOpsRead[T]
	OctreeOpsConfig
	OctreeOpsState
}

// octreeSink is deliberately OctreeOpsBatch rather than OctreeOpsWrite:
// SvoDag has no per-voxel Set, so copying into either View kind goes
// through a staged Batch instead of assuming a Set method exists.
type octreeSink[T Value] interface {
	OctreeOpsBatch[T]
}

func copyOctree[T Value](in *Interner[T], src octreeSource[T], dst octreeSink[T]) {
	if src.IsEmpty() {
		return
	}

	batch := dst.CreateBatch()
	side := int32(src.VoxelsPerAxis(NewLod(0)))
	var pos Vec3i
	for y := int32(0); y < side; y++ {
		pos.Y = y
		for z := int32(0); z < side; z++ {
			pos.Z = z
			for x := int32(0); x < side; x++ {
				pos.X = x
				if v, ok := src.Get(in, pos); ok {
					batch.Set(pos, v)
				}
			}
		}
	}
	dst.ApplyBatch(in, batch)
}
