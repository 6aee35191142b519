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

// OctreeOpsRead is implemented by any octree View that can be sampled.
type OctreeOpsRead[T Value] interface {
	Get(in *Interner[T], pos Vec3i) (T, bool)
}

// OctreeOpsWrite is implemented by any octree View that accepts edits.
type OctreeOpsWrite[T Value] interface {
	Set(in *Interner[T], pos Vec3i, value T) bool
	Fill(in *Interner[T], value T)
	Clear(in *Interner[T])
}

// OctreeOpsBatch is implemented by any octree View that can stage and
// apply a Batch.
type OctreeOpsBatch[T Value] interface {
	CreateBatch() *Batch[T]
	ApplyBatch(in *Interner[T], batch *Batch[T]) bool
}

// OctreeOpsMesh is implemented by any octree View that can be materialized
// into a dense grid at a given level of detail.
type OctreeOpsMesh[T Value] interface {
	ToVec(in *Interner[T], lod Lod) []T
}

// OctreeOpsConfig describes an octree View's sizing.
type OctreeOpsConfig interface {
	MaxDepth(lod Lod) MaxDepth
	VoxelsPerAxis(lod Lod) uint32
}

// OctreeOpsState describes an octree View's current occupancy.
type OctreeOpsState interface {
	IsEmpty() bool
	IsLeaf() bool
}

// OctreeOpsDirty tracks whether a View has unflushed changes since the
// last time it was considered clean (e.g. meshed or serialized).
type OctreeOpsDirty interface {
	IsDirty() bool
	MarkDirty()
	ClearDirty()
}

// dirtyFlag is embedded by both View kinds to satisfy OctreeOpsDirty
// without duplicating the three one-line methods.
type dirtyFlag struct {
	dirty bool
}

func (d *dirtyFlag) IsDirty() bool  { return d.dirty }
func (d *dirtyFlag) MarkDirty()     { d.dirty = true }
func (d *dirtyFlag) ClearDirty()    { d.dirty = false }

// getAtDepth walks down from (root, depth) following pos, returning the
// voxel value in effect at the bottom of the descent. A leaf encountered
// before the bottom is uniform over its entire remaining subtree, so its
// value applies regardless of how much further down pos would otherwise
// go.
func getAtDepth[T Value](in *Interner[T], root BlockId, pos Vec3i, depth TraversalDepth) (T, bool) {
	node := root
	cur := depth

	for !node.IsEmpty() {
		if cur.Current() >= cur.Max() || node.IsLeaf() {
			return in.GetValue(node), true
		}
		idx := childIndex(pos, cur)
		node = in.GetChildID(node, idx)
		cur = cur.Increment()
	}

	var zero T
	return zero, false
}

// toVec materializes the full-resolution grid under root into a dense,
// y-major/z-mid/x-minor array sized voxelsPerAxis^3.
func toVec[T Value](in *Interner[T], root BlockId, maxDepth MaxDepth) []T {
	voxelsPerAxis := int(maxDepth.VoxelsPerAxis())
	size := voxelsPerAxis * voxelsPerAxis * voxelsPerAxis
	data := make([]T, size)

	if root.IsEmpty() {
		return data
	}

	if root.IsLeaf() {
		value := in.GetValue(root)
		for i := range data {
			data[i] = value
		}
		return data
	}

	shiftY := voxelsPerAxis * voxelsPerAxis
	depth := NewTraversalDepth(0, maxDepth.Max())

	for y := 0; y < voxelsPerAxis; y++ {
		baseY := y * shiftY
		for z := 0; z < voxelsPerAxis; z++ {
			baseZ := baseY + z*voxelsPerAxis
			for x := 0; x < voxelsPerAxis; x++ {
				pos := Vec3i{X: int32(x), Y: int32(y), Z: int32(z)}
				if v, ok := getAtDepth(in, root, pos, depth); ok {
					data[baseZ+x] = v
				}
			}
		}
	}

	return data
}

// branchChildren returns node's eight logical children: an actual branch's
// stored array, a leaf's id replicated eight times (the leaf is uniform
// over the whole subtree), or all-empty for EmptyBlockId.
func branchChildren[T Value](in *Interner[T], node BlockId) Children {
	switch {
	case node.IsEmpty():
		return EmptyChildren
	case node.IsLeaf():
		var children Children
		for i := range children {
			children[i] = node
		}
		return children
	default:
		return in.GetChildren(node)
	}
}

// maskOf computes the (types, mask) pair describing children, the same
// rule NewBranch callers must follow: mask bit i set iff children[i] is
// non-empty, types bit i set iff that occupied child is a leaf.
func maskOf(children Children) (types, mask uint8) {
	for i, c := range children {
		if !c.IsEmpty() {
			mask |= 1 << uint(i)
			if c.IsLeaf() {
				types |= 1 << uint(i)
			}
		}
	}
	return
}

// setVoxel descends from root to the voxel at pos, writes value, and
// rebuilds every branch on the path back to the root through
// GetOrInsertBranch, releasing superseded nodes as it goes. It returns the
// new root (retaining it) and whether anything changed; the caller is
// responsible for releasing the old root once it has adopted the new one.
func setVoxel[T Value](in *Interner[T], root BlockId, maxDepth MaxDepth, pos Vec3i, value T) (BlockId, bool) {
	depth := NewTraversalDepth(0, maxDepth.Max())

	type frame struct {
		node BlockId
		idx  uint8
	}
	frames := make([]frame, 0, maxDepth.Max())

	node := root
	for depth.Current() < depth.Max() {
		idx := childIndex(pos, depth)
		frames = append(frames, frame{node: node, idx: idx})
		if node.IsEmpty() {
			node = EmptyBlockId
		} else if node.IsLeaf() {
			// uniform leaf stands in for every child until we reach bottom.
		} else {
			node = in.GetChildID(node, idx)
		}
		depth = depth.Increment()
	}

	var existing T
	if node.IsLeaf() {
		existing = in.GetValue(node)
	}
	if existing == value {
		return root, false
	}

	newChild := in.GetOrInsertLeaf(value)

	for i := len(frames) - 1; i >= 0; i-- {
		f := frames[i]
		children := branchChildren(in, f.node)
		children[f.idx] = newChild
		types, mask := maskOf(children)

		newBranch := in.GetOrInsertBranch(children, types, mask)
		in.Release(newChild)
		newChild = newBranch
	}

	if newChild == root {
		in.Release(newChild)
		return root, false
	}

	return newChild, true
}

// fillAll releases root (if any) and returns a fresh uniform root for
// value across the whole max-depth volume: EmptyBlockId if value is the
// zero value, otherwise a single interned leaf (a leaf is uniform over any
// subtree, so no branch nodes are needed at all).
func fillAll[T Value](in *Interner[T], root BlockId, value T) BlockId {
	newRoot := in.GetOrInsertLeaf(value)
	in.Release(root)
	return newRoot
}

// nodeAt descends depth levels from root along coord's path (3 bits per
// level, most significant level first), returning the subtree rooted
// there, unretained. A leaf or EmptyBlockId reached before the bottom
// stands in for every position below it, the same way branchChildren
// treats a leaf as uniform over its whole subtree.
func nodeAt[T Value](in *Interner[T], root BlockId, depth uint8, coord uint32) BlockId {
	node := root
	for d := uint8(0); d < depth; d++ {
		if node.IsEmpty() || node.IsLeaf() {
			return node
		}
		shift := 3 * (depth - d - 1)
		idx := uint8((coord >> shift) & 0b111)
		node = in.GetChildID(node, idx)
	}
	return node
}

// applyBatchToRoot builds a fresh root from batch in one pass over the
// leaf-parent grid instead of repeating setVoxel once per touched voxel,
// then folds the result upward level by level through GetOrInsertBranch's
// own uniform-collapse rule. It returns an owned reference; the caller
// releases the old root once it has adopted the new one, same as setVoxel.
func applyBatchToRoot[T Value](in *Interner[T], root BlockId, maxDepth MaxDepth, batch *Batch[T]) BlockId {
	fillValue, hasFill := batch.ToFill()
	max := maxDepth.Max()

	if max == 0 {
		return applyBatchSingleVoxel(in, root, batch, hasFill, fillValue)
	}
	return rebuildFromBatch(in, root, batch, hasFill, fillValue, max, 0, 0)
}

// applyBatchSingleVoxel handles the degenerate max_depth=0 tree, where the
// root is the voxel itself and there is no branch level to fold upward.
func applyBatchSingleVoxel[T Value](in *Interner[T], root BlockId, batch *Batch[T], hasFill bool, fillValue T) BlockId {
	set, clear := batch.MaskAt(0)
	values := batch.ValuesAt(0)
	switch {
	case set&1 != 0:
		return in.GetOrInsertLeaf(values[0])
	case clear&1 != 0:
		return EmptyBlockId
	case hasFill:
		return in.GetOrInsertLeaf(fillValue)
	default:
		in.Retain(root)
		return root
	}
}

// rebuildFromBatch returns an owned reference to the subtree at (depth,
// coord), with every staged edit beneath it folded in. A subtree with no
// staged edit anywhere underneath it is inherited wholesale, from the
// fill value or from the matching position in root, without descending
// any further; this is what keeps an edit to one corner of a large volume
// from touching the rest of the tree.
func rebuildFromBatch[T Value](in *Interner[T], root BlockId, batch *Batch[T], hasFill bool, fillValue T, max, depth uint8, coord uint32) BlockId {
	levelsBelow := max - 1 - depth
	rangeStart := uint(coord) << (3 * levelsBelow)
	rangeLen := uint(1) << (3 * levelsBelow)

	if i, ok := batch.Touched().NextSet(rangeStart); !ok || i >= rangeStart+rangeLen {
		if hasFill {
			return in.GetOrInsertLeaf(fillValue)
		}
		node := nodeAt(in, root, depth, coord)
		in.Retain(node)
		return node
	}

	var children Children
	if depth == max-1 {
		slot := uint(coord)
		set, clear := batch.MaskAt(slot)
		values := batch.ValuesAt(slot)

		for k := uint8(0); k < MaxChildren; k++ {
			bit := uint8(1) << k
			switch {
			case set&bit != 0:
				children[k] = in.GetOrInsertLeaf(values[k])
			case clear&bit != 0:
				children[k] = EmptyBlockId
			case hasFill:
				children[k] = in.GetOrInsertLeaf(fillValue)
			default:
				existing := nodeAt(in, root, max, (coord<<3)|uint32(k))
				in.Retain(existing)
				children[k] = existing
			}
		}
	} else {
		for octant := uint8(0); octant < MaxChildren; octant++ {
			children[octant] = rebuildFromBatch(in, root, batch, hasFill, fillValue, max, depth+1, coord*MaxChildren+uint32(octant))
		}
	}

	types, mask := maskOf(children)
	branch := in.GetOrInsertBranch(children, types, mask)
	for _, c := range children {
		in.Release(c)
	}
	return branch
}
