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

// lodMaxDepth returns the depth of the grid materialized at lod: each LOD
// level above 0 halves the resolution on every axis, so it is simply full
// depth minus the LOD level, floored at 0.
func lodMaxDepth(full MaxDepth, lod Lod) MaxDepth {
	level := lod.Level()
	if level > full.Max() {
		level = full.Max()
	}
	return NewMaxDepth(full.Max() - level)
}

// descendToDepth walks from root toward pos, stopping at depth.Max() or
// as soon as it reaches a leaf or empty node, whichever comes first.
func descendToDepth[T Value](in *Interner[T], root BlockId, pos Vec3i, depth TraversalDepth) BlockId {
	node := root
	cur := depth
	for !node.IsEmpty() && !node.IsLeaf() && cur.Current() < cur.Max() {
		idx := childIndex(pos, cur)
		node = in.GetChildID(node, idx)
		cur = cur.Increment()
	}
	return node
}

// lodAverage collapses node's subtree, levels deep, into one representative
// value: a leaf or empty node contributes its value directly; a branch
// recurses one level into each of its eight children and combines their
// results with average (the plurality rule in voxel.go), applied
// repeatedly on the way up.
func lodAverage[T Value](in *Interner[T], node BlockId, levels uint8) T {
	var zero T
	if node.IsEmpty() {
		return zero
	}
	if node.IsLeaf() || levels == 0 {
		if node.IsLeaf() {
			return in.GetValue(node)
		}
		return zero
	}

	children := in.GetChildren(node)
	values := make([]T, MaxChildren)
	for i, c := range children {
		values[i] = lodAverage(in, c, levels-1)
	}
	return average(values)
}

// materialize extracts the dense grid for root at the given level of
// detail: lod 0 is the exact full-resolution grid, each level above it
// halves the side length and folds the voxels below each coarse cell
// through lodAverage.
func materialize[T Value](in *Interner[T], root BlockId, maxDepth MaxDepth, lod Lod) []T {
	level := lod.Level()
	if level == 0 {
		return toVec(in, root, maxDepth)
	}

	target := lodMaxDepth(maxDepth, lod)
	voxelsPerAxis := int(target.VoxelsPerAxis())
	data := make([]T, voxelsPerAxis*voxelsPerAxis*voxelsPerAxis)

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

	remaining := maxDepth.Max() - target.Max()
	shiftY := voxelsPerAxis * voxelsPerAxis
	depth := NewTraversalDepth(0, target.Max())

	for y := 0; y < voxelsPerAxis; y++ {
		baseY := y * shiftY
		for z := 0; z < voxelsPerAxis; z++ {
			baseZ := baseY + z*voxelsPerAxis
			for x := 0; x < voxelsPerAxis; x++ {
				pos := Vec3i{X: int32(x), Y: int32(y), Z: int32(z)}
				node := descendToDepth(in, root, pos, depth)
				data[baseZ+x] = lodAverage(in, node, remaining)
			}
		}
	}

	return data
}
