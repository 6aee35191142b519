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

import "github.com/bits-and-blooms/bitset"

// generateGreedyMeshArrays meshes the same exposed-face set
// generateNaiveMeshArrays would, but merges adjacent coplanar faces that
// share a value into the fewest rectangles: for each of the six face
// directions, it slices the volume into layers perpendicular to that
// axis, builds a 2D occupancy mask of exposed same-value cells per layer,
// and greedily grows each unvisited cell first along its row (width) and
// then across rows (height) before emitting a single quad for the merged
// rectangle. Ties in the rectangle search prefer extending width over
// height, matching the scan order below.
// GenerateGreedyMeshArrays is the exported entry point for
// generateGreedyMeshArrays, for callers outside this package.
func GenerateGreedyMeshArrays[T Value](in *Interner[T], root BlockId, maxDepth MaxDepth, offset Vec3f, lod Lod, mesh *MeshData) {
	generateGreedyMeshArrays(in, root, maxDepth, offset, lod, mesh)
}

func generateGreedyMeshArrays[T Value](in *Interner[T], root BlockId, maxDepth MaxDepth, offset Vec3f, lod Lod, mesh *MeshData) {
	voxels := materialize(in, root, maxDepth, lod)
	side := int(lodMaxDepth(maxDepth, lod).VoxelsPerAxis())
	if side == 0 {
		return
	}
	scale := float32(int32(1) << lod.Level())

	at := func(x, y, z int) T {
		if x < 0 || y < 0 || z < 0 || x >= side || y >= side || z >= side {
			var zero T
			return zero
		}
		return voxels[y*side*side+z*side+x]
	}

	for f := face(0); f < 6; f++ {
		off := faceOffsets[f]
		exposed := func(x, y, z int) (T, bool) {
			v := at(x, y, z)
			var zero T
			if v == zero {
				return zero, false
			}
			if at(x+int(off.X), y+int(off.Y), z+int(off.Z)) != zero {
				return zero, false
			}
			return v, true
		}

		switch f {
		case faceNegX, facePosX:
			for x := 0; x < side; x++ {
				layer := func(y, z int) (T, bool) { return exposed(x, y, z) }
				greedyLayer(layer, side, side, func(u0, v0, w, h int, val T) {
					emitGreedyQuad(mesh, f, float32(x), float32(u0), float32(v0), 0, float32(w), float32(h), scale, offset)
				})
			}
		case faceNegY, facePosY:
			for y := 0; y < side; y++ {
				layer := func(x, z int) (T, bool) { return exposed(x, y, z) }
				greedyLayer(layer, side, side, func(u0, v0, w, h int, val T) {
					emitGreedyQuad(mesh, f, float32(u0), float32(y), float32(v0), float32(w), 0, float32(h), scale, offset)
				})
			}
		case faceNegZ, facePosZ:
			for z := 0; z < side; z++ {
				layer := func(x, y int) (T, bool) { return exposed(x, y, z) }
				greedyLayer(layer, side, side, func(u0, v0, w, h int, val T) {
					emitGreedyQuad(mesh, f, float32(u0), float32(v0), float32(z), float32(w), float32(h), 0, scale, offset)
				})
			}
		}
	}
}

// greedyLayer scans a u x v 2D layer and calls emit once for every maximal
// merged rectangle of exposed same-value cells it finds.
func greedyLayer[T Value](cellAt func(u, v int) (T, bool), uSize, vSize int, emit func(u0, v0, w, h int, val T)) {
	visited := bitset.New(uint(uSize * vSize))

	for v0 := 0; v0 < vSize; v0++ {
		for u0 := 0; u0 < uSize; u0++ {
			idx := uint(v0*uSize + u0)
			if visited.Test(idx) {
				continue
			}
			val, ok := cellAt(u0, v0)
			if !ok {
				continue
			}

			width := 1
			for u0+width < uSize {
				next, ok := cellAt(u0+width, v0)
				if !ok || next != val || visited.Test(uint(v0*uSize+u0+width)) {
					break
				}
				width++
			}

			height := 1
		rows:
			for v0+height < vSize {
				for u := u0; u < u0+width; u++ {
					next, ok := cellAt(u, v0+height)
					if !ok || next != val || visited.Test(uint((v0+height)*uSize+u)) {
						break rows
					}
				}
				height++
			}

			for v := v0; v < v0+height; v++ {
				for u := u0; u < u0+width; u++ {
					visited.Set(uint(v*uSize + u))
				}
			}

			emit(u0, v0, width, height, val)
		}
	}
}

// emitGreedyQuad appends a merged rectangle as two triangles. x, y, z give
// the rectangle's minimum corner in grid units, and exactly one of
// (sx, sy, sz) is zero, identifying which plane the quad lies in; the
// other two carry its width and height along that plane's two axes.
func emitGreedyQuad(mesh *MeshData, f face, x, y, z, sx, sy, sz, scale float32, offset Vec3f) {
	base := uint32(len(mesh.Vertices))
	normal := faceNormals[f]

	var corners [4]Vec3f
	switch f {
	case faceNegX, facePosX:
		cx := x
		if f == facePosX {
			cx = x + 1
		}
		corners = [4]Vec3f{{cx, y, z}, {cx, y, z + sz}, {cx, y + sy, z + sz}, {cx, y + sy, z}}
		if f == facePosX {
			corners = [4]Vec3f{{cx, y, z}, {cx, y + sy, z}, {cx, y + sy, z + sz}, {cx, y, z + sz}}
		}
	case faceNegY, facePosY:
		cy := y
		if f == facePosY {
			cy = y + 1
		}
		corners = [4]Vec3f{{x, cy, z}, {x + sx, cy, z}, {x + sx, cy, z + sz}, {x, cy, z + sz}}
		if f == facePosY {
			corners = [4]Vec3f{{x, cy, z}, {x, cy, z + sz}, {x + sx, cy, z + sz}, {x + sx, cy, z}}
		}
	case faceNegZ, facePosZ:
		cz := z
		if f == facePosZ {
			cz = z + 1
		}
		corners = [4]Vec3f{{x, y, cz}, {x, y + sy, cz}, {x + sx, y + sy, cz}, {x + sx, y, cz}}
		if f == facePosZ {
			corners = [4]Vec3f{{x, y, cz}, {x + sx, y, cz}, {x + sx, y + sy, cz}, {x, y + sy, cz}}
		}
	}

	for _, c := range corners {
		mesh.Vertices = append(mesh.Vertices, Vec3f{
			X: offset.X + c.X*scale,
			Y: offset.Y + c.Y*scale,
			Z: offset.Z + c.Z*scale,
		})
		mesh.Normals = append(mesh.Normals, normal)
	}

	mesh.Indices = append(mesh.Indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}
