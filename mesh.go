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

// MeshData accumulates vertices, normals and triangle indices across one or
// more mesh extraction calls, so a caller meshing several chunks can reuse a
// single buffer instead of allocating one per chunk.
type MeshData struct {
	Vertices []Vec3f
	Normals  []Vec3f
	Indices  []uint32
}

// Vec3f is a world-space float3, distinct from the integer Vec3i used for
// grid coordinates.
type Vec3f struct {
	X, Y, Z float32
}

// Reset empties mesh without releasing its backing arrays.
func (m *MeshData) Reset() {
	m.Vertices = m.Vertices[:0]
	m.Normals = m.Normals[:0]
	m.Indices = m.Indices[:0]
}

// face identifies one of the six axis-aligned directions a voxel can expose
// a boundary on.
type face uint8

const (
	faceNegX face = iota
	facePosX
	faceNegY
	facePosY
	faceNegZ
	facePosZ
)

var faceNormals = [6]Vec3f{
	faceNegX: {X: -1},
	facePosX: {X: 1},
	faceNegY: {Y: -1},
	facePosY: {Y: 1},
	faceNegZ: {Z: -1},
	facePosZ: {Z: 1},
}

var faceOffsets = [6]Vec3i{
	faceNegX: {X: -1},
	facePosX: {X: 1},
	faceNegY: {Y: -1},
	facePosY: {Y: 1},
	faceNegZ: {Z: -1},
	facePosZ: {Z: 1},
}

// faceCorners lists the four corners of each face, in counter-clockwise
// winding order as seen from outside the voxel, as offsets from the
// voxel's minimum corner on a unit cube.
var faceCorners = [6][4]Vec3f{
	faceNegX: {{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}},
	facePosX: {{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}},
	faceNegY: {{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}},
	facePosY: {{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}},
	faceNegZ: {{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}},
	facePosZ: {{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}},
}

// generateNaiveMeshArrays emits one quad per exposed voxel face: for every
// non-default voxel it checks each of the six neighbors and, if the
// neighbor is default (empty) or out of bounds, appends a face. This is
// the simplest correct mesher and the baseline the greedy mesher's output
// is checked against; it does no face merging, so a solid N^3 block
// produces N^2 quads per side where greedy produces one, and any volume
// produces one quad per visible voxel face instead of the merged
// rectangles greedy would find.
// GenerateNaiveMeshArrays is the exported entry point for
// generateNaiveMeshArrays, for callers outside this package (mesh export
// tools, fuzzers) that already hold an Interner and a root BlockId.
func GenerateNaiveMeshArrays[T Value](in *Interner[T], root BlockId, maxDepth MaxDepth, offset Vec3f, lod Lod, mesh *MeshData) {
	generateNaiveMeshArrays(in, root, maxDepth, offset, lod, mesh)
}

func generateNaiveMeshArrays[T Value](in *Interner[T], root BlockId, maxDepth MaxDepth, offset Vec3f, lod Lod, mesh *MeshData) {
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

	var zero T
	for y := 0; y < side; y++ {
		for z := 0; z < side; z++ {
			for x := 0; x < side; x++ {
				v := at(x, y, z)
				if v == zero {
					continue
				}
				for f := face(0); f < 6; f++ {
					off := faceOffsets[f]
					if at(x+int(off.X), y+int(off.Y), z+int(off.Z)) != zero {
						continue
					}
					emitFace(mesh, f, float32(x), float32(y), float32(z), scale, offset)
				}
			}
		}
	}
}

// emitFace appends one quad (as two triangles) for face f of the voxel at
// grid coordinate (x, y, z), scaled and translated into world space.
func emitFace(mesh *MeshData, f face, x, y, z, scale float32, offset Vec3f) {
	base := uint32(len(mesh.Vertices))
	normal := faceNormals[f]

	for _, corner := range faceCorners[f] {
		mesh.Vertices = append(mesh.Vertices, Vec3f{
			X: offset.X + (x+corner.X)*scale,
			Y: offset.Y + (y+corner.Y)*scale,
			Z: offset.Z + (z+corner.Z)*scale,
		})
		mesh.Normals = append(mesh.Normals, normal)
	}

	mesh.Indices = append(mesh.Indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}
