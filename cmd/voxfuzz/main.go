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

// Command voxfuzz differentially fuzzes voxtree: every attempt stages the
// same random edits against one octree edited voxel-by-voxel through Set
// and a second edited through a Batch, then checks that both end up with
// the same dense grid and that the naive and greedy meshers agree on
// total exposed surface area.
package main

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/wpgvoxel/voxtree"
)

const (
	depth  = 4 // 16 voxels per axis
	values = 5 // material ids 1..values-1, plus 0 for empty
)

func main() {
	maxDepth := voxtree.NewMaxDepth(depth)
	side := int32(maxDepth.VoxelsPerAxis())

	for attempt := 0; ; attempt++ {
		fmt.Println("attempt #", attempt)

		store := voxtree.NewNodeStore[int32](256)
		interner := voxtree.NewInterner(store)

		direct := voxtree.NewSvo[int32](maxDepth)
		staged := voxtree.NewSvo[int32](maxDepth)
		batch := staged.CreateBatch()

		edits := 200 + rand.Intn(2000)
		for i := 0; i < edits; i++ {
			pos := voxtree.Vec3i{
				X: rand.Int31n(side),
				Y: rand.Int31n(side),
				Z: rand.Int31n(side),
			}
			value := int32(rand.Intn(values))

			direct.Set(interner, pos, value)
			batch.Set(pos, value)
		}

		staged.ApplyBatch(interner, batch)

		want := direct.ToVec(interner, voxtree.NewLod(0))
		got := staged.ToVec(interner, voxtree.NewLod(0))

		if len(want) != len(got) {
			panic(voxtree.DumpMismatch("grid length mismatch", len(got), len(want)))
		}
		for i := range want {
			if want[i] != got[i] {
				panic(voxtree.DumpMismatch(fmt.Sprintf("voxel %d mismatch", i), got[i], want[i]))
			}
		}

		checkMeshesAgree(interner, direct, maxDepth)

		direct.Clear(interner)
		staged.Clear(interner)
	}
}

func checkMeshesAgree(interner *voxtree.Interner[int32], tree *voxtree.Svo[int32], maxDepth voxtree.MaxDepth) {
	var naive, greedy voxtree.MeshData
	voxtree.GenerateNaiveMeshArrays(interner, tree.GetRootID(), maxDepth, voxtree.Vec3f{}, voxtree.NewLod(0), &naive)
	voxtree.GenerateGreedyMeshArrays(interner, tree.GetRootID(), maxDepth, voxtree.Vec3f{}, voxtree.NewLod(0), &greedy)

	naiveArea := triangleArea(&naive)
	greedyArea := triangleArea(&greedy)

	if naiveArea != greedyArea {
		panic(voxtree.DumpMismatch("mesh area mismatch between naive and greedy", greedyArea, naiveArea))
	}
}

// triangleArea sums 2x the area of every triangle (quads are axis-aligned
// rectangles with integer sides at this LOD, so 2x area is always an
// integer and exact under floating point).
func triangleArea(mesh *voxtree.MeshData) float64 {
	var total float64
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a := mesh.Vertices[mesh.Indices[i]]
		b := mesh.Vertices[mesh.Indices[i+1]]
		c := mesh.Vertices[mesh.Indices[i+2]]

		ux, uy, uz := float64(b.X-a.X), float64(b.Y-a.Y), float64(b.Z-a.Z)
		vx, vy, vz := float64(c.X-a.X), float64(c.Y-a.Y), float64(c.Z-a.Z)

		cx := uy*vz - uz*vy
		cy := uz*vx - ux*vz
		cz := ux*vy - uy*vx

		total += math.Sqrt(cx*cx + cy*cy + cz*cz) // 2*area
	}
	return total
}
