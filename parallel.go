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

import "golang.org/x/sync/errgroup"

// MeshRegion names one DAG root to extract a mesh for, placed at offset in
// world space. A world made of many chunks meshes each chunk's root
// independently, which is what makes the regions in one
// ExtractMeshesConcurrently call safe to run in parallel: nodes are only
// ever read here, never mutated, so concurrent readers need no
// coordination beyond the Store's RLock.
type MeshRegion[T Value] struct {
	Root     BlockId
	MaxDepth MaxDepth
	Offset   Vec3f
	Lod      Lod
}

// ExtractMeshesConcurrently meshes every region against in using greedy
// face merging, one goroutine per region via an errgroup.Group, which
// waits for every region and returns the first error; region extraction
// itself never returns an error, and no region stops another. The
// caller's Store should already be read-locked for the duration of this
// call, since every region shares the same Interner.
func ExtractMeshesConcurrently[T Value](in *Interner[T], regions []MeshRegion[T]) ([]*MeshData, error) {
	results := make([]*MeshData, len(regions))

	var g errgroup.Group
	for i, region := range regions {
		i, region := i, region
		g.Go(func() error {
			mesh := &MeshData{}
			generateGreedyMeshArrays(in, region.Root, region.MaxDepth, region.Offset, region.Lod, mesh)
			results[i] = mesh
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
