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

// Command objdump reads a VTM container, reports its header fields and
// node count, and optionally exports its surface as a Wavefront OBJ.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/wpgvoxel/voxtree"
)

func main() {
	objOut := flag.String("obj", "", "write the decoded model's surface to this .obj file")
	greedy := flag.Bool("greedy", true, "use greedy meshing instead of naive")
	lodLevel := flag.Uint("lod", 0, "level of detail to mesh at")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: objdump [-obj out.obj] [-greedy] [-lod N] <model.vtm>")
		os.Exit(2)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	model, err := voxtree.DecodeVTM(f)
	if err != nil {
		log.Fatalf("decode: %v", err)
	}

	fmt.Printf("name:             %s\n", model.Name)
	fmt.Printf("max depth:        %d\n", model.MaxDepth)
	fmt.Printf("chunk world size: %g\n", model.ChunkWorldSize)
	fmt.Printf("world bounds:     %s\n", model.WorldBounds)
	fmt.Printf("payload bytes:    %d\n", len(model.Data))

	store := voxtree.NewNodeStore[int32](1 << 16)
	interner := voxtree.NewInterner(store)

	root, err := voxtree.Deserialize[int32](interner, model.Data)
	if err != nil {
		log.Fatalf("deserialize: %v", err)
	}

	fmt.Printf("distinct nodes:   %d\n", interner.Len())
	fmt.Printf("root:             %s\n", root)

	if *objOut == "" {
		return
	}

	maxDepth := voxtree.NewMaxDepth(model.MaxDepth)
	lod := voxtree.NewLod(uint8(*lodLevel))

	var mesh voxtree.MeshData
	if *greedy {
		voxtree.GenerateGreedyMeshArrays(interner, root, maxDepth, voxtree.Vec3f{}, lod, &mesh)
	} else {
		voxtree.GenerateNaiveMeshArrays(interner, root, maxDepth, voxtree.Vec3f{}, lod, &mesh)
	}

	out, err := os.Create(*objOut)
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	if err := voxtree.ExportMeshToOBJ(out, model.Name, &mesh); err != nil {
		log.Fatalf("export: %v", err)
	}

	fmt.Printf("wrote %d vertices, %d triangles to %s\n",
		len(mesh.Vertices), len(mesh.Indices)/3, *objOut)
}
