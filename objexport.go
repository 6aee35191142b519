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

import (
	"bufio"
	"fmt"
	"io"
)

// ExportMeshToOBJ writes mesh as a Wavefront OBJ: an object name line, one
// "v" line per vertex, one "vn" line per normal, and one "f" line per
// triangle using OBJ's 1-based indices. Intended for inspecting mesh
// output, not as a general-purpose OBJ writer.
func ExportMeshToOBJ(w io.Writer, name string, mesh *MeshData) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "o %s\n", name); err != nil {
		return err
	}

	for _, v := range mesh.Vertices {
		if _, err := fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z); err != nil {
			return err
		}
	}

	for _, n := range mesh.Normals {
		if _, err := fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z); err != nil {
			return err
		}
	}

	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a, b, c := mesh.Indices[i]+1, mesh.Indices[i+1]+1, mesh.Indices[i+2]+1
		if _, err := fmt.Fprintf(bw, "f %d %d %d\n", a, b, c); err != nil {
			return err
		}
	}

	return bw.Flush()
}
