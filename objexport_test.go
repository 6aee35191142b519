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
	"bytes"
	"strings"
	"testing"
)

func TestExportMeshToOBJFormat(t *testing.T) {
	t.Parallel()

	in := newTestInterner()
	tree := NewSvo[int32](NewMaxDepth(1))
	tree.Set(in, Vec3i{X: 0, Y: 0, Z: 0}, 1)

	var mesh MeshData
	tree.GenerateNaiveMeshArrays(in, &mesh, Vec3f{}, NewLod(0))

	var buf bytes.Buffer
	if err := ExportMeshToOBJ(&buf, "chunk", &mesh); err != nil {
		t.Fatalf("ExportMeshToOBJ: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) == 0 || lines[0] != "o chunk" {
		t.Fatalf("first line = %q, want %q", firstOrEmpty(lines), "o chunk")
	}

	var vCount, vnCount, fCount int
	for _, line := range lines[1:] {
		switch {
		case strings.HasPrefix(line, "v "):
			vCount++
		case strings.HasPrefix(line, "vn "):
			vnCount++
		case strings.HasPrefix(line, "f "):
			fCount++
		}
	}

	if vCount != len(mesh.Vertices) {
		t.Errorf("vertex lines = %d, want %d", vCount, len(mesh.Vertices))
	}
	if vnCount != len(mesh.Normals) {
		t.Errorf("normal lines = %d, want %d", vnCount, len(mesh.Normals))
	}
	wantFaces := len(mesh.Indices) / 3
	if fCount != wantFaces {
		t.Errorf("face lines = %d, want %d", fCount, wantFaces)
	}

	// OBJ indices are 1-based; the smallest index written must never be 0.
	for _, line := range lines[1:] {
		if !strings.HasPrefix(line, "f ") {
			continue
		}
		for _, field := range strings.Fields(line)[1:] {
			if field == "0" {
				t.Fatalf("face line %q contains a 0-based index", line)
			}
		}
	}
}

func firstOrEmpty(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return lines[0]
}
