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
	"testing"
)

func TestEncodeDecodeVTMUncompressed(t *testing.T) {
	t.Parallel()

	model := VTM{
		MaxDepth:       4,
		ChunkWorldSize: 2.5,
		WorldBounds:    Vec3i{X: 1, Y: 2, Z: 3},
		Name:           "chunk-0",
		Data:           []byte{1, 2, 3, 4, 5, 6, 7, 8},
	}

	var buf bytes.Buffer
	if err := EncodeVTM(&buf, model, false); err != nil {
		t.Fatalf("EncodeVTM: %v", err)
	}

	got, err := DecodeVTM(&buf)
	if err != nil {
		t.Fatalf("DecodeVTM: %v", err)
	}
	assertVTMEqual(t, model, got)
}

func TestEncodeDecodeVTMCompressed(t *testing.T) {
	t.Parallel()

	model := VTM{
		MaxDepth:       5,
		ChunkWorldSize: 1,
		WorldBounds:    Vec3i{X: -4, Y: 0, Z: 4},
		Name:           "compressed",
		Data:           bytes.Repeat([]byte{0xAB}, 4096),
	}

	var buf bytes.Buffer
	if err := EncodeVTM(&buf, model, true); err != nil {
		t.Fatalf("EncodeVTM: %v", err)
	}
	if buf.Len() >= len(model.Data) {
		t.Fatalf("expected compressed container (%d bytes) to be smaller than the raw payload (%d bytes)", buf.Len(), len(model.Data))
	}

	got, err := DecodeVTM(&buf)
	if err != nil {
		t.Fatalf("DecodeVTM: %v", err)
	}
	assertVTMEqual(t, model, got)
}

func TestDecodeVTMRejectsBadMagic(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	buf.WriteString("NotAVoxTreeModel!!!!")
	if _, err := DecodeVTM(&buf); err != ErrCorruptData {
		t.Fatalf("DecodeVTM error = %v, want ErrCorruptData", err)
	}
}

func TestDecodeVTMRejectsTamperedPayload(t *testing.T) {
	t.Parallel()

	model := VTM{MaxDepth: 1, Name: "x", Data: []byte{9, 9, 9, 9}}
	var buf bytes.Buffer
	if err := EncodeVTM(&buf, model, false); err != nil {
		t.Fatalf("EncodeVTM: %v", err)
	}

	raw := buf.Bytes()
	raw[len(raw)-1] ^= 0xFF // flip the last payload byte after the digest was computed.

	if _, err := DecodeVTM(bytes.NewReader(raw)); err != ErrCorruptData {
		t.Fatalf("DecodeVTM error = %v, want ErrCorruptData", err)
	}
}

func assertVTMEqual(t *testing.T, want, got VTM) {
	t.Helper()
	if got.MaxDepth != want.MaxDepth {
		t.Errorf("MaxDepth = %d, want %d", got.MaxDepth, want.MaxDepth)
	}
	if got.ChunkWorldSize != want.ChunkWorldSize {
		t.Errorf("ChunkWorldSize = %g, want %g", got.ChunkWorldSize, want.ChunkWorldSize)
	}
	if got.WorldBounds != want.WorldBounds {
		t.Errorf("WorldBounds = %s, want %s", got.WorldBounds, want.WorldBounds)
	}
	if got.Name != want.Name {
		t.Errorf("Name = %q, want %q", got.Name, want.Name)
	}
	if !bytes.Equal(got.Data, want.Data) {
		t.Errorf("Data mismatch: got %d bytes, want %d bytes", len(got.Data), len(want.Data))
	}
}
