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
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// VTM is the on-disk container format wrapping a serialized DAG: a small
// fixed header describing the volume it holds, followed by an
// MD5-checked, optionally zstd-compressed payload produced by Serialize.
//
//	12 bytes  magic "VoxTreeModel"
//	u16       version
//	u16       flags
//	u8        max depth
//	f32       chunk world size (big-endian)
//	u32       reserved (0)
//	u32       reserved (0)
//	3x i32    world bounds (big-endian)
//	u8+bytes  name length, then name (UTF-8, no terminator)
//	16 bytes  MD5 of the uncompressed payload
//	u32       payload length (as stored, i.e. post-compression)
//	...       payload
type VTM struct {
	MaxDepth       uint8
	ChunkWorldSize float32
	WorldBounds    Vec3i
	Name           string
	Data           []byte
}

const (
	vtmVersion uint16 = 0x0100

	vtmFlagNone       uint16 = 0
	vtmFlagCompressed uint16 = 0b1
	vtmFlagDefault           = vtmFlagCompressed
)

var vtmMagic = [12]byte{'V', 'o', 'x', 'T', 'r', 'e', 'e', 'M', 'o', 'd', 'e', 'l'}

// EncodeVTM writes model as a VTM container, compressing the payload with
// zstd unless compressed is false. The MD5 digest is computed on the
// uncompressed payload so verification on read doesn't depend on matching
// compression settings.
func EncodeVTM(w io.Writer, model VTM, compressed bool) error {
	if len(model.Name) > 0xFF {
		return fmt.Errorf("voxtree: container name too long (%d bytes)", len(model.Name))
	}

	digest := md5.Sum(model.Data)

	payload := model.Data
	flags := vtmFlagNone
	if compressed {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
		if err != nil {
			return err
		}
		payload = enc.EncodeAll(model.Data, nil)
		if err := enc.Close(); err != nil {
			return err
		}
		flags = vtmFlagCompressed
	}

	var header bytes.Buffer
	header.Write(vtmMagic[:])
	writeBE(&header, vtmVersion)
	writeBE(&header, flags)
	header.WriteByte(model.MaxDepth)
	writeBE(&header, model.ChunkWorldSize)
	writeBE(&header, uint32(0))
	writeBE(&header, uint32(0))
	writeBE(&header, model.WorldBounds.X)
	writeBE(&header, model.WorldBounds.Y)
	writeBE(&header, model.WorldBounds.Z)
	header.WriteByte(byte(len(model.Name)))
	header.WriteString(model.Name)
	header.Write(digest[:])
	writeBE(&header, uint32(len(payload)))

	if _, err := w.Write(header.Bytes()); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}

// DecodeVTM reads a VTM container written by EncodeVTM, rejecting any
// version other than vtmVersion, decompressing the payload if the
// compressed flag is set and verifying it against the stored MD5 digest.
func DecodeVTM(r io.Reader) (VTM, error) {
	var model VTM

	var magic [12]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return model, err
	}
	if magic != vtmMagic {
		return model, ErrCorruptData
	}

	var version, flags uint16
	if err := readBE(r, &version); err != nil {
		return model, err
	}
	if err := readBE(r, &flags); err != nil {
		return model, err
	}
	if version != vtmVersion {
		return model, ErrCorruptData
	}

	var maxDepth [1]byte
	if _, err := io.ReadFull(r, maxDepth[:]); err != nil {
		return model, err
	}
	model.MaxDepth = maxDepth[0]

	if err := readBE(r, &model.ChunkWorldSize); err != nil {
		return model, err
	}

	var reserved1, reserved2 uint32
	if err := readBE(r, &reserved1); err != nil {
		return model, err
	}
	if err := readBE(r, &reserved2); err != nil {
		return model, err
	}

	if err := readBE(r, &model.WorldBounds.X); err != nil {
		return model, err
	}
	if err := readBE(r, &model.WorldBounds.Y); err != nil {
		return model, err
	}
	if err := readBE(r, &model.WorldBounds.Z); err != nil {
		return model, err
	}

	var nameLen [1]byte
	if _, err := io.ReadFull(r, nameLen[:]); err != nil {
		return model, err
	}
	if nameLen[0] > 0 {
		name := make([]byte, nameLen[0])
		if _, err := io.ReadFull(r, name); err != nil {
			return model, err
		}
		model.Name = string(name)
	}

	var wantDigest [16]byte
	if _, err := io.ReadFull(r, wantDigest[:]); err != nil {
		return model, err
	}

	var dataLen uint32
	if err := readBE(r, &dataLen); err != nil {
		return model, err
	}

	payload := make([]byte, dataLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return model, err
	}

	if flags&vtmFlagCompressed != 0 {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return model, err
		}
		defer dec.Close()
		payload, err = dec.DecodeAll(payload, nil)
		if err != nil {
			return model, err
		}
	}

	gotDigest := md5.Sum(payload)
	if gotDigest != wantDigest {
		return model, ErrCorruptData
	}

	model.Data = payload
	return model, nil
}

func writeBE(buf *bytes.Buffer, v any) {
	if err := binary.Write(buf, binary.BigEndian, v); err != nil {
		panic(err)
	}
}

func readBE(r io.Reader, v any) error {
	return binary.Read(r, binary.BigEndian, v)
}
