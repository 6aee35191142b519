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

import "fmt"

// BlockId identifies a node in a node store: a leaf holding voxel data or a
// branch holding up to eight children. The 64 bits are packed as:
//
//	 63     62-55  54-47     46-32      31-0
//	+------+------+------+-----------+-------+
//	| leaf | types| mask | generation| index |
//	+------+------+------+-----------+-------+
//	  1 bit  8 bits 8 bits   15 bits  32 bits
//
// types and mask are defined only for branches: mask marks which of the
// eight child slots are occupied, types marks which occupied slots hold a
// leaf (1) versus a branch (0).
type BlockId struct {
	raw uint64
}

const (
	blockIDGenerationMask uint64 = 0x7FFF
	blockIDIndexMask      uint64 = 0xFFFF_FFFF

	// MaxIndex is the largest index a BlockId can address.
	MaxIndex uint32 = 0xFFFF_FFFF

	// MaxGeneration is the largest generation a BlockId can carry; the
	// all-ones value 0x7FFF of the 15-bit field is reserved so generations
	// never collide with the all-ones INVALID sentinel.
	MaxGeneration uint16 = 0x7FFE
)

// InvalidBlockId is every bit set: never produced by NewLeaf/NewBranch.
var InvalidBlockId = BlockId{raw: ^uint64(0)}

// EmptyBlockId is every bit clear: the canonical empty branch, with no
// children and no occupied slots.
var EmptyBlockId = BlockId{raw: 0}

// BlockIdFromRaw reconstructs a BlockId from its packed 64-bit form, as
// read back from a serialized node store.
func BlockIdFromRaw(raw uint64) BlockId {
	return BlockId{raw: raw}
}

// NewLeafBlockId builds the id of a leaf at the given pool index and
// generation.
func NewLeafBlockId(index uint32, generation uint16) BlockId {
	return newBlockId(index, generation, 0, 0, true)
}

// NewBranchBlockId builds the id of a branch at the given pool index and
// generation, with the supplied child-type and child-presence masks.
func NewBranchBlockId(index uint32, generation uint16, types, mask uint8) BlockId {
	return newBlockId(index, generation, types, mask, false)
}

func newBlockId(index uint32, generation uint16, types, mask uint8, isLeaf bool) BlockId {
	if generation > MaxGeneration {
		panic("voxtree: generation exceeds MaxGeneration")
	}

	var leafBit uint64
	if isLeaf {
		leafBit = 1
	}

	return BlockId{raw: (leafBit << 63) |
		(uint64(types) << 55) |
		(uint64(mask) << 47) |
		((uint64(generation) & blockIDGenerationMask) << 32) |
		(uint64(index) & blockIDIndexMask),
	}
}

// Raw returns the packed 64-bit representation, as stored in a serialized
// container or used as a map key.
func (b BlockId) Raw() uint64 { return b.raw }

// Index is the node's slot in its pool.
func (b BlockId) Index() uint32 {
	return uint32(b.raw & blockIDIndexMask)
}

// Generation is the node's pool-slot generation, incremented on reuse.
func (b BlockId) Generation() uint16 {
	return uint16((b.raw >> 32) & blockIDGenerationMask)
}

// Types returns the child-type mask. Valid only on a branch.
func (b BlockId) Types() uint8 {
	if !b.IsBranch() {
		panic("voxtree: Types called on a leaf BlockId")
	}
	return uint8((b.raw >> 55) & 0xFF)
}

// Mask returns the child-presence mask. Valid only on a branch.
func (b BlockId) Mask() uint8 {
	if !b.IsBranch() {
		panic("voxtree: Mask called on a leaf BlockId")
	}
	return uint8((b.raw >> 47) & 0xFF)
}

// HasChild reports whether childIndex (0-7) is occupied. Valid only on a
// branch.
func (b BlockId) HasChild(childIndex uint8) bool {
	if !b.IsBranch() {
		panic("voxtree: HasChild called on a leaf BlockId")
	}
	if childIndex >= MaxChildren {
		panic("voxtree: child index out of range")
	}
	return b.Mask()&(1<<childIndex) != 0
}

// IsLeaf reports whether b addresses a leaf node.
func (b BlockId) IsLeaf() bool { return b.raw>>63 == 1 }

// IsBranch reports whether b addresses a branch node.
func (b BlockId) IsBranch() bool { return b.raw>>63 == 0 }

// IsInvalid reports whether b is the INVALID sentinel.
func (b BlockId) IsInvalid() bool { return b == InvalidBlockId }

// IsValid is the negation of IsInvalid.
func (b BlockId) IsValid() bool { return b != InvalidBlockId }

// IsEmpty reports whether b is the canonical empty branch.
func (b BlockId) IsEmpty() bool { return b == EmptyBlockId }

func (b BlockId) String() string {
	switch {
	case b.IsInvalid():
		return "Id(INVALID)"
	case b.IsEmpty():
		return "Id(EMPTY)"
	case b.IsLeaf():
		return fmt.Sprintf("Id(L, i: %08X, g: %04X)", b.Index(), b.Generation())
	default:
		return fmt.Sprintf("Id(B, i: %08X, g: %04X, m: %02X, t: %02X)",
			b.Index(), b.Generation(), b.Mask(), b.Types())
	}
}
