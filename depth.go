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

// TraversalDepth packs a current/max depth pair into one value, current in
// the high byte and max in the low byte, so it can be threaded through a
// descent without two separate arguments.
type TraversalDepth struct {
	packed uint16
}

// NewTraversalDepth builds a TraversalDepth. Panics if current > max or
// max >= MaxAllowedDepth.
func NewTraversalDepth(current, max uint8) TraversalDepth {
	if current > max {
		panic("voxtree: current depth cannot be greater than max depth")
	}
	if max >= MaxAllowedDepth {
		panic("voxtree: max depth exceeds allowed limit")
	}
	return TraversalDepth{packed: uint16(current)<<8 | uint16(max)}
}

func (d TraversalDepth) Current() uint8 { return uint8(d.packed >> 8) }
func (d TraversalDepth) Max() uint8     { return uint8(d.packed & 0xFF) }

// Increment returns the depth advanced one level deeper.
func (d TraversalDepth) Increment() TraversalDepth {
	return NewTraversalDepth(d.Current()+1, d.Max())
}

// Decrement returns the depth stepped one level back up.
func (d TraversalDepth) Decrement() TraversalDepth {
	return NewTraversalDepth(d.Current()-1, d.Max())
}

func (d TraversalDepth) String() string {
	return fmt.Sprintf("%d/%d", d.Current(), d.Max())
}

// MaxDepth is the depth of an octree: the grid is 2^max voxels per axis.
type MaxDepth struct {
	max uint8
}

// NewMaxDepth builds a MaxDepth. Panics if max >= MaxAllowedDepth.
func NewMaxDepth(max uint8) MaxDepth {
	if max >= MaxAllowedDepth {
		panic("voxtree: max depth exceeds allowed limit")
	}
	return MaxDepth{max: max}
}

func (d MaxDepth) Max() uint8      { return d.max }
func (d MaxDepth) AsInt() int      { return int(d.max) }
func (d MaxDepth) String() string  { return fmt.Sprintf("%d", d.max) }

// VoxelsPerAxis returns the grid side length at this depth: 2^max.
func (d MaxDepth) VoxelsPerAxis() int32 { return int32(1) << d.max }
