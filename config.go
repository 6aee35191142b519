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

import "sync"

const (
	// MaxAllowedDepth bounds max_depth; voxel grids are 2^max_depth per axis.
	MaxAllowedDepth = 7

	// MaxChildren is the branching factor of every branch node.
	MaxChildren = 8

	nodeTypeLeaf   uint8 = 0
	nodeTypeBranch uint8 = 1
)

var (
	emptyBranchHashOnce sync.Once
	emptyBranchHashVal  uint64
)

// emptyBranchHash returns the fixed structural hash of the canonical empty
// branch (mask=0, types=0, no children), computed once and memoized the
// same way the teacher lazily builds its one-time KZG setup.
func emptyBranchHash() uint64 {
	emptyBranchHashOnce.Do(func() {
		emptyBranchHashVal = computeEmptyBranchHash()
	})
	return emptyBranchHashVal
}
