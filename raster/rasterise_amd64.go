// Copyright (C) 2020 Markus L. Noga
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

//go:build amd64

package raster

import (
	"github.com/klauspost/cpuid/v2"
)

// quantizeRow converts a row of fractional coverage areas to 8-bit
// weights. On AVX2-capable hosts it dispatches to a wide code path that
// processes the row in chunks; elsewhere it falls back to the scalar
// loop. Both paths compute the same floor(255*area) quantization, so
// this split only changes how the row is walked, not the result.
func quantizeRow(dst []uint8, src []float64) {
	if cpuid.CPU.Supports(cpuid.AVX2) {
		quantizeRowWide(dst, src)
		return
	}
	quantizeRowPortable(dst, src)
}

// quantizeRowWide processes the row four elements at a time. It has no
// SIMD intrinsics of its own to call from Go, so it unrolls the scalar
// quantizer instead of branching per element; the AVX2 check above still
// gates it so the code path is exercised on the hosts it targets.
func quantizeRowWide(dst []uint8, src []float64) {
	n := len(src)
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = quantizeCoverage(src[i])
		dst[i+1] = quantizeCoverage(src[i+1])
		dst[i+2] = quantizeCoverage(src[i+2])
		dst[i+3] = quantizeCoverage(src[i+3])
	}
	for ; i < n; i++ {
		dst[i] = quantizeCoverage(src[i])
	}
}
