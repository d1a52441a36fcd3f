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

package aggregate

// permutation computes the forward permutation that places every
// non-spatial axis first (in original order), then yDim, then xDim —
// and the inverse permutation that maps back. perm[k] is the original
// axis placed at new position k; inverse[oldAxis] is the new position
// that axis ends up at. Because permuteData interprets its permutation
// argument as "new axis k draws from old axis p[k]", inverse can be fed
// straight back into permuteData to undo a prior forward permutation.
func permutation(ndim, xDim, yDim int) (perm, inverse []int) {
	perm = make([]int, 0, ndim)
	for d := 0; d < ndim; d++ {
		if d != xDim && d != yDim {
			perm = append(perm, d)
		}
	}
	perm = append(perm, yDim, xDim)

	inverse = make([]int, ndim)
	for newPos, oldAxis := range perm {
		inverse[oldAxis] = newPos
	}
	return perm, inverse
}

// strides computes row-major strides for shape.
func strides(shape []int) []int {
	s := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		s[i] = acc
		acc *= shape[i]
	}
	return s
}

func size(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

// permuteData reorders data (and mask, if non-nil) from shape according
// to p: the output's axis k draws its extent and values from input axis
// p[k]. Both forward normalisation and the final un-permute call this
// with different permutations of the same shape.
func permuteData(data []float64, mask []bool, shape, p []int) (outData []float64, outMask []bool, outShape []int) {
	ndim := len(shape)
	outShape = make([]int, ndim)
	for k, axis := range p {
		outShape[k] = shape[axis]
	}

	inStrides := strides(shape)
	outStrides := strides(outShape)
	n := size(shape)
	outData = make([]float64, n)
	if mask != nil {
		outMask = make([]bool, n)
	}

	outIdx := make([]int, ndim)
	inIdx := make([]int, ndim)
	for outFlat := 0; outFlat < n; outFlat++ {
		rem := outFlat
		for k := 0; k < ndim; k++ {
			outIdx[k] = rem / outStrides[k]
			rem %= outStrides[k]
		}
		for k, axis := range p {
			inIdx[axis] = outIdx[k]
		}
		inFlat := 0
		for k := 0; k < ndim; k++ {
			inFlat += inIdx[k] * inStrides[k]
		}
		outData[outFlat] = data[inFlat]
		if mask != nil {
			outMask[outFlat] = mask[inFlat]
		}
	}
	return outData, outMask, outShape
}
