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

import (
	"gonum.org/v1/gonum/floats"

	"github.com/mlnoga/aggregrid/grid"
	"github.com/mlnoga/aggregrid/raster"
	"github.com/mlnoga/aggregrid/workerpool"
)

// Aggregate validates data against srcGrid/tgt, normalises data's
// dimension order, rasterises and area-weights every target cell in
// parallel, and un-permutes the result back to data's original
// dimension order (spec §4.C/§4.D/§4.E).
func Aggregate(data Source, srcGrid grid.Source, tgt grid.Target, opts Options) (Result, error) {
	opts = opts.WithDefaults()

	xDim, yDim, err := validate(data, srcGrid, tgt)
	if err != nil {
		return Result{}, err
	}

	aff, err := grid.DeriveAffine(srcGrid, opts.RegularRTol)
	if err != nil {
		return Result{}, err
	}

	perm, inverse := permutation(len(data.Shape), xDim, yDim)
	permData, permMask, permShape := permuteData(data.Data, data.Mask, data.Shape, perm)

	outData, outMask, outShape, err := aggregateCore(permData, permMask, permShape, aff, tgt, opts)
	if err != nil {
		return Result{}, err
	}

	finalData, finalMask, finalShape := permuteData(outData, outMask, outShape, inverse)
	return Result{Data: finalData, Mask: finalMask, Shape: finalShape}, nil
}

// aggregateCore drives spec §4.E over permuted data shaped
// [...leading, sny, snx], producing [...leading, gny, gnx].
func aggregateCore(permData []float64, permMask []bool, permShape []int, aff grid.Affine, tgt grid.Target, opts Options) (outData []float64, outMask []bool, outShape []int, err error) {
	ndim := len(permShape)
	sny, snx := permShape[ndim-2], permShape[ndim-1]
	leading := permShape[:ndim-2]
	batchCount := size(leading)
	gny, gnx := tgt.Dims()

	outShape = append(append([]int{}, leading...), gny, gnx)
	outData = make([]float64, size(outShape))
	outMask = make([]bool, size(outShape))

	inBatchStride := sny * snx
	outBatchStride := gny * gnx
	rasterOpts := opts.rasterOptions()

	cellErr := workerpool.Run(gny*gnx, opts.MaxWorkers, func(cellIdx int) error {
		yi, xi := cellIdx/gnx, cellIdx%gnx

		tl := grid.Point{X: tgt.XBounds[yi][xi], Y: tgt.YBounds[yi][xi]}
		tr := grid.Point{X: tgt.XBounds[yi][xi+1], Y: tgt.YBounds[yi][xi+1]}
		bl := grid.Point{X: tgt.XBounds[yi+1][xi], Y: tgt.YBounds[yi+1][xi]}
		br := grid.Point{X: tgt.XBounds[yi+1][xi+1], Y: tgt.YBounds[yi+1][xi+1]}

		quad, outOfBounds := fractionalQuad(aff, tl, tr, bl, br, snx, sny)
		if outOfBounds {
			for b := 0; b < batchCount; b++ {
				outMask[b*outBatchStride+cellIdx] = true
			}
			return nil
		}

		buf, err := raster.Rasterise(quad, snx, sny, rasterOpts)
		if err != nil {
			return err
		}

		for b := 0; b < batchCount; b++ {
			val, masked := weightedMean(permData, permMask, b*inBatchStride, snx, buf)
			outData[b*outBatchStride+cellIdx] = val
			outMask[b*outBatchStride+cellIdx] = masked
		}
		return nil
	})
	if cellErr != nil {
		return nil, nil, nil, cellErr
	}
	return outData, outMask, outShape, nil
}

// fractionalQuad converts a target cell's four source-CRS vertices to
// fractional source-grid indices and reports whether any vertex falls
// outside [0, snx] x [0, sny] (spec §4.E step 4).
func fractionalQuad(aff grid.Affine, tl, tr, bl, br grid.Point, snx, sny int) (raster.Quad, bool) {
	pts := [4]grid.Point{tl, tr, bl, br}
	var fx, fy [4]float64
	outOfBounds := false
	for i, p := range pts {
		fx[i], fy[i] = aff.Apply(p.X, p.Y)
		if fx[i] < 0 || fx[i] > float64(snx) || fy[i] < 0 || fy[i] > float64(sny) {
			outOfBounds = true
		}
	}
	quad := raster.Quad{
		{X: fx[0], Y: fy[0]}, // TL
		{X: fx[1], Y: fy[1]}, // TR
		{X: fx[3], Y: fy[3]}, // BR
		{X: fx[2], Y: fy[2]}, // BL
	}
	return quad, outOfBounds
}

// weightedMean computes the area-weighted mean of the source-data batch
// starting at flat offset batchOffset over buf's window, treating masked
// entries as zero in the numerator and excluding their weight from the
// denominator (spec §4.E step 8).
func weightedMean(data []float64, mask []bool, batchOffset, snx int, buf *raster.Buffer) (value float64, masked bool) {
	var num, den float64
	weightRow := make([]float64, buf.W)
	for j := 0; j < buf.H; j++ {
		yi := buf.Y0 + j
		rowOffset := batchOffset + yi*snx + buf.X0
		dataRow := data[rowOffset : rowOffset+buf.W]

		for i, w8 := range buf.Weights[j] {
			weightRow[i] = float64(w8) / 255
		}

		var maskRow []bool
		if mask != nil {
			maskRow = mask[rowOffset : rowOffset+buf.W]
		}
		rowMasked := false
		for _, m := range maskRow {
			if m {
				rowMasked = true
				break
			}
		}
		if !rowMasked {
			num += floats.Dot(weightRow, dataRow)
			den += floats.Sum(weightRow)
			continue
		}
		var rowNum, rowDen float64
		for i, w := range weightRow {
			if maskRow[i] || w == 0 {
				continue
			}
			rowNum += w * dataRow[i]
			rowDen += w
		}
		num += rowNum
		den += rowDen
	}
	if den == 0 {
		return 0, true
	}
	return num / den, false
}
