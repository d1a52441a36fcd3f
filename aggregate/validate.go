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
	"fmt"

	"github.com/mlnoga/aggregrid/grid"
	"github.com/mlnoga/aggregrid/regriderr"
)

// normaliseDim applies numpy's negative-axis convention (a single
// ndim offset for a negative dim, not a full modulus) and range-checks
// the result, so an out-of-range dim — positive or negative — is
// reported rather than silently wrapped.
func normaliseDim(dim, ndim int) (int, error) {
	if ndim <= 0 {
		return 0, fmt.Errorf("data must have at least 1 dimension, got %d: %w", ndim, regriderr.ErrDimensionality)
	}
	d := dim
	if d < 0 {
		d += ndim
	}
	if d < 0 || d >= ndim {
		return 0, fmt.Errorf("dimension %d out of range for %d-dimensional data: %w", dim, ndim, regriderr.ErrDimensionality)
	}
	return d, nil
}

// validate runs every spec §4.C check before any work is done, and
// returns the normalised (xDim, yDim) pair on success.
func validate(src Source, srcGrid grid.Source, tgt grid.Target) (xDim, yDim int, err error) {
	if len(src.Shape) < 2 {
		return 0, 0, fmt.Errorf("data must have rank >= 2, got rank %d: %w", len(src.Shape), regriderr.ErrDimensionality)
	}

	if len(srcGrid.XBounds) != len(srcGrid.XPoints)+1 {
		return 0, 0, fmt.Errorf("sx_bounds size %d != sx_points size %d + 1: %w",
			len(srcGrid.XBounds), len(srcGrid.XPoints), regriderr.ErrShapeMismatch)
	}
	if len(srcGrid.YBounds) != len(srcGrid.YPoints)+1 {
		return 0, 0, fmt.Errorf("sy_bounds size %d != sy_points size %d + 1: %w",
			len(srcGrid.YBounds), len(srcGrid.YPoints), regriderr.ErrShapeMismatch)
	}

	ndim := len(src.Shape)
	xDim, err = normaliseDim(src.XDim, ndim)
	if err != nil {
		return 0, 0, err
	}
	yDim, err = normaliseDim(src.YDim, ndim)
	if err != nil {
		return 0, 0, err
	}
	if xDim == yDim {
		return 0, 0, fmt.Errorf("sx_dim and sy_dim both normalise to %d: %w", xDim, regriderr.ErrDimensionality)
	}

	if src.Shape[xDim] != len(srcGrid.XPoints) {
		return 0, 0, fmt.Errorf("data.shape[%d] = %d != sx_points size %d: %w",
			xDim, src.Shape[xDim], len(srcGrid.XPoints), regriderr.ErrShapeMismatch)
	}
	if src.Shape[yDim] != len(srcGrid.YPoints) {
		return 0, 0, fmt.Errorf("data.shape[%d] = %d != sy_points size %d: %w",
			yDim, src.Shape[yDim], len(srcGrid.YPoints), regriderr.ErrShapeMismatch)
	}

	gny, gnx := tgt.Dims()
	if len(tgt.XBounds) != gny+1 || (gny+1 > 0 && len(tgt.XBounds[0]) != gnx+1) {
		return 0, 0, fmt.Errorf("gx_bounds shape is not (%d, %d): %w", gny+1, gnx+1, regriderr.ErrDimensionality)
	}
	if len(tgt.YBounds) != len(tgt.XBounds) {
		return 0, 0, fmt.Errorf("gy_bounds and gx_bounds have differing shapes (%d rows vs %d): %w",
			len(tgt.YBounds), len(tgt.XBounds), regriderr.ErrShapeMismatch)
	}
	for r := range tgt.XBounds {
		if len(tgt.YBounds[r]) != len(tgt.XBounds[r]) {
			return 0, 0, fmt.Errorf("gy_bounds and gx_bounds row %d differ in length (%d vs %d): %w",
				r, len(tgt.YBounds[r]), len(tgt.XBounds[r]), regriderr.ErrShapeMismatch)
		}
	}

	return xDim, yDim, nil
}
