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

// Package raster rasterises a target cell's quadrilateral footprint onto
// the source grid's unit-cell lattice, producing an 8-bit fractional
// coverage buffer (spec §4.A).
package raster

import (
	"fmt"

	"github.com/mlnoga/aggregrid/regriderr"
)

// Buffer holds per-cell coverage weights for the source-grid window
// [X0, X0+W) x [Y0, Y0+H). Weights[j][i] is the fraction (0..255) of
// source cell (Y0+j, X0+i) covered by the rasterised polygon. Ownership is
// transient: a Buffer is created and discarded per target cell.
type Buffer struct {
	X0, Y0  int
	W, H    int
	Weights [][]uint8
}

// NewBuffer allocates a zeroed coverage buffer covering w x h source cells
// starting at (x0, y0) in source-index space.
func NewBuffer(x0, y0, w, h int) (*Buffer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("buffer dimensions must be positive, got w=%d h=%d: %w",
			w, h, regriderr.ErrBufferContract)
	}
	rows := make([][]uint8, h)
	for j := range rows {
		rows[j] = make([]uint8, w)
	}
	return &Buffer{X0: x0, Y0: y0, W: w, H: h, Weights: rows}, nil
}

// At returns the coverage weight at source index (xi, yi), or 0 if it
// falls outside the buffer's window.
func (b *Buffer) At(xi, yi int) uint8 {
	j, i := yi-b.Y0, xi-b.X0
	if j < 0 || j >= b.H || i < 0 || i >= b.W {
		return 0
	}
	return b.Weights[j][i]
}
