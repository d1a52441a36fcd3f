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

package grid

import "golang.org/x/image/math/f64"

// Affine maps a source-CRS (x, y) coordinate to a fractional source-grid
// index (fx, fy). Off-diagonal terms are always zero, because the source
// grid is axis-aligned, but the forward matrix is stored as an f64.Aff3 —
// the same affine representation golang.org/x/image/draw uses for
// per-pixel source lookups — so all four vertices of a target cell
// transform through one Apply call each, instead of two independent
// per-axis formulas.
type Affine struct {
	fwd            f64.Aff3
	X0, DX, Y0, DY float64
}

func newAffine(x0, dx, y0, dy float64) Affine {
	return Affine{
		fwd: f64.Aff3{
			1 / dx, 0, -x0 / dx,
			0, 1 / dy, -y0 / dy,
		},
		X0: x0, DX: dx, Y0: y0, DY: dy,
	}
}

// Apply converts a source-CRS coordinate to a fractional source-grid
// index.
func (a Affine) Apply(x, y float64) (fx, fy float64) {
	fx = a.fwd[0]*x + a.fwd[1]*y + a.fwd[2]
	fy = a.fwd[3]*x + a.fwd[4]*y + a.fwd[5]
	return fx, fy
}

// DeriveAffine runs the regularity check (spec §4.B) on both source axes
// and returns the combined affine mapping from source-CRS coordinates to
// fractional source-grid indices.
func DeriveAffine(src Source, rtol float64) (Affine, error) {
	x0, dx, err := regularOriginStep(src.XPoints, src.XBounds, "x", rtol)
	if err != nil {
		return Affine{}, err
	}
	y0, dy, err := regularOriginStep(src.YPoints, src.YBounds, "y", rtol)
	if err != nil {
		return Affine{}, err
	}
	return newAffine(x0, dx, y0, dy), nil
}
