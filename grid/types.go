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

// Package grid holds the source- and target-grid descriptors (spec §3)
// and the affine mapping between source-CRS coordinates and fractional
// source-grid indices (spec §4.B).
package grid

import "gonum.org/v1/gonum/floats"

// Point is a coordinate in a grid's native CRS.
type Point struct {
	X, Y float64
}

// Source describes a rectilinear, monotonically increasing source grid.
// XPoints/YPoints are cell centres; XBounds/YBounds are contiguous cell
// edges, one longer than the matching points slice.
type Source struct {
	XPoints []float64
	YPoints []float64
	XBounds []float64
	YBounds []float64
	CRS     string
}

// Clone returns a deep copy, so later mutation of the caller's slices
// cannot corrupt a regridder that has snapshotted this grid (spec §9).
func (s Source) Clone() Source {
	return Source{
		XPoints: append([]float64(nil), s.XPoints...),
		YPoints: append([]float64(nil), s.YPoints...),
		XBounds: append([]float64(nil), s.XBounds...),
		YBounds: append([]float64(nil), s.YBounds...),
		CRS:     s.CRS,
	}
}

// Equal reports whether s and other describe the same source grid by
// coordinate content, not slice identity (spec §4.F).
func (s Source) Equal(other Source) bool {
	return s.CRS == other.CRS &&
		floats.Equal(s.XPoints, other.XPoints) &&
		floats.Equal(s.YPoints, other.YPoints) &&
		floats.Equal(s.XBounds, other.XBounds) &&
		floats.Equal(s.YBounds, other.YBounds)
}

// Target describes a curvilinear target grid: its vertex bounds, shared
// between adjacent cells, expressed as row-major (gny+1, gnx+1) arrays.
// Cell (yi, xi) is the quadrilateral with vertices at
// (XBounds, YBounds)[yi..yi+1, xi..xi+1] in TL, TR, BL, BR order.
type Target struct {
	XBounds [][]float64
	YBounds [][]float64
	CRS     string
}

// Clone returns a deep copy of t.
func (t Target) Clone() Target {
	return Target{
		XBounds: cloneRows(t.XBounds),
		YBounds: cloneRows(t.YBounds),
		CRS:     t.CRS,
	}
}

// Dims returns the target grid's cell counts (gny, gnx).
func (t Target) Dims() (gny, gnx int) {
	gny = len(t.XBounds) - 1
	if gny < 0 {
		gny = 0
	}
	gnx = 0
	if len(t.XBounds) > 0 {
		gnx = len(t.XBounds[0]) - 1
	}
	return gny, gnx
}

func cloneRows(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = append([]float64(nil), row...)
	}
	return out
}
