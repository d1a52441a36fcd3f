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

// Package aggregate validates, permutes and drives the area-weighted
// aggregation of an N-dimensional gridded field over a curvilinear
// target grid (spec §4.C/4.D/4.E).
package aggregate

// Source is the Go stand-in for the numpy masked array the original
// implementation regrids: an N-dimensional numeric array, flattened into
// a single slice in row-major order, with its two spatial dimensions
// identified by (possibly negative) axis indices.
type Source struct {
	Data  []float64
	Mask  []bool // nil means "no mask"; otherwise same length as Data
	Shape []int
	XDim  int
	YDim  int

	// XCoords/YCoords are the carrier's own spatial coordinate centres,
	// used only by the Regridder façade to verify the carrier matches
	// its construction-time source grid (spec §4.F). Leave nil to skip
	// that check when calling aggregate.Aggregate directly.
	XCoords []float64
	YCoords []float64
}

// Result is an N-dimensional masked array whose trailing two shape
// positions, after un-permutation to the caller's original dimension
// order, are (gny, gnx).
type Result struct {
	Data  []float64
	Mask  []bool
	Shape []int
}

