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

package raster

import (
	"math"
	"testing"

	"github.com/valyala/fastrand"
)

// S1: a target cell exactly coincident with one source cell must be
// fully covered.
func TestRasteriseFullCoverage(t *testing.T) {
	quad := Quad{{X: 2, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 4}, {X: 2, Y: 4}}
	buf, err := Rasterise(quad, 10, 10, DefaultOptions())
	if err != nil {
		t.Fatalf("Rasterise: %v", err)
	}
	if got := buf.At(2, 3); got != 255 {
		t.Errorf("At(2,3) = %d, want 255", got)
	}
}

// S2: a target cell inset by half a source cell on every side overlaps
// four source cells, each at a quarter-area corner. floor(255*0.25) = 63,
// not round(63.75) = 64.
func TestRasteriseQuarterCellCorners(t *testing.T) {
	quad := Quad{{X: 2.5, Y: 3.5}, {X: 3.5, Y: 3.5}, {X: 3.5, Y: 4.5}, {X: 2.5, Y: 4.5}}
	buf, err := Rasterise(quad, 10, 10, DefaultOptions())
	if err != nil {
		t.Fatalf("Rasterise: %v", err)
	}
	for _, xi := range []int{2, 3} {
		for _, yi := range []int{3, 4} {
			if got := buf.At(xi, yi); got != 63 {
				t.Errorf("At(%d,%d) = %d, want 63", xi, yi, got)
			}
		}
	}
}

// A target cell rotated 45 degrees and inscribed in a 2x2 source block
// covers its four corner cells symmetrically; the total coverage area
// must equal the quad's true geometric area (half of the 2x2 block).
func TestRasteriseRotatedQuad(t *testing.T) {
	quad := Quad{{X: 3, Y: 2}, {X: 4, Y: 3}, {X: 3, Y: 4}, {X: 2, Y: 3}}
	buf, err := Rasterise(quad, 10, 10, DefaultOptions())
	if err != nil {
		t.Fatalf("Rasterise: %v", err)
	}
	total := 0.0
	for j := 0; j < buf.H; j++ {
		for i := 0; i < buf.W; i++ {
			total += float64(buf.Weights[j][i]) / 255
		}
	}
	const want = 2.0 // |quad| = 2 unit cells' worth of area
	if math.Abs(total-want) > 0.02 {
		t.Errorf("total coverage = %v, want ~%v", total, want)
	}
}

// S3: the literal rotated-quad scenario, vertices and per-cell coverage
// as in test_rotated of the original implementation's test suite. Target
// corners (TL, TR, BL, BR) are (1.5,3.5), (4.5,0.5), (3.5,5.5), (6.5,2.5)
// over an 8x6 source grid.
func TestRasteriseLiteralRotatedQuad(t *testing.T) {
	quad := Quad{
		{X: 1.5, Y: 3.5}, // TL
		{X: 4.5, Y: 0.5}, // TR
		{X: 6.5, Y: 2.5}, // BR
		{X: 3.5, Y: 5.5}, // BL
	}
	buf, err := Rasterise(quad, 8, 6, DefaultOptions())
	if err != nil {
		t.Fatalf("Rasterise: %v", err)
	}

	const full, half, quarter = 255, 127, 63
	type cell struct{ x, y int }
	want := map[cell]uint8{
		// corners
		{1, 3}: quarter, {4, 0}: quarter,
		{3, 5}: quarter, {6, 2}: quarter,
		// edges
		{2, 2}: half, {3, 1}: half,
		{2, 4}: half,
		{5, 1}: half,
		{4, 4}: half, {5, 3}: half,
		// interior
		{4, 1}: full,
		{3, 2}: full, {4, 2}: full, {5, 2}: full,
		{2, 3}: full, {3, 3}: full, {4, 3}: full,
		{3, 4}: full,
	}

	for yi := 0; yi < 6; yi++ {
		for xi := 0; xi < 8; xi++ {
			got := buf.At(xi, yi)
			if got != want[cell{xi, yi}] {
				t.Errorf("At(%d,%d) = %d, want %d", xi, yi, got, want[cell{xi, yi}])
			}
		}
	}
}

// Invariant 1: for a random convex quadrilateral fully inside the source
// grid, total rasterised coverage area approximates the quad's true
// geometric (shoelace) area, regardless of where its diagonal falls.
func TestRasteriseCoverageConservation(t *testing.T) {
	var rng fastrand.RNG
	for trial := 0; trial < 50; trial++ {
		cx := 2 + float64(rng.Uint32n(600))/100
		cy := 2 + float64(rng.Uint32n(600))/100
		quad := randomConvexQuad(&rng, cx, cy)

		buf, err := Rasterise(quad, 20, 20, DefaultOptions())
		if err != nil {
			t.Fatalf("trial %d: Rasterise: %v", trial, err)
		}
		total := 0.0
		for j := 0; j < buf.H; j++ {
			for i := 0; i < buf.W; i++ {
				total += float64(buf.Weights[j][i]) / 255
			}
		}
		want := polygonArea(quad[:])
		// floor quantization biases coverage low by up to 1/255 per
		// touched cell; allow a generous tolerance for that plus the
		// bounded number of cells a small quad can touch.
		if math.Abs(total-want) > 0.15 {
			t.Errorf("trial %d: total coverage = %v, want ~%v (quad %v)", trial, total, want, quad)
		}
	}
}

func randomConvexQuad(rng *fastrand.RNG, cx, cy float64) Quad {
	r := 0.3 + float64(rng.Uint32n(70))/100
	var q Quad
	base := float64(rng.Uint32n(90))
	for k := 0; k < 4; k++ {
		angle := (base + float64(k)*90) * math.Pi / 180
		q[k] = Point{X: cx + r*math.Cos(angle), Y: cy + r*math.Sin(angle)}
	}
	return q
}

func TestQuantizeCoverageBounds(t *testing.T) {
	cases := []struct {
		area float64
		want uint8
	}{
		{0, 0},
		{-0.1, 0},
		{0.25, 63},
		{0.5, 127},
		{1, 255},
		{1.5, 255},
	}
	for _, c := range cases {
		if got := quantizeCoverage(c.area); got != c.want {
			t.Errorf("quantizeCoverage(%v) = %d, want %d", c.area, got, c.want)
		}
	}
}
