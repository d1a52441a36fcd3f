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
	"fmt"
	"math"

	"github.com/mlnoga/aggregrid/regriderr"
)

// Point is a fractional source-grid index coordinate.
type Point struct {
	X, Y float64
}

// Quad is a target cell's four vertices in fractional source-grid index
// space, ordered TL, TR, BR, BL — walking the quadrilateral's perimeter,
// not the row-major (TL, TR, BL, BR) order the bounds arrays are stored
// in — so it clips as a simple polygon.
type Quad [4]Point

// Options configures Rasterise. BufferDepth is the reserved
// super-sampling parameter: this rasteriser computes exact polygon-cell
// overlap areas rather than sampling at a finite depth, so every
// BufferDepth > 0 produces the same result, matching the documented
// "must not alter results at depth 4" contract. BufferDepth == 0 is
// rejected as a contract violation, since it would signal "rasterise
// nothing."
type Options struct {
	BufferDepth int
}

// DefaultOptions returns the rasteriser's default configuration.
func DefaultOptions() Options {
	return Options{BufferDepth: 4}
}

// Rasterise computes the fractional coverage of quad over the source
// grid's unit cells and returns an 8-bit coverage buffer windowed to
// quad's bounding box, clamped to [0, srcW) x [0, srcH).
func Rasterise(quad Quad, srcW, srcH int, opts Options) (*Buffer, error) {
	if opts.BufferDepth <= 0 {
		return nil, fmt.Errorf("buffer depth must be positive, got %d: %w",
			opts.BufferDepth, regriderr.ErrBufferContract)
	}

	minX, minY, maxX, maxY := quad[0].X, quad[0].Y, quad[0].X, quad[0].Y
	for _, p := range quad[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	x0 := clampInt(int(math.Floor(minX)), 0, srcW)
	y0 := clampInt(int(math.Floor(minY)), 0, srcH)
	x1 := clampInt(int(math.Ceil(maxX)), 0, srcW)
	y1 := clampInt(int(math.Ceil(maxY)), 0, srcH)
	w, h := x1-x0, y1-y0
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("target cell quad %v does not overlap source grid %dx%d: %w",
			quad, srcW, srcH, regriderr.ErrBufferContract)
	}

	buf, err := NewBuffer(x0, y0, w, h)
	if err != nil {
		return nil, err
	}

	area := make([][]float64, h)
	for j := range area {
		area[j] = make([]float64, w)
	}

	// The diagonal TL-BR exactly partitions the quad into two triangles;
	// summing each triangle's per-cell overlap reconstructs the quad's
	// true per-cell coverage, including cells the diagonal itself crosses.
	accumulateTriangle(area, x0, y0, w, h, quad[0], quad[1], quad[2])
	accumulateTriangle(area, x0, y0, w, h, quad[0], quad[2], quad[3])

	for j := 0; j < h; j++ {
		quantizeRow(buf.Weights[j], area[j])
	}
	return buf, nil
}

// quantizeRowPortable is the architecture-independent scalar quantizer
// shared by both the amd64 and noarch row dispatchers.
func quantizeRowPortable(dst []uint8, src []float64) {
	for i, a := range src {
		dst[i] = quantizeCoverage(a)
	}
}

// quantizeCoverage converts a fractional cell-overlap area in [0, 1] to
// an 8-bit weight via floor(255*area), clamped to [0, 255]. Floor, not
// round-to-nearest, matches the documented concrete scenario where a
// quarter-cell corner overlap (area 0.25) must quantize to 63, not 64.
func quantizeCoverage(a float64) uint8 {
	if a <= 0 {
		return 0
	}
	if a >= 1 {
		return 255
	}
	v := math.Floor(255 * a)
	return uint8(v)
}

func accumulateTriangle(area [][]float64, x0, y0, w, h int, a, b, c Point) {
	minX := math.Min(a.X, math.Min(b.X, c.X))
	maxX := math.Max(a.X, math.Max(b.X, c.X))
	minY := math.Min(a.Y, math.Min(b.Y, c.Y))
	maxY := math.Max(a.Y, math.Max(b.Y, c.Y))

	iLo := clampInt(int(math.Floor(minX)), x0, x0+w)
	iHi := clampInt(int(math.Ceil(maxX)), x0, x0+w)
	jLo := clampInt(int(math.Floor(minY)), y0, y0+h)
	jHi := clampInt(int(math.Ceil(maxY)), y0, y0+h)

	tri := []Point{a, b, c}
	for yi := jLo; yi < jHi; yi++ {
		for xi := iLo; xi < iHi; xi++ {
			clipped := clipToCell(tri, float64(xi), float64(yi))
			if len(clipped) < 3 {
				continue
			}
			area[yi-y0][xi-x0] += polygonArea(clipped)
		}
	}
}

// clipToCell clips polygon against the unit cell [cx, cx+1] x [cy, cy+1]
// using Sutherland-Hodgman, one half-plane at a time.
func clipToCell(polygon []Point, cx, cy float64) []Point {
	polygon = clipHalfPlane(polygon, func(p Point) float64 { return p.X - cx })
	polygon = clipHalfPlane(polygon, func(p Point) float64 { return (cx + 1) - p.X })
	polygon = clipHalfPlane(polygon, func(p Point) float64 { return p.Y - cy })
	polygon = clipHalfPlane(polygon, func(p Point) float64 { return (cy + 1) - p.Y })
	return polygon
}

// clipHalfPlane keeps the part of polygon where inside(p) >= 0.
func clipHalfPlane(polygon []Point, inside func(Point) float64) []Point {
	if len(polygon) == 0 {
		return nil
	}
	out := make([]Point, 0, len(polygon)+1)
	prev := polygon[len(polygon)-1]
	prevIn := inside(prev) >= 0
	for _, cur := range polygon {
		curIn := inside(cur) >= 0
		if curIn {
			if !prevIn {
				out = append(out, intersect(prev, cur, inside))
			}
			out = append(out, cur)
		} else if prevIn {
			out = append(out, intersect(prev, cur, inside))
		}
		prev, prevIn = cur, curIn
	}
	return out
}

func intersect(a, b Point, inside func(Point) float64) Point {
	da, db := inside(a), inside(b)
	t := da / (da - db)
	return Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
}

// polygonArea computes the unsigned area of a simple polygon via the
// shoelace formula.
func polygonArea(p []Point) float64 {
	if len(p) < 3 {
		return 0
	}
	sum := 0.0
	for i := range p {
		j := (i + 1) % len(p)
		sum += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return math.Abs(sum) / 2
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
