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

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/mlnoga/aggregrid/regriderr"
)

// DefaultRegularRTol is the regularity tolerance spec §4.B documents as an
// implicit constant. This module exposes it via aggregate.Options instead
// of hard-coding it, but the default value is unchanged.
const DefaultRegularRTol = 2e-3

// regularOriginStep verifies that points is regular to within rtol of its
// own mean spacing (spec §4.B) and returns (bounds.min(), mean spacing).
func regularOriginStep(points, bounds []float64, axis string, rtol float64) (origin, step float64, err error) {
	if len(points) < 2 {
		return 0, 0, fmt.Errorf("expected src %s-coordinate points to be regular, got only %d point(s): %w",
			axis, len(points), regriderr.ErrIrregularGrid)
	}

	delta := make([]float64, len(points)-1)
	floats.SubTo(delta, points[1:], points[:len(points)-1])
	mean := stat.Mean(delta, nil)
	tol := math.Abs(mean) * rtol

	for i, d := range delta {
		if math.Abs(d-mean) > tol {
			return 0, 0, fmt.Errorf(
				"expected src %s-coordinate points to be regular: spacing %g at index %d departs from mean %g by more than tolerance %g: %w",
				axis, d, i, mean, tol, regriderr.ErrIrregularGrid)
		}
	}

	return floats.Min(bounds), mean, nil
}
