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
	"errors"
	"math"
	"testing"

	"github.com/mlnoga/aggregrid/regriderr"
)

func TestDeriveAffineUnitSpacing(t *testing.T) {
	src := Source{
		XPoints: []float64{10.5, 11.5, 12.5, 13.5},
		YPoints: []float64{20.5, 21.5, 22.5},
		XBounds: []float64{10, 11, 12, 13, 14},
		YBounds: []float64{20, 21, 22, 23},
	}
	aff, err := DeriveAffine(src, 2e-3)
	if err != nil {
		t.Fatalf("DeriveAffine: %v", err)
	}
	fx, fy := aff.Apply(11, 21)
	if math.Abs(fx-1) > 1e-9 || math.Abs(fy-1) > 1e-9 {
		t.Errorf("Apply(11,21) = (%v,%v), want (1,1)", fx, fy)
	}
	fx0, fy0 := aff.Apply(10, 20)
	if math.Abs(fx0) > 1e-9 || math.Abs(fy0) > 1e-9 {
		t.Errorf("Apply(10,20) = (%v,%v), want (0,0)", fx0, fy0)
	}
}

func TestDeriveAffineRejectsIrregularSpacing(t *testing.T) {
	src := Source{
		XPoints: []float64{0.5, 1.5, 2.5, 10.0},
		YPoints: []float64{0.5, 1.5, 2.5},
		XBounds: []float64{0, 1, 2, 3, 14.5},
		YBounds: []float64{0, 1, 2, 3},
	}
	_, err := DeriveAffine(src, 2e-3)
	if !errors.Is(err, regriderr.ErrIrregularGrid) {
		t.Errorf("err = %v, want ErrIrregularGrid", err)
	}
}

func TestDeriveAffineToleratesSubThresholdPerturbation(t *testing.T) {
	src := Source{
		XPoints: []float64{0.5, 1.5002, 2.5, 3.5},
		YPoints: []float64{0.5, 1.5, 2.5},
		XBounds: []float64{0, 1, 2, 3, 4},
		YBounds: []float64{0, 1, 2, 3},
	}
	if _, err := DeriveAffine(src, 2e-3); err != nil {
		t.Errorf("a 0.02%% perturbation should stay within a 0.2%% tolerance, got %v", err)
	}
}
