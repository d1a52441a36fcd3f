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

package regrid

import (
	"errors"
	"testing"

	"github.com/mlnoga/aggregrid/aggregate"
	"github.com/mlnoga/aggregrid/grid"
	"github.com/mlnoga/aggregrid/regriderr"
)

func identitySetup() (grid.Source, grid.Target, aggregate.Source) {
	const n = 4
	xPoints, xBounds := make([]float64, n), make([]float64, n+1)
	for i := 0; i < n; i++ {
		xPoints[i] = float64(i) + 0.5
		xBounds[i] = float64(i)
	}
	xBounds[n] = float64(n)
	src := grid.Source{XPoints: xPoints, YPoints: xPoints, XBounds: xBounds, YBounds: xBounds, CRS: "EPSG:4326"}

	gx := make([][]float64, n+1)
	gy := make([][]float64, n+1)
	for r := 0; r <= n; r++ {
		gx[r] = append([]float64(nil), xBounds...)
		gy[r] = make([]float64, n+1)
		for c := range gy[r] {
			gy[r][c] = xBounds[r]
		}
	}
	tgt := grid.Target{XBounds: gx, YBounds: gy, CRS: "EPSG:4326"}

	data := make([]float64, n*n)
	for i := range data {
		data[i] = float64(i)
	}
	carrier := aggregate.Source{Data: data, Shape: []int{n, n}, XDim: 1, YDim: 0, XCoords: xPoints, YCoords: xPoints}
	return src, tgt, carrier
}

func TestNewRegridderRejectsMissingCRS(t *testing.T) {
	src, tgt, _ := identitySetup()
	src.CRS = ""
	if _, err := NewRegridder(src, tgt, IdentityProjector{}, aggregate.Options{}); !errors.Is(err, regriderr.ErrMissingCRS) {
		t.Errorf("err = %v, want ErrMissingCRS", err)
	}

	src2, tgt2, _ := identitySetup()
	tgt2.CRS = ""
	if _, err := NewRegridder(src2, tgt2, IdentityProjector{}, aggregate.Options{}); !errors.Is(err, regriderr.ErrMissingCRS) {
		t.Errorf("err = %v, want ErrMissingCRS", err)
	}
}

func TestRegridderIdentitySameCRSSkipsProjector(t *testing.T) {
	src, tgt, carrier := identitySetup()
	r, err := NewRegridder(src, tgt, panicProjector{}, aggregate.Options{})
	if err != nil {
		t.Fatalf("NewRegridder: %v", err)
	}
	res, err := r.Regrid(carrier)
	if err != nil {
		t.Fatalf("Regrid: %v", err)
	}
	for i, want := range carrier.Data {
		if res.Data[i] != want {
			t.Errorf("cell %d = %v, want %v", i, res.Data[i], want)
		}
	}
}

func TestRegridderRejectsGridMismatch(t *testing.T) {
	src, tgt, carrier := identitySetup()
	r, err := NewRegridder(src, tgt, IdentityProjector{}, aggregate.Options{})
	if err != nil {
		t.Fatalf("NewRegridder: %v", err)
	}
	carrier.XCoords = append([]float64(nil), carrier.XCoords...)
	carrier.XCoords[0] += 100
	if _, err := r.Regrid(carrier); !errors.Is(err, regriderr.ErrGridMismatch) {
		t.Errorf("err = %v, want ErrGridMismatch", err)
	}
}

func TestRegridderCachesWarmupAcrossCalls(t *testing.T) {
	src, tgt, carrier := identitySetup()
	cp := &countingProjector{}
	src.CRS, tgt.CRS = "A", "B" // force the projector path
	r, err := NewRegridder(src, tgt, cp, aggregate.Options{})
	if err != nil {
		t.Fatalf("NewRegridder: %v", err)
	}
	carrier.XCoords, carrier.YCoords = src.XPoints, src.YPoints

	if _, err := r.Regrid(carrier); err != nil {
		t.Fatalf("Regrid (1st): %v", err)
	}
	if _, err := r.Regrid(carrier); err != nil {
		t.Fatalf("Regrid (2nd): %v", err)
	}
	if cp.calls != 1 {
		t.Errorf("projector called %d times, want exactly 1 (cached after warm-up)", cp.calls)
	}
}

type panicProjector struct{}

func (panicProjector) Project(fromCRS, toCRS string, x, y [][]float64) (xp, yp [][]float64, err error) {
	panic("projector must not be called when source and target share a CRS")
}

type countingProjector struct{ calls int }

func (c *countingProjector) Project(fromCRS, toCRS string, x, y [][]float64) (xp, yp [][]float64, err error) {
	c.calls++
	return x, y, nil
}
