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

// Package regrid is the façade (spec §4.F): it snapshots source and
// target grids, caches the projected target vertices between successive
// calls, and drives aggregate.Aggregate. The source affine is not cached:
// aggregate.Aggregate derives it again on every call.
package regrid

// Projector projects the target grid's vertex arrays from their native
// CRS into the source grid's CRS. The façade never imports a CRS or
// projection library itself (spec §9) — it only calls this injected
// collaborator.
type Projector interface {
	Project(fromCRS, toCRS string, x, y [][]float64) (xp, yp [][]float64, err error)
}

// IdentityProjector returns its input unchanged. It is valid only when
// fromCRS == toCRS; Regridder already short-circuits that case so this
// implementation is mostly useful for tests that never exercise cross-CRS
// projection.
type IdentityProjector struct{}

func (IdentityProjector) Project(fromCRS, toCRS string, x, y [][]float64) (xp, yp [][]float64, err error) {
	return x, y, nil
}
