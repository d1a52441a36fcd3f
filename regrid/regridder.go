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
	"fmt"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/mlnoga/aggregrid/aggregate"
	"github.com/mlnoga/aggregrid/grid"
	"github.com/mlnoga/aggregrid/logx"
	"github.com/mlnoga/aggregrid/regriderr"
)

// Regridder is the two-step-lifecycle façade of spec §4.F: construction
// snapshots the source and target grids; the first Regrid call warms a
// lazy cache of the projected target bounds, which every later call
// reuses untouched.
type Regridder struct {
	src  grid.Source
	tgt  grid.Target
	proj Projector
	opts aggregate.Options

	once         sync.Once
	warmErr      error
	projectedTgt grid.Target
}

// NewRegridder snapshots src and tgt by value (spec §9: value-owning grid
// descriptors, immune to later mutation of the caller's arrays) and
// fails immediately if either grid lacks a native CRS.
func NewRegridder(src grid.Source, tgt grid.Target, proj Projector, opts aggregate.Options) (*Regridder, error) {
	if src.CRS == "" {
		return nil, fmt.Errorf("source grid has no native CRS: %w", regriderr.ErrMissingCRS)
	}
	if tgt.CRS == "" {
		return nil, fmt.Errorf("target grid has no native CRS: %w", regriderr.ErrMissingCRS)
	}
	return &Regridder{
		src:  src.Clone(),
		tgt:  tgt.Clone(),
		proj: proj,
		opts: opts.WithDefaults(),
	}, nil
}

// Regrid validates that data's own coordinate axes (if supplied) match
// the construction-time source grid, warms the façade's caches on first
// call, and delegates to aggregate.Aggregate.
func (r *Regridder) Regrid(data aggregate.Source) (aggregate.Result, error) {
	if data.XCoords != nil && !floats.Equal(data.XCoords, r.src.XPoints) {
		return aggregate.Result{}, fmt.Errorf("data x-coordinates do not match the regridder's source grid: %w", regriderr.ErrGridMismatch)
	}
	if data.YCoords != nil && !floats.Equal(data.YCoords, r.src.YPoints) {
		return aggregate.Result{}, fmt.Errorf("data y-coordinates do not match the regridder's source grid: %w", regriderr.ErrGridMismatch)
	}

	r.once.Do(func() { r.warm() })
	if r.warmErr != nil {
		return aggregate.Result{}, r.warmErr
	}

	return aggregate.Aggregate(data, r.src, r.projectedTgt, r.opts)
}

// warm populates the façade's caches: it skips the projector entirely
// when source and target already share a CRS, matching spec §4.F's
// short-circuit for the common same-CRS case.
func (r *Regridder) warm() {
	if r.src.CRS == r.tgt.CRS {
		r.projectedTgt = r.tgt
		return
	}
	logx.Printf("projecting target grid from %s to %s\n", r.tgt.CRS, r.src.CRS)
	xp, yp, err := r.proj.Project(r.tgt.CRS, r.src.CRS, r.tgt.XBounds, r.tgt.YBounds)
	if err != nil {
		r.warmErr = err
		return
	}
	r.projectedTgt = grid.Target{XBounds: xp, YBounds: yp, CRS: r.src.CRS}
}
