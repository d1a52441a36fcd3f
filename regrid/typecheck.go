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

	"github.com/mlnoga/aggregrid/aggregate"
	"github.com/mlnoga/aggregrid/grid"
	"github.com/mlnoga/aggregrid/regriderr"
)

// GridSource is satisfied by a host's opaque source-grid handle (spec
// §6: "grid descriptors are opaque handles understood by the host").
type GridSource interface {
	SourceGrid() grid.Source
}

// TargetGridSource is the target-grid analogue of GridSource.
type TargetGridSource interface {
	TargetGrid() grid.Target
}

// DataCarrier is satisfied by a host's opaque source-data handle.
type DataCarrier interface {
	AggregateSource() aggregate.Source
}

// NewRegridderFromAny builds a Regridder from host-supplied opaque
// handles. Go's static typing makes NewRegridder itself type-safe at
// compile time, unlike the original implementation's runtime isinstance
// checks, so this is the entry point that actually exercises
// ErrTypeMismatch: a host passing something other than a GridSource /
// TargetGridSource gets that error instead of a compile failure.
func NewRegridderFromAny(srcHandle, tgtHandle any, proj Projector, opts aggregate.Options) (*Regridder, error) {
	src, ok := srcHandle.(GridSource)
	if !ok {
		return nil, fmt.Errorf("source grid handle %T does not implement GridSource: %w", srcHandle, regriderr.ErrTypeMismatch)
	}
	tgt, ok := tgtHandle.(TargetGridSource)
	if !ok {
		return nil, fmt.Errorf("target grid handle %T does not implement TargetGridSource: %w", tgtHandle, regriderr.ErrTypeMismatch)
	}
	return NewRegridder(src.SourceGrid(), tgt.TargetGrid(), proj, opts)
}

// RegridAny regrids a host-supplied opaque data handle.
func RegridAny(r *Regridder, dataHandle any) (aggregate.Result, error) {
	carrier, ok := dataHandle.(DataCarrier)
	if !ok {
		return aggregate.Result{}, fmt.Errorf("data handle %T does not implement DataCarrier: %w", dataHandle, regriderr.ErrTypeMismatch)
	}
	return r.Regrid(carrier.AggregateSource())
}
