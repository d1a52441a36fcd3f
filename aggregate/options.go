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

package aggregate

import (
	"runtime"

	"github.com/mlnoga/aggregrid/grid"
	"github.com/mlnoga/aggregrid/raster"
)

// Options configures Aggregate and the Regridder façade built on top of
// it. A zero-valued Options resolves to the documented defaults via
// WithDefaults, mirroring the teacher's pattern of plain exported struct
// fields populated by a constructor rather than functional options.
type Options struct {
	BufferDepth int
	RegularRTol float64
	MaxWorkers  int
}

// WithDefaults returns a copy of o with zero fields resolved to their
// documented defaults.
func (o Options) WithDefaults() Options {
	if o.BufferDepth <= 0 {
		o.BufferDepth = raster.DefaultOptions().BufferDepth
	}
	if o.RegularRTol <= 0 {
		o.RegularRTol = grid.DefaultRegularRTol
	}
	if o.MaxWorkers <= 0 {
		o.MaxWorkers = runtime.GOMAXPROCS(0)
	}
	return o
}

func (o Options) rasterOptions() raster.Options {
	return raster.Options{BufferDepth: o.BufferDepth}
}
