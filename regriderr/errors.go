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

// Package regriderr defines the error-kind taxonomy shared by the
// aggregrid packages. Each exported error is a distinct sentinel: raise
// sites wrap it with fmt.Errorf's %w verb so the offending values stay in
// the message while callers can still match the kind with errors.Is.
package regriderr

import "errors"

var (
	// ErrTypeMismatch is returned when a caller-supplied handle does not
	// satisfy the expected grid or data-carrier shape.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrMissingCRS is returned when a source or target grid lacks a
	// native coordinate system.
	ErrMissingCRS = errors.New("missing native coordinate system")

	// ErrGridMismatch is returned when a data carrier's spatial
	// coordinates differ from the regridder's source grid.
	ErrGridMismatch = errors.New("grid mismatch")

	// ErrDimensionality is returned when a coordinate or bounds array has
	// the wrong rank, data has rank below 2, or a declared axis is out of
	// range.
	ErrDimensionality = errors.New("dimensionality error")

	// ErrShapeMismatch is returned when coordinate sizes disagree with
	// data sizes along a declared axis, or target bounds arrays disagree
	// in shape.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrIrregularGrid is returned when source x- or y-centres fail the
	// regularity tolerance.
	ErrIrregularGrid = errors.New("irregular source grid")

	// ErrBufferContract is returned by the rasteriser when its coverage
	// buffer or vertex arrays violate its local contract.
	ErrBufferContract = errors.New("rasteriser buffer contract violation")
)
