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

// Package workerpool bounds the fan-out of the per-target-cell aggregator
// loop across goroutines, adapted from the teacher's OpParallel semaphore
// pattern (internal/ops/operator.go).
package workerpool

import (
	"fmt"
	"runtime"

	"github.com/pbnjay/memory"
)

// Run executes job(i) for i in [0, n) across at most maxWorkers
// goroutines, collecting every error rather than stopping at the first
// one — each target cell writes a disjoint output element, so there is
// no reason one cell's failure should suppress another's.
func Run(n, maxWorkers int, job func(i int) error) error {
	if n <= 0 {
		return nil
	}
	if maxWorkers <= 0 {
		maxWorkers = 1
	}
	sem := make(chan bool, maxWorkers)
	res := make(chan error, n)
	for i := 0; i < n; i++ {
		sem <- true
		go func(i int) {
			defer func() { <-sem }()
			res <- job(i)
		}(i)
	}
	for i := 0; i < cap(sem); i++ { // wait for goroutines to finish
		sem <- true
	}

	var err error
	for i := 0; i < n; i++ {
		if r := <-res; r != nil {
			if err == nil {
				err = r
			} else {
				err = fmt.Errorf("multiple errors: %s; %w", err.Error(), r)
			}
		}
	}
	return err
}

// Size resolves the requested worker count against the available CPUs
// and, when bufBytes is positive, against physical RAM — mirroring
// internal/batch.go's PrepareBatches, which sizes image batches against
// memory.TotalMemory() rather than trusting CPU count alone. bufBytes is
// the estimated size of one transient coverage buffer at its largest
// anticipated extent; the pool keeps at most a quarter of physical RAM
// committed to buffers in flight.
func Size(maxWorkers int, bufBytes int) int {
	if maxWorkers <= 0 {
		maxWorkers = runtime.GOMAXPROCS(0)
	}
	if bufBytes <= 0 {
		return maxWorkers
	}
	total := memory.TotalMemory()
	if total == 0 {
		return maxWorkers
	}
	byMemory := int(total / 4 / uint64(bufBytes))
	if byMemory < 1 {
		byMemory = 1
	}
	if byMemory < maxWorkers {
		return byMemory
	}
	return maxWorkers
}
