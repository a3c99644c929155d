package utils

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Routines resolves a requested worker count. Zero or negative values are taken relative to
// runtime.NumCPU, so -1 leaves one core free. The result is at least 1.
func Routines(routines int) int {
	if routines <= 0 {
		routines = runtime.NumCPU() + routines
	}
	return max(routines, 1)
}

// SplitWork runs do for every work index in [0, workSize) over a fixed set of routines.
// init is called once per routine before any work starts; the first error stops the remaining work.
func SplitWork(routines int, workSize uint64, do func(workIndex uint64, routineIndex int) error, init func(routines, routineIndex int) error) error {
	return SplitWorkContext(context.Background(), routines, workSize, do, init)
}

// SplitWorkContext is SplitWork that also stops handing out work once ctx is done.
func SplitWorkContext(ctx context.Context, routines int, workSize uint64, do func(workIndex uint64, routineIndex int) error, init func(routines, routineIndex int) error) error {
	routines = Routines(routines)
	if workSize < uint64(routines) {
		routines = int(workSize)
	}

	for routineIndex := range routines {
		if err := init(routines, routineIndex); err != nil {
			return err
		}
	}

	var counter atomic.Uint64

	eg, ctx := errgroup.WithContext(ctx)

	for routineIndex := range routines {
		eg.Go(func() error {
			for {
				if err := ctx.Err(); err != nil {
					return err
				}

				workIndex := counter.Add(1)
				if workIndex > workSize {
					return nil
				}

				if err := do(workIndex-1, routineIndex); err != nil {
					return err
				}
			}
		})
	}
	return eg.Wait()
}
