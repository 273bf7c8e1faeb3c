package canny

import "golang.org/x/sync/errgroup"

// forRows calls fn for every y in [lo, hi). With workers > 1 the range is
// split into contiguous bands processed concurrently; fn must only write to
// its own row.
func forRows(lo, hi, workers int, fn func(y int) error) error {
	if hi <= lo {
		return nil
	}
	if workers <= 1 {
		for y := lo; y < hi; y++ {
			if err := fn(y); err != nil {
				return err
			}
		}
		return nil
	}

	n := hi - lo
	if workers > n {
		workers = n
	}
	band := (n + workers - 1) / workers

	var g errgroup.Group
	for start := lo; start < hi; start += band {
		start := start
		end := min(start+band, hi)
		g.Go(func() error {
			for y := start; y < end; y++ {
				if err := fn(y); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
