// Package parallel splits an index range into contiguous chunks and processes
// them on separate goroutines. The brute-force concept enumerator uses it to
// spread the 2^|G| subset masks over CPU cores while keeping the output order
// deterministic: results are collected per chunk and concatenated in chunk
// order.
package parallel

import (
	"runtime"
	"sync"
)

// Range is one contiguous chunk [Start, End) of an index range.
type Range struct {
	Chunk int
	Start int
	End   int
}

// Len returns End - Start.
func (r Range) Len() int {
	return r.End - r.Start
}

// Split divides [0, items) into at most workers contiguous, non-empty chunks
// of nearly equal size (ceiling division). workers <= 0 means runtime.NumCPU().
func Split(items, workers int) []Range {
	if items <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > items {
		workers = items
	}

	chunkSize := (items + workers - 1) / workers
	ranges := make([]Range, 0, workers)
	for start := 0; start < items; start += chunkSize {
		end := start + chunkSize
		if end > items {
			end = items
		}
		ranges = append(ranges, Range{Chunk: len(ranges), Start: start, End: end})
	}
	return ranges
}

// ForEach runs fn for every range on its own goroutine and waits for all of
// them. A single range runs on the calling goroutine.
func ForEach(ranges []Range, fn func(r Range)) {
	if len(ranges) == 1 {
		fn(ranges[0])
		return
	}

	var wg sync.WaitGroup
	for _, r := range ranges {
		wg.Add(1)
		go func(r Range) {
			defer wg.Done()
			fn(r)
		}(r)
	}
	wg.Wait()
}

// SplitWithThreshold returns a single range covering [0, items) when items
// does not exceed threshold, and Split(items, workers) otherwise.
func SplitWithThreshold(items, threshold, workers int) []Range {
	if items <= 0 {
		return nil
	}
	if items <= threshold {
		return []Range{{Chunk: 0, Start: 0, End: items}}
	}
	return Split(items, workers)
}
