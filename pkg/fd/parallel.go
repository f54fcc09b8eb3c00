package fd

import (
	"runtime"
	"sync"
)

// Grids smaller than this are differentiated on the calling goroutine.
const parallelCells = 1 << 14

// parallelRange executes fn for each i in [start,end). The range is split among
// available CPUs.
func parallelRange(start, end int, fn func(i int)) {
	total := end - start
	if total <= 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > total {
		workers = total
	}
	var wg sync.WaitGroup
	chunk := (total + workers - 1) / workers
	for w := 0; w < workers; w++ {
		s := start + w*chunk
		e := min(s+chunk, end)
		if s >= end {
			break
		}
		wg.Add(1)
		go func(ss, ee int) {
			defer wg.Done()
			for i := ss; i < ee; i++ {
				fn(i)
			}
		}(s, e)
	}
	wg.Wait()
}

// eachLine runs fn for every stencil line, fanning out only when the grid
// holds enough cells to pay for the goroutines.
func eachLine(lines, cells int, fn func(l int)) {
	if cells < parallelCells {
		for l := 0; l < lines; l++ {
			fn(l)
		}
		return
	}
	parallelRange(0, lines, fn)
}
