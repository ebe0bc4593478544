// Package numeric contains the support routines applied to record payloads
// around framing: bulk byte swaps, scale/shift adjustment of decoded
// arrays, and typed views over raw payload bytes. The framing layer never
// interprets element types itself; these helpers are for its callers.
package numeric

import (
	"runtime"
	"sync"
)

// parallelThreshold is the element count below which elementwise transforms
// stay on the calling goroutine.
const parallelThreshold = 1 << 16

// Swap32 reverses the byte order of one 32-bit word.
func Swap32(u uint32) uint32 {
	return u<<24 | u&0xff00<<8 | u>>8&0xff00 | u>>24
}

// SwapUint32s reverses the byte order of every word in place. Large slices
// are split across worker goroutines; the transform is elementwise, so the
// split has no observable effect on the result.
func SwapUint32s(v []uint32) {
	parallel(len(v), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			v[i] = Swap32(v[i])
		}
	})
}

func parallel(n int, fn func(lo, hi int)) {
	if n < parallelThreshold {
		fn(0, n)
		return
	}
	workers := runtime.GOMAXPROCS(0)
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
