package quality

import "sync"

// scratchBuf holds pooled scratch memory for difference signals.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) ([]float64, *scratchBuf) {
	buf := scratchPool.Get().(*scratchBuf)
	if cap(buf.data) < n {
		buf.data = make([]float64, n)
	}
	return buf.data[:n], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}
