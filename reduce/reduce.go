// Package reduce implements C7, the reducer: it merges per-chunk
// PartialMetrics into a running Aggregate strictly in ascending
// chunk_index order, regardless of the order completed chunks arrive in
// (spec §4.7, §9).
package reduce

import (
	"container/heap"

	"github.com/grailbio/fastqc/qcmetrics"
)

// partialHeap is a container/heap min-heap ordered by ChunkIndex: the
// reducer's "min-heap of completed PartialMetrics keyed by chunk_index"
// (spec §4.7).
type partialHeap []qcmetrics.PartialMetrics

func (h partialHeap) Len() int            { return len(h) }
func (h partialHeap) Less(i, j int) bool  { return h[i].ChunkIndex < h[j].ChunkIndex }
func (h partialHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *partialHeap) Push(x interface{}) { *h = append(*h, x.(qcmetrics.PartialMetrics)) }
func (h *partialHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Reducer accumulates PartialMetrics delivered in arbitrary completion
// order and merges them into Total strictly in ascending chunk_index
// order (spec §5: "reducer blocks waiting for the next-in-order
// partial").
type Reducer struct {
	pending      partialHeap
	nextExpected int64
	total        *qcmetrics.Aggregate
	chunkCount   int64
}

// NewReducer constructs a Reducer whose running total starts as empty.
func NewReducer(empty *qcmetrics.Aggregate) *Reducer {
	return &Reducer{total: empty}
}

// Offer admits one completed PartialMetrics. It merges immediately, and
// merges any subsequently-unblocked pending partials, whenever p.ChunkIndex
// equals the next expected index; otherwise p is buffered in the pending
// heap until its turn comes (spec §4.7: "merged into the running
// FinalMetrics only when its index equals next_expected_index").
func (r *Reducer) Offer(p qcmetrics.PartialMetrics) {
	heap.Push(&r.pending, p)
	for r.pending.Len() > 0 && r.pending[0].ChunkIndex == r.nextExpected {
		next := heap.Pop(&r.pending).(qcmetrics.PartialMetrics)
		r.total.Merge(next.Agg)
		r.nextExpected++
		r.chunkCount++
	}
}

// Pending reports how many completed-but-out-of-order partials are
// currently buffered, for diagnostics.
func (r *Reducer) Pending() int { return r.pending.Len() }

// Done reports whether every partial through chunkCount-1 has merged,
// i.e. the pending heap has drained completely. The caller knows the
// total chunk count once the producer finishes, and calls this to decide
// whether the reduction completed cleanly.
func (r *Reducer) Done(totalChunks int64) bool {
	return r.nextExpected == totalChunks && r.pending.Len() == 0
}

// Total returns the running merged Aggregate. It is only meaningful once
// Done reports true.
func (r *Reducer) Total() *qcmetrics.Aggregate { return r.total }

// ChunkCount returns how many chunks have been merged so far.
func (r *Reducer) ChunkCount() int64 { return r.chunkCount }
