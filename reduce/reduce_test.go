package reduce

import (
	"math/rand"
	"testing"

	"github.com/grailbio/fastqc/mode"
	"github.com/grailbio/fastqc/qcmetrics"
	"github.com/stretchr/testify/assert"
)

func partialWithReads(chunkIndex int64, n int64) qcmetrics.PartialMetrics {
	agg := qcmetrics.New(mode.Short, mode.Defaults(mode.Short))
	agg.NReads = n
	return qcmetrics.PartialMetrics{ChunkIndex: chunkIndex, Agg: agg}
}

func TestReducerMergesInOrderRegardlessOfArrival(t *testing.T) {
	partials := []qcmetrics.PartialMetrics{
		partialWithReads(0, 10),
		partialWithReads(1, 20),
		partialWithReads(2, 30),
		partialWithReads(3, 40),
	}

	// Arrival order 2, 0, 3, 1 — out of order.
	order := []int{2, 0, 3, 1}

	r := NewReducer(qcmetrics.New(mode.Short, mode.Defaults(mode.Short)))
	for _, i := range order {
		r.Offer(partials[i])
	}

	assert.True(t, r.Done(4))
	assert.EqualValues(t, 0, r.Pending())
	assert.EqualValues(t, 4, r.ChunkCount())
	assert.EqualValues(t, 100, r.Total().NReads)
}

func TestReducerBuffersOutOfOrderUntilUnblocked(t *testing.T) {
	r := NewReducer(qcmetrics.New(mode.Short, mode.Defaults(mode.Short)))

	r.Offer(partialWithReads(1, 20))
	assert.EqualValues(t, 1, r.Pending())
	assert.EqualValues(t, 0, r.ChunkCount())

	r.Offer(partialWithReads(0, 10))
	assert.EqualValues(t, 0, r.Pending())
	assert.EqualValues(t, 2, r.ChunkCount())
	assert.EqualValues(t, 30, r.Total().NReads)
}

func TestReducerResultIndependentOfArrivalOrder(t *testing.T) {
	n := 20
	base := make([]qcmetrics.PartialMetrics, n)
	for i := 0; i < n; i++ {
		base[i] = partialWithReads(int64(i), int64(i+1))
	}

	run := func(seed int64) int64 {
		order := append([]qcmetrics.PartialMetrics(nil), base...)
		r := rand.New(rand.NewSource(seed))
		r.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		red := NewReducer(qcmetrics.New(mode.Short, mode.Defaults(mode.Short)))
		for _, p := range order {
			red.Offer(p)
		}
		return red.Total().NReads
	}

	first := run(1)
	second := run(2)
	assert.Equal(t, first, second)
}
