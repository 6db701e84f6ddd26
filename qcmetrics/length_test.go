package qcmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLengthShortReadExactHistogram(t *testing.T) {
	l := NewLength(false)
	l.Add(100)
	l.Add(100)
	l.Add(150)
	assert.EqualValues(t, 2, l.Hist[100])
	assert.EqualValues(t, 1, l.Hist[150])
	assert.Equal(t, 100, l.Min)
	assert.Equal(t, 150, l.Max)
}

func TestLengthLongReadLogBinned(t *testing.T) {
	l := NewLength(true)
	l.Add(1000)
	l.Add(1001)
	// Both fall in the same 1.5^i bin since the edges are sparse at this
	// magnitude; the histogram key should be shared.
	assert.Len(t, l.Hist, 1)
}

func TestLogBinEdgeMonotonicAndDeduplicated(t *testing.T) {
	prev := -1
	for n := 1; n <= 200; n++ {
		edge := logBinEdge(n)
		assert.LessOrEqual(t, edge, n)
		assert.GreaterOrEqual(t, edge, prev)
		prev = edge
	}
}

func TestLengthMergeUnionsHistograms(t *testing.T) {
	a := NewLength(false)
	a.Add(100)
	b := NewLength(false)
	b.Add(100)
	b.Add(200)

	a.Merge(b)
	assert.EqualValues(t, 2, a.Hist[100])
	assert.EqualValues(t, 1, a.Hist[200])
	assert.Equal(t, 100, a.Min)
	assert.Equal(t, 200, a.Max)
}

func TestN50N90Uniform(t *testing.T) {
	l := NewLength(false)
	for i := 0; i < 10; i++ {
		l.Add(100)
	}
	n50, n90 := l.N50N90()
	assert.Equal(t, 100, n50)
	assert.Equal(t, 100, n90)
}

func TestN50N90MixedLengths(t *testing.T) {
	l := NewLength(false)
	l.Add(100) // one long read
	for i := 0; i < 9; i++ {
		l.Add(10) // nine short reads
	}
	// total bases = 100 + 90 = 190; sorted desc by length: 100 (cum100,
	// >=50% of 190=95 -> n50=100), then 10s accumulate to 190 (>=90% of
	// 190=171 reached once cum >= 171).
	n50, n90 := l.N50N90()
	assert.Equal(t, 100, n50)
	assert.Equal(t, 10, n90)
}
