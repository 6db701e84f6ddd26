package qcmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQualityAddPerPositionAndMean(t *testing.T) {
	q := &Quality{}
	// Phred+33: '#'=2, '5'=20, 'I'=40
	q.Add([]byte("#5I"), 33)

	assert.EqualValues(t, 1, q.PerPosition[0][2])
	assert.EqualValues(t, 1, q.PerPosition[1][20])
	assert.EqualValues(t, 1, q.PerPosition[2][40])

	mean := roundHalfToEven(int64(2+20+40), 3)
	assert.EqualValues(t, 1, q.MeanHist[mean])
}

func TestQualityAddEmptyIsNoop(t *testing.T) {
	q := &Quality{}
	q.Add(nil, 33)
	assert.Empty(t, q.PerPosition)
	for _, c := range q.MeanHist {
		assert.EqualValues(t, 0, c)
	}
}

func TestQualityMerge(t *testing.T) {
	a := &Quality{}
	a.Add([]byte("III"), 33)
	b := &Quality{}
	b.Add([]byte("II"), 33)

	a.Merge(b)
	assert.EqualValues(t, 2, a.PerPosition[0][40])
	assert.EqualValues(t, 2, a.PerPosition[1][40])
	assert.EqualValues(t, 1, a.PerPosition[2][40])
	assert.EqualValues(t, 2, a.MeanHist[40])
}

func TestQualityLowerQuartileAt(t *testing.T) {
	q := &Quality{}
	// Four reads at position 0 with scores 10, 20, 30, 40.
	q.Add([]byte{33 + 10}, 33)
	q.Add([]byte{33 + 20}, 33)
	q.Add([]byte{33 + 30}, 33)
	q.Add([]byte{33 + 40}, 33)
	lq := q.LowerQuartileAt(0)
	assert.Equal(t, 10, lq)
}
