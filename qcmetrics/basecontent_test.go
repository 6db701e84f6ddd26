package qcmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseContentAddAndDepth(t *testing.T) {
	b := &BaseContent{}
	b.Add([]byte("ACGTN"))
	b.Add([]byte("ACGT"))

	assert.EqualValues(t, 2, b.Counts[0][baseA])
	assert.EqualValues(t, 2, b.Counts[1][baseC])
	assert.EqualValues(t, 2, b.Counts[2][baseG])
	assert.EqualValues(t, 2, b.Counts[3][baseT])
	assert.EqualValues(t, 1, b.Counts[4][baseN])
	assert.EqualValues(t, 2, b.DepthAt(0))
	assert.EqualValues(t, 1, b.DepthAt(4))
	assert.EqualValues(t, 0, b.DepthAt(10))
}

func TestBaseContentLowercaseMatchesUppercase(t *testing.T) {
	upper := &BaseContent{}
	upper.Add([]byte("ACGT"))
	lower := &BaseContent{}
	lower.Add([]byte("acgt"))
	assert.Equal(t, upper.Counts, lower.Counts)
}

func TestBaseContentAmbiguityCodeCountsAsN(t *testing.T) {
	b := &BaseContent{}
	b.Add([]byte("ACGTRYKM"))
	for _, p := range []int{4, 5, 6, 7} {
		assert.EqualValues(t, 1, b.Counts[p][baseN])
	}
}

func TestBaseContentMergeZeroExtends(t *testing.T) {
	short := &BaseContent{}
	short.Add([]byte("AC"))
	long := &BaseContent{}
	long.Add([]byte("ACGT"))

	short.Merge(long)
	assert.Len(t, short.Counts, 4)
	assert.EqualValues(t, 2, short.Counts[0][baseA])
	assert.EqualValues(t, 1, short.Counts[2][baseG])
	assert.EqualValues(t, 1, short.Counts[3][baseT])
}
