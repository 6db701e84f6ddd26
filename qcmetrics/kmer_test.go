package qcmetrics

import (
	"testing"

	farm "github.com/dgryski/go-farm"
	"github.com/stretchr/testify/assert"
)

func TestKmerAddBreaksRunAtN(t *testing.T) {
	k := NewKmer()
	// "ACGTACG" is one 7-mer; the N breaks the run so nothing downstream
	// of it forms a 7-mer yet.
	k.Add([]byte("ACGTACGNAC"))
	assert.EqualValues(t, 1, k.n)
}

func TestKmerAddCountsOverlappingKmers(t *testing.T) {
	k := NewKmer()
	k.Add([]byte("ACGTACGT")) // length 8 -> 2 overlapping 7-mers
	assert.EqualValues(t, 2, k.n)
}

func TestKmerReportRatio(t *testing.T) {
	k := NewKmer()
	for i := 0; i < 10; i++ {
		k.Add([]byte("AAAAAAA")) // all-A 7-mer, 10 times
	}
	mono := [4]float64{0.25, 0.25, 0.25, 0.25}
	report := k.Report(mono)
	assert.Len(t, report, 1)
	assert.Equal(t, "AAAAAAA", report[0].Kmer)
	assert.EqualValues(t, 10, report[0].Count)
	expectedCount := 0.25 * 0.25 * 0.25 * 0.25 * 0.25 * 0.25 * 0.25 * float64(k.n)
	assert.InDelta(t, float64(10)/expectedCount, report[0].Ratio, 1e-9)
}

func TestKmerReportEmptyWhenNothingObserved(t *testing.T) {
	k := NewKmer()
	assert.Nil(t, k.Report([4]float64{0.25, 0.25, 0.25, 0.25}))
}

func TestKmerMerge(t *testing.T) {
	a := NewKmer()
	a.Add([]byte("AAAAAAA"))
	b := NewKmer()
	b.Add([]byte("AAAAAAA"))

	a.Merge(b)
	assert.EqualValues(t, 2, a.n)
	fp := farm.Hash64WithSeed(encode7mer(0), 0) // all-A code is 0
	assert.EqualValues(t, 2, a.CMS.Estimate(fp))
}
