package qcmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDuplicationAddReturnsIncrementingEstimate(t *testing.T) {
	d := NewDuplication()
	seq := []byte("ACGTACGTACGTACGTACGT")

	_, est1 := d.Add(seq)
	_, est2 := d.Add(seq)
	assert.EqualValues(t, 1, est1)
	assert.EqualValues(t, 2, est2)
}

func TestDuplicationMergeCombinesCounts(t *testing.T) {
	seq := []byte("GGGGCCCCAAAATTTT")

	a := NewDuplication()
	a.Add(seq)
	b := NewDuplication()
	b.Add(seq)

	a.Merge(b)
	fp := fingerprintFull(seq)
	assert.EqualValues(t, 2, a.Full.CMS.Estimate(fp))
}

func TestDuplicationCurveSumsToOne(t *testing.T) {
	d := NewDuplication()
	for i := 0; i < 5; i++ {
		d.Add([]byte("AAAACCCCGGGGTTTT")) // repeated 5x
	}
	d.Add([]byte("ACGTACGTACGTACGT")) // unique

	curve := d.Curve(6)
	var total float64
	for _, lvl := range curve {
		total += lvl.Fraction
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestDuplicationCurveEmptyWhenNoReads(t *testing.T) {
	d := NewDuplication()
	assert.Nil(t, d.Curve(0))
}
