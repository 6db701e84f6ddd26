package qcmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerdictString(t *testing.T) {
	assert.Equal(t, "PASS", Pass.String())
	assert.Equal(t, "WARN", Warn.String())
	assert.Equal(t, "FAIL", Fail.String())
}

func TestWorstPicksHigherSeverity(t *testing.T) {
	assert.Equal(t, Warn, worst(Pass, Warn))
	assert.Equal(t, Fail, worst(Warn, Fail))
	assert.Equal(t, Fail, worst(Fail, Pass))
	assert.Equal(t, Pass, worst(Pass, Pass))
}

func TestVerdictLength(t *testing.T) {
	assert.Equal(t, Pass, verdictLength(100, 100))
	assert.Equal(t, Warn, verdictLength(50, 100))
}

func TestVerdictGCDeviation(t *testing.T) {
	assert.Equal(t, Pass, verdictGC(nil, 50))
	assert.Equal(t, Warn, verdictGC(nil, 50+gcWarnDeviationPct+1))
	assert.Equal(t, Fail, verdictGC(nil, 50+gcFailDeviationPct+1))
}

func TestVerdictNContent(t *testing.T) {
	n := &NContent{}
	n.Hist[0] = 100 // 100 reads at 0% N
	assert.Equal(t, Pass, verdictNContent(n))

	warn := &NContent{}
	warn.Hist[int(nContentWarnPct)+1] = 100
	assert.Equal(t, Warn, verdictNContent(warn))

	fail := &NContent{}
	fail.Hist[int(nContentFailPct)+1] = 100
	assert.Equal(t, Fail, verdictNContent(fail))
}

func TestVerdictDuplication(t *testing.T) {
	d := NewDuplication()
	seq := []byte("ACGTACGTACGTACGTACGT")
	d.Add(seq) // unique, no non-unique mass
	assert.Equal(t, Pass, verdictDuplication(d, 1))
}

func TestComputeVerdictsNilAggregatorsStayPass(t *testing.T) {
	a := &Aggregate{GC: &GC{}, Length: NewLength(false)}
	basic := BasicStats{MinLength: 100, MaxLength: 100}
	v := ComputeVerdicts(a, basic)
	assert.Equal(t, Pass, v.PerBaseQuality)
	assert.Equal(t, Pass, v.PerBaseContent)
	assert.Equal(t, Pass, v.Duplication)
	assert.Equal(t, Pass, v.Adapter)
	assert.Equal(t, Pass, v.Kmer)
}
