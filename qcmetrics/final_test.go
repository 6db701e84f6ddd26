package qcmetrics

import (
	"testing"

	"github.com/grailbio/fastqc/mode"
	"github.com/stretchr/testify/assert"
)

func TestFinalize(t *testing.T) {
	a := New(mode.Short, mode.Defaults(mode.Short))
	a.NReads = 10
	a.Length.Add(50)

	prov := Provenance{
		InputPath:      "sample.fastq",
		ChunkCount:     3,
		DetectedOffset: 33,
		Mode:           mode.Short,
	}
	final := Finalize(a, prov)

	assert.Equal(t, a, final.Agg)
	assert.EqualValues(t, 10, final.Basic.TotalReads)
	assert.Equal(t, 33, final.Basic.PhredOffset)
	assert.Equal(t, prov, final.Provenance)
}
