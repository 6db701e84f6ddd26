package qcmetrics

import (
	"testing"

	"github.com/grailbio/fastqc/fastq"
	"github.com/grailbio/fastqc/mode"
	"github.com/stretchr/testify/assert"
)

func TestReadChecksumDeterministic(t *testing.T) {
	seq := []byte("ACGTACGTACGT")
	qual := []byte("IIIIIIIIIIII")
	assert.Equal(t, readChecksum(seq, qual), readChecksum(seq, qual))
}

func TestReadChecksumSensitiveToQuality(t *testing.T) {
	seq := []byte("ACGTACGTACGT")
	assert.NotEqual(t, readChecksum(seq, []byte("IIIIIIIIIIII")), readChecksum(seq, []byte("5555555555IIII"[:12])))
}

func TestReadChecksumSensitiveToSequence(t *testing.T) {
	qual := []byte("IIIIIIIIIIII")
	assert.NotEqual(t, readChecksum([]byte("ACGTACGTACGT"), qual), readChecksum([]byte("TTTTACGTACGT"), qual))
}

func TestAggregateChecksumSumIndependentOfMergeOrder(t *testing.T) {
	toggles := mode.Defaults(mode.Short)
	reads := []*fastq.Read{
		{Seq: []byte("ACGTACGTAC"), Qual: []byte("IIIIIIIIII")},
		{Seq: []byte("GGGGCCCCAA"), Qual: []byte("5555555555")},
		{Seq: []byte("TTTTAAAACC"), Qual: []byte("####IIII##")},
	}

	whole := New(mode.Short, toggles)
	for _, r := range reads {
		whole.AddRead(r, 33, nil)
	}

	split := New(mode.Short, toggles)
	for i := len(reads) - 1; i >= 0; i-- {
		part := New(mode.Short, toggles)
		part.AddRead(reads[i], 33, nil)
		split.Merge(part)
	}

	assert.Equal(t, whole.ChecksumSum, split.ChecksumSum)
	assert.NotZero(t, whole.ChecksumSum)
}
