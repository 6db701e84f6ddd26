package qcmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprintDeterministic(t *testing.T) {
	seq := []byte("ACGTACGTACGT")
	assert.Equal(t, fingerprintFirst50(seq), fingerprintFirst50(seq))
	assert.Equal(t, fingerprintFull(seq), fingerprintFull(seq))
}

func TestFingerprintFirst50TruncatesLongReads(t *testing.T) {
	long := make([]byte, 200)
	for i := range long {
		long[i] = "ACGT"[i%4]
	}
	trimmed := append([]byte(nil), long[:50]...)
	assert.Equal(t, fingerprintFirst50(trimmed), fingerprintFirst50(long))
}

func TestFingerprintFirst50AndFullDiffer(t *testing.T) {
	seq := []byte("ACGTACGTACGT")
	assert.NotEqual(t, fingerprintFirst50(seq), fingerprintFull(seq))
}
