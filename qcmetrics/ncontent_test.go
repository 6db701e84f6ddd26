package qcmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNContentAdd(t *testing.T) {
	n := &NContent{}
	n.Add([]byte("ACGT")) // 0% N
	n.Add([]byte("NNAA")) // 50% N
	assert.EqualValues(t, 1, n.Hist[0])
	assert.EqualValues(t, 1, n.Hist[50])
}

func TestNContentAddEmptyIsNoop(t *testing.T) {
	n := &NContent{}
	n.Add(nil)
	for _, c := range n.Hist {
		assert.EqualValues(t, 0, c)
	}
}

func TestPerBaseFraction(t *testing.T) {
	b := &BaseContent{}
	b.Add([]byte("ANNN"))
	b.Add([]byte("AAAA"))
	assert.Equal(t, 0.0, PerBaseFraction(b, 0))
	assert.Equal(t, 0.5, PerBaseFraction(b, 1))
	assert.Equal(t, 0.0, PerBaseFraction(b, 99))
}
