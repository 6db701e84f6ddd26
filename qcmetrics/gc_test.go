package qcmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGCAdd(t *testing.T) {
	g := &GC{}
	g.Add([]byte("GCGC")) // 100% GC
	g.Add([]byte("ATAT")) // 0% GC
	g.Add([]byte("NNNN")) // undefined

	assert.EqualValues(t, 1, g.Hist[100])
	assert.EqualValues(t, 1, g.Hist[0])
	assert.EqualValues(t, 1, g.Undefined)
}

func TestGCMerge(t *testing.T) {
	a := &GC{}
	a.Add([]byte("GCGC"))
	b := &GC{}
	b.Add([]byte("GCGC"))
	b.Add([]byte("NNNN"))

	a.Merge(b)
	assert.EqualValues(t, 2, a.Hist[100])
	assert.EqualValues(t, 1, a.Undefined)
}
